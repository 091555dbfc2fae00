package modules

import (
	"github.com/goccy/go-json"

	"github.com/donaldfilimon/ovo/model"
)

// p1689Rule mirrors the subset of clang's `-format=p1689` JSON (and MSVC's
// structurally identical `/scanDependencies` output) that ovo consumes: one
// rule per translation unit, naming what it provides and what it requires.
// Both backends call this same shape "rule" per the P1689R5 wire format.
type p1689Rule struct {
	Provides []struct {
		LogicalName string `json:"logical-name"`
	} `json:"provides"`
	Requires []struct {
		LogicalName string `json:"logical-name"`
		SourcePath  string `json:"source-path"`
	} `json:"requires"`
}

type p1689Document struct {
	Rules []p1689Rule `json:"rules"`
}

// ParseP1689 decodes a native module-dependency scan result (clang's P1689
// JSON or MSVC's /scanDependencies JSON, which share the rules/provides/
// requires shape) into the same ModuleUnit shape the lexical scanner
// produces, "Either path must produce the same
// ModuleDepsResult shape."
func ParseP1689(sourcePath string, data []byte) (model.ModuleUnit, error) {
	var doc p1689Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.ModuleUnit{}, err
	}

	unit := model.ModuleUnit{SourcePath: sourcePath}
	for _, rule := range doc.Rules {
		for _, p := range rule.Provides {
			unit.Provides = p.LogicalName
			unit.IsInterface = true
		}
		for _, r := range rule.Requires {
			dep := model.ModuleDependency{
				Name:       r.LogicalName,
				Kind:       model.ModuleImport,
				SourcePath: r.SourcePath,
			}
			dep.IsStd = len(dep.Name) >= 3 && dep.Name[:3] == "std"
			unit.Dependencies = append(unit.Dependencies, dep)
		}
	}
	return unit, nil
}
