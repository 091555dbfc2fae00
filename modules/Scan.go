// Package modules implements the lexical C++20 module scanner: a
// line-oriented reader that recognizes export/import declarations without a
// real preprocessor or parser, grounded on ppb's own line-discipline for
// reading/writing generated C++ (internal/io/CppFile.go) run in reverse —
// as a reader instead of a writer.
package modules

import (
	"bufio"
	"strings"

	"github.com/donaldfilimon/ovo/model"
)

// Scan performs a purely lexical, line-by-line scan: after trimming
// horizontal whitespace and carriage returns, skipping
// `//`-prefixed lines, recognizing five declaration shapes. It does not
// handle multi-line declarations, preprocessor conditionals, or macros —
// callers needing higher fidelity use a backend's native scanner and fall
// back to Scan when that is unavailable.
func Scan(sourcePath string, content string) model.ModuleUnit {
	unit := model.ModuleUnit{SourcePath: sourcePath}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := trimLine(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		scanLine(&unit, line)
	}
	return unit
}

func trimLine(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "\r")
}

func scanLine(unit *model.ModuleUnit, line string) {
	switch {
	case strings.HasPrefix(line, "export module "):
		if name, ok := declName(line, "export module "); ok {
			unit.Provides = name
			unit.IsInterface = true
		}
	case strings.HasPrefix(line, "module :"):
		// Partition implementation unit: parent_module is contextual
		// information this scanner doesn't have, so it is left empty
		// (the module graph does not fill it in either).
		unit.IsPartition = true
	case strings.HasPrefix(line, "module "):
		if name, ok := declName(line, "module "); ok {
			unit.Provides = name
			unit.IsInterface = false
		}
	case strings.HasPrefix(line, "export import "):
		if dep, ok := parseImport(line, "export import "); ok {
			dep.Kind = model.ExportImport
			unit.Dependencies = append(unit.Dependencies, dep)
		}
	case strings.HasPrefix(line, "import "):
		if dep, ok := parseImport(line, "import "); ok {
			unit.Dependencies = append(unit.Dependencies, dep)
		}
	}
}

// declName extracts "<name>" from "<prefix><name>;" and applies the
// `module :<partition>;` exclusion: a bare "module <name>;" only sets
// provides when name doesn't start with ':' (that case is a partition,
// handled separately by its own prefix match).
func declName(line, prefix string) (string, bool) {
	rest := strings.TrimPrefix(line, prefix)
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ";")
	if rest == "" || strings.HasPrefix(rest, ":") {
		return "", false
	}
	return rest, true
}

// parseImport extracts the dependency named by an "import <name>;" or
// "export import <name>;" line, classifying its kind :
// header units are quoted or angle-bracketed, partition imports start with
// ':', everything else is a plain module_import. Names starting with "std"
// are flagged is_std.
func parseImport(line, prefix string) (model.ModuleDependency, bool) {
	rest := strings.TrimPrefix(line, prefix)
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ";")
	if rest == "" {
		return model.ModuleDependency{}, false
	}

	dep := model.ModuleDependency{Kind: model.ModuleImport}

	switch {
	case strings.HasPrefix(rest, "<") && strings.HasSuffix(rest, ">"):
		dep.Kind = model.HeaderUnit
		dep.Name = rest[1 : len(rest)-1]
	case strings.HasPrefix(rest, `"`) && strings.HasSuffix(rest, `"`):
		dep.Kind = model.HeaderUnit
		dep.Name = rest[1 : len(rest)-1]
	case strings.HasPrefix(rest, ":"):
		dep.Kind = model.PartitionImport
		dep.Name = rest
	default:
		dep.Name = rest
	}

	dep.IsStd = strings.HasPrefix(dep.Name, "std")
	return dep, true
}
