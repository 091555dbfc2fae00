// Package ovo is the build facade: the entry point that turns a source set
// into a module dependency graph, schedules interface and object compilation
// in dependency order, and links the result. Grounded on ppb's own top-level
// orchestration (internal/cmd/Build.go drives compile.Module through
// utils.BuildGraph in much the same stage order: scan, schedule, compile,
// link) generalized from ppb's persistent content-addressed build graph down
// to a single in-memory pass.
package ovo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/donaldfilimon/ovo/bmicache"
	"github.com/donaldfilimon/ovo/compiler"
	"github.com/donaldfilimon/ovo/internal/base"
	"github.com/donaldfilimon/ovo/modgraph"
	"github.com/donaldfilimon/ovo/model"
)

var LogBuild = base.NewLogCategory("Build")

// bmiExt picks the backend-appropriate BMI extension. MSVC alone produces
// .ifc; every other backend gets .pcm.
func bmiExt(kind compiler.Kind) string {
	if kind == compiler.KindMSVC {
		return ".ifc"
	}
	return ".pcm"
}

// Result is the facade's combined return value for one build: a merged
// compile/link report, with stdout/stderr concatenated and durations summed
// across every compile and link step, plus enough detail to diagnose a
// failing unit.
type Result struct {
	Success     bool
	ObjectPaths []string
	Link        compiler.LinkResult
	Stdout      string
	Stderr      string
	DurationNs  int64
	Unresolved  []modgraph.Unresolved
}

func (r *Result) absorbCompile(res compiler.CompileResult) {
	r.Stdout += res.Stdout
	r.Stderr += res.Stderr
	r.DurationNs += res.DurationNs
}

func (r *Result) absorbLink(res compiler.LinkResult) {
	r.Link = res
	r.Stdout += res.Stdout
	r.Stderr += res.Stderr
	r.DurationNs += res.DurationNs
	r.Success = res.Success
}

// Build compiles and links a source set with no module awareness: every
// source compiles independently and in parallel, then everything links
// together. Use BuildWithModules when any source participates in a C++20
// module dependency.
func Build(ctx context.Context, c compiler.Compiler, options model.CompileOptions, link model.LinkOptions) (*Result, error) {
	result := &Result{}

	objects, err := compileSources(ctx, c, options.Sources, options)
	if err != nil {
		return nil, err
	}
	for _, res := range objects {
		result.absorbCompile(res)
		result.ObjectPaths = append(result.ObjectPaths, res.OutputPath)
		if !res.Success {
			return result, nil
		}
	}

	link.Objects = append(base.CopySlice(link.Objects), result.ObjectPaths...)
	linkRes, err := c.Link(ctx, link)
	if err != nil {
		return nil, err
	}
	result.absorbLink(linkRes)
	return result, nil
}

// compileSources runs one Compile per source concurrently via WorkerPool,
// preserving the caller's source order in the returned slice regardless of
// completion order, so the resulting link line stays stable and
// deterministic across runs.
func compileSources(ctx context.Context, c compiler.Compiler, sources []string, base model.CompileOptions) ([]compiler.CompileResult, error) {
	out := make([]compiler.CompileResult, len(sources))
	pool := NewWorkerPool(ctx)
	for i, src := range sources {
		i, src := i, src
		pool.Go(func(ctx context.Context) error {
			opts := base
			opts.Sources = []string{src}
			opts.Output = objectPathFor(src)
			res, err := c.Compile(ctx, opts)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func objectPathFor(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + ".o"
}

// BuildWithModules runs the module-aware build in four steps: scan every
// source for module dependencies, build and topologically sort the
// resulting graph, compile interfaces before objects in schedule order
// accumulating prebuilt BMIs as it goes, then link.
//
// Scanning runs through WorkerPool; compilation (interfaces and objects
// alike) runs one unit at a time in schedule order, since each interface's BMI
// must exist before any unit naming it as prebuilt can compile — the
// schedule's edge direction (U imports V, so V compiles first) is exactly
// the serialization constraint that requires, and compiling interfaces out
// of order would just rediscover it at the first missing BMI.
func BuildWithModules(ctx context.Context, c compiler.Compiler, sources []string, options model.CompileOptions, link model.LinkOptions, cache *bmicache.Cache) (*Result, error) {
	result := &Result{}
	caps := c.Capabilities()

	graph := modgraph.New()
	units, err := scanUnits(ctx, c, sources, options)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		graph.AddUnit(u)
	}

	unresolved := graph.Build()
	if len(unresolved) > 0 {
		result.Unresolved = unresolved
		base.LogWarning(LogBuild, "%d unresolved module dependencies", len(unresolved))
	}

	order, err := graph.Sort()
	if err != nil {
		return nil, err
	}

	ext := bmiExt(c.Kind())
	prebuilt := base.CopySlice(options.PrebuiltModules)

	for _, id := range order {
		unit := graph.Unit(id)
		unitOpts := options
		unitOpts.Sources = []string{unit.SourcePath}
		unitOpts.PrebuiltModules = prebuilt
		unitOpts.EnableModules = true

		if unit.IsInterface {
			if !caps.CppModules {
				return nil, fmt.Errorf("ovo: backend %s cannot compile module interfaces", c.Kind())
			}
			bmiPath := cache.BmiPath(unit.Provides, ext)
			ifaceRes, err := c.CompileModuleInterface(ctx, unit.SourcePath, bmiPath, unitOpts)
			if err != nil {
				return nil, err
			}
			result.absorbCompile(ifaceRes)
			if !ifaceRes.Success {
				return result, nil
			}
			prebuilt = append(prebuilt, bmiPath)

			deps := make([]string, 0, len(unit.Dependencies))
			for _, d := range unit.Dependencies {
				if !d.IsStd {
					deps = append(deps, d.Name)
				}
			}
			if err := cache.Register(unit.Provides, bmiPath, unit.SourcePath, deps, c.Kind().String(), caps.Version); err != nil {
				base.LogWarning(LogBuild, "bmicache register failed for %q: %s", unit.Provides, err)
			}
		}

		objOpts := unitOpts
		objOpts.Output = objectPathFor(unit.SourcePath)
		objRes, err := c.Compile(ctx, objOpts)
		if err != nil {
			return nil, err
		}
		result.absorbCompile(objRes)
		if !objRes.Success {
			result.ObjectPaths = append(result.ObjectPaths, objRes.OutputPath)
			return result, nil
		}
		result.ObjectPaths = append(result.ObjectPaths, objRes.OutputPath)
	}

	link.Objects = append(base.CopySlice(link.Objects), result.ObjectPaths...)
	linkRes, err := c.Link(ctx, link)
	if err != nil {
		return nil, err
	}
	result.absorbLink(linkRes)
	return result, nil
}

// scanUnits runs ScanModuleDeps over every source concurrently and folds
// each ModuleDepsResult into the model.ModuleUnit shape modgraph consumes.
func scanUnits(ctx context.Context, c compiler.Compiler, sources []string, options model.CompileOptions) ([]model.ModuleUnit, error) {
	out := make([]model.ModuleUnit, len(sources))
	pool := NewWorkerPool(ctx)
	for i, src := range sources {
		i, src := i, src
		pool.Go(func(ctx context.Context) error {
			scan, err := c.ScanModuleDeps(ctx, src, options)
			if err != nil {
				return fmt.Errorf("scan %s: %w", src, err)
			}
			out[i] = model.ModuleUnit{
				SourcePath:   src,
				Provides:     scan.Provides,
				IsInterface:  scan.IsInterface,
				Dependencies: scan.Dependencies,
			}
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
