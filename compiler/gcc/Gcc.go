// Package gcc implements the GCC backend, grounded file-for-file on ppb's
// internal/hal/linux/GCC.go (GccCompiler, GccProductInstall,
// re_gccMatchVersion probing) generalized from ppb's Unit/Facet decoration
// model to ovo's standalone CompileOptions/LinkOptions shape.
package gcc

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldfilimon/ovo/compiler"
	"github.com/donaldfilimon/ovo/compiler/gnu"
	"github.com/donaldfilimon/ovo/diagnostic"
	"github.com/donaldfilimon/ovo/internal/base"
	"github.com/donaldfilimon/ovo/internal/process"
	"github.com/donaldfilimon/ovo/model"
	"github.com/donaldfilimon/ovo/modules"
)

var LogGcc = base.NewLogCategory("Gcc")

// Compiler implements compiler.Compiler for a detected GCC toolchain.
// Mirrors ppb's GccCompiler shape (Arch, Version, executable paths)
// minus the build-graph-specific Serialize/CreateAction/Build methods,
// which belonged to ppb's cached build-node lifecycle, not a standalone
// backend.
type Compiler struct {
	GppPath string
	GccPath string
	ArPath  string
	Version string
}

var _ compiler.Compiler = (*Compiler)(nil)

func (c *Compiler) Kind() compiler.Kind { return compiler.KindGCC }
func (c *Compiler) Path() string        { return c.GppPath }

func (c *Compiler) Capabilities() compiler.Capabilities {
	return compiler.Capabilities{
		CppModules:     false, // gcc's -fmodules-ts predates C++20 modules; see gnu.moduleFlags
		HeaderUnits:    false,
		ModuleDepScan:  false,
		LTO:            true,
		PGO:            true,
		Sanitizers:     true,
		CrossCompile:   true,
		MaxCStandard:   model.C23,
		MaxCppStandard: model.Cpp23,
		Version:        c.Version,
		Vendor:         "GNU",
	}
}

func (c *Compiler) Verify(ctx context.Context) bool {
	result, err := process.Run(ctx, c.GppPath, []string{"--version"}, process.Options{})
	return err == nil && result.Success()
}

// Deinit is a no-op: a gcc Compiler holds only immutable executable paths
// and a version string, nothing that needs releasing.
func (c *Compiler) Deinit(ctx context.Context) error { return nil }

func (c *Compiler) executable(sources []string) string {
	if model.UsesCppDriver(sources) {
		return c.GppPath
	}
	return c.GccPath
}

func (c *Compiler) Compile(ctx context.Context, opts model.CompileOptions) (compiler.CompileResult, error) {
	isCpp := model.UsesCppDriver(opts.Sources)
	args := gnu.CompileArgs(opts, gnu.DialectGCC, isCpp)

	started := time.Now()
	result, err := process.Run(ctx, c.executable(opts.Sources), args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("gcc: spawn_error: %w", err)
	}

	out := compiler.CompileResult{
		Success:     result.Success(),
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
		ExitCode:    result.ExitCode,
		DurationNs:  time.Since(started).Nanoseconds(),
		Diagnostics: diagnostic.Parse(diagnostic.GrammarGcc, result.Stdout, result.Stderr),
	}
	if out.Success && opts.Output != "" {
		out.OutputPath = opts.Output
	}
	return out, nil
}

func (c *Compiler) CompileModuleInterface(ctx context.Context, sourcePath, outputBmi string, opts model.CompileOptions) (compiler.CompileResult, error) {
	// gcc has no standards-compatible module interface compilation path (see
	// Capabilities.CppModules); callers are expected to route module builds
	// to a backend that actually supports them.
	return compiler.CompileResult{}, fmt.Errorf("gcc: %w", errModulesUnsupported(sourcePath))
}

type errModulesUnsupported string

func (e errModulesUnsupported) Error() string {
	return fmt.Sprintf("compile_module_interface unsupported for %s", string(e))
}

func (c *Compiler) ScanModuleDeps(ctx context.Context, sourcePath string, opts model.CompileOptions) (compiler.ModuleDepsResult, error) {
	// No native scanner (ModuleDepScan capability is
	// false for gcc); the lexical fallback applies uniformly.
	content, err := compiler.ReadSource(sourcePath)
	if err != nil {
		return compiler.ModuleDepsResult{}, err
	}
	unit := modules.Scan(sourcePath, content)
	return compiler.ModuleDepsResult{
		Success:      true,
		Dependencies: unit.Dependencies,
		Provides:     unit.Provides,
		IsInterface:  unit.IsInterface,
	}, nil
}

func (c *Compiler) Link(ctx context.Context, opts model.LinkOptions) (compiler.LinkResult, error) {
	started := time.Now()

	var executable string
	var args []string
	if opts.OutputKind == model.OutputStaticLib {
		executable = c.ArPath
		args = gnu.ArchiverArgs(opts)
	} else {
		executable = c.GppPath
		args = gnu.LinkArgs(opts, opts.Target.OS == model.OSMacos)
	}

	result, err := process.Run(ctx, executable, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.LinkResult{}, fmt.Errorf("gcc: spawn_error: %w", err)
	}

	out := compiler.LinkResult{
		Success:     result.Success(),
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
		ExitCode:    result.ExitCode,
		DurationNs:  time.Since(started).Nanoseconds(),
		Diagnostics: diagnostic.Parse(diagnostic.GrammarGcc, result.Stdout, result.Stderr),
	}
	if out.Success {
		out.OutputPath = opts.Output
	}
	return out, nil
}
