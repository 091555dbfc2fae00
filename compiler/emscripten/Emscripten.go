// Package emscripten implements the Emscripten backend. Emscripten's
// em++/emcc are Python wrappers around a bundled clang, so both its flag
// dialect and its module support follow ppb's internal/hal/linux/LLVM.go
// almost verbatim; only the executable names and the default target (arch
// wasm32, OS emscripten) differ from compiler/clang. Output paths are used
// as the caller gives them.
package emscripten

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

var LogEmscripten = base.NewLogCategory("Emscripten")

// Compiler implements compiler.Compiler for a detected Emscripten SDK.
type Compiler struct {
	EmccPath string
	EmppPath string
	EmarPath string
	Version  string
}

var _ compiler.Compiler = (*Compiler)(nil)

func (c *Compiler) Kind() compiler.Kind { return compiler.KindEmscripten }
func (c *Compiler) Path() string        { return c.EmppPath }

func (c *Compiler) Capabilities() compiler.Capabilities {
	return compiler.Capabilities{
		CppModules:     true,
		HeaderUnits:    false, // emscripten's bundled clang disables header units pending wasm ABI support
		ModuleDepScan:  false, // no clang-scan-deps shipped alongside em++; lexical fallback only
		LTO:            true,
		PGO:            false,
		Sanitizers:     true,
		CrossCompile:   true, // always cross-compiling to wasm from the host toolchain's point of view
		MaxCStandard:   model.C23,
		MaxCppStandard: model.Cpp23,
		Version:        c.Version,
		Vendor:         "Emscripten",
	}
}

func (c *Compiler) Verify(ctx context.Context) bool {
	result, err := process.Run(ctx, c.EmppPath, []string{"--version"}, process.Options{})
	return err == nil && result.Success()
}

// Deinit is a no-op: an emscripten Compiler holds only immutable executable
// paths and a version string, nothing that needs releasing.
func (c *Compiler) Deinit(ctx context.Context) error { return nil }

func (c *Compiler) executable(sources []string) string {
	if model.UsesCppDriver(sources) {
		return c.EmppPath
	}
	return c.EmccPath
}

// withWasmTarget defaults Target to arch wasm32 / OS emscripten (rendered by
// Target.Triple as wasm32-emscripten-<abi>) when the caller left Arch at its
// zero value, ArchNative, since every emscripten invocation is
// implicitly a cross-compile ("target triple" column).
func withWasmTarget(t model.Target) model.Target {
	if t.Arch == model.ArchNative {
		t.Arch = model.ArchWasm32
		t.OS = model.OSEmscripten
	}
	return t
}

func (c *Compiler) Compile(ctx context.Context, opts model.CompileOptions) (compiler.CompileResult, error) {
	opts.Target = withWasmTarget(opts.Target)
	isCpp := model.UsesCppDriver(opts.Sources)
	args := gnu.CompileArgs(opts, gnu.DialectClang, isCpp)

	started := time.Now()
	result, err := process.Run(ctx, c.executable(opts.Sources), args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("emscripten: spawn_error: %w", err)
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
	opts.Target = withWasmTarget(opts.Target)
	args := gnu.ModuleInterfaceArgs(sourcePath, outputBmi, opts)

	started := time.Now()
	result, err := process.Run(ctx, c.EmppPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("emscripten: spawn_error: %w", err)
	}

	out := compiler.CompileResult{
		Success:     result.Success(),
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
		ExitCode:    result.ExitCode,
		DurationNs:  time.Since(started).Nanoseconds(),
		Diagnostics: diagnostic.Parse(diagnostic.GrammarGcc, result.Stdout, result.Stderr),
	}
	if out.Success {
		out.OutputPath = outputBmi
	}
	return out, nil
}

func (c *Compiler) ScanModuleDeps(ctx context.Context, sourcePath string, opts model.CompileOptions) (compiler.ModuleDepsResult, error) {
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
	opts.Target = withWasmTarget(opts.Target)
	started := time.Now()

	var executable string
	var args []string
	if opts.OutputKind == model.OutputStaticLib {
		executable = c.EmarPath
		args = gnu.ArchiverArgs(opts)
	} else {
		executable = c.EmppPath
		args = gnu.LinkArgs(opts, opts.Target.OS == model.OSMacos)
	}

	result, err := process.Run(ctx, executable, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.LinkResult{}, fmt.Errorf("emscripten: spawn_error: %w", err)
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
