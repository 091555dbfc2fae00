// Package clang implements the clang/LLVM backend, grounded file-for-file on
// ppb's internal/hal/linux/LLVM.go (LlvmCompiler, LlvmProductInstall,
// clang%s/clang++%s/llvm-ar%s probing), generalized from ppb's Unit/Facet
// decoration model to ovo's standalone CompileOptions/LinkOptions shape. It
// advertises C++20 module support (Capabilities.CppModules), as do the msvc,
// zigcc and emscripten backends; gcc is the only backend that does not.
package clang

import (
	"bytes"
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

var LogClang = base.NewLogCategory("Clang")

// Compiler implements compiler.Compiler for a detected clang/LLVM toolchain.
// Mirrors ppb's LlvmCompiler shape (Arch, Version, Clang/ClangPlusPlus/
// Ar/Llvm_Config paths) minus the build-graph Serialize/CreateAction/Build
// lifecycle, which belonged to ppb's cached build-node model.
type Compiler struct {
	ClangPath    string
	ClangPPPath  string
	ArPath       string
	ScanDepsPath string // optional: clang-scan-deps, empty disables native scanning
	Version      string
}

var _ compiler.Compiler = (*Compiler)(nil)

func (c *Compiler) Kind() compiler.Kind { return compiler.KindClang }
func (c *Compiler) Path() string        { return c.ClangPPPath }

func (c *Compiler) Capabilities() compiler.Capabilities {
	return compiler.Capabilities{
		CppModules:     true,
		HeaderUnits:    true,
		ModuleDepScan:  c.ScanDepsPath != "",
		LTO:            true,
		PGO:            true,
		Sanitizers:     true,
		CrossCompile:   true,
		MaxCStandard:   model.C23,
		MaxCppStandard: model.Cpp26,
		Version:        c.Version,
		Vendor:         "LLVM",
	}
}

func (c *Compiler) Verify(ctx context.Context) bool {
	result, err := process.Run(ctx, c.ClangPPPath, []string{"--version"}, process.Options{})
	return err == nil && result.Success()
}

// Deinit is a no-op: a clang Compiler holds only immutable executable paths
// and a version string, nothing that needs releasing.
func (c *Compiler) Deinit(ctx context.Context) error { return nil }

func (c *Compiler) executable(sources []string) string {
	if model.UsesCppDriver(sources) {
		return c.ClangPPPath
	}
	return c.ClangPath
}

func (c *Compiler) Compile(ctx context.Context, opts model.CompileOptions) (compiler.CompileResult, error) {
	isCpp := model.UsesCppDriver(opts.Sources)
	args := gnu.CompileArgs(opts, gnu.DialectClang, isCpp)

	started := time.Now()
	result, err := process.Run(ctx, c.executable(opts.Sources), args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("clang: spawn_error: %w", err)
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

// CompileModuleInterface precompiles a module interface unit to a .pcm via
// clang's --precompile (compile_module_interface),
// mirroring ppb's PrecompiledHeader handling in Decorate but for a
// standalone interface unit rather than a monolithic PCH.
func (c *Compiler) CompileModuleInterface(ctx context.Context, sourcePath, outputBmi string, opts model.CompileOptions) (compiler.CompileResult, error) {
	args := gnu.ModuleInterfaceArgs(sourcePath, outputBmi, opts)

	started := time.Now()
	result, err := process.Run(ctx, c.ClangPPPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("clang: spawn_error: %w", err)
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

// ScanModuleDeps prefers clang-scan-deps's native P1689 JSON output and
// falls back to the lexical scanner on any failure or malformed output, so
// a broken or missing clang-scan-deps never hard-fails a scan.
func (c *Compiler) ScanModuleDeps(ctx context.Context, sourcePath string, opts model.CompileOptions) (compiler.ModuleDepsResult, error) {
	if c.ScanDepsPath != "" {
		if result, err := c.scanDepsNative(ctx, sourcePath, opts); err == nil {
			return result, nil
		} else {
			base.LogVerbose(LogClang, "clang-scan-deps failed for %s, falling back to lexical scan: %s", sourcePath, err)
		}
	}

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

func (c *Compiler) scanDepsNative(ctx context.Context, sourcePath string, opts model.CompileOptions) (compiler.ModuleDepsResult, error) {
	compileArgs := gnu.CompileArgs(opts, gnu.DialectClang, true)

	args := []string{"-format=p1689", "--", c.ClangPPPath}
	args = append(args, compileArgs...)

	var stdout bytes.Buffer
	result, err := process.Run(ctx, c.ScanDepsPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.ModuleDepsResult{}, err
	}
	if !result.Success() {
		return compiler.ModuleDepsResult{}, fmt.Errorf("clang-scan-deps exited %d: %s", result.ExitCode, result.Stderr)
	}
	stdout.WriteString(result.Stdout)

	unit, err := modules.ParseP1689(sourcePath, stdout.Bytes())
	if err != nil {
		return compiler.ModuleDepsResult{}, err
	}
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
		executable = c.ClangPPPath
		args = gnu.LinkArgs(opts, opts.Target.OS == model.OSMacos)
	}

	result, err := process.Run(ctx, executable, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.LinkResult{}, fmt.Errorf("clang: spawn_error: %w", err)
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
