// Package zigcc implements the zig-cc backend.
// `zig cc`/`zig c++` wrap zig's bundled clang, so the flag dialect is
// clang's GCC-like dialect (compiler/gnu), same grounding as compiler/clang's
// internal/hal/linux/LLVM.go; what's distinct is invocation shape (`zig cc`
// is a subcommand, not a standalone executable) and cross-compilation being
// zig's headline feature (a target triple is accepted for every build,
// without needing a separate sysroot install per target).
package zigcc

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

var LogZigCC = base.NewLogCategory("ZigCC")

// Compiler implements compiler.Compiler by invoking `zig cc`/`zig c++`/`zig ar`
// as subcommands of a single zig binary.
type Compiler struct {
	ZigPath string
	Version string
}

var _ compiler.Compiler = (*Compiler)(nil)

func (c *Compiler) Kind() compiler.Kind { return compiler.KindZigCC }
func (c *Compiler) Path() string        { return c.ZigPath }

func (c *Compiler) Capabilities() compiler.Capabilities {
	return compiler.Capabilities{
		CppModules:     true,
		HeaderUnits:    false, // zig's bundled clang is built without header unit support enabled
		ModuleDepScan:  false, // no clang-scan-deps shipped with zig; lexical fallback only
		LTO:            true,
		PGO:            false,
		Sanitizers:     true,
		CrossCompile:   true,
		MaxCStandard:   model.C23,
		MaxCppStandard: model.Cpp23,
		Version:        c.Version,
		Vendor:         "zig",
	}
}

func (c *Compiler) Verify(ctx context.Context) bool {
	result, err := process.Run(ctx, c.ZigPath, []string{"version"}, process.Options{})
	return err == nil && result.Success()
}

// Deinit is a no-op: a zig-cc Compiler holds only immutable executable
// paths and a version string, nothing that needs releasing.
func (c *Compiler) Deinit(ctx context.Context) error { return nil }

func (c *Compiler) subcommand(sources []string) string {
	if model.UsesCppDriver(sources) {
		return "c++"
	}
	return "cc"
}

func (c *Compiler) Compile(ctx context.Context, opts model.CompileOptions) (compiler.CompileResult, error) {
	isCpp := model.UsesCppDriver(opts.Sources)
	args := append([]string{c.subcommand(opts.Sources)}, gnu.CompileArgs(opts, gnu.DialectClang, isCpp)...)

	started := time.Now()
	result, err := process.Run(ctx, c.ZigPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("zigcc: spawn_error: %w", err)
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
	args := append([]string{"c++"}, gnu.ModuleInterfaceArgs(sourcePath, outputBmi, opts)...)

	started := time.Now()
	result, err := process.Run(ctx, c.ZigPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("zigcc: spawn_error: %w", err)
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
	started := time.Now()

	var args []string
	if opts.OutputKind == model.OutputStaticLib {
		args = append([]string{"ar"}, gnu.ArchiverArgs(opts)...)
	} else {
		args = append([]string{"c++"}, gnu.LinkArgs(opts, opts.Target.OS == model.OSMacos)...)
	}

	result, err := process.Run(ctx, c.ZigPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.LinkResult{}, fmt.Errorf("zigcc: spawn_error: %w", err)
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
