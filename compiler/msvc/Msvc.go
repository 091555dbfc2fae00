package msvc

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldfilimon/ovo/compiler"
	"github.com/donaldfilimon/ovo/diagnostic"
	"github.com/donaldfilimon/ovo/internal/base"
	"github.com/donaldfilimon/ovo/internal/process"
	"github.com/donaldfilimon/ovo/model"
	"github.com/donaldfilimon/ovo/modules"
)

var LogMsvc = base.NewLogCategory("Msvc")

// Compiler implements compiler.Compiler for a detected Visual Studio
// toolchain. Mirrors ppb's MsvcCompiler shape (Cl_exe, Lib_exe,
// Link_exe, MSC_VER) minus the build-graph Serialize/CreateAction/Build
// lifecycle and resource-compiler/Windows SDK wiring, which belonged to
// ppb's full Windows platform layer.
type Compiler struct {
	ClPath   string
	LibPath  string
	LinkPath string
	Version  string // Visual Studio product line version from vswhere, e.g. "2022"
}

var _ compiler.Compiler = (*Compiler)(nil)

func (c *Compiler) Kind() compiler.Kind { return compiler.KindMSVC }
func (c *Compiler) Path() string        { return c.ClPath }

func (c *Compiler) Capabilities() compiler.Capabilities {
	return compiler.Capabilities{
		CppModules:     true,
		HeaderUnits:    true,
		ModuleDepScan:  true,
		LTO:            true,
		PGO:            true,
		Sanitizers:     true, // address only, see CompileArgs
		CrossCompile:   false,
		MaxCStandard:   model.C17,
		MaxCppStandard: model.Cpp23,
		Version:        c.Version,
		Vendor:         "Microsoft",
	}
}

func (c *Compiler) Verify(ctx context.Context) bool {
	result, err := process.Run(ctx, c.ClPath, nil, process.Options{})
	// cl.exe with no arguments prints its banner and exits 2; any response at
	// all (rather than a spawn error) means the toolchain is usable.
	return err == nil && result.ExitCode != -1
}

// Deinit is a no-op: an msvc Compiler holds only immutable executable paths
// and a version string, nothing that needs releasing.
func (c *Compiler) Deinit(ctx context.Context) error { return nil }

func (c *Compiler) Compile(ctx context.Context, opts model.CompileOptions) (compiler.CompileResult, error) {
	isCpp := model.UsesCppDriver(opts.Sources)
	args := CompileArgs(opts, isCpp)

	started := time.Now()
	result, err := process.Run(ctx, c.ClPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("msvc: spawn_error: %w", err)
	}

	out := compiler.CompileResult{
		Success:     result.Success(),
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
		ExitCode:    result.ExitCode,
		DurationNs:  time.Since(started).Nanoseconds(),
		Diagnostics: diagnostic.Parse(diagnostic.GrammarMsvc, result.Stdout, result.Stderr),
	}
	if out.Success && opts.Output != "" {
		out.OutputPath = opts.Output
	}
	return out, nil
}

func (c *Compiler) CompileModuleInterface(ctx context.Context, sourcePath, outputBmi string, opts model.CompileOptions) (compiler.CompileResult, error) {
	args := ModuleInterfaceArgs(sourcePath, outputBmi, opts)

	started := time.Now()
	result, err := process.Run(ctx, c.ClPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.CompileResult{}, fmt.Errorf("msvc: spawn_error: %w", err)
	}

	out := compiler.CompileResult{
		Success:     result.Success(),
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
		ExitCode:    result.ExitCode,
		DurationNs:  time.Since(started).Nanoseconds(),
		Diagnostics: diagnostic.Parse(diagnostic.GrammarMsvc, result.Stdout, result.Stderr),
	}
	if out.Success {
		out.OutputPath = outputBmi
	}
	return out, nil
}

// ScanModuleDeps uses cl.exe's /scanDependencies, whose JSON output shares
// the P1689 rules/provides/requires shape , falling
// back to the lexical scanner if the native scan fails.
func (c *Compiler) ScanModuleDeps(ctx context.Context, sourcePath string, opts model.CompileOptions) (compiler.ModuleDepsResult, error) {
	if result, err := c.scanDependenciesNative(ctx, sourcePath, opts); err == nil {
		return result, nil
	} else {
		base.LogVerbose(LogMsvc, "/scanDependencies failed for %s, falling back to lexical scan: %s", sourcePath, err)
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

func (c *Compiler) scanDependenciesNative(ctx context.Context, sourcePath string, opts model.CompileOptions) (compiler.ModuleDepsResult, error) {
	jsonOut := sourcePath + ".module.json"
	args := []string{"/nologo", "/c", opts.CppStandard.MsvcFlag(), "/scanDependencies", jsonOut}
	for _, dir := range opts.IncludeDirs {
		args = append(args, "/I"+dir)
	}
	args = append(args, sourcePath)

	result, err := process.Run(ctx, c.ClPath, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.ModuleDepsResult{}, err
	}
	if !result.Success() {
		return compiler.ModuleDepsResult{}, fmt.Errorf("cl.exe /scanDependencies exited %d: %s", result.ExitCode, result.Stderr)
	}

	data, err := compiler.ReadSource(jsonOut)
	if err != nil {
		return compiler.ModuleDepsResult{}, err
	}
	unit, err := modules.ParseP1689(sourcePath, []byte(data))
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
		executable = c.LibPath
		args = ArchiverArgs(opts)
	} else {
		executable = c.LinkPath
		args = LinkArgs(opts)
	}

	result, err := process.Run(ctx, executable, args, process.Options{WorkingDir: opts.Cwd, Env: opts.Env})
	if err != nil {
		return compiler.LinkResult{}, fmt.Errorf("msvc: spawn_error: %w", err)
	}

	out := compiler.LinkResult{
		Success:     result.Success(),
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
		ExitCode:    result.ExitCode,
		DurationNs:  time.Since(started).Nanoseconds(),
		Diagnostics: diagnostic.Parse(diagnostic.GrammarMsvc, result.Stdout, result.Stderr),
	}
	if out.Success {
		out.OutputPath = opts.Output
	}
	return out, nil
}
