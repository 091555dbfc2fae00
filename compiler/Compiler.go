// Package compiler defines the polymorphic compiler interface: a handle
// over {compile, link, scan_module_deps, compile_module_interface,
// capabilities, kind, path, verify, deinit}. Grounded on ppb's compile.Compiler
// interface (compile/Compiler.go), trimmed to the operations a standalone
// build driver actually needs — dropped the manifest-oriented methods
// (Define, ForceInclude, FacetDecorator, Buildable, Serializable) that
// exist only to decorate ppb's own Unit/Facet/Module build graph.
package compiler

//go:generate mockgen -source=Compiler.go -destination=compilermock/Compiler.go -package=compilermock

import (
	"context"

	"github.com/donaldfilimon/ovo/model"
)

// Kind identifies a backend variant, used as a BMI cache key component so
// that a stale BMI from a different toolchain is rejected.
type Kind int32

const (
	KindZigCC Kind = iota
	KindClang
	KindGCC
	KindMSVC
	KindEmscripten
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindZigCC:
		return "zig-cc"
	case KindClang:
		return "clang"
	case KindGCC:
		return "gcc"
	case KindMSVC:
		return "msvc"
	case KindEmscripten:
		return "emscripten"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Capabilities is the pure getter a backend exposes, used by auto-select to
// match a caller's requirements against what a detected backend actually
// supports.
type Capabilities struct {
	CppModules     bool
	HeaderUnits    bool
	ModuleDepScan  bool
	LTO            bool
	PGO            bool
	Sanitizers     bool
	CrossCompile   bool
	MaxCStandard   model.CStd
	MaxCppStandard model.CppStd
	Version        string
	Vendor         string
}

// CompileResult is returned by Compile and CompileModuleInterface.
type CompileResult struct {
	Success    bool
	OutputPath string
	Diagnostics []model.Diagnostic
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationNs int64
}

// LinkResult mirrors CompileResult's shape for a link invocation.
type LinkResult struct {
	Success     bool
	OutputPath  string
	Diagnostics []model.Diagnostic
	Stdout      string
	Stderr      string
	ExitCode    int
	DurationNs  int64
}

// ModuleDepsResult is the normalized shape a module scan (lexical or
// native) produces.
type ModuleDepsResult struct {
	Success      bool
	Dependencies []model.ModuleDependency
	Provides     string
	IsInterface  bool
	Stdout       string
	Stderr       string
}

// Compiler is the polymorphic handle over one backend's toolchain. All
// methods are synchronous; concurrency is the caller's responsibility — a
// Compiler value is safe to share read-only across goroutines since it only
// holds immutable executable paths and a copy of its capabilities.
type Compiler interface {
	Compile(ctx context.Context, options model.CompileOptions) (CompileResult, error)
	Link(ctx context.Context, options model.LinkOptions) (LinkResult, error)
	ScanModuleDeps(ctx context.Context, sourcePath string, options model.CompileOptions) (ModuleDepsResult, error)
	CompileModuleInterface(ctx context.Context, sourcePath, outputBmi string, options model.CompileOptions) (CompileResult, error)

	Capabilities() Capabilities
	Kind() Kind
	Path() string
	Verify(ctx context.Context) bool
	Deinit(ctx context.Context) error
}
