package model

import "github.com/donaldfilimon/ovo/internal/process"

type OutputKind int32

const (
	OutputExecutable OutputKind = iota
	OutputObjectList
	OutputStaticLib
	OutputSharedLib
)

func (x OutputKind) String() string {
	switch x {
	case OutputExecutable:
		return "executable"
	case OutputObjectList:
		return "object_list"
	case OutputStaticLib:
		return "static_lib"
	case OutputSharedLib:
		return "shared_lib"
	default:
		return "unknown"
	}
}

// CompileOptions is the contract between the facade and a Compiler backend
// for one compile invocation.
type CompileOptions struct {
	Sources     []string
	Output      string
	OutputKind  OutputKind
	CStandard   CStd
	CppStandard CppStd

	Optimization OptimizationLevel

	IncludeDirs       []string
	SystemIncludeDirs []string
	Defines           []string
	Warnings          []string
	ExtraFlags        []string

	Target Target

	DebugInfo bool
	PIC       bool
	LTO       bool

	EnableModules   bool
	ModuleCacheDir  string
	PrebuiltModules []string

	SanitizeThread    bool
	SanitizeAddress   bool
	SanitizeUndefined bool

	WarningsAsErrors bool
	Verbose          bool

	Cwd string
	Env process.Environment
}

// LinkOptions is the contract between the facade and a Compiler backend for
// one link invocation.
type LinkOptions struct {
	Objects    []string
	Output     string
	OutputKind OutputKind

	LibraryDirs   []string
	Libraries     []string
	FrameworkDirs []string
	Frameworks    []string

	LinkerScript string
	ExtraFlags   []string

	Target Target

	LTO            bool
	Strip          bool
	ExportDynamic  bool
	AllowUndefined bool
	Rpath          string

	Verbose bool

	Cwd string
	Env process.Environment
}
