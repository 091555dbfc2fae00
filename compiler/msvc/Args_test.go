package msvc

import (
	"testing"

	"github.com/donaldfilimon/ovo/model"
)

func contains(args []string, needle string) bool {
	for _, a := range args {
		if a == needle {
			return true
		}
	}
	return false
}

func TestCompileArgsStdFlag(t *testing.T) {
	opts := model.CompileOptions{
		Sources:     []string{"main.cpp"},
		CppStandard: model.Cpp20,
	}
	args := CompileArgs(opts, true)
	if !contains(args, "/std:c++20") {
		t.Fatalf("expected /std:c++20, got %v", args)
	}
	if !contains(args, "/c") {
		t.Fatalf("expected /c, got %v", args)
	}
}

func TestCompileArgsWarningsAsErrors(t *testing.T) {
	opts := model.CompileOptions{WarningsAsErrors: true, CppStandard: model.Cpp17}
	args := CompileArgs(opts, true)
	if !contains(args, "/WX") {
		t.Fatalf("expected /WX, got %v", args)
	}
}

func TestLinkArgsSharedLib(t *testing.T) {
	args := LinkArgs(model.LinkOptions{OutputKind: model.OutputSharedLib, Output: "a.dll"})
	if !contains(args, "/DLL") {
		t.Fatalf("expected /DLL, got %v", args)
	}
	if !contains(args, "/OUT:a.dll") {
		t.Fatalf("expected /OUT:a.dll, got %v", args)
	}
}

func TestCompileArgsCppGetsEHsc(t *testing.T) {
	cpp := CompileArgs(model.CompileOptions{Sources: []string{"main.cpp"}, CppStandard: model.Cpp20}, true)
	if !contains(cpp, "/EHsc") {
		t.Fatalf("expected /EHsc for a C++ compile, got %v", cpp)
	}

	c := CompileArgs(model.CompileOptions{Sources: []string{"main.c"}, CStandard: model.C17}, false)
	if contains(c, "/EHsc") {
		t.Fatalf("did not expect /EHsc for a C compile, got %v", c)
	}
}

func TestLinkArgsStripUsesOptRefIcf(t *testing.T) {
	stripped := LinkArgs(model.LinkOptions{Strip: true})
	if !contains(stripped, "/OPT:REF") || !contains(stripped, "/OPT:ICF") {
		t.Fatalf("expected /OPT:REF and /OPT:ICF when stripping, got %v", stripped)
	}
	if contains(stripped, "/DEBUG") {
		t.Fatalf("did not expect /DEBUG on a stripped link, got %v", stripped)
	}

	debug := LinkArgs(model.LinkOptions{Strip: false})
	if !contains(debug, "/DEBUG") {
		t.Fatalf("expected /DEBUG on a non-stripped link, got %v", debug)
	}
}

func TestArchiverArgs(t *testing.T) {
	args := ArchiverArgs(model.LinkOptions{Output: "a.lib", Objects: []string{"x.obj"}})
	if !contains(args, "/OUT:a.lib") {
		t.Fatalf("expected /OUT:a.lib, got %v", args)
	}
	if !contains(args, "x.obj") {
		t.Fatalf("expected x.obj, got %v", args)
	}
}

func TestModuleInterfaceArgsObjectPath(t *testing.T) {
	opts := model.CompileOptions{CppStandard: model.Cpp20}
	args := ModuleInterfaceArgs("mod.cppm", "mod.ifc", opts)
	if !contains(args, "mod.ifc") {
		t.Fatalf("expected ifc output, got %v", args)
	}
	if !contains(args, "/Fomod.obj") {
		t.Fatalf("expected derived object path, got %v", args)
	}
}
