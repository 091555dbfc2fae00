package gnu

import (
	"strings"
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

func TestCompileArgsBasic(t *testing.T) {
	opts := model.CompileOptions{
		Sources:     []string{"main.cpp"},
		Output:      "main.o",
		CppStandard: model.Cpp20,
		Optimization: model.OptSpeed,
	}
	args := CompileArgs(opts, DialectGCC, true)

	if !contains(args, "-c") {
		t.Fatalf("expected -c in %v", args)
	}
	if !contains(args, "-std=c++20") {
		t.Fatalf("expected -std=c++20 in %v", args)
	}
	if !contains(args, "-O2") {
		t.Fatalf("expected -O2 in %v", args)
	}
	if got := args[len(args)-1]; got != "main.o" {
		t.Fatalf("expected output path as last arg, got %v", args)
	}
}

func TestCompileArgsClangDebugDialect(t *testing.T) {
	opts := model.CompileOptions{
		Sources:     []string{"a.cpp"},
		CppStandard: model.Cpp20,
		DebugInfo:   true,
	}
	args := CompileArgs(opts, DialectClang, true)
	if !contains(args, "-glldb") {
		t.Fatalf("expected -glldb for clang dialect, got %v", args)
	}

	argsGcc := CompileArgs(opts, DialectGCC, true)
	if !contains(argsGcc, "-g") || contains(argsGcc, "-glldb") {
		t.Fatalf("expected -g (not -glldb) for gcc dialect, got %v", argsGcc)
	}
}

func TestCompileArgsTargetTriple(t *testing.T) {
	opts := model.CompileOptions{
		Sources:     []string{"a.c"},
		CStandard:   model.C17,
		Target:      model.Target{Arch: model.ArchAarch64, OS: model.OSLinux},
	}
	args := CompileArgs(opts, DialectGCC, false)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--target=aarch64-linux-gnu") {
		t.Fatalf("expected --target=aarch64-linux-gnu in %q", joined)
	}
}

func TestModuleFlagsOnlyForClang(t *testing.T) {
	opts := model.CompileOptions{EnableModules: true, ModuleCacheDir: "/cache"}
	if flags := moduleFlags(opts, DialectGCC); flags != nil {
		t.Fatalf("expected no module flags for gcc dialect, got %v", flags)
	}
	flags := moduleFlags(opts, DialectClang)
	if !contains(flags, "-fmodules") {
		t.Fatalf("expected -fmodules for clang dialect, got %v", flags)
	}
	if !contains(flags, "-fmodules-cache-path=/cache") {
		t.Fatalf("expected cache path flag, got %v", flags)
	}
}

func TestLinkArgsStaticVsShared(t *testing.T) {
	shared := LinkArgs(model.LinkOptions{OutputKind: model.OutputSharedLib, Output: "lib.so"}, false)
	if !contains(shared, "-shared") {
		t.Fatalf("expected -shared in %v", shared)
	}
	if !contains(shared, "-Wl,-soname,lib.so") {
		t.Fatalf("expected soname flag on non-mac shared link, got %v", shared)
	}

	mac := LinkArgs(model.LinkOptions{OutputKind: model.OutputSharedLib, Output: "lib.dylib"}, true)
	for _, f := range mac {
		if strings.HasPrefix(f, "-Wl,-soname,") {
			t.Fatalf("did not expect a soname flag on macOS, got %v", mac)
		}
	}

	archiver := ArchiverArgs(model.LinkOptions{Output: "lib.a", Objects: []string{"a.o", "b.o"}})
	if archiver[0] != "rcs" || archiver[1] != "lib.a" {
		t.Fatalf("unexpected archiver args: %v", archiver)
	}
}

func TestLinkArgsRpathMacVsLinux(t *testing.T) {
	linux := LinkArgs(model.LinkOptions{Rpath: "$ORIGIN"}, false)
	if !contains(linux, "-Wl,-rpath,$ORIGIN") {
		t.Fatalf("expected combined rpath flag on linux, got %v", linux)
	}

	mac := LinkArgs(model.LinkOptions{Rpath: "@loader_path"}, true)
	if !(contains(mac, "-Wl,-rpath") && contains(mac, "@loader_path")) {
		t.Fatalf("expected split rpath flag on macOS, got %v", mac)
	}
}
