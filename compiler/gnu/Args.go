// Package gnu implements the GCC-like flag-translation dialect shared by the
// gcc, clang, zigcc and emscripten backends. Grounded on ppb's
// internal/hal/linux/GCC.go Decorate method, which builds up a Facet's
// CompilerOptions/LinkerOptions one flag at a time from a Unit's
// configuration; this package does the same thing directly against
// model.CompileOptions/LinkOptions instead of a Facet.
package gnu

import (
	"fmt"
	"path/filepath"

	"github.com/donaldfilimon/ovo/model"
)

// Dialect selects the handful of per-backend flag variations that differ
// between gcc and clang, such as debug-info and LTO spellings.
type Dialect int32

const (
	DialectGCC Dialect = iota
	DialectClang
)

// CompileArgs translates CompileOptions into a GCC-like argv, following the
// abstract-to-GCC-like column of flag-translation
// table verbatim.
func CompileArgs(opts model.CompileOptions, dialect Dialect, isCpp bool) []string {
	var args []string
	args = append(args, "-c")

	if isCpp {
		args = append(args, opts.CppStandard.GnuFlag())
	} else {
		args = append(args, opts.CStandard.GnuFlag())
	}

	args = append(args, opts.Optimization.GnuFlags()...)

	if opts.DebugInfo {
		if dialect == DialectClang {
			args = append(args, "-glldb")
		} else {
			args = append(args, "-g")
		}
	}
	if opts.PIC {
		args = append(args, "-fPIC")
	}
	if opts.LTO {
		if dialect == DialectClang {
			args = append(args, "-flto=thin")
		} else {
			args = append(args, "-flto")
		}
	}

	for _, dir := range opts.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for _, dir := range opts.SystemIncludeDirs {
		args = append(args, "-isystem", dir)
	}
	for _, def := range opts.Defines {
		args = append(args, "-D"+def)
	}
	args = append(args, opts.Warnings...)
	if opts.WarningsAsErrors {
		args = append(args, "-Werror")
	}

	if opts.SanitizeAddress {
		args = append(args, "-fsanitize=address", "-fno-omit-frame-pointer")
	}
	if opts.SanitizeThread {
		args = append(args, "-fsanitize=thread")
	}
	if opts.SanitizeUndefined {
		args = append(args, "-fsanitize=undefined")
	}

	if triple := opts.Target.Triple(); opts.Target.Arch != model.ArchNative {
		if dialect == DialectClang {
			args = append(args, "-target", triple)
		} else {
			args = append(args, "--target="+triple)
		}
	}
	if opts.Target.CPU != "" {
		args = append(args, "-mcpu="+opts.Target.CPU)
	}

	if opts.EnableModules {
		args = append(args, moduleFlags(opts, dialect)...)
	}

	args = append(args, opts.ExtraFlags...)
	args = append(args, opts.Sources...)

	if opts.Output != "" {
		args = append(args, "-o", opts.Output)
	}
	return args
}

// moduleFlags translates enable_modules/module_cache_dir/prebuilt_modules
// into clang's module-cache and explicit-BMI flags. The facade accumulates
// prebuilt BMIs and passes them back in as options for every subsequent
// compile in schedule order.
func moduleFlags(opts model.CompileOptions, dialect Dialect) []string {
	if dialect != DialectClang {
		// gcc's module support (-fmodules-ts) predates and differs from the
		// standardized C++20 model; ovo targets clang/zig-cc/MSVC for module
		// builds and leaves gcc module flags as a documented gap rather than
		// guessing at an unstable interface.
		return nil
	}
	var args []string
	args = append(args, "-fmodules", "-fimplicit-module-maps")
	if opts.ModuleCacheDir != "" {
		args = append(args, "-fmodules-cache-path="+opts.ModuleCacheDir)
	}
	for _, bmi := range opts.PrebuiltModules {
		args = append(args, "-fmodule-file="+bmi)
	}
	return args
}

// ModuleInterfaceArgs translates a compile_module_interface invocation:
// clang precompiles a module interface unit to a .pcm with
// -emit-module-interface / --precompile.
func ModuleInterfaceArgs(sourcePath, outputBmi string, opts model.CompileOptions) []string {
	args := []string{"-std=" + trimStdPrefix(opts.CppStandard.GnuFlag()), "--precompile"}
	args = append(args, moduleFlags(opts, DialectClang)...)
	for _, dir := range opts.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, sourcePath, "-o", outputBmi)
	return args
}

func trimStdPrefix(flag string) string {
	const prefix = "-std="
	if len(flag) > len(prefix) {
		return flag[len(prefix):]
	}
	return flag
}

// LinkArgs translates LinkOptions into a GCC-like linker argv, following
// link-side table.
func LinkArgs(opts model.LinkOptions, isMacOS bool) []string {
	var args []string
	args = append(args, opts.Objects...)

	switch opts.OutputKind {
	case model.OutputSharedLib:
		args = append(args, "-shared")
		if !isMacOS && opts.Output != "" {
			args = append(args, "-Wl,-soname,"+filepath.Base(opts.Output))
		}
	}

	for _, dir := range opts.LibraryDirs {
		args = append(args, "-L"+dir)
	}
	for _, lib := range opts.Libraries {
		args = append(args, "-l"+lib)
	}
	if isMacOS {
		for _, fw := range opts.Frameworks {
			args = append(args, "-framework", fw)
		}
	}

	if opts.LinkerScript != "" {
		args = append(args, fmt.Sprintf("-Wl,-T,%s", opts.LinkerScript))
	}
	if opts.Strip {
		args = append(args, "-Wl,-s")
	}
	if opts.ExportDynamic {
		args = append(args, "-rdynamic")
	}
	if opts.Rpath != "" {
		if isMacOS {
			args = append(args, "-Wl,-rpath", opts.Rpath)
		} else {
			args = append(args, "-Wl,-rpath,"+opts.Rpath)
		}
	}
	if opts.AllowUndefined {
		if isMacOS {
			args = append(args, "-undefined", "dynamic_lookup")
		} else {
			args = append(args, "-Wl,--allow-shlib-undefined")
		}
	}
	if opts.LTO {
		args = append(args, "-flto")
	}

	args = append(args, opts.ExtraFlags...)

	if opts.Output != "" {
		args = append(args, "-o", opts.Output)
	}
	return args
}

// ArchiverArgs builds the argv for `ar rcs <output> <objects...>` used when
// OutputKind is a static library ("the backend
// substitutes an archiver; no linker flags from the main compiler line
// apply").
func ArchiverArgs(opts model.LinkOptions) []string {
	args := []string{"rcs", opts.Output}
	args = append(args, opts.Objects...)
	return args
}
