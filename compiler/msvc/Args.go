// Package msvc implements the MSVC backend, grounded on ppb's
// internal/hal/windows/MSVC.go (MsvcCompiler,
// MsvcProductInstall, vswhere.exe probing), generalized from ppb's
// Unit/Facet decoration model to ovo's standalone CompileOptions/LinkOptions
// contract. MSVC is the one backend with its own "/"-prefixed flag dialect
// , so unlike gcc/clang/zigcc/emscripten this package
// does not share compiler/gnu.
package msvc

import (
	"fmt"

	"github.com/donaldfilimon/ovo/model"
)

// CompileArgs translates CompileOptions into cl.exe's argv, following the
// abstract-to-MSVC column of flag-translation table.
func CompileArgs(opts model.CompileOptions, isCpp bool) []string {
	args := []string{"/nologo", "/c"}
	if isCpp {
		args = append(args, "/EHsc")
	}

	if isCpp {
		args = append(args, opts.CppStandard.MsvcFlag())
	} else {
		args = append(args, opts.CStandard.MsvcFlag())
	}

	args = append(args, opts.Optimization.MsvcFlags()...)

	if opts.DebugInfo {
		args = append(args, "/Zi")
	}
	// PIC has no MSVC equivalent: Windows PE images are always position
	// independent when ASLR-enabled, which /DYNAMICBASE (link-side) governs.
	if opts.LTO {
		args = append(args, "/GL")
	}

	for _, dir := range opts.IncludeDirs {
		args = append(args, "/I"+dir)
	}
	for _, dir := range opts.SystemIncludeDirs {
		args = append(args, "/external:I", dir, "/external:W0")
	}
	for _, def := range opts.Defines {
		args = append(args, "/D"+def)
	}
	args = append(args, opts.Warnings...)
	if opts.WarningsAsErrors {
		args = append(args, "/WX")
	}

	if opts.SanitizeAddress {
		args = append(args, "/fsanitize=address")
	}
	// MSVC has no thread/undefined-behavior sanitizer; those options are
	// silently unsupported here rather than failing the build.

	if opts.EnableModules {
		args = append(args, moduleFlags(opts)...)
	}

	args = append(args, opts.ExtraFlags...)
	args = append(args, opts.Sources...)

	if opts.Output != "" {
		args = append(args, "/Fo"+opts.Output)
	}
	return args
}

// moduleFlags translates enable_modules/module_cache_dir/prebuilt_modules
// into cl.exe's /reference flags (prebuilt BMIs are fed
// back as options for dependent compiles), mirroring ppb's
// PrecompiledHeader PCH_HEADERUNIT case ("/headerUnit", "/reference").
func moduleFlags(opts model.CompileOptions) []string {
	var args []string
	args = append(args, "/experimental:module", "/stdIfcDir", "$(VCToolsInstallDir)modules")
	if opts.ModuleCacheDir != "" {
		args = append(args, "/ifcSearchDir", opts.ModuleCacheDir)
	}
	for _, bmi := range opts.PrebuiltModules {
		args = append(args, "/reference", bmi)
	}
	return args
}

// ModuleInterfaceArgs translates a module-interface compile invocation into
// cl.exe's /interface /ifcOutput form, mirroring ppb's own /headerUnit
// /ifcOutput pairing for header units.
func ModuleInterfaceArgs(sourcePath, outputBmi string, opts model.CompileOptions) []string {
	args := []string{"/nologo", "/c", opts.CppStandard.MsvcFlag(), "/experimental:module", "/interface"}
	for _, dir := range opts.IncludeDirs {
		args = append(args, "/I"+dir)
	}
	args = append(args, "/ifcOutput", outputBmi, sourcePath, "/Fo"+objectPathFor(outputBmi))
	return args
}

func objectPathFor(bmiPath string) string {
	const ext = ".ifc"
	if len(bmiPath) > len(ext) && bmiPath[len(bmiPath)-len(ext):] == ext {
		return bmiPath[:len(bmiPath)-len(ext)] + ".obj"
	}
	return bmiPath + ".obj"
}

// LinkArgs translates LinkOptions into link.exe's argv.
func LinkArgs(opts model.LinkOptions) []string {
	args := []string{"/nologo"}
	args = append(args, opts.Objects...)

	switch opts.OutputKind {
	case model.OutputSharedLib:
		args = append(args, "/DLL")
	}

	for _, dir := range opts.LibraryDirs {
		args = append(args, "/LIBPATH:"+dir)
	}
	for _, lib := range opts.Libraries {
		args = append(args, lib+".lib")
	}
	// MSVC's linker has no framework concept; Frameworks is Apple-only and
	// silently ignored here.

	if opts.Strip {
		args = append(args, "/OPT:REF", "/OPT:ICF")
	} else {
		args = append(args, "/DEBUG")
	}
	if opts.ExportDynamic {
		// MSVC has no rdynamic equivalent: every symbol not explicitly
		// __declspec(dllexport)-ed stays hidden regardless of linker flags.
	}
	if opts.Rpath != "" {
		// MSVC has no rpath concept; DLL search order is governed by PATH and
		// manifest entries instead, outside this backend's scope.
	}
	if opts.AllowUndefined {
		args = append(args, "/FORCE:UNRESOLVED")
	}
	if opts.LTO {
		args = append(args, "/LTCG")
	}

	args = append(args, opts.ExtraFlags...)

	if opts.Output != "" {
		args = append(args, "/OUT:"+opts.Output)
	}
	return args
}

// ArchiverArgs builds the argv for `lib.exe /OUT:<output> <objects...>` used
// when OutputKind is a static library.
func ArchiverArgs(opts model.LinkOptions) []string {
	args := []string{"/nologo", fmt.Sprintf("/OUT:%s", opts.Output)}
	args = append(args, opts.Objects...)
	return args
}
