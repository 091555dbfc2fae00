package model

import "strings"

type Language int32

const (
	LangUnknown Language = iota
	LangC
	LangCpp
	LangCppModuleInterface
	LangAssembly
	LangObjectFile
)

func (x Language) String() string {
	switch x {
	case LangC:
		return "c"
	case LangCpp:
		return "cpp"
	case LangCppModuleInterface:
		return "cpp_module_interface"
	case LangAssembly:
		return "assembly"
	case LangObjectFile:
		return "object"
	default:
		return "unknown"
	}
}

// moduleInterfaceExtensions are the extensions that determine whether a
// source is a module interface unit: .cppm, .ixx, .mpp.
var moduleInterfaceExtensions = map[string]bool{
	".cppm": true,
	".ixx":  true,
	".mpp":  true,
}

var extensionLanguages = map[string]Language{
	".c":     LangC,
	".C":     LangCpp, // gcc's own convention: a capital-C extension always means C++, never C
	".h":     LangC,
	".cc":    LangCpp,
	".cpp":   LangCpp,
	".cxx":   LangCpp,
	".c++":   LangCpp,
	".hh":    LangCpp,
	".hpp":   LangCpp,
	".hxx":   LangCpp,
	".inl":   LangCpp,
	".cppm":  LangCppModuleInterface,
	".ixx":   LangCppModuleInterface,
	".mpp":   LangCppModuleInterface,
	".s":     LangAssembly,
	".asm":   LangAssembly,
	".o":     LangObjectFile,
	".obj":   LangObjectFile,
}

// ClassifyLanguage derives a Language from a filename's extension, per
// "static mapping" rule.
func ClassifyLanguage(filename string) Language {
	if lang, ok := classifyExt(extOf(filename)); ok {
		return lang
	}
	return LangUnknown
}

// IsModuleInterface reports whether filename's extension marks it as a C++
// module interface unit (.cppm, .ixx, .mpp).
func IsModuleInterface(filename string) bool {
	ext := extOf(filename)
	if moduleInterfaceExtensions[ext] {
		return true
	}
	return moduleInterfaceExtensions[strings.ToLower(ext)]
}

// UsesCppDriver reports whether a source set requires the C++ compiler
// driver rather than the C one: true if any source has a C++ extension
// (".cpp/.cxx/.cc/.C/.hpp/.cppm/.ixx/.mpp"). Linking
// uses the C++ driver to obtain the C++ runtime unless producing a static
// archive , which callers check separately.
func UsesCppDriver(sources []string) bool {
	for _, s := range sources {
		switch ClassifyLanguage(s) {
		case LangCpp, LangCppModuleInterface:
			return true
		}
	}
	return false
}

// extOf returns filename's extension, preserving case: gcc's own driver
// treats ".C" as C++ and ".c" as C, so lowercasing here would silently
// collapse that distinction. A raw-case lookup is tried first; anything not
// found (the overwhelming majority of sources, which aren't all-caps) falls
// back to a lowercased lookup so ".CPP", ".Hpp", and the like still resolve.
func extOf(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return filename[i:]
}

func classifyExt(ext string) (Language, bool) {
	if lang, ok := extensionLanguages[ext]; ok {
		return lang, true
	}
	lang, ok := extensionLanguages[strings.ToLower(ext)]
	return lang, ok
}
