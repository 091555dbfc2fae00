// Package model holds the closed data types shared by every compiler
// backend and the module graph: language standards, optimization levels,
// targets, diagnostics and the compile/link option contracts. The closed-enum
// shape (String/Set/MarshalText/UnmarshalText) is ported from ppb's
// compile/Enums.go (ArchType, CppStdType), dropping AutoComplete and the
// binary Serialize archive ppb's save-game style cache does not need
// here (state is persisted as JSON, see bmicache).
package model

import (
	"strings"

	"github.com/donaldfilimon/ovo/internal/base"
)

type CStd int32

const (
	C89 CStd = iota
	C99
	C11
	C17
	C23
)

func CStds() []CStd { return []CStd{C89, C99, C11, C17, C23} }

func (x CStd) String() string {
	switch x {
	case C89:
		return "c89"
	case C99:
		return "c99"
	case C11:
		return "c11"
	case C17:
		return "c17"
	case C23:
		return "c23"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}
func (x *CStd) Set(in string) error {
	switch strings.ToLower(in) {
	case C89.String():
		*x = C89
	case C99.String():
		*x = C99
	case C11.String():
		*x = C11
	case C17.String():
		*x = C17
	case C23.String():
		*x = C23
	default:
		return base.MakeUnexpectedValueError(x, in)
	}
	return nil
}
func (x CStd) MarshalText() ([]byte, error)  { return []byte(x.String()), nil }
func (x *CStd) UnmarshalText(b []byte) error { return x.Set(string(b)) }

// GnuFlag returns the -std= value understood by GCC and Clang.
func (x CStd) GnuFlag() string {
	switch x {
	case C89:
		return "-std=c89"
	case C99:
		return "-std=c99"
	case C11:
		return "-std=c11"
	case C17:
		return "-std=c17"
	case C23:
		return "-std=c23"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}

// MsvcFlag returns the /std: value understood by cl.exe, falling back to the
// closest standard MSVC actually implements (it has no discrete C89/C99 mode).
func (x CStd) MsvcFlag() string {
	switch x {
	case C89, C99:
		return "/TC"
	case C11, C17:
		return "/std:c17"
	case C23:
		return "/std:clatest"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}

type CppStd int32

const (
	Cpp11 CppStd = iota
	Cpp14
	Cpp17
	Cpp20
	Cpp23
	Cpp26
)

func CppStds() []CppStd { return []CppStd{Cpp11, Cpp14, Cpp17, Cpp20, Cpp23, Cpp26} }

func (x CppStd) String() string {
	switch x {
	case Cpp11:
		return "cpp11"
	case Cpp14:
		return "cpp14"
	case Cpp17:
		return "cpp17"
	case Cpp20:
		return "cpp20"
	case Cpp23:
		return "cpp23"
	case Cpp26:
		return "cpp26"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}
func (x *CppStd) Set(in string) error {
	switch strings.ToLower(in) {
	case Cpp11.String():
		*x = Cpp11
	case Cpp14.String():
		*x = Cpp14
	case Cpp17.String():
		*x = Cpp17
	case Cpp20.String():
		*x = Cpp20
	case Cpp23.String():
		*x = Cpp23
	case Cpp26.String():
		*x = Cpp26
	default:
		return base.MakeUnexpectedValueError(x, in)
	}
	return nil
}
func (x CppStd) MarshalText() ([]byte, error)  { return []byte(x.String()), nil }
func (x *CppStd) UnmarshalText(b []byte) error { return x.Set(string(b)) }

// SupportsModules reports whether the dialect has C++20 module support
// ("C++ additionally exposes supports_modules (true for
// cpp20 and later)").
func (x CppStd) SupportsModules() bool { return x >= Cpp20 }

func (x CppStd) GnuFlag() string {
	switch x {
	case Cpp11:
		return "-std=c++11"
	case Cpp14:
		return "-std=c++14"
	case Cpp17:
		return "-std=c++17"
	case Cpp20:
		return "-std=c++20"
	case Cpp23:
		return "-std=c++23"
	case Cpp26:
		return "-std=c++26"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}
func (x CppStd) MsvcFlag() string {
	switch x {
	case Cpp11, Cpp14:
		return "/std:c++14"
	case Cpp17:
		return "/std:c++17"
	case Cpp20:
		return "/std:c++20"
	case Cpp23, Cpp26:
		return "/std:c++latest"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}

type OptimizationLevel int32

const (
	OptNone OptimizationLevel = iota
	OptDebug
	OptSize
	OptSizeAggressive
	OptSpeed
	OptAggressive
	OptFastMath
)

func OptimizationLevels() []OptimizationLevel {
	return []OptimizationLevel{OptNone, OptDebug, OptSize, OptSizeAggressive, OptSpeed, OptAggressive, OptFastMath}
}

func (x OptimizationLevel) String() string {
	switch x {
	case OptNone:
		return "none"
	case OptDebug:
		return "debug"
	case OptSize:
		return "size"
	case OptSizeAggressive:
		return "size_aggressive"
	case OptSpeed:
		return "speed"
	case OptAggressive:
		return "aggressive"
	case OptFastMath:
		return "fast_math"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}
func (x *OptimizationLevel) Set(in string) error {
	switch strings.ToLower(in) {
	case OptNone.String():
		*x = OptNone
	case OptDebug.String():
		*x = OptDebug
	case OptSize.String():
		*x = OptSize
	case OptSizeAggressive.String():
		*x = OptSizeAggressive
	case OptSpeed.String():
		*x = OptSpeed
	case OptAggressive.String():
		*x = OptAggressive
	case OptFastMath.String():
		*x = OptFastMath
	default:
		return base.MakeUnexpectedValueError(x, in)
	}
	return nil
}
func (x OptimizationLevel) MarshalText() ([]byte, error)  { return []byte(x.String()), nil }
func (x *OptimizationLevel) UnmarshalText(b []byte) error { return x.Set(string(b)) }

func (x OptimizationLevel) GnuFlags() []string {
	switch x {
	case OptNone:
		return []string{"-O0"}
	case OptDebug:
		return []string{"-Og"}
	case OptSize:
		return []string{"-Os"}
	case OptSizeAggressive:
		return []string{"-Oz"}
	case OptSpeed:
		return []string{"-O2"}
	case OptAggressive:
		return []string{"-O3"}
	case OptFastMath:
		return []string{"-O3", "-ffast-math"}
	default:
		base.UnexpectedValuePanic(x)
		return nil
	}
}
func (x OptimizationLevel) MsvcFlags() []string {
	switch x {
	case OptNone:
		return []string{"/Od"}
	case OptDebug:
		return []string{"/Od", "/Zi"}
	case OptSize:
		return []string{"/O1"}
	case OptSizeAggressive:
		return []string{"/O1", "/Os"}
	case OptSpeed:
		return []string{"/O2"}
	case OptAggressive:
		return []string{"/Ox"}
	case OptFastMath:
		return []string{"/Ox", "/fp:fast"}
	default:
		base.UnexpectedValuePanic(x)
		return nil
	}
}
