package model

import (
	"fmt"
	"strings"

	"github.com/donaldfilimon/ovo/internal/base"
)

type ArchType int32

const (
	ArchNative ArchType = iota
	ArchX86
	ArchX86_64
	ArchArm
	ArchAarch64
	ArchRiscv32
	ArchRiscv64
	ArchWasm32
	ArchWasm64
	ArchMips
	ArchMips64
	ArchPowerpc
	ArchPowerpc64
)

func (x ArchType) String() string {
	switch x {
	case ArchX86:
		return "x86"
	case ArchX86_64:
		return "x86_64"
	case ArchArm:
		return "arm"
	case ArchAarch64:
		return "aarch64"
	case ArchRiscv32:
		return "riscv32"
	case ArchRiscv64:
		return "riscv64"
	case ArchWasm32:
		return "wasm32"
	case ArchWasm64:
		return "wasm64"
	case ArchMips:
		return "mips"
	case ArchMips64:
		return "mips64"
	case ArchPowerpc:
		return "powerpc"
	case ArchPowerpc64:
		return "powerpc64"
	case ArchNative:
		return "native"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}
func (x *ArchType) Set(in string) error {
	for _, it := range archTypes {
		if it.String() == strings.ToLower(in) {
			*x = it
			return nil
		}
	}
	return base.MakeUnexpectedValueError(x, in)
}

var archTypes = []ArchType{
	ArchX86, ArchX86_64, ArchArm, ArchAarch64, ArchRiscv32, ArchRiscv64,
	ArchWasm32, ArchWasm64, ArchMips, ArchMips64, ArchPowerpc, ArchPowerpc64, ArchNative,
}

func (x ArchType) MarshalText() ([]byte, error)  { return []byte(x.String()), nil }
func (x *ArchType) UnmarshalText(b []byte) error { return x.Set(string(b)) }

type OSType int32

const (
	OSLinux OSType = iota
	OSWindows
	OSMacos
	OSFreeBSD
	OSNetBSD
	OSOpenBSD
	OSIOS
	OSAndroid
	OSWasi
	OSEmscripten
	OSFreestanding
	OSNative
)

func (x OSType) String() string {
	switch x {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSMacos:
		return "macos"
	case OSFreeBSD:
		return "freebsd"
	case OSNetBSD:
		return "netbsd"
	case OSOpenBSD:
		return "openbsd"
	case OSIOS:
		return "ios"
	case OSAndroid:
		return "android"
	case OSWasi:
		return "wasi"
	case OSEmscripten:
		return "emscripten"
	case OSFreestanding:
		return "freestanding"
	case OSNative:
		return "native"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}
func (x *OSType) Set(in string) error {
	for _, it := range osTypes {
		if it.String() == strings.ToLower(in) {
			*x = it
			return nil
		}
	}
	return base.MakeUnexpectedValueError(x, in)
}

var osTypes = []OSType{
	OSLinux, OSWindows, OSMacos, OSFreeBSD, OSNetBSD, OSOpenBSD,
	OSIOS, OSAndroid, OSWasi, OSEmscripten, OSFreestanding, OSNative,
}

func (x OSType) MarshalText() ([]byte, error)  { return []byte(x.String()), nil }
func (x *OSType) UnmarshalText(b []byte) error { return x.Set(string(b)) }

// Target is the cross-compilation record every Compiler backend decorates
// its flags from, analogous in spirit to ppb's CompilerAlias
// (compile/Compiler.go) but carrying finer-grained arch/os/abi/cpu/
// features rather than a named alias string.
type Target struct {
	Arch     ArchType
	OS       OSType
	ABI      string
	CPU      string
	Features []string
}

// Triple renders the GNU triple `<arch>-<os>-<abi>` a compiler driver
// expects, defaulting ABI to "gnu" when unset.
func (t Target) Triple() string {
	abi := t.ABI
	if abi == "" {
		abi = "gnu"
	}
	return fmt.Sprintf("%s-%s-%s", t.Arch.String(), t.OS.String(), abi)
}

func (t Target) IsWasm() bool {
	return t.Arch == ArchWasm32 || t.Arch == ArchWasm64
}
