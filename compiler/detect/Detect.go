// Package detect probes the host for available compiler backends and
// selects one matching a set of requirements ,
// grounded on ppb's per-platform Build/findToolchain probing
// (internal/hal/linux/GCC.go, internal/hal/linux/LLVM.go,
// internal/hal/windows/MSVC.go) generalized into one cross-platform entry
// point that tries all five backends concurrently instead of ppb's
// single-target-platform build graph.
package detect

import (
	"context"
	"regexp"
	"sync"

	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"

	"github.com/donaldfilimon/ovo/compiler"
	"github.com/donaldfilimon/ovo/compiler/clang"
	"github.com/donaldfilimon/ovo/compiler/emscripten"
	"github.com/donaldfilimon/ovo/compiler/gcc"
	"github.com/donaldfilimon/ovo/compiler/msvc"
	"github.com/donaldfilimon/ovo/compiler/zigcc"
	"github.com/donaldfilimon/ovo/internal/base"
	"github.com/donaldfilimon/ovo/model"
)

var LogDetect = base.NewLogCategory("Detect")

// Requirements narrows an auto-select call to backends capable of serving a
// particular build ("min C standard, min C++ standard,
// modules needed, cross-target supported").
type Requirements struct {
	MinCStandard   model.CStd
	MinCppStandard model.CppStd
	NeedsModules   bool
	CrossTarget    bool
	// MinVersion floors the detected toolchain's own version (e.g. "17.0.0"
	// for clang, "13.2.0" for gcc), compared after coercion into a
	// vMAJOR.MINOR.PATCH form. Empty means no version floor.
	MinVersion string
}

// reVersionCore pulls the leading MAJOR[.MINOR[.PATCH]] run out of a raw
// toolchain version string (clang/gcc/msvc/zig report plain dotted-decimal
// versions, never semver's "v" prefix).
var reVersionCore = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// coerceSemver turns a raw toolchain version string into the vMAJOR.MINOR.PATCH
// form golang.org/x/mod/semver expects, returning "" if no leading numeric
// run is found.
func coerceSemver(raw string) string {
	core := reVersionCore.FindString(raw)
	if core == "" {
		return ""
	}
	v := "v" + core
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// satisfies reports whether caps meets req via simple ">=" comparisons,
// used by the preference-list walk below.
func (req Requirements) satisfies(caps compiler.Capabilities) bool {
	if caps.MaxCStandard < req.MinCStandard {
		return false
	}
	if caps.MaxCppStandard < req.MinCppStandard {
		return false
	}
	if req.NeedsModules && !caps.CppModules {
		return false
	}
	if req.CrossTarget && !caps.CrossCompile {
		return false
	}
	if req.MinVersion != "" {
		have := coerceSemver(caps.Version)
		want := coerceSemver(req.MinVersion)
		if have == "" || want == "" || semver.Compare(have, want) < 0 {
			return false
		}
	}
	return true
}

// preferenceOrder is the fixed backend preference auto-select walks,
// favoring zig-cc's hermetic toolchain first and emscripten's narrower
// wasm target last.
var preferenceOrder = []compiler.Kind{
	compiler.KindZigCC,
	compiler.KindClang,
	compiler.KindGCC,
	compiler.KindMSVC,
	compiler.KindEmscripten,
}

// probeAll runs every backend's detector concurrently, since each backend
// probes disjoint PATH entries and spawns its own version check; grounded
// on the facade's worker-pool use of errgroup (ovo.WorkerPool).
func probeAll(ctx context.Context) map[compiler.Kind]compiler.Compiler {
	found := make(map[compiler.Kind]compiler.Compiler, len(preferenceOrder))
	var mu sync.Mutex
	set := func(kind compiler.Kind, c compiler.Compiler) {
		mu.Lock()
		defer mu.Unlock()
		found[kind] = c
	}
	var g errgroup.Group

	g.Go(func() error {
		if c, err := zigcc.Detect(ctx); err == nil {
			set(compiler.KindZigCC, c)
		} else {
			base.LogVerbose(LogDetect, "zig-cc not available: %s", err)
		}
		return nil
	})
	g.Go(func() error {
		if c, err := clang.Detect(ctx); err == nil {
			set(compiler.KindClang, c)
		} else {
			base.LogVerbose(LogDetect, "clang not available: %s", err)
		}
		return nil
	})
	g.Go(func() error {
		if c, err := gcc.Detect(ctx); err == nil {
			set(compiler.KindGCC, c)
		} else {
			base.LogVerbose(LogDetect, "gcc not available: %s", err)
		}
		return nil
	})
	g.Go(func() error {
		if c, err := msvc.Detect(ctx); err == nil {
			set(compiler.KindMSVC, c)
		} else {
			base.LogVerbose(LogDetect, "msvc not available: %s", err)
		}
		return nil
	})
	g.Go(func() error {
		if c, err := emscripten.Detect(ctx); err == nil {
			set(compiler.KindEmscripten, c)
		} else {
			base.LogVerbose(LogDetect, "emscripten not available: %s", err)
		}
		return nil
	})

	_ = g.Wait() // every probe swallows its own error; Wait never returns non-nil
	return found
}

// ProbeAll is the exported entry point for callers that want the full set
// of detected backends (e.g. to print a diagnostic toolchain report) rather
// than a single auto-selected one.
func ProbeAll(ctx context.Context) map[compiler.Kind]compiler.Compiler {
	return probeAll(ctx)
}

// Select probes all backends concurrently and returns the first one in
// preferenceOrder whose capabilities satisfy req .
func Select(ctx context.Context, req Requirements) (compiler.Compiler, error) {
	found := probeAll(ctx)
	for _, kind := range preferenceOrder {
		c, ok := found[kind]
		if !ok {
			continue
		}
		if req.satisfies(c.Capabilities()) {
			return c, nil
		}
	}
	return nil, errDetectionFailed{req}
}

type errDetectionFailed struct{ req Requirements }

func (e errDetectionFailed) Error() string {
	return "detect: no available backend satisfies the given requirements"
}
