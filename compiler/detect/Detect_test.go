package detect

import (
	"testing"

	"github.com/donaldfilimon/ovo/compiler"
	"github.com/donaldfilimon/ovo/model"
)

func TestRequirementsSatisfiesStandardFloor(t *testing.T) {
	req := Requirements{MinCppStandard: model.Cpp20}
	caps := compiler.Capabilities{MaxCppStandard: model.Cpp17}
	if req.satisfies(caps) {
		t.Fatalf("expected cpp17 backend to fail a cpp20 requirement")
	}

	caps.MaxCppStandard = model.Cpp23
	if !req.satisfies(caps) {
		t.Fatalf("expected cpp23 backend to satisfy a cpp20 requirement")
	}
}

func TestRequirementsSatisfiesModules(t *testing.T) {
	req := Requirements{NeedsModules: true}
	caps := compiler.Capabilities{CppModules: false, MaxCppStandard: model.Cpp23}
	if req.satisfies(caps) {
		t.Fatalf("expected backend without module support to fail")
	}
	caps.CppModules = true
	if !req.satisfies(caps) {
		t.Fatalf("expected backend with module support to pass")
	}
}

func TestRequirementsSatisfiesCrossCompile(t *testing.T) {
	req := Requirements{CrossTarget: true}
	caps := compiler.Capabilities{CrossCompile: false, MaxCppStandard: model.Cpp23}
	if req.satisfies(caps) {
		t.Fatalf("expected backend without cross-compile support to fail")
	}
}

func TestRequirementsSatisfiesVersionFloor(t *testing.T) {
	req := Requirements{MinVersion: "17.0.0"}
	caps := compiler.Capabilities{Version: "16.0.6"}
	if req.satisfies(caps) {
		t.Fatalf("expected clang 16.0.6 to fail a 17.0.0 version floor")
	}

	caps.Version = "17.0.2"
	if !req.satisfies(caps) {
		t.Fatalf("expected clang 17.0.2 to satisfy a 17.0.0 version floor")
	}

	caps.Version = "18"
	if !req.satisfies(caps) {
		t.Fatalf("expected a bare major version to satisfy a lower version floor")
	}

	caps.Version = ""
	if req.satisfies(caps) {
		t.Fatalf("expected an unparseable version to fail a version floor rather than pass by default")
	}
}

func TestCoerceSemver(t *testing.T) {
	cases := map[string]string{
		"17.0.2":                "v17.0.2",
		"13.2.0":                "v13.2.0",
		"19.1.0-rc1 (trunk)":    "v19.1.0",
		"Apple clang version 15": "v15",
		"":                       "",
	}
	for raw, want := range cases {
		if got := coerceSemver(raw); got != want {
			t.Fatalf("coerceSemver(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestPreferenceOrderStartsWithZig(t *testing.T) {
	if preferenceOrder[0] != compiler.KindZigCC {
		t.Fatalf("expected zig-cc first in preference order, got %v", preferenceOrder[0])
	}
	if preferenceOrder[len(preferenceOrder)-1] != compiler.KindEmscripten {
		t.Fatalf("expected emscripten last in preference order, got %v", preferenceOrder[len(preferenceOrder)-1])
	}
}
