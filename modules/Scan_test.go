package modules

import (
	"testing"

	"github.com/donaldfilimon/ovo/model"
)

func TestScanInterfaceUnit(t *testing.T) {
	src := `// comment is skipped
export module math.core;

import <vector>;
import std.io;
export import :shapes;
import :detail;
`
	unit := Scan("math.cppm", src)

	if !unit.IsInterface {
		t.Fatalf("expected interface unit")
	}
	if unit.Provides != "math.core" {
		t.Fatalf("provides = %q, want math.core", unit.Provides)
	}
	if len(unit.Dependencies) != 4 {
		t.Fatalf("got %d dependencies, want 4: %+v", len(unit.Dependencies), unit.Dependencies)
	}

	if unit.Dependencies[0].Kind != model.HeaderUnit || unit.Dependencies[0].Name != "vector" {
		t.Errorf("dep 0 = %+v", unit.Dependencies[0])
	}
	if !unit.Dependencies[1].IsStd {
		t.Errorf("dep 1 should be flagged is_std: %+v", unit.Dependencies[1])
	}
	if unit.Dependencies[2].Kind != model.ExportImport {
		t.Errorf("dep 2 kind = %v, want export_import", unit.Dependencies[2].Kind)
	}
	if unit.Dependencies[3].Kind != model.PartitionImport {
		t.Errorf("dep 3 kind = %v, want partition_import", unit.Dependencies[3].Kind)
	}
}

func TestScanImplementationUnit(t *testing.T) {
	unit := Scan("math.cpp", "module math.core;\n")
	if unit.IsInterface {
		t.Fatalf("plain module declaration must not be an interface unit")
	}
	if unit.Provides != "math.core" {
		t.Fatalf("provides = %q, want math.core", unit.Provides)
	}
}

func TestScanPartitionImplementationUnit(t *testing.T) {
	unit := Scan("shapes.cpp", "module :shapes;\n")
	if !unit.IsPartition {
		t.Fatalf("expected partition unit")
	}
	if unit.Provides != "" {
		t.Fatalf("partition's parent/provides must be left unresolved by the lexical scanner, got %q", unit.Provides)
	}
}

func TestScanIgnoresCommentedDeclarations(t *testing.T) {
	unit := Scan("noop.cpp", "// export module fake;\n")
	if unit.IsInterface || unit.Provides != "" {
		t.Fatalf("commented declaration must be ignored, got %+v", unit)
	}
}
