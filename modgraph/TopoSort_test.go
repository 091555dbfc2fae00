package modgraph

import (
	"testing"

	"github.com/donaldfilimon/ovo/model"
)

func unitProviding(source, provides string, deps ...string) model.ModuleUnit {
	u := model.ModuleUnit{SourcePath: source, Provides: provides, IsInterface: provides != ""}
	for _, d := range deps {
		u.Dependencies = append(u.Dependencies, model.ModuleDependency{Name: d, Kind: model.ModuleImport})
	}
	return u
}

func TestSortOrdersDependenciesFirst(t *testing.T) {
	g := New()
	g.AddUnit(unitProviding("app.cpp", "app", "math.core"))
	g.AddUnit(unitProviding("math.cppm", "math.core", "math.detail"))
	g.AddUnit(unitProviding("detail.cppm", "math.detail"))

	if unresolved := g.Build(); len(unresolved) != 0 {
		t.Fatalf("unexpected unresolved deps: %+v", unresolved)
	}

	order, err := g.Sort()
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if len(order) != 3 {
		t.Fatalf("got %d nodes, want 3", len(order))
	}

	pos := make(map[string]int, 3)
	for i, id := range order {
		pos[g.Unit(id).SourcePath] = i
	}
	if pos["detail.cppm"] > pos["math.cppm"] {
		t.Errorf("math.detail must precede math.core")
	}
	if pos["math.cppm"] > pos["app.cpp"] {
		t.Errorf("math.core must precede app")
	}
}

func TestSortDeterministicTieBreak(t *testing.T) {
	g := New()
	g.AddUnit(unitProviding("a.cppm", "a"))
	g.AddUnit(unitProviding("b.cppm", "b"))
	g.AddUnit(unitProviding("c.cppm", "c"))
	g.Build()

	order, err := g.Sort()
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	want := []string{"a.cppm", "b.cppm", "c.cppm"}
	for i, id := range order {
		if got := g.Unit(id).SourcePath; got != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, got, want[i])
		}
	}
}

func TestSortDetectsCycle(t *testing.T) {
	g := New()
	g.AddUnit(unitProviding("a.cppm", "a", "b"))
	g.AddUnit(unitProviding("b.cppm", "b", "a"))
	g.Build()

	_, err := g.Sort()
	if err == nil {
		t.Fatalf("expected cyclic_dependency error")
	}
	cycleErr, ok := err.(ErrCyclicDependency)
	if !ok {
		t.Fatalf("error type = %T, want ErrCyclicDependency", err)
	}
	if len(cycleErr.Cycle) == 0 {
		t.Fatalf("expected non-empty cycle path")
	}
}

func TestBuildIgnoresStdAndHeaderDeps(t *testing.T) {
	g := New()
	u := unitProviding("app.cpp", "app")
	u.Dependencies = append(u.Dependencies,
		model.ModuleDependency{Name: "std.core", Kind: model.ModuleImport, IsStd: true},
		model.ModuleDependency{Name: "vector", Kind: model.HeaderUnit},
	)
	g.AddUnit(u)

	unresolved := g.Build()
	if len(unresolved) != 0 {
		t.Fatalf("std/header deps must not be reported unresolved, got %+v", unresolved)
	}
}

func TestBuildReportsUnresolvedDependency(t *testing.T) {
	g := New()
	g.AddUnit(unitProviding("app.cpp", "app", "missing.module"))

	unresolved := g.Build()
	if len(unresolved) != 1 || unresolved[0].Name != "missing.module" {
		t.Fatalf("expected one unresolved dependency for missing.module, got %+v", unresolved)
	}
}
