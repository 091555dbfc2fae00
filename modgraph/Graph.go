// Package modgraph builds the module dependency graph: an arena of
// ModuleUnit nodes addressed by NodeID rather than pointer, two
// name/source lookup indices, Kahn's-algorithm topological scheduling, and
// three-colour DFS cycle detection. The arena/NodeID shape follows ppb's
// own preference for owning handles over raw pointers across its action
// graph (action/ActionCache.go keys its cache by content fingerprint rather
// than pointer identity).
package modgraph

import (
	"fmt"

	"github.com/donaldfilimon/ovo/model"
)

// NodeID addresses a unit inside a Graph's arena. The zero value is never a
// valid node (nodes are 1-indexed) so a zero NodeID reliably means "absent".
type NodeID int32

const invalidNode NodeID = 0

type node struct {
	unit  model.ModuleUnit
	edges []NodeID // U -> V: U imports V, so V must be compiled first
}

// Graph exclusively owns its units and nodes for the duration of one build
// ("A ModuleGraph exclusively owns its units and nodes;
// the graph is constructed once per build, consumed by topological sort,
// then dropped").
type Graph struct {
	nodes      []node // index 0 unused, so NodeID(i) == nodes[i]
	byName     map[string]NodeID
	bySource   map[string]NodeID
	insertions []NodeID // preserves add order for deterministic tie-breaking
}

func New() *Graph {
	return &Graph{
		nodes:    make([]node, 1), // reserve index 0 as invalidNode
		byName:   make(map[string]NodeID),
		bySource: make(map[string]NodeID),
	}
}

// AddUnit inserts a unit into the arena and indexes it by source path and,
// if it provides a module, by name. Insertion order is preserved for the
// topological sort's deterministic tie-breaking .
func (g *Graph) AddUnit(unit model.ModuleUnit) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{unit: unit})
	g.bySource[unit.SourcePath] = id
	if unit.Provides != "" {
		g.byName[unit.Provides] = id
	}
	g.insertions = append(g.insertions, id)
	return id
}

func (g *Graph) Unit(id NodeID) model.ModuleUnit { return g.nodes[id].unit }

func (g *Graph) Len() int { return len(g.insertions) }

// NodeByName looks up a node by the module name it provides.
func (g *Graph) NodeByName(name string) (NodeID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// NodeBySource looks up a node by its source path.
func (g *Graph) NodeBySource(path string) (NodeID, bool) {
	id, ok := g.bySource[path]
	return id, ok
}

// Build materializes an edge from every unit U to each unit V such that U
// declares a dependency whose name matches V's provides. Standard-library
// and header-unit dependencies that don't resolve to an in-graph unit are
// ignored for edge construction — the toolchain's own module cache satisfies
// those . Unresolved non-std, non-header dependencies
// are returned as a list of (unit source, dependency name) pairs so the
// facade can flag them invariant.
func (g *Graph) Build() (unresolved []Unresolved) {
	for _, id := range g.insertions {
		unit := g.nodes[id].unit
		for i, dep := range unit.Dependencies {
			if dep.IsStd || dep.Kind == model.HeaderUnit {
				continue
			}
			depID, ok := g.byName[dep.Name]
			if !ok {
				unresolved = append(unresolved, Unresolved{Source: unit.SourcePath, Name: dep.Name})
				continue
			}
			g.nodes[id].edges = append(g.nodes[id].edges, depID)
			target := g.nodes[depID].unit
			unit.Dependencies[i].SourcePath = target.SourcePath
			unit.Dependencies[i].BmiPath = target.BmiPath
		}
	}
	return unresolved
}

// Unresolved names a declared module dependency that matches no unit's
// provides in the graph.
type Unresolved struct {
	Source string
	Name   string
}

func (u Unresolved) Error() string {
	return fmt.Sprintf("%s: unresolved module dependency %q", u.Source, u.Name)
}
