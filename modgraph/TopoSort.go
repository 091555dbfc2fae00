package modgraph

import (
	queue "gopkg.in/eapache/queue.v1"
)

// ErrCyclicDependency is returned by Sort when the graph contains a cycle,
// "If the sort terminates with fewer nodes than the
// graph contains, the graph has a cycle: fail with cyclic_dependency."
type ErrCyclicDependency struct {
	Cycle []string
}

func (e ErrCyclicDependency) Error() string {
	return "modgraph: cyclic module dependency: " + joinArrow(e.Cycle)
}

func joinArrow(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " -> "
		}
		out += n
	}
	return out
}

// Sort runs Kahn's algorithm over a working copy of in-degrees, dequeuing
// front-to-back so independent nodes keep their insertion order: deterministic
// output given a deterministic input. The ready queue uses
// gopkg.in/eapache/queue.v1's ring buffer rather than a hand-rolled slice,
// consistent with ppb's preference for reaching for a small library
// container over reimplementing one.
//
// Edges run U -> V meaning "U imports V", so V must precede U in the
// returned order; Sort therefore walks the reverse adjacency (dependents)
// once in-degree (number of unresolved imports) reaches zero.
func (g *Graph) Sort() ([]NodeID, error) {
	inDegree := make(map[NodeID]int, len(g.insertions))
	dependents := make(map[NodeID][]NodeID, len(g.insertions))

	for _, id := range g.insertions {
		inDegree[id] = len(g.nodes[id].edges)
		for _, dep := range g.nodes[id].edges {
			dependents[dep] = append(dependents[dep], id)
		}
	}

	ready := queue.New()
	for _, id := range g.insertions {
		if inDegree[id] == 0 {
			ready.Add(id)
		}
	}

	order := make([]NodeID, 0, len(g.insertions))
	for ready.Length() > 0 {
		id := ready.Remove().(NodeID)
		order = append(order, id)
		for _, dependent := range dependents[id] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready.Add(dependent)
			}
		}
	}

	if len(order) < len(g.insertions) {
		return nil, ErrCyclicDependency{Cycle: g.DetectCycle()}
	}
	return order, nil
}

// DetectCycle returns the actual cycle path as a sequence of module names
// (or source paths, for units with no provides) using three-colour DFS:
// unvisited / visiting / visited. Re-entering a visiting node means the
// current path from that node to the repeated node is the cycle.
func (g *Graph) DetectCycle() []string {
	const (
		white = 0 // unvisited
		gray  = 1 // visiting
		black = 2 // visited
	)
	color := make(map[NodeID]int, len(g.insertions))
	var path []NodeID
	var cycle []NodeID

	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		color[id] = gray
		path = append(path, id)
		for _, dep := range g.nodes[id].edges {
			switch color[dep] {
			case white:
				if visit(dep) {
					return true
				}
			case gray:
				// found the repeated node: slice path from its first
				// occurrence through the current node.
				for i, p := range path {
					if p == dep {
						cycle = append(append([]NodeID{}, path[i:]...), dep)
						return true
					}
				}
			}
		}
		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, id := range g.insertions {
		if color[id] == white {
			if visit(id) {
				break
			}
		}
	}

	names := make([]string, len(cycle))
	for i, id := range cycle {
		unit := g.nodes[id].unit
		if unit.Provides != "" {
			names[i] = unit.Provides
		} else {
			names[i] = unit.SourcePath
		}
	}
	return names
}
