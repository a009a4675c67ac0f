package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// TargetGraph holds the targets of a script, keyed by name, in insertion order.
type TargetGraph struct {
	targets        map[InternedString]*Target
	order          []InternedString
	executionOrder []InternedString
}

// NewTargetGraph creates a new empty TargetGraph.
func NewTargetGraph() *TargetGraph {
	return &TargetGraph{
		targets: make(map[InternedString]*Target),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *TargetGraph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = t
	g.order = append(g.order, t.Name)
	return nil
}

// Get returns the named target.
func (g *TargetGraph) Get(name string) (*Target, bool) {
	t, ok := g.targets[NewInternedString(name)]
	return t, ok
}

// Len returns the number of targets.
func (g *TargetGraph) Len() int {
	return len(g.order)
}

// Validate checks that every dependency exists and that the graph has no cycles.
// It populates the execution order if successful.
func (g *TargetGraph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.targets))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target := g.targets[u]
		for _, dep := range target.Depends {
			if _, exists := g.targets[dep]; !exists {
				return zerr.With(ErrMissingDependency, "dependency", dep.String())
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	// Insertion order keeps the execution order stable across runs.
	for _, name := range g.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *TargetGraph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Targets returns an iterator over the targets in insertion order.
func (g *TargetGraph) Targets() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, name := range g.order {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}

// Walk returns an iterator that yields targets in execution order.
// It assumes Validate() has been called and returned nil.
func (g *TargetGraph) Walk() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}
