package airline

import "fmt"

// Graph holds the directed adjacency of permitted direct flights. Neighbor
// lists keep insertion order so route queries are deterministic, and duplicate
// edges are kept as-is; they are harmless to the search.
type Graph struct {
	directory *Directory
	adjacency map[string][]*Airport
}

// NewGraph creates an empty flight graph over the given directory. Every edge
// endpoint must resolve through the directory.
func NewGraph(directory *Directory) *Graph {
	return &Graph{
		directory: directory,
		adjacency: make(map[string][]*Airport),
	}
}

// AddEdge appends a directed edge from one airport code to another. Either
// endpoint missing from the directory fails with ErrUnknownAirport; callers
// are expected to skip the edge and continue loading.
func (g *Graph) AddEdge(fromCode, toCode string) error {
	from, err := g.directory.Get(fromCode)
	if err != nil {
		return fmt.Errorf("edge %s->%s: %w", fromCode, toCode, ErrUnknownAirport)
	}
	to, err := g.directory.Get(toCode)
	if err != nil {
		return fmt.Errorf("edge %s->%s: %w", fromCode, toCode, ErrUnknownAirport)
	}
	g.adjacency[from.Code] = append(g.adjacency[from.Code], to)
	return nil
}

// Neighbors returns the airports directly reachable from the given airport,
// in insertion order. The result is never nil-vs-empty significant: an
// airport with no outgoing flights yields an empty slice.
func (g *Graph) Neighbors(a *Airport) []*Airport {
	return g.adjacency[a.Code]
}

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, adj := range g.adjacency {
		n += len(adj)
	}
	return n
}
