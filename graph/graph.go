// Package graph provides a minimal undirected simple graph representation
// tuned for clique enumeration: dense integer vertices, symmetric adjacency
// lists, and a degeneracy ordering.
package graph

// NI is a node index, used extensively as a slice index and as the element
// type of adjacency lists.
type NI int32

// AdjacencyList represents a graph as, for each node, a list of neighbors.
// A node's ID is its index in the outer slice.
type AdjacencyList [][]NI

// Graph is a simple undirected graph on vertices numbered 0..n-1.
//
// AdjacencyList is exported rather than wrapped behind accessors because the
// clique enumerator reorders entries within each neighbor list in place
// while it runs (see package clique); it needs direct slice access, not a
// copy.
type Graph struct {
	AdjacencyList
}

// New returns a graph with n vertices and no edges.
func New(n int) *Graph {
	return &Graph{AdjacencyList: make(AdjacencyList, n)}
}

// AddEdge adds the undirected edge {u,v}, appending v to u's list and u to
// v's list. The caller is responsible for not adding loops or duplicate
// edges; Graph does not check.
func (g *Graph) AddEdge(u, v NI) {
	g.AdjacencyList[u] = append(g.AdjacencyList[u], v)
	g.AdjacencyList[v] = append(g.AdjacencyList[v], u)
}

// Neighbors returns v's current neighbor list. During clique enumeration
// this list may be transiently reordered; its set of elements is always
// restored once enumeration completes.
func (g *Graph) Neighbors(v NI) []NI { return g.AdjacencyList[v] }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.AdjacencyList) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	m := 0
	for _, to := range g.AdjacencyList {
		m += len(to)
	}
	return m / 2
}

// Simple reports whether g has no loops and no parallel edges. On finding a
// problem it returns false and the offending vertex.
func (g *Graph) Simple() (ok bool, v NI) {
	for n, to := range g.AdjacencyList {
		m := map[NI]bool{}
		for _, x := range to {
			if NI(n) == x {
				return false, NI(n)
			}
			if m[x] {
				return false, NI(n)
			}
			m[x] = true
		}
	}
	return true, -1
}
