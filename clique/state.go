// Package clique enumerates maximal cliques of an undirected simple graph
// using pivoted Bron-Kerbosch search driven by a degeneracy ordering, with
// an optional recorder for the search tree.
package clique

import (
	"github.com/soniakeys/bits"

	"github.com/fjvxmap/gss-explorer/graph"
)

// Sentinel is the "not currently placed" value for pos. (The "no vertex"
// candidate_vertex recorded for an outer-call root is NoCandidate.)
const Sentinel graph.NI = -1

// Enumerator holds the scratch state shared across one run of MaximalCliques:
// the vl/pos enumeration arrays, the R stack, the running clique count, and
// (if enabled) a Recorder. All fields below are reused across outer vertices
// and recursive calls; nothing here allocates on the hot path beyond what a
// candidate loop's own bookkeeping needs.
type Enumerator struct {
	g     *graph.Graph
	order graph.Ordering

	vl  []graph.NI // shared vertex array, reused per outer vertex
	pos []graph.NI // pos[v] = index of v in vl, or Sentinel

	r []graph.NI // current clique under construction

	marked bits.Bits // scratch membership bits, sized VertexCount

	count int

	rec *Recorder
}

// NewEnumerator builds an Enumerator for g using a freshly computed
// degeneracy ordering. Passing a non-nil Recorder enables search-tree
// recording (see Recorder).
func NewEnumerator(g *graph.Graph, rec *Recorder) *Enumerator {
	n := g.VertexCount()
	pos := make([]graph.NI, n)
	for i := range pos {
		pos[i] = Sentinel
	}
	return &Enumerator{
		g:      g,
		order:  graph.Degeneracy(g),
		vl:     make([]graph.NI, 0, n),
		pos:    pos,
		marked: bits.New(n),
		rec:    rec,
	}
}

// Count returns the number of maximal cliques counted by the most recent
// call to Run.
func (e *Enumerator) Count() int { return e.count }

// swapVL exchanges the vertices at vl positions i and j and keeps pos in
// sync with the new positions.
func (e *Enumerator) swapVL(i, j int) {
	e.vl[i], e.vl[j] = e.vl[j], e.vl[i]
	e.pos[e.vl[i]] = graph.NI(i)
	e.pos[e.vl[j]] = graph.NI(j)
}
