package clique

import "github.com/fjvxmap/gss-explorer/graph"

// Run enumerates all maximal cliques of the graph passed to NewEnumerator
// and returns their count. It is safe to call at most once per Enumerator;
// build a fresh Enumerator (NewEnumerator computes the degeneracy ordering
// each time) to run again.
func (e *Enumerator) Run() int {
	n := e.g.VertexCount()

	var rootID int
	if e.rec != nil {
		rootID = e.rec.newSyntheticRoot()
	}

	for i := 0; i < n; i++ {
		v := e.order.Order[i]
		eEnd := e.initForOuter(v)

		e.r = append(e.r, v)
		e.search(0, e.xSizeForOuter(v), eEnd, rootID, NoCandidate, false, false)
		e.r = e.r[:len(e.r)-1]

		e.teardownForOuter(eEnd)
	}
	if e.rec != nil {
		e.rec.leave(rootID, e.count)
	}
	return e.count
}

// xSizeForOuter is the number of v's neighbors with smaller rank, i.e. the
// size of X_v as built by initForOuter. It is recomputed rather than
// threaded through as a return value purely to keep Run's call to search
// readable; the cost is the same linear scan initForOuter already performs.
func (e *Enumerator) xSizeForOuter(v graph.NI) int {
	x := 0
	for _, u := range e.g.AdjacencyList[v] {
		if e.order.Rank[u] < e.order.Rank[v] {
			x++
		}
	}
	return x
}

// initForOuter partitions N(v) into X_v (earlier-ranked neighbors) and P_v
// (later-ranked neighbors), lays them into vl as [X_v | P_v], fills pos, and
// establishes the P-prefix convention on every adj[u] for u in vl: the
// prefix of adj[u] holds u's neighbors currently in P_v (pos in
// [len(X_v), e_end)), matching the invariant pivot selection and candidate
// construction rely on throughout the recursion. It returns e_end, the size
// of the window.
func (e *Enumerator) initForOuter(v graph.NI) int {
	e.vl = e.vl[:0]
	for _, u := range e.g.AdjacencyList[v] {
		if e.order.Rank[u] < e.order.Rank[v] {
			e.vl = append(e.vl, u)
		}
	}
	pBegin := len(e.vl)
	for _, u := range e.g.AdjacencyList[v] {
		if e.order.Rank[u] > e.order.Rank[v] {
			e.vl = append(e.vl, u)
		}
	}
	for i, u := range e.vl {
		e.pos[u] = graph.NI(i)
	}
	eEnd := len(e.vl)
	for _, u := range e.vl {
		reestablishPrefix(e.g.AdjacencyList[u], e.pos, pBegin, eEnd, 0, false)
	}
	return eEnd
}

// teardownForOuter clears the pos entries set by initForOuter.
func (e *Enumerator) teardownForOuter(eEnd int) {
	for _, u := range e.vl[:eEnd] {
		e.pos[u] = Sentinel
	}
}
