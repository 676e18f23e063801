package clique

import "github.com/fjvxmap/gss-explorer/graph"

// pDegree counts |N(u) ∩ P| by walking adj[u] from its start while pos
// stays inside [pBegin, eEnd); the P-prefix invariant guarantees the first
// out-of-range entry ends the run, making this linear in the count returned
// rather than in deg(u).
func (e *Enumerator) pDegree(u graph.NI, pBegin, eEnd int) int {
	adj := e.g.AdjacencyList[u]
	c := 0
	for _, w := range adj {
		p := e.pos[w]
		if int(p) < pBegin || int(p) >= eEnd {
			break
		}
		c++
	}
	return c
}

// choosePivot picks the vertex in vl[xBegin:eEnd) maximizing |N(u) ∩ P|.
func (e *Enumerator) choosePivot(xBegin, pBegin, eEnd int) graph.NI {
	best := e.vl[xBegin]
	bestDeg := e.pDegree(best, pBegin, eEnd)
	for i := xBegin + 1; i < eEnd; i++ {
		u := e.vl[i]
		d := e.pDegree(u, pBegin, eEnd)
		if d > bestDeg {
			bestDeg = d
			best = u
		}
	}
	return best
}

// candidates returns the branching candidates P \ N(pivot), and separately
// the pivot-pruned vertices N(pivot) ∩ P (used by the recorder's shadow
// exploration). Both slices are freshly allocated on each call.
func (e *Enumerator) candidates(pivot graph.NI, pBegin, eEnd int) (cands, pruned []graph.NI) {
	adj := e.g.AdjacencyList[pivot]
	pruned = pruned[:0]
	for _, w := range adj {
		p := e.pos[w]
		if int(p) < pBegin || int(p) >= eEnd {
			break
		}
		e.marked.SetBit(int(w), 1)
		pruned = append(pruned, w)
	}
	for i := pBegin; i < eEnd; i++ {
		v := e.vl[i]
		if e.marked.Bit(int(v)) == 0 {
			cands = append(cands, v)
		}
	}
	for _, w := range pruned {
		e.marked.SetBit(int(w), 0)
	}
	return cands, pruned
}

// markNeighbors marks every neighbor of c in e.marked and returns a function
// that clears those same bits again.
func (e *Enumerator) markNeighbors(c graph.NI) func() {
	adj := e.g.AdjacencyList[c]
	for _, w := range adj {
		e.marked.SetBit(int(w), 1)
	}
	return func() {
		for _, w := range adj {
			e.marked.SetBit(int(w), 0)
		}
	}
}

// restrictX partitions vl[xBegin:pBegin) in place, moving every vertex
// marked as a neighbor of the current candidate to the end of the range
// (adjacent to pBegin), and returns the start of that matched region -
// the new x_begin.
func (e *Enumerator) restrictX(xBegin, pBegin int) int {
	boundary := pBegin
	for j := pBegin - 1; j >= xBegin; j-- {
		u := e.vl[j]
		if e.marked.Bit(int(u)) == 1 {
			boundary--
			e.swapVL(j, boundary)
		}
	}
	return boundary
}

// restrictP partitions vl[pBegin:eEnd) in place, moving every vertex marked
// as a neighbor of the current candidate to the front of the range
// (adjacent to pBegin), and returns the end of that matched region - the
// new p_begin+num_p.
func (e *Enumerator) restrictP(pBegin, eEnd int) int {
	boundary := pBegin
	for j := pBegin; j < eEnd; j++ {
		u := e.vl[j]
		if e.marked.Bit(int(u)) == 1 {
			e.swapVL(j, boundary)
			boundary++
		}
	}
	return boundary
}

// reestablishPrefix partitions adj[u] in place so entries whose pos lies in
// [lo, hi) come first. If bounded, the scan stops at the first entry whose
// pos falls outside [lo, scanBound) - valid only when the caller has
// already established that invariant for [lo, scanBound). Without bounded,
// the entire list is scanned, which is only affordable when this is the
// first time the invariant is being established (outer init).
func reestablishPrefix(adj []graph.NI, pos []graph.NI, lo, hi, scanBound int, bounded bool) {
	front := 0
	for i := 0; i < len(adj); i++ {
		w := adj[i]
		p := int(pos[w])
		if bounded && (p < lo || p >= scanBound) {
			break
		}
		if p >= lo && p < hi {
			adj[front], adj[i] = adj[i], adj[front]
			front++
		}
	}
}

// search is the pivoted Bron-Kerbosch recursion over the shared vl array.
// parentID/candidateVertex/prunedByPivot/shadow are only meaningful when a
// Recorder is attached; they are zero-cost to thread through otherwise.
func (e *Enumerator) search(xBegin, pBegin, eEnd int, parentID, candidateVertex int, prunedByPivot, shadow bool) int {
	var nodeID int
	if e.rec != nil {
		nodeID = e.rec.enter(parentID, candidateVertex, e.r, pBegin-xBegin, eEnd-pBegin, prunedByPivot)
	}

	var total int
	if xBegin == pBegin && pBegin == eEnd {
		total = 1
		if !shadow {
			e.count++
		}
	} else {
		pivot := e.choosePivot(xBegin, pBegin, eEnd)
		cands, pruned := e.candidates(pivot, pBegin, eEnd)
		// keep a private copy of pruned for the shadow exploration that
		// runs after the main loop below.
		prunedCopy := append([]graph.NI(nil), pruned...)

		var consumed []graph.NI
		for _, c := range cands {
			unmark := e.markNeighbors(c)
			newXBegin := e.restrictX(xBegin, pBegin)
			newPEnd := e.restrictP(pBegin, eEnd)
			unmark()

			for i := newXBegin; i < newPEnd; i++ {
				reestablishPrefix(e.g.AdjacencyList[e.vl[i]], e.pos, pBegin, newPEnd, eEnd, true)
			}

			e.r = append(e.r, c)
			total += e.search(newXBegin, pBegin, newPEnd, nodeID, int(c), false, shadow)
			e.r = e.r[:len(e.r)-1]

			for i := newXBegin; i < newPEnd; i++ {
				adj := e.g.AdjacencyList[e.vl[i]]
				reestablishPrefix(adj, e.pos, pBegin, eEnd, eEnd, true)
				// c leaves P below; move it to the last slot of the prefix so
				// the remaining P entries stay contiguous at the front.
				end, at := 0, -1
				for ; end < len(adj); end++ {
					if p := int(e.pos[adj[end]]); p < pBegin || p >= eEnd {
						break
					}
					if adj[end] == c {
						at = end
					}
				}
				if at >= 0 {
					adj[at], adj[end-1] = adj[end-1], adj[at]
				}
			}

			cp := int(e.pos[c])
			e.swapVL(pBegin, cp)
			pBegin++
			consumed = append(consumed, c)
		}
		for i := len(consumed) - 1; i >= 0; i-- {
			c := consumed[i]
			pBegin--
			e.swapVL(pBegin, int(e.pos[c]))
		}

		if e.rec != nil {
			e.exploreShadowBranches(prunedCopy, xBegin, pBegin, eEnd, nodeID)
		}
	}

	if e.rec != nil {
		e.rec.leave(nodeID, total)
	}
	return total
}

// exploreShadowBranches recurses into every pivot-pruned candidate purely
// for the recorder's benefit, so the recorded tree shows the branches the
// pivot optimization skipped. It snapshots the affected window of
// vl/pos/adj, explores, and restores, discarding the returned count.
func (e *Enumerator) exploreShadowBranches(pruned []graph.NI, xBegin, pBegin, eEnd int, nodeID int) {
	for _, c := range pruned {
		vlSnap := append([]graph.NI(nil), e.vl[xBegin:eEnd]...)
		posSnap := make(map[graph.NI]graph.NI, len(vlSnap))
		adjSnap := make(map[graph.NI][]graph.NI, len(vlSnap))
		for _, v := range vlSnap {
			posSnap[v] = e.pos[v]
			adjSnap[v] = append([]graph.NI(nil), e.g.AdjacencyList[v]...)
		}

		unmark := e.markNeighbors(c)
		newXBegin := e.restrictX(xBegin, pBegin)
		newPEnd := e.restrictP(pBegin, eEnd)
		unmark()
		for i := newXBegin; i < newPEnd; i++ {
			reestablishPrefix(e.g.AdjacencyList[e.vl[i]], e.pos, pBegin, newPEnd, eEnd, true)
		}

		e.r = append(e.r, c)
		e.search(newXBegin, pBegin, newPEnd, nodeID, int(c), true, true)
		e.r = e.r[:len(e.r)-1]

		copy(e.vl[xBegin:eEnd], vlSnap)
		for v, p := range posSnap {
			e.pos[v] = p
		}
		for v, adj := range adjSnap {
			copy(e.g.AdjacencyList[v], adj)
		}
	}
}
