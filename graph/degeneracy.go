package graph

// Ordering is a degeneracy ordering of a graph's vertices together with its
// inverse permutation: Order[i] is the vertex emitted at position i, and
// Rank[v] is the position at which v was emitted.
type Ordering struct {
	Order []NI
	Rank  []NI
}

// noNode is the handle sentinel meaning "no vertex", used for both ends of
// the bucket doubly linked lists.
const noNode NI = -1

// bucketSlot is one vertex's handle into its current degree bucket.
type bucketSlot struct {
	prev, next NI
}

// Degeneracy computes a degeneracy ordering of g using a bucket queue keyed
// on residual degree. Each vertex carries a handle (bucketSlot) into its
// current bucket, giving O(1) removal; the scan that looks for the next
// non-empty bucket restarts at max(0, d-1) after every pop, per the explicit
// form of the reference algorithm's restart rule.
func Degeneracy(g *Graph) Ordering {
	n := g.VertexCount()
	order := make([]NI, 0, n)
	rank := make([]NI, n)
	if n == 0 {
		return Ordering{order, rank}
	}

	deg := make([]int, n)
	maxDeg := 0
	for v, nb := range g.AdjacencyList {
		deg[v] = len(nb)
		if len(nb) > maxDeg {
			maxDeg = len(nb)
		}
	}

	slots := make([]bucketSlot, n)
	bucket := make([]NI, maxDeg+1)
	for d := range bucket {
		bucket[d] = noNode
	}

	push := func(d int, v NI) {
		slots[v] = bucketSlot{prev: noNode, next: bucket[d]}
		if bucket[d] != noNode {
			slots[bucket[d]].prev = v
		}
		bucket[d] = v
	}
	remove := func(d int, v NI) {
		s := slots[v]
		if s.prev != noNode {
			slots[s.prev].next = s.next
		} else {
			bucket[d] = s.next
		}
		if s.next != noNode {
			slots[s.next].prev = s.prev
		}
	}

	for v := 0; v < n; v++ {
		push(deg[v], NI(v))
	}

	emitted := make([]bool, n)
	d := 0
	for len(order) < n {
		for bucket[d] == noNode {
			d++
		}
		v := bucket[d]
		remove(d, v)
		emitted[v] = true
		rank[v] = NI(len(order))
		order = append(order, v)

		for _, u := range g.AdjacencyList[v] {
			if emitted[u] {
				continue
			}
			du := deg[u]
			remove(du, u)
			deg[u] = du - 1
			push(du-1, u)
		}

		if d > 0 {
			d--
		}
	}
	return Ordering{order, rank}
}
