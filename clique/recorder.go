package clique

import "github.com/fjvxmap/gss-explorer/graph"

// SyntheticRootID is the node id of the synthetic row that aggregates every
// outer-call root into a single tree for display and export.
const SyntheticRootID = -1

// SyntheticRootParentID is the parent id recorded for SyntheticRootID.
const SyntheticRootParentID = -2

// NoCandidate is the candidate_vertex recorded for a node with no
// originating branch vertex (an outer root, or the synthetic root).
const NoCandidate = -1

// Node is one recorded recursive invocation of the search: the R/P/X sizes
// it ran with, the clique it extended, the candidate vertex that produced
// it, and the children it branched into.
type Node struct {
	ID               int
	ParentID         int
	Children         []int
	CliquesInSubtree int
	CreationOrder    int
	Depth            int
	CandidateVertex  int
	CurrentClique    []graph.NI
	XSize            int
	PSize            int
	PrunedByPivot    bool
}

// Recorder accumulates Nodes for one run of Enumerator.Run. It is append
// only until the run completes, at which point Nodes can be exported (see
// package csvtree).
type Recorder struct {
	nodes []Node
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Nodes returns every node recorded so far, including the synthetic root.
func (r *Recorder) Nodes() []Node { return r.nodes }

// newSyntheticRoot allocates the synthetic root row aggregating all outer
// calls and returns its id (always SyntheticRootID); call once per run,
// before the outer loop.
func (r *Recorder) newSyntheticRoot() int {
	r.nodes = append(r.nodes, Node{
		ID:              SyntheticRootID,
		ParentID:        SyntheticRootParentID,
		CandidateVertex: NoCandidate,
	})
	return SyntheticRootID
}

// nodeByID returns a pointer into r.nodes for the given id. The synthetic
// root has id -1 and is always stored first.
func (r *Recorder) nodeByID(id int) *Node {
	if id == SyntheticRootID {
		return &r.nodes[0]
	}
	// real nodes occupy indices [1, len(nodes)) in creation order, with
	// node id == creation order (0-based) since the synthetic root is
	// inserted before any real node and excluded from the id sequence.
	return &r.nodes[id+1]
}

// enter allocates a node for a recursive call about to run, fills its entry
// fields, and links it into its parent's children list. It returns the new
// node's id.
func (r *Recorder) enter(parentID, candidateVertex int, rCur []graph.NI, xSize, pSize int, prunedByPivot bool) int {
	id := len(r.nodes) - 1 // node ids start at 0, after the synthetic root
	n := Node{
		ID:              id,
		ParentID:        parentID,
		CreationOrder:   id,
		Depth:           len(rCur),
		CandidateVertex: candidateVertex,
		CurrentClique:   append([]graph.NI(nil), rCur...),
		XSize:           xSize,
		PSize:           pSize,
		PrunedByPivot:   prunedByPivot,
	}
	r.nodes = append(r.nodes, n)
	parent := r.nodeByID(parentID)
	parent.Children = append(parent.Children, id)
	return id
}

// leave fills in the subtree clique count for a node whose recursive call
// has just returned.
func (r *Recorder) leave(id int, cliquesInSubtree int) {
	r.nodeByID(id).CliquesInSubtree = cliquesInSubtree
}
