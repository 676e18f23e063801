package clique

import "github.com/fjvxmap/gss-explorer/graph"

// MaximalCliques counts every maximal clique of g.
func MaximalCliques(g *graph.Graph) int {
	return NewEnumerator(g, nil).Run()
}

// MaximalCliquesRecorded counts every maximal clique of g and additionally
// records the search tree, returning both the count and the populated
// Recorder.
func MaximalCliquesRecorded(g *graph.Graph) (int, *Recorder) {
	rec := NewRecorder()
	e := NewEnumerator(g, rec)
	count := e.Run()
	return count, rec
}
