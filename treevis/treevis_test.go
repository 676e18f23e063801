package treevis_test

import (
	"fmt"
	"os"

	"github.com/fjvxmap/gss-explorer/clique"
	"github.com/fjvxmap/gss-explorer/treevis"
)

// a tiny two-leaf tree under the synthetic root, small enough to check by
// hand against the glyph math in treevis.go.
func smallTree() []clique.Node {
	return []clique.Node{
		{ID: clique.SyntheticRootID, ParentID: clique.SyntheticRootParentID, Children: []int{0, 1}, Depth: 0, CandidateVertex: clique.NoCandidate},
		{ID: 0, ParentID: clique.SyntheticRootID, Depth: 1, CandidateVertex: 3},
		{ID: 1, ParentID: clique.SyntheticRootID, Depth: 1, CandidateVertex: 5},
	}
}

func ExampleWrite() {
	treevis.Write(smallTree(), clique.SyntheticRootID, os.Stdout)
	// Output:
	// ┐-1
	// ├─╴0
	// └─╴1
}

func ExampleNodeLabel() {
	treevis.Write(smallTree(), clique.SyntheticRootID, os.Stdout,
		treevis.NodeLabel(func(n clique.Node) string {
			return fmt.Sprintf("id=%d depth=%d", n.ID, n.Depth)
		}))
	// Output:
	// ┐id=-1 depth=0
	// ├─╴id=0 depth=1
	// └─╴id=1 depth=1
}

func ExampleGlyphs() {
	treevis.Write(smallTree(), clique.SyntheticRootID, os.Stdout,
		treevis.Glyphs(treevis.G{
			Leaf:      "-",
			NonLeaf:   "-",
			Child:     " |",
			Vertical:  " |",
			LastChild: " `",
			Indent:    "  ",
		}))
	// Output:
	// --1
	//  |-0
	//  `-1
}
