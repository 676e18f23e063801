// Package treevis draws a clique.Recorder's search tree with text, for
// terminal-friendly inspection without the full CSV/web visualizer.
// Capabilities are currently quite limited.
package treevis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fjvxmap/gss-explorer/clique"
)

type G struct {
	Leaf      string
	NonLeaf   string
	Child     string
	Vertical  string
	LastChild string
	Indent    string
}

type Config struct {
	NodeLabel func(clique.Node) string
	Glyphs    G
}

var Defaults = Config{
	NodeLabel: func(n clique.Node) string {
		s := strconv.Itoa(n.ID)
		if n.PrunedByPivot {
			s += " (pruned)"
		}
		return s
	},
	Glyphs: G{
		Leaf:      "╴",
		NonLeaf:   "┐",
		Child:     "├─",
		Vertical:  "│ ",
		LastChild: "└─",
		Indent:    "  ",
	},
}

type Option func(*Config)

func NodeLabel(f func(clique.Node) string) Option {
	return func(c *Config) { c.NodeLabel = f }
}

func Glyphs(g G) Option {
	return func(c *Config) { c.Glyphs = g }
}

// frame is one pending node on Write's explicit walk stack: prefix is
// printed immediately before the node's own glyph+label line, childPrefix is
// the prefix its children build on.
type frame struct {
	id                  int
	prefix, childPrefix string
}

// Write draws the subtree rooted at root (typically clique.SyntheticRootID)
// as indented text. nodes is a recorder's full node list, as returned by
// clique.Recorder.Nodes.
//
// The walk is iterative rather than recursive: children are pushed onto an
// explicit stack with their prefixes precomputed, last child first, so
// popping the stack visits them in the same left-to-right order a recursive
// descent would, without growing the Go call stack with the search tree's
// depth.
func Write(nodes []clique.Node, root int, w io.Writer, options ...Option) error {
	cf := Defaults
	for _, o := range options {
		o(&cf)
	}
	byID := make(map[int]clique.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	visited := make(map[int]bool, len(nodes))
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[fr.id] {
			fmt.Fprintln(w, "%!(NONTREE)")
			return fmt.Errorf("non-tree: node %d visited twice", fr.id)
		}
		visited[fr.id] = true

		n := byID[fr.id]
		children := n.Children
		if len(children) == 0 {
			if _, err := fmt.Fprint(w, fr.prefix, cf.Glyphs.Leaf, cf.NodeLabel(n), "\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprint(w, fr.prefix, cf.Glyphs.NonLeaf, cf.NodeLabel(n), "\n"); err != nil {
			return err
		}

		last := len(children) - 1
		for i := last; i >= 0; i-- {
			if i == last {
				stack = append(stack, frame{
					id:          children[i],
					prefix:      fr.childPrefix + cf.Glyphs.LastChild,
					childPrefix: fr.childPrefix + cf.Glyphs.Indent,
				})
				continue
			}
			stack = append(stack, frame{
				id:          children[i],
				prefix:      fr.childPrefix + cf.Glyphs.Child,
				childPrefix: fr.childPrefix + cf.Glyphs.Vertical,
			})
		}
	}
	return nil
}
