// Package csvtree writes a clique.Recorder's search tree to a fixed CSV
// schema, one row per recorded recursive call, for loading into a
// spreadsheet or a plotting script. It is a satellite package that imports
// clique rather than clique importing it, keeping the core algorithm
// package free of serialization concerns.
package csvtree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fjvxmap/gss-explorer/clique"
	"github.com/fjvxmap/gss-explorer/graph"
)

// Config holds formatting options for Write.
type Config struct {
	// Header, when true (the default), writes the fixed column header as
	// the first line.
	Header bool
}

var defaults = Config{Header: true}

// Option configures Write.
type Option func(*Config)

// NoHeader suppresses the header line, for callers appending to an
// existing file.
func NoHeader() Option {
	return func(c *Config) { c.Header = false }
}

// header is the fixed column order of the CSV schema.
const header = "node_id,parent_id,children_ids,cliques_in_subtree,creation_order,depth,candidate_vertex,current_clique,x_size,p_size,pruned_by_pivot"

// Write serializes every node of nodes (as returned by
// clique.Recorder.Nodes) to w in the fixed CSV schema. children_ids and
// current_clique are always quoted and use ";" as the intra-field
// separator, which encoding/csv cannot express directly (it only quotes a
// field when it contains its own configured separator, comma, or newline -
// not a distinct separator used purely within two specific columns), so
// rows are formatted by hand with fmt.Fprintf over a buffered writer.
func Write(nodes []clique.Node, w io.Writer, options ...Option) error {
	cf := defaults
	for _, o := range options {
		o(&cf)
	}
	bw := bufio.NewWriter(w)

	if cf.Header {
		if _, err := fmt.Fprintln(bw, header); err != nil {
			return err
		}
	}

	for _, n := range nodes {
		_, err := fmt.Fprintf(bw, "%d,%d,%s,%d,%d,%d,%d,%s,%d,%d,%t\n",
			n.ID,
			n.ParentID,
			quoteInts(n.Children),
			n.CliquesInSubtree,
			n.CreationOrder,
			n.Depth,
			n.CandidateVertex,
			quoteNIs(n.CurrentClique),
			n.XSize,
			n.PSize,
			n.PrunedByPivot,
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// quoteInts renders ids as a quoted, semicolon-separated field.
func quoteInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return `"` + strings.Join(parts, ";") + `"`
}

// quoteNIs renders a vertex sequence as a quoted, semicolon-separated
// field.
func quoteNIs(vs []graph.NI) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(int(v))
	}
	return `"` + strings.Join(parts, ";") + `"`
}
