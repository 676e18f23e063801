// Package gio reads the graph package's wire format: an ASCII header line
// "N M" followed by M "U V" edge lines.
package gio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/fjvxmap/gss-explorer/graph"
)

// sep delimits base-10 integers the same way the pack's own text readers do:
// anything that isn't a digit or a sign is a separator.
var sep = regexp.MustCompile("[^0-9-+]+")

// ReadGraph reads a graph from r: a header line "N M" giving vertex and
// edge counts, followed by M "U V" edge lines, whitespace tolerant. It
// stops at the first error or after the M-th edge line; anything after that
// line is not read.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	b := bufio.NewReader(r)

	line := 1
	f, err := readSplitInts(b)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(f) != 2 {
		return nil, fmt.Errorf("line %d: header must have exactly 2 fields, got %d", line, len(f))
	}
	n, err := strconv.Atoi(f[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid vertex count %q: %w", line, f[0], err)
	}
	m, err := strconv.Atoi(f[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid edge count %q: %w", line, f[1], err)
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("line %d: vertex and edge counts must be non-negative", line)
	}

	g := graph.New(n)
	for i := 0; i < m; i++ {
		line++
		f, err := readSplitInts(b)
		if err != nil {
			return nil, fmt.Errorf("reading edge %d: %w", i, err)
		}
		if len(f) != 2 {
			return nil, fmt.Errorf("line %d: edge must have exactly 2 fields, got %d", line, len(f))
		}
		u, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex %q: %w", line, f[0], err)
		}
		v, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex %q: %w", line, f[1], err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("line %d: edge (%d,%d) out of range for %d vertices", line, u, v, n)
		}
		g.AddEdge(graph.NI(u), graph.NI(v))
	}
	return g, nil
}

// readSplitInts reads one line and splits it into whitespace/separator
// delimited fields, tolerating a missing trailing newline on the final
// line. Blank lines are skipped.
func readSplitInts(r *bufio.Reader) ([]string, error) {
	for {
		s, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF || s == "" {
				return nil, err
			}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			if err == io.EOF {
				return nil, io.EOF
			}
			continue
		}
		f := sep.Split(s, -1)
		if f[0] == "" {
			f = f[1:]
		}
		if len(f) > 0 && f[len(f)-1] == "" {
			f = f[:len(f)-1]
		}
		return f, nil
	}
}
