package gio

import (
	"strings"
	"testing"
)

func TestReadGraphTriangle(t *testing.T) {
	g, err := ReadGraph(strings.NewReader("3 3\n0 1\n1 2\n0 2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("got vertices=%d edges=%d, want 3,3", g.VertexCount(), g.EdgeCount())
	}
}

func TestReadGraphWhitespaceTolerant(t *testing.T) {
	g, err := ReadGraph(strings.NewReader("  3   3\n0   1\n1 2\n0\t2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("got %d edges, want 3", g.EdgeCount())
	}
}

func TestReadGraphEmpty(t *testing.T) {
	g, err := ReadGraph(strings.NewReader("0 0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 0 {
		t.Fatalf("got %d vertices, want 0", g.VertexCount())
	}
}

func TestReadGraphBadHeader(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader("not a header\n")); err == nil {
		t.Fatal("expected error for malformed header")
	}
}

func TestReadGraphOutOfRangeVertex(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader("2 1\n0 5\n")); err == nil {
		t.Fatal("expected error for out-of-range vertex")
	}
}

func TestReadGraphTruncated(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader("3 2\n0 1\n")); err == nil {
		t.Fatal("expected error for truncated edge list")
	}
}
