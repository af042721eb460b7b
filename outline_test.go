package pdfmeta

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildOutlineSiblings(t *testing.T) {
	d1 := Destination{Page: 0, X: 0, Y: 700}
	d2 := Destination{Page: 0, X: 0, Y: 600}
	d3 := Destination{Page: 1, X: 0, Y: 500}
	d4 := Destination{Page: 1, X: 0, Y: 400}

	o := buildOutline([]Bookmark{
		{Level: 1, Label: "A", Dest: d1},
		{Level: 2, Label: "B", Dest: d2},
		{Level: 2, Label: "C", Dest: d3},
		{Level: 1, Label: "D", Dest: d4},
	})

	wantRoot := outlineNode{Count: 4, First: 1, Last: 4}
	if diff := cmp.Diff(o.root, wantRoot); diff != "" {
		t.Error("root didn't match expectation:", diff)
	}

	want := []outlineNode{
		{Count: 2, First: 2, Last: 3, Next: 4, Label: "A", Dest: d1},
		{Parent: 1, Next: 3, Label: "B", Dest: d2},
		{Parent: 1, Prev: 2, Label: "C", Dest: d3},
		{Prev: 1, Label: "D", Dest: d4},
	}
	if diff := cmp.Diff(o.nodes, want); diff != "" {
		t.Error("nodes didn't match expectation:", diff)
	}
}

func TestBuildOutlineDepthJump(t *testing.T) {
	// A level 3 entry directly after a level 1 entry becomes its sole
	// child; the jump is absorbed, not an error and not depth 2 of a
	// missing intermediate.
	o := buildOutline([]Bookmark{
		{Level: 1, Label: "A"},
		{Level: 3, Label: "B"},
		{Level: 1, Label: "C"},
	})

	wantRoot := outlineNode{Count: 3, First: 1, Last: 3}
	if diff := cmp.Diff(o.root, wantRoot); diff != "" {
		t.Error("root didn't match expectation:", diff)
	}

	want := []outlineNode{
		{Count: 1, First: 2, Last: 2, Next: 3, Label: "A"},
		{Parent: 1, Label: "B"},
		{Prev: 1, Label: "C"},
	}
	if diff := cmp.Diff(o.nodes, want); diff != "" {
		t.Error("nodes didn't match expectation:", diff)
	}
}

func TestBuildOutlineCounts(t *testing.T) {
	// Count must equal the number of strict descendants at every node.
	o := buildOutline([]Bookmark{
		{Level: 1, Label: "1"},
		{Level: 2, Label: "1.1"},
		{Level: 3, Label: "1.1.1"},
		{Level: 3, Label: "1.1.2"},
		{Level: 2, Label: "1.2"},
		{Level: 1, Label: "2"},
		{Level: 2, Label: "2.1"},
	})

	if got, want := o.root.Count, len(o.nodes); got != want {
		t.Errorf("root.Count = %d, want %d", got, want)
	}
	descendants := func(parent int) int {
		n := 0
		for i := range o.nodes {
			for p := o.nodes[i].Parent; ; {
				if p == parent {
					n++
					break
				}
				if p == 0 {
					break
				}
				p = o.nodes[p-1].Parent
			}
		}
		return n
	}
	for i, node := range o.nodes {
		if want := descendants(i + 1); node.Count != want {
			t.Errorf("node %d (%s): Count = %d, want %d", i+1, node.Label, node.Count, want)
		}
	}
}

func TestBuildOutlineEmpty(t *testing.T) {
	o := buildOutline(nil)
	if o.root.Count != 0 || len(o.nodes) != 0 {
		t.Errorf("empty input built %d nodes with root count %d", len(o.nodes), o.root.Count)
	}
}
