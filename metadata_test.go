package pdfmeta

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGatherCoordinateTransform(t *testing.T) {
	// A box at pixel (0,0) on a page 1000 pixels tall maps to the
	// top-left corner of PDF user space: (0, 750) at 0.75pt per pixel.
	doc := &Document{Pages: []*Page{{
		Width: 800, Height: 1000,
		Root: &Box{BookmarkLevel: 1, BookmarkLabel: "Top"},
	}}}

	bookmarks, _ := gatherMetadata(doc)
	want := []Bookmark{{Level: 1, Label: "Top", Dest: Destination{Page: 0, X: 0, Y: 750}}}
	if diff := cmp.Diff(bookmarks, want); diff != "" {
		t.Error("bookmarks didn't match expectation:", diff)
	}
}

func TestGatherLinkRectangles(t *testing.T) {
	doc := &Document{Pages: []*Page{{
		Width: 800, Height: 1000,
		Root: &Box{
			Children: []*Box{{
				X: 100, Y: 100, Width: 40, Height: 20,
				Link: &Link{Kind: LinkExternal, Target: "https://example.com/"},
			}},
		},
	}}}

	_, links := gatherMetadata(doc)
	if len(links) != 1 || len(links[0]) != 1 {
		t.Fatalf("resolved %v, want one link on one page", links)
	}
	// Width and height only scale, so the flipped Y axis puts the
	// second corner below the first.
	want := pageLink{
		kind: LinkExternal,
		uri:  "https://example.com/",
		rect: [4]float64{75, 675, 105, 660},
	}
	if diff := cmp.Diff(links[0][0], want, cmp.AllowUnexported(pageLink{})); diff != "" {
		t.Error("link didn't match expectation:", diff)
	}
}

func TestGatherInternalLinks(t *testing.T) {
	doc := &Document{Pages: []*Page{
		{
			Width: 800, Height: 1000,
			Root: &Box{Children: []*Box{
				{X: 10, Y: 10, Width: 100, Height: 10, Link: &Link{Kind: LinkInternal, Target: "intro"}},
				{X: 10, Y: 30, Width: 100, Height: 10, Link: &Link{Kind: LinkInternal, Target: "nowhere"}},
			}},
		},
		{
			Width: 800, Height: 1000,
			Root: &Box{Children: []*Box{
				{X: 0, Y: 40, Anchor: "intro"},
				{X: 0, Y: 80, Anchor: "intro"}, // later occurrence loses
			}},
		},
	}}

	_, links := gatherMetadata(doc)
	if got := len(links[0]); got != 1 {
		t.Fatalf("page 1 kept %d links, want 1 (unresolved anchors are dropped)", got)
	}
	want := Destination{Page: 1, X: 0, Y: 720}
	if diff := cmp.Diff(links[0][0].dest, want); diff != "" {
		t.Error("resolved destination didn't match expectation:", diff)
	}
}
