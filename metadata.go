package pdfmeta

import (
	"log/slog"

	"github.com/renderkit/pdfmeta/internal/matrix"
)

// Rendered pixels are 96 to the inch, PDF points 72.
const pxToPt = 0.75

// A LinkKind tells an external hyperlink from an internal one.
type LinkKind int

const (
	LinkExternal LinkKind = iota
	LinkInternal
)

// A Link is the hyperlink descriptor a box may carry. Target is the
// anchor name for internal links and the IRI for external ones.
type Link struct {
	Kind   LinkKind
	Target string
}

// A Box is one node of the rendered layout tree. Position and size are
// those of the border box, in pixels right and down from the top-left
// corner of the page.
type Box struct {
	X, Y, Width, Height float64

	BookmarkLevel int // 0 when the box carries no bookmark
	BookmarkLabel string
	Link          *Link
	Anchor        string // named anchor, "" for none

	Children []*Box
}

// A Page is one rendered page: its outer pixel size and the root of
// its box tree.
type Page struct {
	Width, Height float64
	Root          *Box
}

// A Document is the renderer's finished output plus the information
// keys to write: everything this package needs to inject metadata.
type Document struct {
	Info  DocumentInfo
	Pages []*Page
}

// An anchorDest is where a named anchor points, in PDF user space.
type anchorDest struct {
	page int
	x, y float64
}

// A pageLink is one resolved hyperlink: its active rectangle and
// either a URI or an internal destination.
type pageLink struct {
	kind LinkKind
	uri  string
	dest Destination
	rect [4]float64 // top-left then bottom-right corner, in PDF user space
}

// gatherMetadata walks every page's box tree and returns the flat
// bookmark list in document order and, per page, the resolved links.
// Internal links whose anchor never occurs are dropped with a warning.
// The first occurrence of an anchor name wins.
func gatherMetadata(doc *Document) ([]Bookmark, [][]pageLink) {
	type rawLink struct {
		link Link
		rect [4]float64
	}

	var bookmarks []Bookmark
	anchors := make(map[string]anchorDest)
	rawByPage := make([][]rawLink, len(doc.Pages))

	for pageIndex, page := range doc.Pages {
		// Pixel coordinates grow right and down from the top-left
		// corner; PDF coordinates grow right and up from the
		// bottom-left corner, in points.
		m := matrix.New(pxToPt, 0, 0, -pxToPt, 0, page.Height*pxToPt)

		var walk func(*Box)
		walk = func(b *Box) {
			// Hit-testing happens on the border box, so that is the
			// area bookmarks, links and anchors are attached to.
			if b.BookmarkLabel != "" && b.BookmarkLevel > 0 {
				x, y := m.Apply(b.X, b.Y)
				bookmarks = append(bookmarks, Bookmark{
					Level: b.BookmarkLevel,
					Label: b.BookmarkLabel,
					Dest:  Destination{Page: pageIndex, X: x, Y: y},
				})
			}
			if b.Link != nil {
				x, y := m.Apply(b.X, b.Y)
				w, h := m.ApplyDistance(b.Width, b.Height)
				rawByPage[pageIndex] = append(rawByPage[pageIndex], rawLink{
					link: *b.Link,
					rect: [4]float64{x, y, x + w, y + h},
				})
			}
			if b.Anchor != "" {
				if _, ok := anchors[b.Anchor]; !ok {
					x, y := m.Apply(b.X, b.Y)
					anchors[b.Anchor] = anchorDest{page: pageIndex, x: x, y: y}
				}
			}
			for _, child := range b.Children {
				walk(child)
			}
		}
		if page.Root != nil {
			walk(page.Root)
		}
	}

	links := make([][]pageLink, len(doc.Pages))
	for pageIndex, raw := range rawByPage {
		for _, rl := range raw {
			if rl.link.Kind == LinkInternal {
				a, ok := anchors[rl.link.Target]
				if !ok {
					slog.Warn("no anchor for internal link",
						slog.String("target", rl.link.Target),
						slog.Int("page", pageIndex+1))
					continue
				}
				links[pageIndex] = append(links[pageIndex], pageLink{
					kind: LinkInternal,
					dest: Destination{Page: a.page, X: a.x, Y: a.y},
					rect: rl.rect,
				})
			} else {
				links[pageIndex] = append(links[pageIndex], pageLink{
					kind: LinkExternal,
					uri:  rl.link.Target,
					rect: rl.rect,
				})
			}
		}
	}

	return bookmarks, links
}
