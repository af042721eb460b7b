package pdfmeta

// A Destination is a point on a page, in PDF user space.
type Destination struct {
	Page int // zero-based page index
	X, Y float64
}

// A Bookmark is one outline entry as found in the document: a declared
// nesting level, a label and a target. The declared levels may jump
// (a level 1 heading directly followed by a level 3 one); buildOutline
// absorbs such jumps instead of failing.
type Bookmark struct {
	Level int // >= 1
	Label string
	Dest  Destination
}

// An outlineNode carries the linkage fields of one PDF outline item.
// Links are 1-based indices into the node list; 0 means none, or the
// synthetic root in the case of Parent.
type outlineNode struct {
	Count                           int // number of strict descendants
	First, Last, Prev, Next, Parent int
	Label                           string
	Dest                            Destination
}

// An outline is the fully linked bookmark tree: a synthetic root plus
// one node per input bookmark, in input order.
type outline struct {
	root  outlineNode // only Count, First and Last are meaningful
	nodes []outlineNode
}

// buildOutline links the flat bookmark list into a tree in one forward
// pass, keeping a stack of level-compensation shifts so that declared
// depth jumps collapse into a single extra nesting level.
func buildOutline(raw []Bookmark) *outline {
	o := &outline{nodes: make([]outlineNode, len(raw))}

	// Parallel stacks: the last node seen at each effective level, its
	// index, and the shifts absorbed by downward jumps still open.
	lastByLevel := []*outlineNode{&o.root}
	indexByLevel := []int{0}
	var shifts []int
	shiftSum := 0

	for i0, b := range raw {
		i := i0 + 1
		level := b.Level

		previous := len(lastByLevel) - 1 + shiftSum
		if level > previous {
			// A downward jump of any size becomes a single child one
			// level below its predecessor; remember how much was
			// absorbed so later entries can walk back out.
			shifts = append(shifts, level-previous-1)
			shiftSum += level - previous - 1
		} else {
			for walked := 0; walked < previous-level; {
				walked += 1 + shifts[len(shifts)-1]
				shiftSum -= shifts[len(shifts)-1]
				shifts = shifts[:len(shifts)-1]
			}
		}
		level -= shiftSum

		node := &o.nodes[i0]
		node.Parent = indexByLevel[level-1]
		node.Label = b.Label
		node.Dest = b.Dest

		if level > len(lastByLevel)-1 {
			lastByLevel[level-1].First = i
		} else {
			node.Prev = indexByLevel[level]
			lastByLevel[level].Next = i

			// Nodes recorded deeper than this level are stale now.
			lastByLevel = lastByLevel[:level]
			indexByLevel = indexByLevel[:level]
		}

		for _, ancestor := range lastByLevel[:level] {
			ancestor.Count++
		}
		lastByLevel[level-1].Last = i

		lastByLevel = append(lastByLevel, node)
		indexByLevel = append(indexByLevel, i)
	}

	return o
}
