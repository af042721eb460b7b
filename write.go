package pdfmeta

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/renderkit/pdfmeta/internal/encoding"
	"github.com/renderkit/pdfmeta/internal/uri"
)

// WriteMetadata parses the rendered PDF in rw and appends one
// incremental update carrying the document information, the bookmark
// outline and the hyperlink annotations found in doc. On a
// *StructuralError nothing has been committed and the original file
// is still valid.
func WriteMetadata(doc *Document, rw ReadWriteSeeker) error {
	f, err := NewFile(rw)
	if err != nil {
		return err
	}
	return f.WriteMetadata(doc)
}

// WriteMetadata runs the whole write phase on an already open File,
// including Finish.
func (f *File) WriteMetadata(doc *Document) error {
	bookmarks, links := gatherMetadata(doc)

	infoDict, err := doc.Info.dict()
	if err != nil {
		return err
	}
	if err := f.OverwriteObject(f.info.num, infoDict); err != nil {
		return err
	}

	if len(bookmarks) > 0 {
		if err := f.writeOutline(buildOutline(bookmarks)); err != nil {
			return err
		}
	}

	for i, page := range f.pages {
		if i >= len(links) {
			break
		}
		if err := f.writeAnnotations(page, links[i]); err != nil {
			return err
		}
	}

	return f.Finish()
}

func (f *File) writeOutline(o *outline) error {
	// The outline root is written first, so node index i lands at
	// object number root+i.
	root := f.NextObjectNumber()
	_, err := f.WriteNewObject([]byte(fmt.Sprintf(
		"<< /Type /Outlines /Count %d /First %d 0 R /Last %d 0 R\n>>",
		o.root.Count, o.root.First+root, o.root.Last+root)))
	if err != nil {
		return err
	}
	err = f.ExtendDict(f.catalog, []byte(fmt.Sprintf(
		"/Outlines %d 0 R /PageMode /UseOutlines", root)))
	if err != nil {
		return err
	}

	for _, node := range o.nodes {
		var buf bytes.Buffer
		title, err := textString(node.Label)
		if err != nil {
			return err
		}
		buf.WriteString("<< /Title ")
		buf.Write(title)
		buf.WriteString("\n")
		if node.Count != 0 {
			fmt.Fprintf(&buf, "/Count %d\n", node.Count)
		}
		for _, link := range []struct {
			key   string
			index int
		}{
			{"Parent", node.Parent},
			{"Prev", node.Prev},
			{"Next", node.Next},
			{"First", node.First},
			{"Last", node.Last},
		} {
			// Index 0 is the synthetic root: no key to write.
			if link.index != 0 {
				fmt.Fprintf(&buf, "/%s %d 0 R\n", link.key, link.index+root)
			}
		}
		buf.Write(goToAction(node.Dest))
		buf.WriteString(">>")
		if _, err := f.WriteNewObject(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) writeAnnotations(page Dict, links []pageLink) error {
	var annotations []int
	for _, link := range links {
		var buf bytes.Buffer
		fmt.Fprintf(&buf,
			"<< /Type /Annot /Subtype /Link /Rect [%f %f %f %f] /Border [0 0 0]\n",
			link.rect[0], link.rect[1], link.rect[2], link.rect[3])
		if link.kind == LinkInternal {
			buf.Write(goToAction(link.dest))
		} else {
			target, err := uri.IRIToURI(link.uri)
			if err != nil {
				slog.Warn("dropping link with unusable target",
					slog.String("target", link.uri),
					slog.Any("error", err))
				continue
			}
			buf.WriteString("/A << /Type /Action /S /URI /URI ")
			buf.Write(encoding.EscapeString([]byte(target)))
			buf.WriteString(" >>\n")
		}
		buf.WriteString(">>")
		num, err := f.WriteNewObject(buf.Bytes())
		if err != nil {
			return err
		}
		annotations = append(annotations, num)
	}

	if len(annotations) == 0 {
		return nil
	}
	var refs bytes.Buffer
	for i, num := range annotations {
		if i > 0 {
			refs.WriteString(" ")
		}
		refs.WriteString(strconv.Itoa(num) + " 0 R")
	}
	return f.ExtendDict(page, []byte("/Annots ["+refs.String()+"]"))
}
