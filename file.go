package pdfmeta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A ReadWriteSeeker is the access a File needs to its underlying
// bytes: random-access reads over the original file, and appending
// writes for the incremental update.
type ReadWriteSeeker interface {
	io.ReaderAt
	io.WriteSeeker
}

// A File is a single PDF file open for appending an incremental
// update. It owns the underlying handle for its whole session:
// open, read phase, write phase, Finish, Close.
type File struct {
	f   ReadWriteSeeker
	end int64 // size of the original file at open time

	// offsets maps object number to the byte offset of its "N 0 obj"
	// header. Index 0 is the permanently free object and stays unused.
	offsets []int64

	startxref int64
	trailer   Dict
	info      Dict
	catalog   Dict
	pageTree  Dict
	pages     []Dict

	matchers map[matcherKey]*regexp.Regexp

	finished   bool
	rewrites   []rewrite
	rewriteIdx map[int]int // object number -> index in rewrites
	newOffsets []int64
}

// A rewrite records the appended replacement copy of an existing
// object.
type rewrite struct {
	num    int
	offset int64
}

// The renderer's trailer holds only Size, Root and Info; together with
// startxref and the EOF marker it fits well within the last 200 bytes.
const trailerWindow = 200

var trailerRe = regexp.MustCompile(`(?s)\ntrailer\n(.+)\nstartxref\n(\d+)\n%%EOF\n$`)

// Open opens the PDF file at path for metadata injection.
// File.Close should be called when done with the File.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	pf, err := NewFile(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return pf, nil
}

// NewFile parses the trailer, cross-reference table, catalog and page
// tree of the PDF in rw and returns a File ready for the write phase.
func NewFile(rw ReadWriteSeeker) (*File, error) {
	end, err := rw.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}

	f := &File{
		f:          rw,
		end:        end,
		matchers:   make(map[matcherKey]*regexp.Regexp),
		rewriteIdx: make(map[int]int),
	}

	window := int64(trailerWindow)
	if window > end {
		window = end
	}
	tail := make([]byte, window)
	if _, err := rw.ReadAt(tail, end-window); err != nil {
		return nil, err
	}
	g := trailerRe.FindSubmatch(tail)
	if g == nil {
		return nil, structuralf(end-window, "trailer, startxref and %%%%EOF not found at end of file")
	}
	f.trailer = Dict{f: f, data: g[1]}
	f.startxref, err = strconv.ParseInt(string(g[2]), 10, 64)
	if err != nil {
		return nil, structuralf(0, "bad startxref %q", g[2])
	}

	if err := f.readXref(); err != nil {
		return nil, err
	}

	if f.info, err = f.trailer.IndirectDict("Info"); err != nil {
		return nil, err
	}
	if f.catalog, err = f.trailer.IndirectDict("Root"); err != nil {
		return nil, err
	}
	if f.pageTree, err = f.catalog.IndirectDict("Pages"); err != nil {
		return nil, err
	}
	if f.pages, err = f.pageTree.IndirectDictArray("Kids"); err != nil {
		return nil, err
	}
	// The page tree must be flat.
	for _, p := range f.pages {
		t, err := p.Type()
		if err != nil {
			return nil, err
		}
		if t != "Page" {
			return nil, structuralf(f.offsets[p.num], "object %d: page tree kid has type %s, not Page", p.num, t)
		}
	}

	return f, nil
}

// Close closes the underlying handle if it is an io.Closer.
func (f *File) Close() error {
	if c, ok := f.f.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Info returns the view over the document information dictionary.
func (f *File) Info() Dict { return f.info }

// Catalog returns the view over the document catalog.
func (f *File) Catalog() Dict { return f.catalog }

// Pages returns the views over the page objects, in document order.
func (f *File) Pages() []Dict { return f.pages }

func (f *File) readXref() error {
	b := bufio.NewReader(io.NewSectionReader(f.f, f.startxref, f.end-f.startxref))
	pos := f.startxref

	line, err := readLine(b)
	if err != nil {
		return err
	}
	if line != "xref\n" {
		return structuralf(pos, "startxref does not point at an xref section")
	}
	pos += int64(len(line))

	if line, err = readLine(b); err != nil {
		return err
	}
	// Exactly "0 N" with N covering at least the free object.
	first, count, ok := strings.Cut(strings.TrimSuffix(line, "\n"), " ")
	total, convErr := strconv.Atoi(count)
	if !ok || first != "0" || convErr != nil || total < 1 {
		return structuralf(pos, "bad xref subsection header %q", line)
	}
	pos += int64(len(line))

	if line, err = readLine(b); err != nil {
		return err
	}
	if line != "0000000000 65535 f \n" {
		return structuralf(pos, "bad free-object sentinel %q", line)
	}
	pos += int64(len(line))

	f.offsets = make([]int64, 1, total)
	for num := 1; num < total; num++ {
		if line, err = readLine(b); err != nil {
			return err
		}
		if len(line) != 20 || line[10:] != " 00000 n \n" {
			return structuralf(pos, "bad xref entry %q for object %d", line, num)
		}
		offset, err := strconv.ParseInt(line[:10], 10, 64)
		if err != nil {
			return structuralf(pos, "bad xref entry %q for object %d", line, num)
		}
		f.offsets = append(f.offsets, offset)
		pos += int64(len(line))
	}
	return nil
}

// ReadObject returns the raw body of object num, from the header line
// exclusive through the dictionary close token inclusive. Reads always
// go through the original offset table, so an overwritten object still
// reads back its original bytes.
func (f *File) ReadObject(num int) ([]byte, error) {
	if num < 1 || num >= len(f.offsets) {
		return nil, structuralf(0, "no object %d in the original file", num)
	}
	offset := f.offsets[num]
	b := bufio.NewReader(io.NewSectionReader(f.f, offset, f.end-offset))

	line, err := readLine(b)
	if err != nil {
		return nil, err
	}
	if line != fmt.Sprintf("%d 0 obj\n", num) {
		return nil, structuralf(offset, "expected header of object %d, found %q", num, line)
	}

	var body bytes.Buffer
	for {
		line, err = readLine(b)
		if err != nil {
			if err == io.EOF {
				return nil, structuralf(offset, "object %d not closed before end of file", num)
			}
			return nil, err
		}
		body.WriteString(line)
		if line == ">>\n" {
			if line, err = readLine(b); err != nil || line != "endobj\n" {
				return nil, structuralf(offset, "object %d: close token not followed by endobj", num)
			}
			return body.Bytes(), nil
		}
	}
}

func (f *File) dict(num int) (Dict, error) {
	body, err := f.ReadObject(num)
	if err != nil {
		return Dict{}, err
	}
	return Dict{f: f, num: num, data: body}, nil
}

// OverwriteObject appends a new physical copy of object num holding
// body. The object number is unchanged, so references to it resolve
// to the new copy once Finish has written the new cross-reference
// section.
func (f *File) OverwriteObject(num int, body []byte) error {
	offset, err := f.writeObject(num, body)
	if err != nil {
		return err
	}
	if i, ok := f.rewriteIdx[num]; ok {
		f.rewrites[i].offset = offset
	} else {
		f.rewriteIdx[num] = len(f.rewrites)
		f.rewrites = append(f.rewrites, rewrite{num, offset})
	}
	return nil
}

// ExtendDict overwrites the object behind d after splicing extra in
// front of the closing ">>" token. This is the only supported way to
// add keys to an existing dictionary.
func (f *File) ExtendDict(d Dict, extra []byte) error {
	if !bytes.HasSuffix(d.data, []byte(">>\n")) {
		return structuralf(0, "object %d does not end with a dictionary close token", d.num)
	}
	body := make([]byte, 0, len(d.data)+len(extra)+4)
	body = append(body, d.data[:len(d.data)-3]...)
	body = append(body, extra...)
	body = append(body, "\n>>\n"...)
	return f.OverwriteObject(d.num, body)
}

// NextObjectNumber returns the object number the next WriteNewObject
// call will use.
func (f *File) NextObjectNumber() int {
	return len(f.offsets) + len(f.newOffsets)
}

// WriteNewObject appends a new object holding body and returns its
// number. Numbers are allocated in increasing, gap-free order so that
// Finish can cover them with a single contiguous subsection.
func (f *File) WriteNewObject(body []byte) (int, error) {
	num := f.NextObjectNumber()
	offset, err := f.writeObject(num, body)
	if err != nil {
		return 0, err
	}
	f.newOffsets = append(f.newOffsets, offset)
	return num, nil
}

// Finish writes the cross-reference section and trailer for the
// overwritten and new objects, chained to the original table through
// Prev. It makes the underlying file a valid updated PDF and must be
// called exactly once.
func (f *File) Finish() error {
	if f.finished {
		return ErrFinished
	}
	startxref, err := f.f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	f.finished = true

	var buf bytes.Buffer
	buf.WriteString("xref\n")
	// One subsection per overwritten object, in overwrite-call order;
	// not worth finding contiguous runs for the handful there are.
	for _, rw := range f.rewrites {
		fmt.Fprintf(&buf, "%d 1\n%010d 00000 n \n", rw.num, rw.offset)
	}
	if len(f.newOffsets) > 0 {
		fmt.Fprintf(&buf, "%d %d\n", len(f.offsets), len(f.newOffsets))
		for _, offset := range f.newOffsets {
			fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
		}
	}
	fmt.Fprintf(&buf,
		"trailer\n<< /Size %d /Root %d 0 R /Info %d 0 R /Prev %d >>\nstartxref\n%d\n%%%%EOF\n",
		f.NextObjectNumber(), f.catalog.num, f.info.num, f.startxref, startxref)

	if _, err := f.f.Write(buf.Bytes()); err != nil {
		return err
	}
	slog.Debug("wrote incremental update",
		slog.Int("overwritten", len(f.rewrites)),
		slog.Int("new", len(f.newOffsets)),
		slog.Int64("startxref", startxref))
	return nil
}

func (f *File) writeObject(num int, body []byte) (int64, error) {
	if f.finished {
		return 0, ErrFinished
	}
	offset, err := f.f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d 0 obj\n", num)
	buf.Write(body)
	buf.WriteString("\nendobj\n")
	if _, err := f.f.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return offset, nil
}

// readLine returns the next line including its '\n' terminator.
func readLine(b *bufio.Reader) (string, error) {
	line, err := b.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return "", structuralf(0, "truncated line %q", line)
		}
		return "", err
	}
	return line, nil
}
