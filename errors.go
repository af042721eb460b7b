package pdfmeta

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrFinished is returned when a File is written to after Finish,
// or when Finish is called a second time.
var ErrFinished = errors.New("update already finished")

// A StructuralError reports PDF bytes that deviate from the layout
// this package assumes its producer emits. It always aborts the
// metadata pass; the base file is left untouched.
type StructuralError struct {
	Pos int64 // byte offset in the file, 0 if unknown
	Err error
}

func (e *StructuralError) Error() string {
	s := "unexpected PDF structure: " + e.Err.Error()
	if e.Pos > 0 {
		s += " (at byte " + strconv.FormatInt(e.Pos, 10) + ")"
	}
	return s
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structuralf(pos int64, format string, args ...any) error {
	return &StructuralError{Pos: pos, Err: fmt.Errorf(format, args...)}
}
