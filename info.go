package pdfmeta

import (
	"bytes"
	"strings"
	"time"
)

// DocumentInfo holds the keys written into the document information
// dictionary. Zero values are omitted.
type DocumentInfo struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	Producer string
	Created  time.Time
	Modified time.Time
}

// PDF date syntax, PDF 32000-1:2008 §7.9.4.
const dateFormat = "D:20060102150405"

func (info *DocumentInfo) dict() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<< ")

	text := func(key, value string) error {
		if value == "" {
			return nil
		}
		s, err := textString(value)
		if err != nil {
			return err
		}
		buf.WriteString("/" + key + " ")
		buf.Write(s)
		buf.WriteString(" ")
		return nil
	}

	if err := text("Title", info.Title); err != nil {
		return nil, err
	}
	if err := text("Author", info.Author); err != nil {
		return nil, err
	}
	if err := text("Subject", info.Subject); err != nil {
		return nil, err
	}
	if err := text("Keywords", strings.Join(info.Keywords, ", ")); err != nil {
		return nil, err
	}
	if err := text("Creator", info.Creator); err != nil {
		return nil, err
	}
	if err := text("Producer", info.Producer); err != nil {
		return nil, err
	}
	if !info.Created.IsZero() {
		buf.WriteString("/CreationDate (" + info.Created.Format(dateFormat) + ") ")
	}
	if !info.Modified.IsZero() {
		buf.WriteString("/ModDate (" + info.Modified.Format(dateFormat) + ") ")
	}

	buf.WriteString(">>")
	return buf.Bytes(), nil
}
