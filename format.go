package pdfmeta

import (
	"fmt"

	"github.com/renderkit/pdfmeta/internal/encoding"
)

// textString returns the PDF string literal for s. Plain ASCII text is
// emitted directly; anything else is encoded as UTF-16BE with a byte
// order mark. Either way the bytes that delimit string literals are
// backslash-escaped, so every emitted token stays within the ASCII
// subset of PDF syntax.
func textString(s string) ([]byte, error) {
	if encoding.IsASCII(s) {
		return encoding.EscapeString([]byte(s)), nil
	}
	b, err := encoding.UTF16Encode(s)
	if err != nil {
		return nil, fmt.Errorf("encoding text %q: %w", s, err)
	}
	return encoding.EscapeString(b), nil
}

// goToAction returns the /A entry sending the viewer to dest.
func goToAction(dest Destination) []byte {
	return []byte(fmt.Sprintf("/A << /Type /Action /S /GoTo /D [%d /XYZ %f %f 0] >>\n",
		dest.Page, dest.X, dest.Y))
}
