// Package uri converts IRIs to the ASCII-only URIs embedded in PDF
// actions.
package uri

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// IRIToURI returns iri with a punycoded host and every remaining
// non-ASCII byte percent-encoded. data: URIs pass through untouched.
func IRIToURI(iri string) (string, error) {
	if strings.HasPrefix(iri, "data:") {
		return iri, nil
	}
	u, err := url.Parse(iri)
	if err != nil {
		return "", fmt.Errorf("invalid link target %q: %w", iri, err)
	}
	if host := u.Hostname(); host != "" {
		ascii, err := idna.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("invalid host in link target %q: %w", iri, err)
		}
		if port := u.Port(); port != "" {
			u.Host = ascii + ":" + port
		} else {
			u.Host = ascii
		}
	}
	return escapeNonASCII(u.String()), nil
}

func escapeNonASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] == ' ' {
			goto Escape
		}
	}
	return s

Escape:
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x80 || c == ' ' {
			fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
