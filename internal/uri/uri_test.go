package uri

import "testing"

func TestIRIToURI(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"https://example.com/page", "https://example.com/page"},
		{"data:text/plain,héllo", "data:text/plain,héllo"},
		{"https://bücher.example/", "https://xn--bcher-kva.example/"},
		{"https://bücher.example:8443/x", "https://xn--bcher-kva.example:8443/x"},
		{"https://example.com/café", "https://example.com/caf%C3%A9"},
		{"https://example.com/?q=café", "https://example.com/?q=caf%C3%A9"},
	}
	for _, tt := range tests {
		got, err := IRIToURI(tt.iri)
		if err != nil {
			t.Errorf("IRIToURI(%q): %v", tt.iri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IRIToURI(%q) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}

func TestIRIToURIInvalid(t *testing.T) {
	if _, err := IRIToURI("https://example.com/\x7f%zz"); err == nil {
		t.Error("IRIToURI accepted an unparsable target")
	}
}
