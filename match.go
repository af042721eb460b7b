package pdfmeta

import "regexp"

// The value grammar is deliberately tiny: every key this package ever
// reads holds either a name, an indirect reference, or an array of
// indirect references. One pattern per shape, compiled on first use
// and cached on the File for its lifetime.
type matcherKind int

const (
	matchName  matcherKind = iota // /Key /Name
	matchRef                      // /Key N 0 R
	matchArray                    // /Key [ ... ]
)

type matcherKey struct {
	key  string
	kind matcherKind
}

func (f *File) matcher(key string, kind matcherKind) *regexp.Regexp {
	k := matcherKey{key, kind}
	if m, ok := f.matchers[k]; ok {
		return m
	}
	var pat string
	switch kind {
	case matchName:
		// No end delimiter; \w+ stops at the next delimiter byte.
		pat = `/` + regexp.QuoteMeta(key) + ` /(\w+)`
	case matchRef:
		pat = `/` + regexp.QuoteMeta(key) + ` (\d+) 0 R`
	case matchArray:
		pat = `/` + regexp.QuoteMeta(key) + ` \[(.+?)\]`
	}
	m := regexp.MustCompile(pat)
	f.matchers[k] = m
	return m
}
