package pdfmeta

import (
	"bytes"
	"strconv"
)

// A Dict is a lazy, read-only view over one indirect object's raw
// bytes. It is not a parse tree: keys are extracted on demand with the
// fixed grammar in match.go. Lookups are undefined if the key string
// also occurs in an unrelated position inside the same byte range;
// none of the dictionaries this package reads do that.
type Dict struct {
	f    *File
	num  int // object number; 0 for the file trailer
	data []byte
}

// ObjectNumber returns the number of the object the view wraps,
// or 0 for the trailer dictionary.
func (d Dict) ObjectNumber() int {
	return d.num
}

// Raw returns the raw bytes of the object body.
// The slice is borrowed from the File and must not be modified.
func (d Dict) Raw() []byte {
	return d.data
}

func (d Dict) value(key string, kind matcherKind) ([]byte, error) {
	g := d.f.matcher(key, kind).FindSubmatch(d.data)
	if g == nil {
		return nil, structuralf(0, "object %d: no /%s entry in the expected form", d.num, key)
	}
	return g[1], nil
}

// Name returns the value of key, which must hold a name.
func (d Dict) Name(key string) (string, error) {
	v, err := d.value(key, matchName)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Type returns the value of the /Type key.
func (d Dict) Type() (string, error) {
	return d.Name("Type")
}

// IndirectDict follows the indirect reference held by key and returns
// a view over the referenced object.
func (d Dict) IndirectDict(key string) (Dict, error) {
	v, err := d.value(key, matchRef)
	if err != nil {
		return Dict{}, err
	}
	num, err := strconv.Atoi(string(v))
	if err != nil {
		return Dict{}, structuralf(0, "object %d: bad /%s reference %q", d.num, key, v)
	}
	return d.f.dict(num)
}

// IndirectDictArray follows the array of indirect references held by
// key and returns a view per referenced object. The array must use
// the producer's single-space " 0 R" convention.
func (d Dict) IndirectDictArray(key string) ([]Dict, error) {
	v, err := d.value(key, matchArray)
	if err != nil {
		return nil, err
	}
	// The array looks like " 3 0 R 4 0 R ", so splitting on " 0 R"
	// leaves the object numbers plus trailing white space.
	parts := bytes.Split(v, []byte(" 0 R"))
	trail := parts[len(parts)-1]
	if len(bytes.TrimSpace(trail)) != 0 {
		return nil, structuralf(0, "object %d: /%s array %q does not hold only references", d.num, key, v)
	}
	parts = parts[:len(parts)-1]
	dicts := make([]Dict, 0, len(parts))
	for _, p := range parts {
		num, err := strconv.Atoi(string(bytes.TrimSpace(p)))
		if err != nil {
			return nil, structuralf(0, "object %d: bad reference %q in /%s array", d.num, p, key)
		}
		dict, err := d.f.dict(num)
		if err != nil {
			return nil, err
		}
		dicts = append(dicts, dict)
	}
	return dicts, nil
}
