package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errSerialized = errors.New("malformed serialized map")

// decodeSerializedMap reads a flat PHP serialized array such as
//
//	a:2:{s:4:"html";s:3:"<b>";s:3:"url";s:7:"foo.com";}
//
// into its entries. Integer, boolean, float and null scalars are kept as
// their literal text. Nested arrays are not supported.
func decodeSerializedMap(s string) (map[string]string, error) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')

	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no entries", errSerialized)
	}

	r := &serialReader{s: s[start+1 : end]}
	out := make(map[string]string)

	for !r.done() {
		key, err := r.scalar()
		if err != nil {
			return nil, err
		}

		if r.done() {
			return nil, fmt.Errorf("%w: key %q has no value", errSerialized, key)
		}

		value, err := r.scalar()
		if err != nil {
			return nil, err
		}

		out[key] = value
	}

	return out, nil
}

type serialReader struct {
	s   string
	pos int
}

func (r *serialReader) done() bool {
	for r.pos < len(r.s) && (r.s[r.pos] == ' ' || r.s[r.pos] == '\n' || r.s[r.pos] == '\r' || r.s[r.pos] == '\t') {
		r.pos++
	}

	return r.pos >= len(r.s)
}

func (r *serialReader) scalar() (string, error) {
	kind := r.s[r.pos]

	if kind == 'N' {
		if !strings.HasPrefix(r.s[r.pos:], "N;") {
			return "", r.fail("bad null")
		}

		r.pos += 2

		return "", nil
	}

	if r.pos+1 >= len(r.s) || r.s[r.pos+1] != ':' {
		return "", r.fail("missing ':' after type")
	}

	switch kind {
	case 's':
		return r.str()
	case 'i', 'b', 'd':
		rest := r.s[r.pos+2:]

		semi := strings.IndexByte(rest, ';')
		if semi < 0 {
			return "", r.fail("unterminated value")
		}

		r.pos += 2 + semi + 1

		return rest[:semi], nil
	default:
		return "", r.fail(fmt.Sprintf("unsupported type %q", kind))
	}
}

// str reads s:<n>:"<n bytes>";
func (r *serialReader) str() (string, error) {
	rest := r.s[r.pos+2:]

	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return "", r.fail("missing string length")
	}

	n, err := strconv.Atoi(rest[:colon])
	if err != nil || n < 0 {
		return "", r.fail("bad string length")
	}

	open := r.pos + 2 + colon + 1
	if open >= len(r.s) || r.s[open] != '"' {
		return "", r.fail("missing opening quote")
	}

	begin := open + 1
	if n > len(r.s)-begin {
		return "", r.fail("string length exceeds input")
	}

	end := begin + n

	if end+1 >= len(r.s) || r.s[end] != '"' || r.s[end+1] != ';' {
		return "", r.fail("string length does not match")
	}

	r.pos = end + 2

	return r.s[begin:end], nil
}

func (r *serialReader) fail(msg string) error {
	return fmt.Errorf("%w: %s at offset %d", errSerialized, msg, r.pos)
}
