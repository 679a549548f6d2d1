package mec

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldReader reads positional fields of one record with sticky-error
// semantics: the first failure wins and later reads become no-ops, so
// decoders read every field and check Err once. Positions are 1-based
// after the keyword. A blank field counts as absent, which lets
// records omit optional fields in the middle ("MAT1,1,2.1e11,,0.3").
type fieldReader struct {
	fields []string
	err    error
}

func newReader(rec RawRecord) *fieldReader {
	return &fieldReader{fields: rec.Fields}
}

func (r *fieldReader) Err() error { return r.err }

func (r *fieldReader) failf(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

// has reports whether field pos is present and non-blank.
func (r *fieldReader) has(pos int) bool {
	return pos-1 < len(r.fields) && r.fields[pos-1] != ""
}

func (r *fieldReader) raw(pos int) string {
	return r.fields[pos-1]
}

// rest returns all fields from pos onward, blanks included.
func (r *fieldReader) rest(pos int) []string {
	if pos-1 >= len(r.fields) {
		return nil
	}
	return r.fields[pos-1:]
}

// String reads a required string field.
func (r *fieldReader) String(pos int, name string) string {
	if !r.has(pos) {
		r.failf("field %d (%s) is required", pos, name)
		return ""
	}
	return r.raw(pos)
}

// OptString reads an optional string field with a default.
func (r *fieldReader) OptString(pos int, name, def string) string {
	if !r.has(pos) {
		return def
	}
	return r.raw(pos)
}

// Int reads a required integer field.
func (r *fieldReader) Int(pos int, name string) int {
	if !r.has(pos) {
		r.failf("field %d (%s) is required", pos, name)
		return 0
	}
	n, err := strconv.Atoi(r.raw(pos))
	if err != nil {
		r.failf("field %d (%s): expected integer, got %q", pos, name, r.raw(pos))
		return 0
	}
	return n
}

// OptInt reads an optional integer field with a default.
func (r *fieldReader) OptInt(pos int, name string, def int) int {
	if !r.has(pos) {
		return def
	}
	return r.Int(pos, name)
}

// Float reads a required float field.
func (r *fieldReader) Float(pos int, name string) float64 {
	if !r.has(pos) {
		r.failf("field %d (%s) is required", pos, name)
		return 0
	}
	v, err := strconv.ParseFloat(r.raw(pos), 64)
	if err != nil {
		r.failf("field %d (%s): expected number, got %q", pos, name, r.raw(pos))
		return 0
	}
	return v
}

// OptFloat reads an optional float field with a default.
func (r *fieldReader) OptFloat(pos int, name string, def float64) float64 {
	if !r.has(pos) {
		return def
	}
	return r.Float(pos, name)
}

// ID reads a required set/record identifier: a positive integer,
// returned in canonical decimal form.
func (r *fieldReader) ID(pos int, name string) string {
	n := r.Int(pos, name)
	if r.err != nil {
		return ""
	}
	if n <= 0 {
		r.failf("field %d (%s): id must be positive, got %d", pos, name, n)
		return ""
	}
	return strconv.Itoa(n)
}

// canonID normalizes numeric identifiers to canonical decimal form so
// "01" and "1" name the same set; non-numeric ids pass through
// unchanged (step and set ids may be alphanumeric).
func canonID(s string) string {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return strconv.Itoa(n)
	}
	return s
}

// Enum reads an optional enumerated field, upper-cased, validated
// against the allowed set.
func (r *fieldReader) Enum(pos int, name, def string, allowed ...string) string {
	if !r.has(pos) {
		return def
	}
	v := strings.ToUpper(r.raw(pos))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	r.failf("field %d (%s): %q is not one of %s", pos, name, r.raw(pos), strings.Join(allowed, "/"))
	return def
}
