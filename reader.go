package binrec

import (
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Reader incrementally assembles one record's worth of bytes for a compiled
// Schema. A Reader starts empty, accumulates bytes through Feed, reports
// completion through Complete, and decodes through Build.
//
// The buffer is allocated once at NewReader and reused across records: a
// successful Build implicitly resets the Reader so it can roll straight into
// the next record from the same stream. A Reader is not safe for concurrent
// use; it belongs to one logical stream of records.
type Reader struct {
	schema *Schema
	buf    []byte
	n      int
}

// NewReader returns an empty Reader for the compiled schema. Many Readers
// may share one Schema.
func NewReader(s *Schema) *Reader {
	return &Reader{schema: s, buf: make([]byte, s.size)}
}

// Feed appends bytes from p to the record buffer, stopping at the record
// boundary, and returns the number of bytes consumed. Bytes beyond the
// remaining capacity are never consumed: the caller re-feeds p[n:] for the
// next record after Build or Reset, so framing on a continuous stream stays
// with the caller. Feeding a complete Reader consumes nothing.
func (r *Reader) Feed(p []byte) int {
	c := copy(r.buf[r.n:], p)
	r.n += c
	return c
}

// Complete reports whether a full record has accumulated.
func (r *Reader) Complete() bool { return r.n == r.schema.size }

// Buffered returns the number of bytes currently held.
func (r *Reader) Buffered() int { return r.n }

// Reset discards all buffered bytes, returning the Reader to empty. The
// underlying buffer is retained.
func (r *Reader) Reset() { r.n = 0 }

// Build decodes the buffered record against the schema's flattened leaf
// list and reconstructs the declared nested value.
//
// Build is only valid once Complete reports true; otherwise it fails with
// an *IncompleteDataError and the buffered bytes remain intact for further
// feeding. A *DecodeError (for example invalid UTF-8 in a text field)
// likewise leaves the buffer intact for inspection or Reset. On success the
// Reader is implicitly reset, ready for the next record.
func (r *Reader) Build() (Record, error) {
	if r.n != r.schema.size {
		return nil, &IncompleteDataError{Received: r.n, Total: r.schema.size}
	}

	vals := make([]Value, len(r.schema.leaves))
	for i, lf := range r.schema.leaves {
		v, err := decodeLeaf(lf, r.buf)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	v, _ := construct(r.schema.root, vals, 0)
	r.Reset()
	return v.(Record), nil
}

func decodeLeaf(lf leaf, buf []byte) (Value, error) {
	p := buf[lf.offset : lf.offset+lf.node.size]
	switch lf.node.typ {
	case nodeLeaf:
		return decodeKind(lf.node.kind, p), nil
	case nodeBlob:
		// copied: the Reader's buffer is reused for subsequent records
		b := make([]byte, len(p))
		copy(b, p)
		return Bytes(b), nil
	default: // nodeText
		if !utf8.Valid(p) {
			return nil, &DecodeError{Path: lf.path, Offset: lf.offset, Err: errInvalidUTF8}
		}
		return String(p), nil
	}
}
