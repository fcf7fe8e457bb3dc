package binrec

import "fmt"

// Encode serializes a value conforming to the schema into its exact wire
// bytes, the inverse of Reader.Build: little-endian, no padding, fields
// packed in declared depth-first order. The value's shape must match the
// schema exactly — variant, lengths, and arities — or Encode fails with an
// *EncodeError. Numeric values that overflow their declared width are
// rejected, never truncated.
func Encode(s *Schema, rec Record) ([]byte, error) {
	p := make([]byte, s.size)
	if err := encodeNode(s.root, "", rec, p); err != nil {
		return nil, err
	}
	return p, nil
}

// encodeNode writes v into p, which the caller has sliced to exactly
// n.size bytes.
func encodeNode(n *node, path string, v Value, p []byte) error {
	switch n.typ {
	case nodeLeaf:
		return encodeLeafValue(n, path, v, p)

	case nodeBlob:
		b, ok := v.(Bytes)
		if !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Bytes, got %T", v)}
		}
		if len(b) != n.length {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("blob is %d bytes, schema declares %d", len(b), n.length)}
		}
		copy(p, b)
		return nil

	case nodeText:
		s, ok := v.(String)
		if !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected String, got %T", v)}
		}
		if len(s) != n.length {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("text is %d bytes, schema declares %d", len(s), n.length)}
		}
		copy(p, s)
		return nil

	case nodeList:
		a, ok := v.(Array)
		if !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Array, got %T", v)}
		}
		if len(a) != n.count {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("list has %d elements, schema declares %d", len(a), n.count)}
		}
		off := 0
		for i, el := range a {
			ep := fmt.Sprintf("%s[%d]", path, i)
			if err := encodeNode(n.elem, ep, el, p[off:off+n.elem.size]); err != nil {
				return err
			}
			off += n.elem.size
		}
		return nil

	default: // nodeStruct
		rec, ok := v.(Record)
		if !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Record, got %T", v)}
		}
		if len(rec) != len(n.fields) {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("record has %d fields, schema declares %d", len(rec), len(n.fields))}
		}
		off := 0
		for i, f := range n.fields {
			// positional: wire order is declaration order, names must agree
			if rec[i].Name != f.name {
				return &EncodeError{Path: path, Reason: fmt.Sprintf("field %d is %q, schema declares %q", i, rec[i].Name, f.name)}
			}
			fp := joinPath(path, f.name)
			if err := encodeNode(f.node, fp, rec[i].Value, p[off:off+f.node.size]); err != nil {
				return err
			}
			off += f.node.size
		}
		return nil
	}
}

func encodeLeafValue(n *node, path string, v Value, p []byte) error {
	switch n.kind {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		u, ok := v.(Uint)
		if !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Uint, got %T", v)}
		}
		if n.kind != KindUint64 && uint64(u)>>(8*n.kind.Width()) != 0 {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("value %d overflows %s", uint64(u), n.kind)}
		}
	case KindInt8, KindInt16, KindInt32, KindInt64:
		i, ok := v.(Int)
		if !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Int, got %T", v)}
		}
		if n.kind != KindInt64 {
			bits := uint(8 * n.kind.Width())
			lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if int64(i) < lo || int64(i) > hi {
				return &EncodeError{Path: path, Reason: fmt.Sprintf("value %d overflows %s", int64(i), n.kind)}
			}
		}
	case KindFloat32:
		if _, ok := v.(Float32); !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Float32, got %T", v)}
		}
	default: // KindFloat64
		if _, ok := v.(Float64); !ok {
			return &EncodeError{Path: path, Reason: fmt.Sprintf("expected Float64, got %T", v)}
		}
	}

	encodeKind(n.kind, v, p)
	return nil
}
