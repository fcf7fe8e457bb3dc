package binrec

import (
	"fmt"

	"github.com/binrec/binrec-go/logging"
)

// CompileOptions configures a Compile call.
type CompileOptions struct {
	logger logging.Logger
}

// WithLogger has the compiler report the compiled layout (name, total size,
// leaf count) at the Debug classification. The default is no logging.
func WithLogger(l logging.Logger) func(*CompileOptions) {
	return func(o *CompileOptions) {
		o.logger = l
	}
}

// Compile turns a struct declaration into an immutable Schema: the compiled
// node tree, the depth-first flattened leaf list with cumulative byte
// offsets, and the total record size.
//
// Compilation validates the whole declaration eagerly and fails with a
// *ConfigurationError on the first problem; no partial Schema is returned.
// Compile once per declared structure and share the Schema across Readers
// (see also Registry).
func Compile(def Struct, opts ...func(*CompileOptions)) (*Schema, error) {
	o := CompileOptions{logger: logging.Noop{}}
	for _, opt := range opts {
		opt(&o)
	}

	root, err := compileType(def, def.Name)
	if err != nil {
		return nil, err
	}

	s := &Schema{name: def.Name, root: root, size: root.size}
	flatten(root, "", 0, &s.leaves)

	o.logger.Logf(logging.Debug, "compiled schema %q: %d bytes, %d leaves",
		s.name, s.size, len(s.leaves))
	return s, nil
}

func compileType(t Type, path string) (*node, error) {
	switch t := t.(type) {
	case Prim:
		if !Kind(t).valid() {
			return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("unrecognized primitive kind %d", t)}
		}
		k := Kind(t)
		return &node{typ: nodeLeaf, kind: k, size: k.Width()}, nil

	case Blob:
		if t <= 0 {
			return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("blob length must be positive, got %d", t)}
		}
		return &node{typ: nodeBlob, length: int(t), size: int(t)}, nil

	case Text:
		if t <= 0 {
			return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("text length must be positive, got %d", t)}
		}
		return &node{typ: nodeText, length: int(t), size: int(t)}, nil

	case List:
		if t.Count <= 0 {
			return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("list count must be positive, got %d", t.Count)}
		}
		if t.Elem == nil {
			return nil, &ConfigurationError{Path: path, Reason: "list element type is missing"}
		}
		elem, err := compileType(t.Elem, path+"[]")
		if err != nil {
			return nil, err
		}
		return &node{typ: nodeList, count: t.Count, elem: elem, size: t.Count * elem.size}, nil

	case Struct:
		if len(t.Fields) == 0 {
			return nil, &ConfigurationError{Path: path, Reason: "struct has no fields"}
		}
		seen := make(map[string]struct{}, len(t.Fields))
		fields := make([]structField, 0, len(t.Fields))
		size := 0
		for _, f := range t.Fields {
			if f.Name == "" {
				return nil, &ConfigurationError{Path: path, Reason: "field name is missing"}
			}
			if _, ok := seen[f.Name]; ok {
				return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("duplicate field name %q", f.Name)}
			}
			seen[f.Name] = struct{}{}

			fp := joinPath(path, f.Name)
			if f.Type == nil {
				return nil, &ConfigurationError{Path: fp, Reason: "field type is missing"}
			}
			n, err := compileType(f.Type, fp)
			if err != nil {
				return nil, err
			}
			fields = append(fields, structField{name: f.Name, node: n})
			size += n.size
		}
		return &node{typ: nodeStruct, fields: fields, size: size}, nil

	default:
		return nil, &ConfigurationError{Path: path, Reason: fmt.Sprintf("unsupported field type %T", t)}
	}
}

// flatten appends the depth-first, left-to-right leaf sequence of n to out,
// starting at byte offset off, and returns the offset past n. A fixed list
// unrolls into count consecutive copies of its element's leaves.
func flatten(n *node, path string, off int, out *[]leaf) int {
	switch n.typ {
	case nodeLeaf, nodeBlob, nodeText:
		*out = append(*out, leaf{node: n, offset: off, path: path})
		return off + n.size
	case nodeList:
		for i := 0; i < n.count; i++ {
			off = flatten(n.elem, fmt.Sprintf("%s[%d]", path, i), off, out)
		}
		return off
	default: // nodeStruct
		for _, f := range n.fields {
			off = flatten(f.node, joinPath(path, f.name), off, out)
		}
		return off
	}
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
