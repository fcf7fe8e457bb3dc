package binrec

type nodeType int

const (
	nodeLeaf nodeType = iota
	nodeBlob
	nodeText
	nodeList
	nodeStruct
)

// node is the compiled form of one declared field. Nodes are immutable once
// Compile returns; every size is computed bottom-up during compilation and
// never recomputed.
type node struct {
	typ    nodeType
	kind   Kind          // nodeLeaf
	length int           // nodeBlob, nodeText
	count  int           // nodeList
	elem   *node         // nodeList
	fields []structField // nodeStruct
	size   int
}

type structField struct {
	name string
	node *node
}

// leaf is one entry of the flattened leaf list: a primitive, blob, or text
// node together with its cumulative byte offset from the start of the record
// and the dotted field path used in error reporting. A blob or text node is
// a single leaf spanning its declared length; it is never split into bytes.
type leaf struct {
	node   *node
	offset int
	path   string
}

// Schema is a compiled record layout: the node tree, the depth-first
// flattened leaf list, and the fixed total byte size. A Schema is immutable
// and may back any number of concurrent Readers without locking.
type Schema struct {
	name   string
	root   *node
	leaves []leaf
	size   int
}

// Name returns the name of the root struct declaration.
func (s *Schema) Name() string { return s.name }

// Size returns the total byte size of one record. It is fixed at compile
// time: the sum of field sizes in declared order, with a fixed list of n
// elements contributing n times its element size.
func (s *Schema) Size() int { return s.size }
