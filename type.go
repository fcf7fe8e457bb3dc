package binrec

// Type describes the declared type of one record field before compilation.
//
// The following structures implement Type:
//   - Prim
//   - Blob
//   - Text
//   - List
//   - Struct
//
// The set is closed: the compiler, encoder, and value constructor switch
// exhaustively over these variants and anything else fails compilation.
type Type interface {
	isType()
}

var (
	_ Type = Prim(0)
	_ Type = Blob(0)
	_ Type = Text(0)
	_ Type = List{}
	_ Type = Struct{}
)

// Prim declares a primitive field of the given Kind.
type Prim Kind

func (Prim) isType() {}

// Blob declares a fixed-length raw byte field. The value is the byte length
// and must be positive.
type Blob int

func (Blob) isType() {}

// Text declares a fixed-length UTF-8 text field. The value is the byte
// length (not the rune count) and must be positive.
type Text int

func (Text) isType() {}

// List declares a fixed-count homogeneous sequence: Count consecutive
// instances of Elem on the wire.
type List struct {
	Elem  Type
	Count int
}

func (List) isType() {}

// Struct declares a named, ordered product of fields. Field order is the
// wire order.
type Struct struct {
	Name   string
	Fields []Field
}

func (Struct) isType() {}

// Field is one named member of a Struct declaration.
type Field struct {
	Name string
	Type Type
}

// Convenience declarations for the primitive kinds.
var (
	U8  = Prim(KindUint8)
	U16 = Prim(KindUint16)
	U32 = Prim(KindUint32)
	U64 = Prim(KindUint64)
	I8  = Prim(KindInt8)
	I16 = Prim(KindInt16)
	I32 = Prim(KindInt32)
	I64 = Prim(KindInt64)
	F32 = Prim(KindFloat32)
	F64 = Prim(KindFloat64)
)
