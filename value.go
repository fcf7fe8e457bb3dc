package binrec

// Value is one decoded field value.
//
// The following types implement Value:
//   - Uint
//   - Int
//   - Float32
//   - Float64
//   - Bytes
//   - String
//   - Array
//   - Record
type Value interface {
	// Interface projects the value onto plain Go types: uint64, int64,
	// float32, float64, []byte, string, []interface{}, and
	// map[string]interface{}. The projection is what Search evaluates
	// JMESPath expressions against.
	Interface() interface{}
}

var (
	_ Value = Uint(0)
	_ Value = Int(0)
	_ Value = Float32(0)
	_ Value = Float64(0)
	_ Value = Bytes(nil)
	_ Value = String("")
	_ Value = Array(nil)
	_ Value = Record(nil)
)

// Uint holds a decoded unsigned integer of any declared width.
type Uint uint64

func (v Uint) Interface() interface{} { return uint64(v) }

// Int holds a decoded signed integer of any declared width.
type Int int64

func (v Int) Interface() interface{} { return int64(v) }

// Float32 holds a decoded IEEE 754 single-precision value.
type Float32 float32

func (v Float32) Interface() interface{} { return float32(v) }

// Float64 holds a decoded IEEE 754 double-precision value.
type Float64 float64

func (v Float64) Interface() interface{} { return float64(v) }

// Bytes holds the contents of a fixed-length blob field. The slice is a
// copy; it does not alias the Reader's buffer.
type Bytes []byte

func (v Bytes) Interface() interface{} { return []byte(v) }

// String holds the contents of a fixed-length UTF-8 text field.
type String string

func (v String) Interface() interface{} { return string(v) }

// Array holds a decoded fixed list, in wire order.
type Array []Value

func (v Array) Interface() interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e.Interface()
	}
	return out
}

// Record holds a decoded struct as (name, value) pairs in declared order.
type Record []RecordField

// RecordField is one named member of a Record.
type RecordField struct {
	Name  string
	Value Value
}

// Field returns the value of the named field and whether it exists.
func (r Record) Field(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) Interface() interface{} {
	out := make(map[string]interface{}, len(r))
	for _, f := range r {
		out[f.Name] = f.Value.Interface()
	}
	return out
}

// construct rebuilds the nested value for n, consuming decoded leaf values
// from vals starting at index i in the same depth-first order flatten
// produced them, and returns the value and the next unconsumed index.
func construct(n *node, vals []Value, i int) (Value, int) {
	switch n.typ {
	case nodeLeaf, nodeBlob, nodeText:
		return vals[i], i + 1
	case nodeList:
		out := make(Array, n.count)
		for k := range out {
			out[k], i = construct(n.elem, vals, i)
		}
		return out, i
	default: // nodeStruct
		rec := make(Record, len(n.fields))
		for k, f := range n.fields {
			var v Value
			v, i = construct(f.node, vals, i)
			rec[k] = RecordField{Name: f.name, Value: v}
		}
		return rec, i
	}
}
