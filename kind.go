// Package binrec compiles declarative descriptions of fixed-size binary
// records into flat, offset-addressed layouts and incrementally assembles
// byte streams into fully-typed values against those layouts.
//
// A record is declared as a tree of named fields (see Type and Struct),
// compiled once into an immutable Schema, and decoded any number of times
// through Reader instances that share the compiled Schema. All multi-byte
// values are little-endian, fields are packed back-to-back with no padding,
// and every record has a total size known at compile time.
//
// This package performs no I/O: callers feed raw bytes obtained elsewhere
// into a Reader and receive a structured Value once a full record has
// accumulated.
package binrec

import (
	"encoding/binary"
	"math"
)

// Kind enumerates the primitive field kinds.
type Kind byte

// Enumeration of primitive kinds.
const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
)

var kindWidths = [...]int{
	KindUint8:   1,
	KindUint16:  2,
	KindUint32:  4,
	KindUint64:  8,
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   4,
	KindInt64:   8,
	KindFloat32: 4,
	KindFloat64: 8,
}

var kindNames = [...]string{
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// Width returns the fixed byte width of the kind.
func (k Kind) Width() int {
	return kindWidths[k]
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return int(k) < len(kindWidths)
}

// decodeKind interprets exactly k.Width() bytes of p as a value of kind k.
// Callers guarantee len(p) >= k.Width().
func decodeKind(k Kind, p []byte) Value {
	switch k {
	case KindUint8:
		return Uint(p[0])
	case KindUint16:
		return Uint(binary.LittleEndian.Uint16(p))
	case KindUint32:
		return Uint(binary.LittleEndian.Uint32(p))
	case KindUint64:
		return Uint(binary.LittleEndian.Uint64(p))
	case KindInt8:
		return Int(int8(p[0]))
	case KindInt16:
		return Int(int16(binary.LittleEndian.Uint16(p)))
	case KindInt32:
		return Int(int32(binary.LittleEndian.Uint32(p)))
	case KindInt64:
		return Int(int64(binary.LittleEndian.Uint64(p)))
	case KindFloat32:
		return Float32(math.Float32frombits(binary.LittleEndian.Uint32(p)))
	default: // KindFloat64
		return Float64(math.Float64frombits(binary.LittleEndian.Uint64(p)))
	}
}

// encodeKind writes v into the first k.Width() bytes of p. The numeric
// variant of v must already have been checked against k by the caller.
func encodeKind(k Kind, v Value, p []byte) {
	switch k {
	case KindUint8:
		p[0] = byte(v.(Uint))
	case KindUint16:
		binary.LittleEndian.PutUint16(p, uint16(v.(Uint)))
	case KindUint32:
		binary.LittleEndian.PutUint32(p, uint32(v.(Uint)))
	case KindUint64:
		binary.LittleEndian.PutUint64(p, uint64(v.(Uint)))
	case KindInt8:
		p[0] = byte(int8(v.(Int)))
	case KindInt16:
		binary.LittleEndian.PutUint16(p, uint16(int16(v.(Int))))
	case KindInt32:
		binary.LittleEndian.PutUint32(p, uint32(int32(v.(Int))))
	case KindInt64:
		binary.LittleEndian.PutUint64(p, uint64(int64(v.(Int))))
	case KindFloat32:
		binary.LittleEndian.PutUint32(p, math.Float32bits(float32(v.(Float32))))
	default: // KindFloat64
		binary.LittleEndian.PutUint64(p, math.Float64bits(float64(v.(Float64))))
	}
}
