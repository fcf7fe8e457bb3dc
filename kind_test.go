package binrec

import (
	"reflect"
	"testing"
)

func TestKind_Width(t *testing.T) {
	widths := map[Kind]int{
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
	for k, w := range widths {
		if a := k.Width(); a != w {
			t.Errorf("%s: width %d != %d", k, a, w)
		}
	}
}

func TestKind_DecodeLittleEndian(t *testing.T) {
	cases := []struct {
		kind Kind
		in   string
		e    Value
	}{
		{KindUint8, "ff", Uint(255)},
		{KindUint16, "3412", Uint(0x1234)},
		{KindUint32, "78563412", Uint(0x12345678)},
		{KindUint64, "efcdab8967452301", Uint(0x0123456789abcdef)},
		{KindInt8, "80", Int(-128)},
		{KindInt16, "ffff", Int(-1)},
		{KindInt32, "00000080", Int(-2147483648)},
		{KindInt64, "feffffffffffffff", Int(-2)},
		{KindFloat32, "0000803f", Float32(1.0)},
		{KindFloat64, "000000000000f0bf", Float64(-1.0)},
	}

	for _, c := range cases {
		a := decodeKind(c.kind, mkex(c.in))
		if !reflect.DeepEqual(c.e, a) {
			t.Errorf("%s: %v != %v", c.kind, c.e, a)
		}
	}
}

func TestKind_EncodeDecode(t *testing.T) {
	cases := []struct {
		kind Kind
		v    Value
	}{
		{KindUint8, Uint(0)},
		{KindUint16, Uint(65535)},
		{KindUint32, Uint(4000000000)},
		{KindUint64, Uint(1<<64 - 1)},
		{KindInt8, Int(-1)},
		{KindInt16, Int(-32768)},
		{KindInt32, Int(2147483647)},
		{KindInt64, Int(-9000000000)},
		{KindFloat32, Float32(3.5)},
		{KindFloat64, Float64(-2.25)},
	}

	for _, c := range cases {
		p := make([]byte, c.kind.Width())
		encodeKind(c.kind, c.v, p)
		a := decodeKind(c.kind, p)
		if !reflect.DeepEqual(c.v, a) {
			t.Errorf("%s: %v != %v", c.kind, c.v, a)
		}
	}
}
