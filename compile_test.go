package binrec

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/binrec/binrec-go/logging"
)

func paymentDef() Struct {
	return Struct{Name: "Payment", Fields: []Field{
		{"amount", F32},
		{"sender", U64},
		{"receiver", U64},
	}}
}

func TestCompile_TotalSize(t *testing.T) {
	s, err := Compile(Struct{Name: "Account", Fields: []Field{
		{"id", U64},
		{"balance", F32},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 12 {
		t.Fatalf("size %d != 12", s.Size())
	}
}

func TestCompile_ListSize(t *testing.T) {
	s, err := Compile(Struct{Name: "History", Fields: []Field{
		{"recent", List{Elem: paymentDef(), Count: 3}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 60 {
		t.Fatalf("size %d != 60", s.Size())
	}
}

func TestCompile_LeafOffsets(t *testing.T) {
	s, err := Compile(Struct{Name: "Message", Fields: []Field{
		{"tag", U8},
		{"body", Blob(4)},
		{"pair", List{Elem: U16, Count: 2}},
		{"inner", Struct{Name: "Inner", Fields: []Field{
			{"a", I32},
			{"b", Text(3)},
		}}},
	}})
	if err != nil {
		t.Fatal(err)
	}

	expect := []struct {
		path   string
		offset int
		size   int
	}{
		{"tag", 0, 1},
		{"body", 1, 4},
		{"pair[0]", 5, 2},
		{"pair[1]", 7, 2},
		{"inner.a", 9, 4},
		{"inner.b", 13, 3},
	}

	if len(s.leaves) != len(expect) {
		t.Fatalf("leaf count %d != %d", len(s.leaves), len(expect))
	}
	for i, e := range expect {
		lf := s.leaves[i]
		if lf.path != e.path || lf.offset != e.offset || lf.node.size != e.size {
			t.Errorf("leaf %d: got (%s, %d, %d), want (%s, %d, %d)",
				i, lf.path, lf.offset, lf.node.size, e.path, e.offset, e.size)
		}
	}
	if s.Size() != 16 {
		t.Errorf("size %d != 16", s.Size())
	}
}

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name string
		def  Struct
		path string
	}{
		{
			"zero blob length",
			Struct{Name: "S", Fields: []Field{{"b", Blob(0)}}},
			"S.b",
		},
		{
			"negative text length",
			Struct{Name: "S", Fields: []Field{{"t", Text(-1)}}},
			"S.t",
		},
		{
			"zero list count",
			Struct{Name: "S", Fields: []Field{{"l", List{Elem: U8, Count: 0}}}},
			"S.l",
		},
		{
			"missing list element",
			Struct{Name: "S", Fields: []Field{{"l", List{Count: 2}}}},
			"S.l",
		},
		{
			"missing field type",
			Struct{Name: "S", Fields: []Field{{"x", nil}}},
			"S.x",
		},
		{
			"unrecognized kind",
			Struct{Name: "S", Fields: []Field{{"x", Prim(99)}}},
			"S.x",
		},
		{
			"empty struct",
			Struct{Name: "S"},
			"S",
		},
		{
			"empty nested struct",
			Struct{Name: "S", Fields: []Field{{"n", Struct{Name: "N"}}}},
			"S.n",
		},
		{
			"duplicate field name",
			Struct{Name: "S", Fields: []Field{{"x", U8}, {"x", U8}}},
			"S",
		},
		{
			"missing field name",
			Struct{Name: "S", Fields: []Field{{"", U8}}},
			"S",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Compile(c.def)
			if s != nil {
				t.Fatal("partial schema returned")
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("error %v is not a ConfigurationError", err)
			}
			if cerr.Path != c.path {
				t.Errorf("path %q != %q", cerr.Path, c.path)
			}
		})
	}
}

func TestCompile_OrderMatters(t *testing.T) {
	ab, err := Compile(Struct{Name: "S", Fields: []Field{{"a", U8}, {"b", U8}}})
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Compile(Struct{Name: "S", Fields: []Field{{"b", U8}, {"a", U8}}})
	if err != nil {
		t.Fatal(err)
	}

	in := []byte{1, 2}
	decode := func(s *Schema) Record {
		r := NewReader(s)
		r.Feed(in)
		rec, err := r.Build()
		if err != nil {
			t.Fatal(err)
		}
		return rec
	}

	r1, r2 := decode(ab), decode(ba)
	a1, _ := r1.Field("a")
	a2, _ := r2.Field("a")
	if a1 != Uint(1) || a2 != Uint(2) {
		t.Fatalf("fields are positional: a=%v then a=%v", a1, a2)
	}
}

func TestCompile_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.StandardLogger{Logger: log.New(&buf, "", 0)}

	if _, err := Compile(paymentDef(), WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, `"Payment"`) {
		t.Fatalf("unexpected log output: %q", out)
	}
}
