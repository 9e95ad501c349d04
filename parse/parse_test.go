package parse

import (
	"testing"

	"github.com/dictwrap/go-dictwrap/format"
	"github.com/dictwrap/go-dictwrap/ir"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, n *ir.Node)
	}{
		{"string", `"hello"`, func(t *testing.T, n *ir.Node) {
			if n.Type != ir.StringType || n.String != "hello" {
				t.Errorf("got %v %q", n.Type, n.String)
			}
		}},
		{"int", `42`, func(t *testing.T, n *ir.Node) {
			if n.Type != ir.NumberType || n.Int64 == nil || *n.Int64 != 42 {
				t.Errorf("got %v", n)
			}
		}},
		{"float", `2.5`, func(t *testing.T, n *ir.Node) {
			if n.Type != ir.NumberType || n.Float64 == nil || *n.Float64 != 2.5 {
				t.Errorf("got %v", n)
			}
		}},
		{"bool", `true`, func(t *testing.T, n *ir.Node) {
			if n.Type != ir.BoolType || !n.Bool {
				t.Errorf("got %v", n)
			}
		}},
		{"null", `null`, func(t *testing.T, n *ir.Node) {
			if n.Type != ir.NullType {
				t.Errorf("got %v", n.Type)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, n)
		})
	}
}

func TestParsePreservesKeyOrder(t *testing.T) {
	n, err := Parse([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.ObjectType {
		t.Fatalf("got %v, want object", n.Type)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, f := range n.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestParseNested(t *testing.T) {
	n, err := Parse([]byte(`{"career": [{"title": "X"}], "n": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	career := ir.Get(n, "career")
	if career == nil || career.Type != ir.ArrayType {
		t.Fatalf("career = %v", career)
	}
	first := career.Values[0]
	if first.Type != ir.ObjectType {
		t.Fatalf("career[0] type = %v", first.Type)
	}
	if got := ir.Get(first, "title"); got == nil || got.String != "X" {
		t.Errorf("title = %v", got)
	}
	if first.Parent != career || career.Parent != n {
		t.Error("parent links not established")
	}
}

func TestParseYAML(t *testing.T) {
	n, err := Parse([]byte("name: alice\nage: 30\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(n, "name"); got == nil || got.String != "alice" {
		t.Errorf("name = %v", got)
	}
	if got := ir.Get(n, "age"); got == nil || got.Int64 == nil || *got.Int64 != 30 {
		t.Errorf("age = %v", got)
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte(`{"a": "b`)); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestParseDeclaredJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"a": }`), ParseFormat(format.JSONFormat)); err == nil {
		t.Error("declared json accepted malformed input")
	}
	if _, err := Parse([]byte("name: alice\n"), ParseFormat(format.JSONFormat)); err == nil {
		t.Error("declared json accepted yaml input")
	}
	n, err := Parse([]byte(`{"a": 1}`), ParseFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(n, "a"); got == nil || got.Int64 == nil || *got.Int64 != 1 {
		t.Errorf("a = %v", got)
	}
	// undeclared input keeps the lenient yaml path
	if _, err := Parse([]byte("name: alice\n")); err != nil {
		t.Errorf("lenient parse failed: %v", err)
	}
}
