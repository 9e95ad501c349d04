package view

import (
	"errors"
	"testing"

	"github.com/dictwrap/go-dictwrap/ir"
	"github.com/dictwrap/go-dictwrap/parse"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func dictOver(t *testing.T, s string, opts ...Option) *DictView {
	t.Helper()
	v, ok := Wrap(mustParse(t, s), opts...).(*DictView)
	if !ok {
		t.Fatalf("not an object: %s", s)
	}
	return v
}

func TestWrapUnwrapIdentity(t *testing.T) {
	node := mustParse(t, `{"a": 1}`)
	v := Wrap(node)
	if Unwrap(v) != node {
		t.Error("unwrap did not return the wrapped node")
	}
	if v.Node() != node {
		t.Error("Node() did not return the wrapped node")
	}
	if Unwrap(42) != 42 {
		t.Error("non-view value did not pass through")
	}
}

func TestWrapNonContainer(t *testing.T) {
	if v := Wrap(ir.FromInt(1)); v != nil {
		t.Errorf("wrapping a scalar gave %T", v)
	}
}

func TestGetScalars(t *testing.T) {
	v := dictOver(t, `{"s": "x", "i": 3, "f": 0.5, "b": true, "z": null}`)
	tests := []struct {
		name string
		want any
	}{
		{"s", "x"},
		{"i", int64(3)},
		{"f", 0.5},
		{"b", true},
		{"z", nil},
	}
	for _, tt := range tests {
		got, err := v.Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %v (%T), want %v", tt.name, got, got, tt.want)
		}
	}
}

func TestGetMissing(t *testing.T) {
	v := dictOver(t, `{"a": 1}`)
	_, err := v.Get("b")
	if !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("err = %v", err)
	}
	var ae *AttributeError
	if !errors.As(err, &ae) || ae.Field != "b" {
		t.Errorf("error detail wrong: %v", err)
	}
}

func TestGetLazyNested(t *testing.T) {
	v := dictOver(t, `{"career": [{"title": "staff engineer"}]}`)
	career, err := v.Get("career")
	if err != nil {
		t.Fatal(err)
	}
	lv, ok := career.(*ListView)
	if !ok {
		t.Fatalf("career is %T", career)
	}
	first, ok := lv.At(0).(*DictView)
	if !ok {
		t.Fatalf("career[0] is %T", lv.At(0))
	}
	title, err := first.Get("title")
	if err != nil {
		t.Fatal(err)
	}
	if title != "staff engineer" {
		t.Errorf("title = %v", title)
	}
}

func TestSetUpdatesExisting(t *testing.T) {
	node := mustParse(t, `{"name": "alice", "age": 30}`)
	v := Wrap(node).(*DictView)
	if err := v.Set("name", "bob"); err != nil {
		t.Fatal(err)
	}
	got, _ := v.Get("name")
	if got != "bob" {
		t.Errorf("name = %v", got)
	}
	// the write must be visible through the underlying structure
	if ir.Get(node, "name").String != "bob" {
		t.Error("write not visible on the node")
	}
}

func TestSetNeverCreates(t *testing.T) {
	v := dictOver(t, `{"a": 1}`)
	err := v.Set("b", 2)
	if !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("err = %v", err)
	}
	if v.Has("b") {
		t.Error("failed set created a field")
	}
}

func TestStrictSet(t *testing.T) {
	v := dictOver(t, `{"street": "Highway 69", "age": 30, "rate": 0.5}`, Strict(true))
	err := v.Set("street", 221)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v", err)
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("error type = %T", err)
	}
	if want := "value for street must be a String, not Int"; te.Error() != want {
		t.Errorf("message = %q, want %q", te.Error(), want)
	}
	// same kind is fine
	if err := v.Set("street", "Elm St"); err != nil {
		t.Errorf("same-kind write failed: %v", err)
	}
	// int vs float is a mismatch even though both are numbers
	if err := v.Set("age", 0.5); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("int field accepted float: %v", err)
	}
	if err := v.Set("rate", 7); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("float field accepted int: %v", err)
	}
	if err := v.Set("age", 31); err != nil {
		t.Errorf("int write to int field failed: %v", err)
	}
}

func TestNonStrictSetChangesKind(t *testing.T) {
	v := dictOver(t, `{"street": "Highway 69"}`)
	if err := v.Set("street", 221); err != nil {
		t.Fatal(err)
	}
	got, _ := v.Get("street")
	if got != int64(221) {
		t.Errorf("street = %v (%T)", got, got)
	}
}

func TestKeyPrefixes(t *testing.T) {
	bare := dictOver(t, `{"@timestamp": "2024-01-01", "host": "a"}`)
	if _, err := bare.Get("timestamp"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("unprefixed view resolved timestamp: %v", err)
	}
	v := dictOver(t, `{"@timestamp": "2024-01-01", "host": "a"}`, KeyPrefixes("@"))
	got, err := v.Get("timestamp")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-01-01" {
		t.Errorf("timestamp = %v", got)
	}
	// bare names still resolve
	if got, _ := v.Get("host"); got != "a" {
		t.Errorf("host = %v", got)
	}
	if !v.Has("timestamp") || !v.Has("@timestamp") {
		t.Error("Has disagrees with Get")
	}
	if diff := cmp.Diff([]string{"timestamp", "host"}, v.Fields()); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}

func TestKeyPrefixOrder(t *testing.T) {
	v := dictOver(t, `{"@x": 1, "_x": 2, "x": 3}`, KeyPrefixes("_", "@"))
	got, err := v.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(2) {
		t.Errorf("first prefix did not win: got %v", got)
	}
}

func TestPrefixesPropagate(t *testing.T) {
	v := dictOver(t, `{"meta": {"@id": 9}}`, KeyPrefixes("@"))
	meta, err := v.Get("meta")
	if err != nil {
		t.Fatal(err)
	}
	got, err := meta.(*DictView).Get("id")
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(9) {
		t.Errorf("id = %v", got)
	}
}

func TestImmutable(t *testing.T) {
	v := dictOver(t, `{"a": 1, "nested": {"b": 2}}`, Mutable(false))
	if err := v.Set("a", 2); !errors.Is(err, ErrImmutable) {
		t.Errorf("Set err = %v", err)
	}
	if err := AddField(v, "c", 3); !errors.Is(err, ErrImmutable) {
		t.Errorf("AddField err = %v", err)
	}
	if _, err := DelField(v, "a"); !errors.Is(err, ErrImmutable) {
		t.Errorf("DelField err = %v", err)
	}
	// immutability follows into children
	nested, _ := v.Get("nested")
	if err := nested.(*DictView).Set("b", 3); !errors.Is(err, ErrImmutable) {
		t.Errorf("nested Set err = %v", err)
	}
	// reads are unaffected
	if got, _ := v.Get("a"); got != int64(1) {
		t.Errorf("a = %v", got)
	}
}

func TestImmutableIsViewLevel(t *testing.T) {
	node := mustParse(t, `{"a": 1}`)
	ro := Wrap(node, Mutable(false)).(*DictView)
	rw := Wrap(node).(*DictView)
	if err := rw.Set("a", 2); err != nil {
		t.Fatal(err)
	}
	if got, _ := ro.Get("a"); got != int64(2) {
		t.Error("write through second view not visible")
	}
}

func TestAddField(t *testing.T) {
	v := dictOver(t, `{"a": 1}`)
	if err := AddField(v, "b", "new"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.Fields()); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if got, _ := v.Get("b"); got != "new" {
		t.Errorf("b = %v", got)
	}
}

func TestAddFieldLiteralName(t *testing.T) {
	// AddField ignores prefixes: the literal name becomes the key
	v := dictOver(t, `{}`, KeyPrefixes("@"))
	if err := AddField(v, "x", 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x"}, v.Fields()); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}

func TestAddFieldExistingKey(t *testing.T) {
	v := dictOver(t, `{"a": "s"}`, Strict(true))
	if err := AddField(v, "a", 1); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("strict add over existing key: %v", err)
	}
	if err := AddField(v, "a", "t"); err != nil {
		t.Fatal(err)
	}
	if got, _ := v.Get("a"); got != "t" {
		t.Errorf("a = %v", got)
	}
	if v.Len() != 1 {
		t.Errorf("len = %d", v.Len())
	}
}

func TestAddFieldWrongTarget(t *testing.T) {
	lv := Wrap(mustParse(t, `[1]`)).(*ListView)
	if err := AddField(lv, "a", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v", err)
	}
}

func TestDelField(t *testing.T) {
	v := dictOver(t, `{"@ts": "now", "a": 1, "b": 2}`, KeyPrefixes("@"))
	prior, err := DelField(v, "ts")
	if err != nil {
		t.Fatal(err)
	}
	if prior != "now" {
		t.Errorf("prior = %v", prior)
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.Fields()); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if _, err := DelField(v, "ts"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("second delete: %v", err)
	}
	// later fields must keep valid back links
	if v.Node().Values[1].ParentIndex != 1 {
		t.Error("parent index not reindexed after delete")
	}
}

func TestSetViewValueAliases(t *testing.T) {
	outer := dictOver(t, `{"slot": null}`)
	inner := dictOver(t, `{"k": 1}`)
	if err := outer.Set("slot", inner); err != nil {
		t.Fatal(err)
	}
	if err := inner.Set("k", 2); err != nil {
		t.Fatal(err)
	}
	slot, _ := outer.Get("slot")
	if got, _ := slot.(*DictView).Get("k"); got != int64(2) {
		t.Error("stored view does not alias its source")
	}
}

func TestFieldsOrderAndLen(t *testing.T) {
	v := dictOver(t, `{"z": 1, "a": 2, "m": 3}`)
	if diff := cmp.Diff([]string{"z", "a", "m"}, v.Fields()); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if v.Len() != 3 {
		t.Errorf("len = %d", v.Len())
	}
}

func TestToPlain(t *testing.T) {
	v := dictOver(t, `{"a": 1, "l": [true, {"b": "x"}]}`)
	want := map[string]any{
		"a": int64(1),
		"l": []any{true, map[string]any{"b": "x"}},
	}
	if diff := cmp.Diff(want, v.ToPlain()); diff != "" {
		t.Errorf("ToPlain (-want +got):\n%s", diff)
	}
}

func TestToJSONKeepsOrder(t *testing.T) {
	v := dictOver(t, `{"z": 1, "a": {"y": 2, "b": 3}}`)
	got, err := v.ToJSON(false)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"z":1,"a":{"y":2,"b":3}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestToJSONPretty(t *testing.T) {
	v := dictOver(t, `{"a": 1, "b": [2]}`)
	got, err := v.ToJSON(true)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "a": 1,
    "b": [
        2
    ]
}`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringIsWire(t *testing.T) {
	v := dictOver(t, `{"a": 1}`)
	if got := v.String(); got != `{"a":1}` {
		t.Errorf("String() = %s", got)
	}
}
