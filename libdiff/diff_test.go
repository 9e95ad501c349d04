package libdiff

import (
	"strings"
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

func TestEqual(t *testing.T) {
	a := mustParse(t, `{"x": 1, "y": [2]}`)
	b := mustParse(t, `{"x": 1, "y": [2]}`)
	c := mustParse(t, `{"x": 1, "y": [3]}`)
	if !Equal(a, b) {
		t.Error("identical documents not equal")
	}
	if Equal(a, c) {
		t.Error("different documents equal")
	}
}

func TestDiffEqualInputs(t *testing.T) {
	a := mustParse(t, `{"x": 1}`)
	got, err := Diff(a, mustParse(t, `{"x": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("diff of equal inputs = %q", got)
	}
}

func TestDiffLines(t *testing.T) {
	from := mustParse(t, `{"a": 1, "b": 2}`)
	to := mustParse(t, `{"a": 1, "b": 3}`)
	got, err := Diff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `- `+`    "b": 2`) {
		t.Errorf("missing removal line:\n%s", got)
	}
	if !strings.Contains(got, `+ `+`    "b": 3`) {
		t.Errorf("missing addition line:\n%s", got)
	}
	if !strings.Contains(got, "  "+`    "a": 1,`) {
		t.Errorf("missing context line:\n%s", got)
	}
}

func TestDiffFields(t *testing.T) {
	from := mustParse(t, `{"keep": 1, "drop": 2, "change": 3}`)
	to := mustParse(t, `{"keep": 1, "change": 4, "grow": 5}`)
	fd := DiffFields(from, to)
	if diff := cmp.Diff([]string{"grow"}, fd.Added); diff != "" {
		t.Errorf("added (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"drop"}, fd.Removed); diff != "" {
		t.Errorf("removed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"change"}, fd.Changed); diff != "" {
		t.Errorf("changed (-want +got):\n%s", diff)
	}
}

func TestDiffFieldsMoveOnly(t *testing.T) {
	from := mustParse(t, `{"a": 1, "b": 2}`)
	to := mustParse(t, `{"b": 2, "a": 1}`)
	fd := DiffFields(from, to)
	if !fd.Empty() {
		t.Errorf("reorder reported as change: %+v", fd)
	}
}
