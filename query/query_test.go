package query

import (
	"testing"

	"github.com/dictwrap/go-dictwrap/parse"
	"github.com/dictwrap/go-dictwrap/view"
	"github.com/google/go-cmp/cmp"
)

func dictOver(t *testing.T, s string) *view.DictView {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return view.Wrap(node).(*view.DictView)
}

func listOver(t *testing.T, s string) *view.ListView {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return view.Wrap(node).(*view.ListView)
}

func TestEval(t *testing.T) {
	v := dictOver(t, `{"age": 30, "name": "alice"}`)
	got, err := Eval(v, `age >= 21 && name == "alice"`)
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Errorf("got %v", got)
	}
	got, err = Eval(v, `age + 1`)
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(31) {
		t.Errorf("got %v (%T)", got, got)
	}
}

func TestEvalContainerResult(t *testing.T) {
	v := dictOver(t, `{"age": 30}`)
	got, err := Eval(v, `[age + 1, age / 2.0]`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{int64(31), 15.0}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEvalNested(t *testing.T) {
	v := dictOver(t, `{"address": {"city": "Adair"}}`)
	got, err := Eval(v, `address.city`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Adair" {
		t.Errorf("got %v", got)
	}
}

func TestEvalBadExpr(t *testing.T) {
	v := dictOver(t, `{"a": 1}`)
	if _, err := Eval(v, `a +`); err == nil {
		t.Error("expected compile error")
	}
}

func TestSelectObjects(t *testing.T) {
	v := listOver(t, `[{"age": 17}, {"age": 30}, {"age": 65}]`)
	got, err := Select(v, `age >= 21`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSelectScalars(t *testing.T) {
	v := listOver(t, `[1, 5, 10]`)
	got, err := Select(v, `value > 3`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSelectNonBool(t *testing.T) {
	v := listOver(t, `[1]`)
	if _, err := Select(v, `value + 1`); err == nil {
		t.Error("expected type error")
	}
}
