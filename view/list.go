package view

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dictwrap/go-dictwrap/encode"
	"github.com/dictwrap/go-dictwrap/gomap"
	"github.com/dictwrap/go-dictwrap/ir"
)

// ListView presents an array node as an indexable sequence. Element
// containers come back wrapped in views that inherit this view's
// configuration. Strict has no effect on list writes; only mutability and
// prefixes carry meaning here, and both propagate to wrapped elements.
type ListView struct {
	data *ir.Node
	cfg  config
}

func (v *ListView) Node() *ir.Node {
	return v.data
}

func (v *ListView) Len() int {
	return len(v.data.Values)
}

// Mutable reports whether mutation through this view is permitted.
func (v *ListView) Mutable() bool {
	return v.cfg.mutable
}

// At returns the element at index i, lazily wrapped. Out-of-range indices
// panic, as slice indexing does.
func (v *ListView) At(i int) any {
	if i < 0 || i >= len(v.data.Values) {
		panic(fmt.Sprintf("index out of range [%d] with length %d", i, len(v.data.Values)))
	}
	return wrapValue(v.data.Values[i], v.cfg)
}

// SetAt replaces the element at index i.
func (v *ListView) SetAt(i int, value any) error {
	if !v.cfg.mutable {
		return &ImmutableError{Op: fmt.Sprintf("set [%d]", i)}
	}
	if i < 0 || i >= len(v.data.Values) {
		panic(fmt.Sprintf("index out of range [%d] with length %d", i, len(v.data.Values)))
	}
	node, err := toNode(value)
	if err != nil {
		return err
	}
	node.Parent = v.data
	node.ParentIndex = i
	v.data.Values[i] = node
	return nil
}

// Append adds values to the end of the sequence. All values are converted
// before any is spliced in, so a conversion failure leaves the sequence
// unchanged.
func (v *ListView) Append(values ...any) error {
	if !v.cfg.mutable {
		return &ImmutableError{Op: "append"}
	}
	nodes := make([]*ir.Node, len(values))
	for i, val := range values {
		node, err := toNode(val)
		if err != nil {
			return err
		}
		nodes[i] = node
	}
	for _, node := range nodes {
		node.Parent = v.data
		node.ParentIndex = len(v.data.Values)
		v.data.Values = append(v.data.Values, node)
	}
	return nil
}

// Insert places value at index i, shifting later elements right. i may
// equal Len, in which case Insert behaves like Append.
func (v *ListView) Insert(i int, value any) error {
	if !v.cfg.mutable {
		return &ImmutableError{Op: fmt.Sprintf("insert [%d]", i)}
	}
	if i < 0 || i > len(v.data.Values) {
		panic(fmt.Sprintf("index out of range [%d] with length %d", i, len(v.data.Values)))
	}
	node, err := toNode(value)
	if err != nil {
		return err
	}
	node.Parent = v.data
	v.data.Values = slices.Insert(v.data.Values, i, node)
	for j := i; j < len(v.data.Values); j++ {
		v.data.Values[j].ParentIndex = j
	}
	return nil
}

// RemoveAt deletes the element at index i and returns it as a plain Go
// value.
func (v *ListView) RemoveAt(i int) (any, error) {
	if !v.cfg.mutable {
		return nil, &ImmutableError{Op: fmt.Sprintf("remove [%d]", i)}
	}
	if i < 0 || i >= len(v.data.Values) {
		panic(fmt.Sprintf("index out of range [%d] with length %d", i, len(v.data.Values)))
	}
	prior := gomap.FromIR(v.data.Values[i])
	v.data.Values = slices.Delete(v.data.Values, i, i+1)
	for j := i; j < len(v.data.Values); j++ {
		v.data.Values[j].ParentIndex = j
	}
	return prior, nil
}

// Remove deletes the first element structurally equal to value. It reports
// whether an element was removed.
func (v *ListView) Remove(value any) (bool, error) {
	if !v.cfg.mutable {
		return false, &ImmutableError{Op: "remove"}
	}
	node, err := toNode(value)
	if err != nil {
		return false, err
	}
	for i, el := range v.data.Values {
		if ir.Compare(el, node) == 0 {
			_, err := v.RemoveAt(i)
			return true, err
		}
	}
	return false, nil
}

// Clear removes all elements.
func (v *ListView) Clear() error {
	if !v.cfg.mutable {
		return &ImmutableError{Op: "clear"}
	}
	v.data.Values = nil
	return nil
}

// Slice returns a view over the half-open range [from, to). The element
// nodes are shared with this view, so mutating an element through either
// view is visible in both; the range itself is a fresh sequence, so
// appends and removals are not.
func (v *ListView) Slice(from, to int) *ListView {
	n := len(v.data.Values)
	if from < 0 || to < from || to > n {
		panic(fmt.Sprintf("slice bounds out of range [%d:%d] with length %d", from, to, n))
	}
	return &ListView{
		data: &ir.Node{
			Type:   ir.ArrayType,
			Values: slices.Clone(v.data.Values[from:to]),
		},
		cfg: v.cfg,
	}
}

// All iterates index and lazily wrapped element pairs.
func (v *ListView) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, el := range v.data.Values {
			if !yield(i, wrapValue(el, v.cfg)) {
				return
			}
		}
	}
}

func (v *ListView) ToPlain() any {
	return gomap.FromIR(v.data)
}

func (v *ListView) ToJSON(pretty bool) (string, error) {
	var opts []encode.EncodeOption
	if pretty {
		opts = append(opts, encode.EncodePretty(true))
	}
	return encode.ToString(v.data, opts...)
}

func (v *ListView) String() string {
	return encode.MustString(v.data)
}
