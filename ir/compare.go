package ir

import (
	"cmp"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	af, aok := numberValue(a)
	bf, bok := numberValue(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}
	if aok != bok {
		if aok {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Number, b.Number)
}

func numberValue(y *Node) (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	if y.Number != "" {
		f, err := strconv.ParseFloat(y.Number, 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

func compareArrays(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	for i := range a.Fields {
		if d := Compare(a.Fields[i], b.Fields[i]); d != 0 {
			return d
		}
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}
