package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil both", nil, nil, 0},
		{"nil left", nil, Null(), -1},
		{"null null", Null(), Null(), 0},
		{"bool order", FromBool(false), FromBool(true), -1},
		{"int eq", FromInt(3), FromInt(3), 0},
		{"int lt", FromInt(2), FromInt(3), -1},
		{"int float mixed", FromInt(2), FromFloat(2.5), -1},
		{"string", FromString("a"), FromString("b"), -1},
		{"kind rank", FromInt(100), FromString(""), -1},
		{
			"array elementwise",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(3)}),
			-1,
		},
		{
			"array len",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(1)}),
			-1,
		},
		{
			"object equal",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			0,
		},
		{
			"object value differs",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}
