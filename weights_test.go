package bmpgrad

import (
	"math"
	"testing"
)

func TestDefaultWeights(t *testing.T) {
	ws, err := DefaultWeighting().Compile()
	if err != nil {
		t.Fatal(err)
	}
	const w, h = 40, 20
	for _, p := range [][2]int{{0, 0}, {39, 19}, {10, 5}, {20, 10}, {33, 2}} {
		x, y := float64(p[0]), float64(p[1])
		want := [4]float64{
			math.Sqrt(math.Abs(w-x) / w * y / h),
			math.Sqrt(x / w * y / h),
			math.Sqrt(math.Abs(w-x) / w * math.Abs(h-y) / h),
			math.Sqrt(x / w * math.Abs(h-y) / h),
		}
		got, err := ws.At(p[0], p[1], w, h)
		if err != nil {
			t.Fatal(err)
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("At(%d, %d)[%s] = %v, want %v", p[0], p[1], cornerNames[i], got[i], want[i])
			}
		}
	}
}

func TestWeightingCustom(t *testing.T) {
	ws, err := Weighting{
		UpperLeft:  "1",
		UpperRight: "max(x, y) / pow(2, 3)",
		LowerLeft:  "min(x, 1)",
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ws.At(4, 6, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1 || got[1] != 0.75 || got[2] != 1 {
		t.Errorf("At = %v", got)
	}
	// Lower right falls back to the default expression.
	if want := math.Sqrt(0.4 * 0.4); math.Abs(got[3]-want) > 1e-12 {
		t.Errorf("lower right = %v, want %v", got[3], want)
	}
}

func TestWeightingErrors(t *testing.T) {
	if _, err := (Weighting{UpperLeft: "sqrt("}).Compile(); err == nil {
		t.Error("expected parse error")
	}

	tests := []struct {
		name string
		expr string
	}{
		{"unknown variable", "z * 2"},
		{"boolean result", "x > 1"},
		{"nan", "sqrt(0 - 1)"},
		{"wrong arity", "pow(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := Weighting{UpperLeft: tt.expr}.Compile()
			if err != nil {
				return
			}
			if _, err := ws.At(2, 2, 4, 4); err == nil {
				t.Errorf("%q: expected evaluation error", tt.expr)
			}
		})
	}
}
