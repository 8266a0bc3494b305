package bmpgrad

import (
	"fmt"
	"math"

	"github.com/knetic/govaluate"
)

// Weighting describes how strongly each corner colour contributes at a
// pixel. Each field is an arithmetic expression over x, y, width and height.
// sqrt, abs, min, max and pow are available.
type Weighting struct {
	UpperLeft  string `yaml:"upper_left,omitempty"`
	UpperRight string `yaml:"upper_right,omitempty"`
	LowerLeft  string `yaml:"lower_left,omitempty"`
	LowerRight string `yaml:"lower_right,omitempty"`
}

// DefaultWeighting weights a corner by the geometric mean of the normalized
// distances to the opposite edges. Note y grows downwards, so "upper" is
// strongest at y = height.
func DefaultWeighting() Weighting {
	return Weighting{
		UpperLeft:  "sqrt(abs(width-x)/width * y/height)",
		UpperRight: "sqrt(x/width * y/height)",
		LowerLeft:  "sqrt(abs(width-x)/width * abs(height-y)/height)",
		LowerRight: "sqrt(x/width * abs(height-y)/height)",
	}
}

// WithDefaults fills empty expressions from DefaultWeighting.
func (w Weighting) WithDefaults() Weighting {
	d := DefaultWeighting()
	if w.UpperLeft == "" {
		w.UpperLeft = d.UpperLeft
	}
	if w.UpperRight == "" {
		w.UpperRight = d.UpperRight
	}
	if w.LowerLeft == "" {
		w.LowerLeft = d.LowerLeft
	}
	if w.LowerRight == "" {
		w.LowerRight = d.LowerRight
	}
	return w
}

// Weights is a compiled Weighting.
type Weights struct {
	exprs [4]*govaluate.EvaluableExpression
}

// Compile parses the four expressions. Empty expressions take their default.
func (w Weighting) Compile() (*Weights, error) {
	w = w.WithDefaults()
	var out Weights
	for i, src := range [4]string{w.UpperLeft, w.UpperRight, w.LowerLeft, w.LowerRight} {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, weightFunctions())
		if err != nil {
			return nil, fmt.Errorf("invalid %s weight %q: %w", cornerNames[i], src, err)
		}
		out.exprs[i] = expr
	}
	return &out, nil
}

var cornerNames = [4]string{"upper_left", "upper_right", "lower_left", "lower_right"}

// At evaluates the weights at (x, y) in upper-left, upper-right, lower-left,
// lower-right order.
func (ws *Weights) At(x, y, width, height int) ([4]float64, error) {
	var out [4]float64
	params := map[string]interface{}{
		"x":      float64(x),
		"y":      float64(y),
		"width":  float64(width),
		"height": float64(height),
	}
	for i, expr := range ws.exprs {
		v, err := expr.Evaluate(params)
		if err != nil {
			return out, fmt.Errorf("%s weight at (%d,%d): %w", cornerNames[i], x, y, err)
		}
		f, ok := v.(float64)
		if !ok {
			return out, fmt.Errorf("%s weight at (%d,%d) is %T, not a number", cornerNames[i], x, y, v)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return out, fmt.Errorf("%s weight at (%d,%d) is %v", cornerNames[i], x, y, f)
		}
		out[i] = f
	}
	return out, nil
}

func weightFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"sqrt": unaryFunc("sqrt", math.Sqrt),
		"abs":  unaryFunc("abs", math.Abs),
		"min":  binaryFunc("min", math.Min),
		"max":  binaryFunc("max", math.Max),
		"pow":  binaryFunc("pow", math.Pow),
	}
}

func unaryFunc(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		a, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument must be numeric", name)
		}
		return f(a), nil
	}
}

func binaryFunc(name string, f func(float64, float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		a, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument 1 must be numeric", name)
		}
		b, ok := args[1].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument 2 must be numeric", name)
		}
		return f(a, b), nil
	}
}
