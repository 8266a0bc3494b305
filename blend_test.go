package bmpgrad

import "testing"

func TestBlend(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want int
	}{
		{"drops negative", []float64{100, -5, 50}, 75},
		{"all negative", []float64{-1, -2}, 0},
		{"empty", nil, 0},
		{"zeros dropped", []float64{0, 0, 90}, 90},
		{"truncates", []float64{1, 2}, 1},
		{"fractions", []float64{127.9, 127.9}, 127},
		{"four corners", []float64{255, 255, 0, 255}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.in...); got != tt.want {
				t.Errorf("Blend(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BlendMode
		wantErr bool
	}{
		{"", BlendAverage, false},
		{"average", BlendAverage, false},
		{"LAB", BlendLab, false},
		{" lab ", BlendLab, false},
		{"hsv", BlendAverage, true},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBlendMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if err == nil {
			if back, _ := ParseBlendMode(got.String()); back != got {
				t.Errorf("%v does not survive String/Parse", got)
			}
		}
	}
}
