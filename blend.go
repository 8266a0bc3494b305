package bmpgrad

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Blend averages the positive contributions and truncates the result.
// Non-positive values are dropped, which brightens the mix; if nothing is
// left the result is 0.
func Blend(contributions ...float64) int {
	kept := make([]float64, 0, len(contributions))
	for _, c := range contributions {
		if c > 0 {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return 0
	}
	return int(floats.Sum(kept) / float64(len(kept)))
}

// BlendMode selects how corner contributions are mixed into a pixel.
type BlendMode int

const (
	// BlendAverage applies Blend to each channel of the weighted corners.
	BlendAverage BlendMode = iota
	// BlendLab mixes the corners by normalized weight in L*a*b* space.
	BlendLab
)

func (m BlendMode) String() string {
	switch m {
	case BlendLab:
		return "lab"
	default:
		return "average"
	}
}

// ParseBlendMode accepts the names returned by String. The empty string is
// BlendAverage.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "average":
		return BlendAverage, nil
	case "lab":
		return BlendLab, nil
	}
	return BlendAverage, fmt.Errorf("unknown blend mode %q", s)
}
