package utils

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/setanarut/bmpgrad"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dominantcolor":
		return PaletteMethodDominantColor, nil
	case "kmeans":
		return PaletteMethodKMeans, nil
	}
	return PaletteMethodDominantColor, fmt.Errorf("unknown palette method %q", s)
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// luminance is the relative luminance of c.
func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		la, lb := luminance(a), luminance(b)
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return 0
	})
}

// PaletteHex formats the palette as "#rrggbb" strings.
func PaletteHex(palette []colorful.Color) []string {
	out := make([]string, len(palette))
	for i, c := range palette {
		out[i] = c.Clamped().Hex()
	}
	return out
}

func ExtractDominantPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	found := dominantcolor.FindWeight(img, max(24, k*8))
	cands := make([]weightedColor, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, weightedColor{Col: col.Clamped(), Weight: c.Weight})
	}
	return selectDiverse(cands, k)
}

// Gradients are smooth, so cap the kmeans input by sampling on a grid.
const maxKMeansSamples = 12000

func ExtractKMeansPalette(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return nil
	}
	step := 1
	if n > maxKMeansSamples {
		step = int(math.Sqrt(float64(n)/maxKMeansSamples)) + 1
	}

	var obs clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			obs = append(obs, clusters.Coordinates{
				float64(c.R) / 255,
				float64(c.G) / 255,
				float64(c.B) / 255,
			})
		}
	}

	km := kmeans.New()
	parts, err := km.Partition(obs, min(max(2*k, k+2), len(obs)))
	if err != nil {
		log.Printf("palette warning: kmeans failed: %v", err)
		return nil
	}

	cands := make([]weightedColor, 0, len(parts))
	for _, p := range parts {
		if len(p.Center) < 3 || len(p.Observations) == 0 {
			continue
		}
		cands = append(cands, weightedColor{
			Col:    colorful.Color{R: p.Center[0], G: p.Center[1], B: p.Center[2]}.Clamped(),
			Weight: float64(len(p.Observations)),
		})
	}
	return selectDiverse(cands, k)
}

// selectDiverse greedily picks k candidates, starting from the heaviest, each
// time taking the one farthest in L*a*b* from those already picked, scaled
// by its weight.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	k = min(k, len(cands))
	if k <= 0 {
		return nil
	}
	maxW := 0.0
	for i := range cands {
		cands[i].Weight = max(cands[i].Weight, 1e-6)
		maxW = max(maxW, cands[i].Weight)
	}

	picked := make([]colorful.Color, 0, k)
	used := make([]bool, len(cands))
	first := 0
	for i, c := range cands {
		if c.Weight > cands[first].Weight {
			first = i
		}
	}
	picked = append(picked, cands[first].Col)
	used[first] = true

	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i, c := range cands {
			if used[i] {
				continue
			}
			nearest := math.MaxFloat64
			for _, p := range picked {
				nearest = min(nearest, c.Col.DistanceLab(p))
			}
			score := nearest * (0.55 + 0.45*math.Sqrt(c.Weight/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picked = append(picked, cands[best].Col)
	}
	return picked
}

func ExtractPalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	if method == PaletteMethodKMeans {
		if p := ExtractKMeansPalette(img, k); len(p) != 0 {
			return p
		}
		log.Println("palette warning: kmeans returned empty palette, falling back to dominantcolor")
	}
	return ExtractDominantPalette(img, k)
}

// SaveImage writes img as a 24-bit BMP.
func SaveImage(img image.Image, filename string, enc bmpgrad.Encoder) error {
	return enc.WriteFile(filename, img)
}

// SavePalette writes one tileSize square per palette entry, left to right.
func SavePalette(palette []colorful.Color, tileSize int, filename string, enc bmpgrad.Encoder) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	buf, err := bmpgrad.NewPixelBuffer(tileSize*len(palette), tileSize)
	if err != nil {
		return err
	}
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		for y := 0; y < tileSize; y++ {
			for x := i * tileSize; x < (i+1)*tileSize; x++ {
				if err := buf.SetPixel(x, y, bmpgrad.RGB{R: r, G: g, B: b}); err != nil {
					return err
				}
			}
		}
	}
	return SaveImage(buf, filename, enc)
}
