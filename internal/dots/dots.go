// Package dots generates the faint speckle field drawn behind the card text.
package dots

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/uprooted/ogcard/internal/render"
	"github.com/uprooted/ogcard/internal/render/layout"
)

const (
	// Count and Seed give the published card its exact speckle pattern.
	Count = 80
	Seed  = 42

	// Margin keeps dot centers this far from every canvas edge.
	Margin = 40

	minRadius  = 1
	maxRadius  = 2
	minOpacity = 15
	maxOpacity = 30
)

// Dot is one filled circle of the field.
type Dot struct {
	X, Y    int
	Radius  int
	Opacity int
	Color   color.RGBA
}

// Generate samples n dots from rng. Centers fall in area with both bounds
// inclusive. Each dot's color is fg blended over bg at its opacity. The draw
// order from rng is x, y, radius, opacity, which keeps a given seed stable.
func Generate(rng *rand.Rand, n int, area image.Rectangle, bg, fg color.RGBA) []Dot {
	out := make([]Dot, 0, n)
	for i := 0; i < n; i++ {
		d := Dot{
			X:       randInt(rng, area.Min.X, area.Max.X),
			Y:       randInt(rng, area.Min.Y, area.Max.Y),
			Radius:  randInt(rng, minRadius, maxRadius),
			Opacity: randInt(rng, minOpacity, maxOpacity),
		}
		d.Color = Blend(bg, fg, d.Opacity)
		out = append(out, d)
	}
	return out
}

// Field returns n dots for a canvas of the given size, Margin pixels clear
// of every edge, blended from Background toward Dim.
func Field(width, height, n int, seed int64) []Dot {
	area := layout.Inset(image.Rect(0, 0, width, height), Margin)
	return Generate(rand.New(rand.NewSource(seed)), n, area, render.Background, render.Dim)
}

// Blend linearly interpolates from bg toward fg by opacity/255 and truncates
// each channel toward zero. The result is always opaque.
func Blend(bg, fg color.RGBA, opacity int) color.RGBA {
	mix := func(b, f uint8) uint8 {
		return uint8(float64(b) + (float64(f)-float64(b))*float64(opacity)/255)
	}
	return color.RGBA{R: mix(bg.R, fg.R), G: mix(bg.G, fg.G), B: mix(bg.B, fg.B), A: 0xFF}
}

// Draw paints dots onto d in order.
func Draw(d render.Drawer, field []Dot) {
	for _, dot := range field {
		d.FillCircle(dot.X, dot.Y, dot.Radius, dot.Color)
	}
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
