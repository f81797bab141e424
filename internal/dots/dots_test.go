package dots

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
	"github.com/uprooted/ogcard/internal/render"
)

func between(v, a, b uint8) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}

func TestFieldBounds(t *testing.T) {
	field := Field(1200, 630, Count, Seed)
	test.T(t, len(field), 80)
	for i, d := range field {
		test.That(t, d.X >= 40 && d.X <= 1160, "dot", i, "x out of range:", d.X)
		test.That(t, d.Y >= 40 && d.Y <= 590, "dot", i, "y out of range:", d.Y)
		test.That(t, d.Radius == 1 || d.Radius == 2, "dot", i, "radius:", d.Radius)
		test.That(t, d.Opacity >= 15 && d.Opacity <= 30, "dot", i, "opacity:", d.Opacity)
		bg, dim := render.Background, render.Dim
		test.That(t, between(d.Color.R, bg.R, dim.R) && between(d.Color.G, bg.G, dim.G) && between(d.Color.B, bg.B, dim.B),
			"dot", i, "color not between background and dim:", d.Color)
		test.T(t, d.Color.A, uint8(0xFF))
	}
}

func TestFieldDeterministic(t *testing.T) {
	test.T(t, Field(1200, 630, Count, Seed), Field(1200, 630, Count, Seed))

	other := Field(1200, 630, Count, Seed+1)
	test.That(t, len(other) == Count)
	same := true
	for i := range other {
		if other[i] != Field(1200, 630, Count, Seed)[i] {
			same = false
			break
		}
	}
	test.That(t, !same, "different seeds should give different fields")
}

func TestGenerateInclusiveBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	area := image.Rect(5, 7, 6, 8)
	sawMaxX, sawMinX := false, false
	for _, d := range Generate(rng, 500, area, render.Background, render.Dim) {
		test.That(t, d.X == 5 || d.X == 6)
		test.That(t, d.Y == 7 || d.Y == 8)
		sawMinX = sawMinX || d.X == 5
		sawMaxX = sawMaxX || d.X == 6
	}
	test.That(t, sawMinX && sawMaxX, "both ends of the range should be reachable")
}

func TestBlend(t *testing.T) {
	bg := color.RGBA{R: 8, G: 8, B: 12, A: 0xFF}
	dim := color.RGBA{R: 90, G: 94, B: 102, A: 0xFF}
	test.T(t, Blend(bg, dim, 0), bg)
	test.T(t, Blend(bg, dim, 255), dim)
	test.T(t, Blend(bg, dim, 15), color.RGBA{R: 12, G: 13, B: 17, A: 0xFF})
	test.T(t, Blend(bg, dim, 30), color.RGBA{R: 17, G: 18, B: 22, A: 0xFF})
}

type recorder struct {
	render.Drawer
	circles []Dot
}

func (r *recorder) FillCircle(cx, cy, radius int, c color.Color) {
	r.circles = append(r.circles, Dot{X: cx, Y: cy, Radius: radius, Color: c.(color.RGBA)})
}

func TestDrawInOrder(t *testing.T) {
	field := Field(1200, 630, 5, Seed)
	rec := &recorder{}
	Draw(rec, field)
	test.T(t, len(rec.circles), 5)
	for i := range field {
		test.T(t, rec.circles[i].X, field[i].X)
		test.T(t, rec.circles[i].Radius, field[i].Radius)
		test.T(t, rec.circles[i].Color, field[i].Color)
	}
}
