package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/font/basicfont"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	w, h := c.Size()
	test.T(t, w, 1200)
	test.T(t, h, 630)
	test.T(t, c.Image().RGBAAt(0, 0), Background)
	test.T(t, c.Image().RGBAAt(1199, 629), Background)
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(100, 50)
	c.FillRect(image.Rect(90, 40, 200, 200), Accent)
	test.T(t, c.Image().RGBAAt(99, 49), Accent)
	test.T(t, c.Image().RGBAAt(89, 49), Background)

	c.FillRect(image.Rect(300, 300, 400, 400), Accent) // fully outside, no-op
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 20)
	dot := color.RGBA{R: 12, G: 13, B: 17, A: 0xFF}
	c.FillCircle(10, 10, 2, dot)
	test.That(t, c.Image().RGBAAt(10, 10) != Background, "center pixel should be painted")
	test.T(t, c.Image().RGBAAt(0, 0), Background)
	test.T(t, c.Image().RGBAAt(15, 10), Background)

	c.FillCircle(3, 3, 0, dot)
	test.T(t, c.Image().RGBAAt(3, 3), Background)
}

func TestFillCircleHardEdge(t *testing.T) {
	c := NewCanvas(20, 20)
	dot := color.RGBA{R: 12, G: 13, B: 17, A: 0xFF}
	c.FillCircle(10, 10, 2, dot)
	img := c.Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			px := img.RGBAAt(x, y)
			test.That(t, px == dot || px == Background, "pixel", x, y, "is a partial blend:", px)
		}
	}
	test.T(t, img.RGBAAt(10, 10), dot)
	test.T(t, img.RGBAAt(12, 10), dot)
	test.T(t, img.RGBAAt(13, 10), Background)
	test.T(t, img.RGBAAt(8, 10), dot)
	test.T(t, img.RGBAAt(7, 10), Background)

	// A second disc reuses the mask without leaking the first one.
	c.FillCircle(3, 3, 1, Accent)
	test.T(t, img.RGBAAt(3, 3), Accent)
	test.T(t, img.RGBAAt(10, 10), dot)
}

func TestDrawTextMatchesMeasure(t *testing.T) {
	c := NewCanvas(200, 60)
	style := TextStyle{Color: Text, Face: basicfont.Face7x13}
	test.T(t, c.DrawText("uprooted", 10, 10, style), c.MeasureText("uprooted", basicfont.Face7x13))
}

func TestMeasureText(t *testing.T) {
	c := NewCanvas(100, 100)
	short := c.MeasureText("root", basicfont.Face7x13)
	long := c.MeasureText("uprooted", basicfont.Face7x13)
	test.T(t, long.Advance, 8*7)
	test.That(t, long.Width > short.Width, "longer strings measure wider")
	test.That(t, long.Height > 0)
	test.T(t, long.Ascent, 11)

	test.T(t, c.MeasureText("x", nil), c.MeasureText("x", basicfont.Face7x13))
}

func TestDrawTextStaysInInkBox(t *testing.T) {
	c := NewCanvas(200, 60)
	style := TextStyle{Color: Text, Face: basicfont.Face7x13, Align: TextAlignCenter}
	m := c.DrawText("uprooted", 100, 10, style)
	left := 100 - m.Width/2

	painted := 0
	img := c.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) == Background {
				continue
			}
			painted++
			test.That(t, x >= left && x < left+m.Width, "x outside ink box:", x)
			test.That(t, y >= 10 && y < 10+m.Ascent+m.Descent, "y outside line:", y)
		}
	}
	test.That(t, painted > 0, "text should paint pixels")
}

func TestDrawImageInRect(t *testing.T) {
	c := NewCanvas(40, 40)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 0xFF, 0xFF
	}
	c.DrawImageInRect(src, image.Rect(10, 10, 20, 20))
	test.T(t, c.Image().RGBAAt(15, 15), red)
	test.T(t, c.Image().RGBAAt(25, 25), Background)

	c.DrawImageInRect(src, image.Rectangle{})
	c.DrawImageInRect(nil, image.Rect(0, 0, 5, 5))
	test.T(t, c.Image().RGBAAt(2, 2), Background)
}
