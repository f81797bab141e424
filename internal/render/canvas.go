package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an in-memory RGBA buffer with the drawing primitives the card
// needs. It is owned by a single render pass and is not safe for concurrent
// use.
type Canvas struct {
	img    *image.RGBA
	mask   *image.Alpha
	filler *rasterx.Filler
}

// NewCanvas returns a width x height canvas already filled with Background.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	mask := image.NewAlpha(img.Bounds())
	scanner := rasterx.NewScannerGV(width, height, mask, mask.Bounds())
	c := &Canvas{img: img, mask: mask, filler: rasterx.NewFiller(width, height, scanner)}
	c.FillBackground()
	return c
}

// Image returns the backing buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

// FillRect paints rect with a solid color. The rectangle is half-open and
// clipped to the canvas.
func (c *Canvas) FillRect(rect image.Rectangle, clr color.Color) {
	rect = rect.Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: clr}, image.Point{}, draw.Src)
}

// FillCircle paints a hard-edged disc covering the pixels from cx-radius
// to cx+radius inclusive on both axes. The disc is rasterized into a
// coverage mask and every pixel at least half covered gets exactly clr.
func (c *Canvas) FillCircle(cx, cy, radius int, clr color.Color) {
	if radius <= 0 {
		return
	}
	box := image.Rect(cx-radius-1, cy-radius-1, cx+radius+2, cy+radius+2).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}
	draw.Draw(c.mask, box, image.Transparent, image.Point{}, draw.Src)

	c.filler.Clear()
	rasterx.AddCircle(float64(cx)+0.5, float64(cy)+0.5, float64(radius)+0.5, c.filler)
	c.filler.SetColor(color.Opaque)
	c.filler.Draw()

	fill := color.RGBAModel.Convert(clr).(color.RGBA)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if c.mask.AlphaAt(x, y).A >= 0x80 {
				c.img.SetRGBA(x, y, fill)
			}
		}
	}
}

func (c *Canvas) MeasureText(text string, face font.Face) TextMetrics {
	m, _ := measure(text, faceOrDefault(face))
	return m
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := faceOrDefault(style.Face)
	textColor := style.Color
	if textColor == nil {
		textColor = Text
	}
	m, bounds := measure(text, face)
	if style.Align == TextAlignCenter {
		x -= m.Width / 2
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	// Shift the pen so the ink box, not the origin, starts at x.
	drawer.Dot = fixed.Point26_6{X: fixed.I(x) - bounds.Min.X, Y: fixed.I(y + m.Ascent)}
	drawer.DrawString(text)
	return m
}

// measure returns the metrics of text together with its raw ink bounds.
func measure(text string, face font.Face) (TextMetrics, fixed.Rectangle26_6) {
	bounds, advance := font.BoundString(face, text)
	metrics := face.Metrics()
	return TextMetrics{
		Width:   (bounds.Max.X - bounds.Min.X).Ceil(),
		Height:  (bounds.Max.Y - bounds.Min.Y).Ceil(),
		Ascent:  metrics.Ascent.Ceil(),
		Descent: metrics.Descent.Ceil(),
		Advance: advance.Ceil(),
	}, bounds
}

// DrawImageInRect scales img into rect with nearest-neighbor sampling and
// composites it over the canvas.
func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}

func faceOrDefault(face font.Face) font.Face {
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}
