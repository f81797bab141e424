package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Drawer is the set of primitives the card layout draws with. Canvas is the
// only implementation; tests use it directly against an in-memory buffer.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground()
	FillRect(rect image.Rectangle, c color.Color)
	FillCircle(cx, cy, radius int, c color.Color)

	// Text primitives.
	MeasureText(text string, face font.Face) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// DrawImageInRect scales img into rect.
	DrawImageInRect(img image.Image, rect image.Rectangle)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor: y is the top of the face
// ascent and x is the left edge of the ink box. With TextAlignCenter, x is
// the horizontal center of the ink box instead.
type TextStyle struct {
	Color color.Color
	Face  font.Face
	Align TextAlign
}

// TextMetrics are measured on the ink bounding box of the string, which is
// what centering is computed from.
type TextMetrics struct {
	Width   int
	Height  int
	Ascent  int
	Descent int
	Advance int
}
