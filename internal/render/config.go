package render

import "image/color"

// Palette and canvas size for the preview card.
var (
	Background = color.RGBA{R: 8, G: 8, B: 12, A: 0xFF}      // #08080c
	Text       = color.RGBA{R: 200, G: 204, B: 208, A: 0xFF} // #c8ccd0
	Dim        = color.RGBA{R: 90, G: 94, B: 102, A: 0xFF}   // #5a5e66
	Accent     = color.RGBA{R: 106, G: 154, B: 110, A: 0xFF} // #6a9a6e
	Faint      = color.RGBA{R: 42, G: 45, B: 51, A: 0xFF}    // #2a2d33

	// Open Graph thumbnail size.
	CanvasWidth  = 1200
	CanvasHeight = 630
)
