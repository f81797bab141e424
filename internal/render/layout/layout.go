package layout

import "image"

// CenterStart returns the offset that centers size within total, using
// floor division.
func CenterStart(total, size int) int {
	return floorDiv(total-size, 2)
}

// CenterSpan returns the half-open span of width size centered in total.
// The right edge is inclusive of the pixel at (total+size)/2.
func CenterSpan(total, size int) (start, end int) {
	return floorDiv(total-size, 2), floorDiv(total+size, 2) + 1
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in
// the bottom-right of rect, marginPx away from both edges. The size is
// clamped to what fits.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx, marginPx int) image.Rectangle {
	rect = Inset(Normalize(rect), marginPx)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Max.X-widthPx, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
