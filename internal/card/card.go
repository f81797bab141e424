package card

import (
	"fmt"
	"image"

	"github.com/uprooted/ogcard/internal/dots"
	"github.com/uprooted/ogcard/internal/fonts"
	"github.com/uprooted/ogcard/internal/render"
	"github.com/uprooted/ogcard/internal/render/layout"
)

const (
	titleTop      = 210
	underlineGap  = 24
	underlineW    = 60
	underlineH    = 3
	subtitleGap   = 24
	urlFromBottom = 60
	topBarH       = 4
	bottomBarH    = 3

	qrBadgeSize   = 96
	qrBadgeMargin = 24
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Card is the content of the preview image.
type Card struct {
	Title    string
	Subtitle string
	URL      string

	DotSeed  int64
	DotCount int

	// QRBadge draws a small QR code of the URL in the bottom-right corner.
	QRBadge bool
}

// Default returns the uprooted.sh card.
func Default() Card {
	return Card{
		Title:    "uprooted",
		Subtitle: "a client mod framework for root",
		URL:      "uprooted.sh",
		DotSeed:  dots.Seed,
		DotCount: dots.Count,
	}
}

// TextBox is where a string ended up: X and Y are the top-left of its
// anchor, Width and Height its measured ink box.
type TextBox struct {
	Text   string
	X, Y   int
	Width  int
	Height int
}

// Layout records every computed position of a render.
type Layout struct {
	TopBar    image.Rectangle
	BottomBar image.Rectangle
	Underline image.Rectangle
	QRBadge   image.Rectangle

	Title    TextBox
	Subtitle TextBox
	URL      TextBox

	Dots []dots.Dot
}

// Render draws c onto a fresh canvas using faces and returns the canvas
// together with the layout it computed.
func Render(c Card, faces fonts.Set, logger Logger) (*render.Canvas, Layout, error) {
	canvas := render.NewCanvas(render.CanvasWidth, render.CanvasHeight)
	l, err := Draw(canvas, c, faces, logger)
	if err != nil {
		return nil, Layout{}, err
	}
	return canvas, l, nil
}

// Draw runs the card's drawing sequence against d. Later elements are placed
// from the measured height of the title, so the order here is fixed.
func Draw(d render.Drawer, c Card, faces fonts.Set, logger Logger) (Layout, error) {
	if logger == nil {
		logger = nopLogger{}
	}
	width, height := d.Size()
	var l Layout

	d.FillBackground()

	l.TopBar = image.Rect(0, 0, width, topBarH)
	d.FillRect(l.TopBar, render.Accent)

	count := c.DotCount
	if count <= 0 {
		count = dots.Count
	}
	l.Dots = dots.Field(width, height, count, c.DotSeed)
	dots.Draw(d, l.Dots)
	logger.Infof("card", "drew %d dots, seed=%d", len(l.Dots), c.DotSeed)

	l.Title = drawCentered(d, c.Title, titleTop, width, render.TextStyle{Color: render.Text, Face: faces.Title})

	lineY := l.Title.Y + l.Title.Height + underlineGap
	x0, x1 := layout.CenterSpan(width, underlineW)
	l.Underline = image.Rect(x0, lineY, x1, lineY+underlineH)
	d.FillRect(l.Underline, render.Accent)

	l.Subtitle = drawCentered(d, c.Subtitle, lineY+subtitleGap, width, render.TextStyle{Color: render.Dim, Face: faces.Subtitle})
	l.URL = drawCentered(d, c.URL, height-urlFromBottom, width, render.TextStyle{Color: render.Faint, Face: faces.URL})

	l.BottomBar = image.Rect(0, height-bottomBarH, width, height)
	d.FillRect(l.BottomBar, render.Accent)

	if c.QRBadge {
		qr, err := render.GenerateQRCodeImage("https://"+c.URL, qrBadgeSize)
		if err != nil {
			return Layout{}, fmt.Errorf("qr badge: %w", err)
		}
		if qr != nil {
			l.QRBadge = layout.AnchorBottomRight(image.Rect(0, 0, width, height), qrBadgeSize, qrBadgeSize, qrBadgeMargin)
			d.DrawImageInRect(qr, l.QRBadge)
			logger.Infof("card", "qr badge at %v", l.QRBadge)
		}
	}

	logger.Infof("card", "title=%+v subtitle=%+v url=%+v", l.Title, l.Subtitle, l.URL)
	return l, nil
}

func drawCentered(d render.Drawer, text string, y, width int, style render.TextStyle) TextBox {
	m := d.MeasureText(text, style.Face)
	x := layout.CenterStart(width, m.Width)
	d.DrawText(text, x, y, style)
	return TextBox{Text: text, X: x, Y: y, Width: m.Width, Height: m.Height}
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}
