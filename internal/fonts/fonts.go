// Package fonts picks the monospace font the card is drawn with.
//
// Candidates are tried in order and the first file that exists wins. When
// none exist every face falls back to the built-in 7x13 bitmap font; that
// fallback is silent and never an error.
package fonts

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Point sizes of the three faces. DPI is 72 so one point is one pixel.
const (
	TitleSize    = 64
	SubtitleSize = 22
	URLSize      = 16

	dpi = 72
)

// ErrUnparseable is returned when a candidate file exists but neither the
// OpenType nor the TrueType parser accepts it.
var ErrUnparseable = errors.New("font file could not be parsed")

// Candidates is the default search order: Windows monospace fonts first, then
// common Linux and macOS ones.
var Candidates = []string{
	"C:/Windows/Fonts/CascadiaMono.ttf",
	"C:/Windows/Fonts/cascadiamono.ttf",
	"C:/Windows/Fonts/consola.ttf",
	"C:/Windows/Fonts/cour.ttf",
	"C:/Windows/Fonts/lucon.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/Library/Fonts/Courier New.ttf",
	"/System/Library/Fonts/Supplemental/Courier New.ttf",
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Set holds the three faces derived from one font source.
type Set struct {
	Title    font.Face
	Subtitle font.Face
	URL      font.Face

	// Path is the file the faces came from, empty when Fallback is set.
	Path     string
	Fallback bool
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve returns the first candidate for which exists reports true, or ""
// when there is none.
func Resolve(candidates []string, exists func(string) bool) string {
	for _, p := range candidates {
		if exists(p) {
			return p
		}
	}
	return ""
}

// Fallback returns a Set made of the built-in bitmap face.
func Fallback() Set {
	return Set{
		Title:    basicfont.Face7x13,
		Subtitle: basicfont.Face7x13,
		URL:      basicfont.Face7x13,
		Fallback: true,
	}
}

// Select resolves candidates against the filesystem and loads the winner.
// It only fails when a file exists but cannot be read or parsed.
func Select(candidates []string, logger Logger) (Set, error) {
	path := Resolve(candidates, Exists)
	if path == "" {
		if logger != nil {
			logger.Infof("fonts", "no candidate font found, using basicfont")
		}
		return Fallback(), nil
	}
	set, err := Load(path)
	if err != nil {
		if logger != nil {
			logger.Errorf("fonts", "load %s failed: %v", path, err)
		}
		return Set{}, err
	}
	if logger != nil {
		logger.Infof("fonts", "loaded %s at %d/%d/%dpt", path, TitleSize, SubtitleSize, URLSize)
	}
	return set, nil
}

// Load reads the font at path and derives the three faces from it.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read font %s: %w", path, err)
	}
	newFace, err := parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	set := Set{Path: path}
	if set.Title, err = newFace(TitleSize); err != nil {
		return Set{}, err
	}
	if set.Subtitle, err = newFace(SubtitleSize); err != nil {
		return Set{}, err
	}
	if set.URL, err = newFace(URLSize); err != nil {
		return Set{}, err
	}
	return set, nil
}

type faceFunc func(size float64) (font.Face, error)

// parse tries OpenType first and falls back to the freetype TrueType parser,
// which accepts some older fonts sfnt rejects.
func parse(data []byte) (faceFunc, error) {
	if otf, err := opentype.Parse(data); err == nil {
		return func(size float64) (font.Face, error) {
			return opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: font.HintingFull})
		}, nil
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return func(size float64) (font.Face, error) {
		return truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull}), nil
	}, nil
}
