// Package output encodes the rendered card and writes it to disk.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes img to w as PNG at the best compression level. An opaque
// *image.RGBA is stored as 8-bit RGB without an alpha channel.
func Encode(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// WriteFile encodes img to path and returns the size of the file on disk.
// The parent directory must already exist.
func WriteFile(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Report prints the confirmation line for a written file.
func Report(w io.Writer, path string, size int64) error {
	_, err := fmt.Fprintf(w, "Saved %s (%d bytes)\n", path, size)
	return err
}
