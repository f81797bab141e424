//go:build !linux || !cgo

package render

import (
	"errors"
	"image"
)

var errNoFramebuffer = errors.New("framebuffer preview is only supported on linux")

func PreviewOnFramebuffer(path string, img *image.RGBA, logger Logger) error {
	return errNoFramebuffer
}
