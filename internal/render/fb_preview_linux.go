//go:build linux && cgo

package render

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// PreviewOnFramebuffer opens the framebuffer device at path and shows img
// scaled to the device resolution.
func PreviewOnFramebuffer(path string, img *image.RGBA, logger Logger) error {
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	defer dev.Close()

	if logger != nil {
		bounds := dev.Bounds()
		logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	blit(dev, img)
	if logger != nil {
		logger.Infof("fb", "preview blitted to %s", path)
	}
	return nil
}
