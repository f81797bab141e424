package render

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGenerateQRCodeImage(t *testing.T) {
	img, err := GenerateQRCodeImage("", 64)
	test.Error(t, err)
	test.That(t, img == nil, "empty payload yields no image")

	img, err = GenerateQRCodeImage("https://uprooted.sh", 0)
	test.Error(t, err)
	test.That(t, img != nil)
	test.That(t, img.Bounds().Dx() >= defaultQRCodeSizePx, "qr smaller than requested:", img.Bounds())
}
