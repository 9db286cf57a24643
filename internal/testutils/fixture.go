package testutils

import (
	"bytes"
	"image"
	"image/png"
)

// MinimalPNG returns a valid 1x1 PNG for upload tests.
func MinimalPNG() []byte {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
