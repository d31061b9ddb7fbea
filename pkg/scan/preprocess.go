package scan

import (
	"bytes"

	"github.com/disintegration/imaging"
)

const maxImageDimension = 2048

// Preprocess normalizes a receipt photo for OCR: cap the resolution,
// raise contrast and sharpness, then brighten slightly. Any failure
// returns the original bytes so a bad photo still reaches the OCR step.
func Preprocess(data []byte) []byte {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	img = imaging.AdjustContrast(img, 50)
	img = imaging.Sharpen(img, 1.2)
	img = imaging.AdjustBrightness(img, 10)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return data
	}
	return buf.Bytes()
}
