package scan

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 240, G: 240, B: 240, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestPreprocessDownscalesLargeImages(t *testing.T) {
	data := encodeTestImage(t, 4096, 1024)

	out := Preprocess(data)
	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.LessOrEqual(t, img.Bounds().Dx(), maxImageDimension)
	assert.LessOrEqual(t, img.Bounds().Dy(), maxImageDimension)
	// Aspect ratio survives the fit.
	assert.Equal(t, 2048, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestPreprocessKeepsSmallImageSize(t *testing.T) {
	data := encodeTestImage(t, 640, 480)

	out := Preprocess(data)
	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestPreprocessPassesThroughUndecodableData(t *testing.T) {
	data := []byte("not an image at all")

	out := Preprocess(data)
	assert.Equal(t, data, out)
}
