package scan

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bar-Management-SaaS/domain"
)

type stubRecognizer struct {
	result OcrResult
	err    error
}

func (r *stubRecognizer) RecognizeText(_ context.Context, _ []byte) (OcrResult, error) {
	return r.result, r.err
}

func TestScanRejectsInvalidBase64(t *testing.T) {
	s := NewScanner(nil, nil)

	result := s.Scan(context.Background(), "!!!not-base64!!!")

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrImageDataInvalid.Error(), result.Error)
	assert.Empty(t, result.ImageHash)
}

func TestScanRejectsEmptyPayload(t *testing.T) {
	s := NewScanner(nil, nil)

	result := s.Scan(context.Background(), "")
	assert.False(t, result.Success)
}

func TestScanTestModeExtractsSampleFields(t *testing.T) {
	s := NewScanner(nil, nil)
	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))

	result := s.Scan(context.Background(), payload)

	require.True(t, result.Success)
	assert.True(t, result.IsTestMode)
	assert.Equal(t, testModeSampleText, result.RawText)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 35000, *result.Amount)
	require.NotNil(t, result.DrinkCount)
	assert.Equal(t, 8, *result.DrinkCount)
	assert.Equal(t, "モエ", result.ChampagneType)
	require.NotNil(t, result.IsCard)
	assert.True(t, *result.IsCard)
	assert.Greater(t, result.Confidence, 0.5)
	assert.NotEmpty(t, result.ImageHash)
	assert.True(t, strings.HasPrefix(result.ImageURL, "https://example.com/receipts/"))
}

func TestScanAcceptsDataURI(t *testing.T) {
	s := NewScanner(nil, nil)
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))

	result := s.Scan(context.Background(), payload)
	assert.True(t, result.Success)
}

func TestScanEmptyOcrTextStillSucceeds(t *testing.T) {
	s := NewScanner(&stubRecognizer{result: OcrResult{Text: "", Confidence: 0.9}}, nil)
	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))

	result := s.Scan(context.Background(), payload)

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.False(t, result.IsTestMode)
	assert.Nil(t, result.Amount)
	// Date falls back to today even with nothing to read.
	assert.NotEmpty(t, result.Date)
	assert.InDelta(t, weightDate+0.9*weightOCR, result.Confidence, 0.0001)
}

func TestScanSurfacesRecognizerError(t *testing.T) {
	s := NewScanner(&stubRecognizer{err: errors.New("vision quota exceeded")}, nil)
	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))

	result := s.Scan(context.Background(), payload)

	assert.False(t, result.Success)
	assert.Equal(t, "vision quota exceeded", result.Error)
}

func TestScanKeepsPartialTextOnRecognizerError(t *testing.T) {
	s := NewScanner(&stubRecognizer{
		result: OcrResult{Text: "合計: ¥1,200", Confidence: -1},
		err:    errors.New("response truncated"),
	}, nil)
	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))

	result := s.Scan(context.Background(), payload)

	require.True(t, result.Success)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 1200, *result.Amount)
}

func TestScanHashStableForSameImage(t *testing.T) {
	s := NewScanner(nil, nil)
	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))

	first := s.Scan(context.Background(), payload)
	second := s.Scan(context.Background(), payload)

	assert.Equal(t, first.ImageHash, second.ImageHash)
}
