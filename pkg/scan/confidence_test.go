package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyFields(t *testing.T) {
	score := Score(ExtractedFields{}, -1)
	// Only the neutral OCR component contributes.
	assert.InDelta(t, 0.05, score, 0.0001)
}

func TestScoreFullFields(t *testing.T) {
	fields := ExtractFields(testModeSampleText, time.Now())
	score := Score(fields, 1.0)

	assert.InDelta(t, 1.0, score, 0.0001)
}

func TestScoreFallbackDateCounts(t *testing.T) {
	fields := ExtractFields("ありがとうございました", time.Now())

	_, matched := fields.Details["date"]
	assert.False(t, matched)
	assert.NotEmpty(t, fields.Date)

	// The defaulted date carries the date weight like a matched one.
	assert.InDelta(t, weightDate+0.5*weightOCR, Score(fields, -1), 0.0001)
}

func TestScoreMonotonic(t *testing.T) {
	amount := 5000
	withAmount := ExtractedFields{Amount: &amount}
	without := ExtractedFields{}

	assert.Greater(t, Score(withAmount, 0.5), Score(without, 0.5))
}

func TestScoreExplicitCashCounts(t *testing.T) {
	isCard := false
	fields := ExtractedFields{IsCard: &isCard}

	assert.Greater(t, Score(fields, 0.5), Score(ExtractedFields{}, 0.5))
}

func TestScoreClamped(t *testing.T) {
	fields := ExtractFields(testModeSampleText, time.Now())
	assert.LessOrEqual(t, Score(fields, 1.0), 1.0)
}
