package scan

// Confidence weights per extracted field. Amount dominates because a
// receipt without a total is useless for reporting.
const (
	weightAmount    = 0.35
	weightDate      = 0.15
	weightCustomer  = 0.15
	weightDrinks    = 0.10
	weightChampagne = 0.10
	weightPayment   = 0.05
	weightOCR       = 0.10
)

// Score combines field completeness with the OCR engine's own
// confidence. ocrConfidence below zero means the engine reported
// nothing and a neutral 0.5 is assumed.
func Score(fields ExtractedFields, ocrConfidence float64) float64 {
	score := 0.0

	if fields.Amount != nil {
		score += weightAmount
	}
	if fields.Date != "" {
		score += weightDate
	}
	if fields.CustomerName != "" {
		score += weightCustomer
	}
	if fields.DrinkCount != nil {
		score += weightDrinks
	}
	if fields.ChampagneType != "" {
		score += weightChampagne
	}
	if fields.IsCard != nil {
		score += weightPayment
	}

	if ocrConfidence < 0 {
		ocrConfidence = 0.5
	}
	score += ocrConfidence * weightOCR

	if score > 1.0 {
		score = 1.0
	}
	return score
}
