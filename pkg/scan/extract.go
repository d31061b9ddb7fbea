package scan

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"Bar-Management-SaaS/domain"
)

// ExtractedFields is everything the pattern pass pulls out of OCR text.
type ExtractedFields struct {
	Amount        *int
	Date          string
	CustomerName  string
	DrinkCount    *int
	ChampagneType string
	IsCard        *bool
	Details       map[string]domain.MatchDetail
}

// ExtractFields runs all field extractors over raw OCR text.
func ExtractFields(text string, now time.Time) ExtractedFields {
	fields := ExtractedFields{
		Details: map[string]domain.MatchDetail{},
	}

	if amount, detail := extractAmount(text); amount != nil {
		fields.Amount = amount
		fields.Details["amount"] = *detail
	}

	date, detail := extractDate(text, now)
	fields.Date = date
	if detail != nil {
		fields.Details["date"] = *detail
	}

	if name, detail := extractCustomer(text); name != "" {
		fields.CustomerName = name
		fields.Details["customer"] = *detail
	}

	if drinks, detail := extractDrinks(text); drinks != nil {
		fields.DrinkCount = drinks
		fields.Details["drinks"] = *detail
	}

	if champagne, detail := extractChampagne(text); champagne != "" {
		fields.ChampagneType = champagne
		fields.Details["champagne"] = *detail
	}

	if isCard, detail := extractPayment(text); isCard != nil {
		fields.IsCard = isCard
		fields.Details["payment"] = *detail
	}

	return fields
}

func extractAmount(text string) (*int, *domain.MatchDetail) {
	for _, pattern := range amountPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		return &amount, &domain.MatchDetail{
			MatchedPattern: pattern.String(),
			RawMatch:       m[0],
		}
	}
	return nil, nil
}

// extractDate falls back to the current date when nothing matches. A
// receipt scanned the same night it was issued is the common case.
func extractDate(text string, now time.Time) (string, *domain.MatchDetail) {
	for i, pattern := range datePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var year, month, day int
		switch i {
		case 0:
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		case 1:
			year = now.Year()
			month, _ = strconv.Atoi(m[1])
			day, _ = strconv.Atoi(m[2])
		case 2:
			year, _ = strconv.Atoi(m[1])
			if year < 100 {
				year += 2000
			}
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		}

		if !isValidDate(year, month, day) {
			continue
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), &domain.MatchDetail{
			MatchedPattern: pattern.String(),
			RawMatch:       m[0],
		}
	}

	return now.Format("2006-01-02"), nil
}

func isValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func extractCustomer(text string) (string, *domain.MatchDetail) {
	for _, pattern := range customerPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		name = honorificSuffix.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)
		if name == "" || utf8.RuneCountInString(name) > 20 {
			continue
		}
		return name + "様", &domain.MatchDetail{
			MatchedPattern: pattern.String(),
			RawMatch:       m[0],
		}
	}
	return "", nil
}

func extractDrinks(text string) (*int, *domain.MatchDetail) {
	for _, pattern := range drinkPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil || count <= 0 || count >= 100 {
			continue
		}
		return &count, &domain.MatchDetail{
			MatchedPattern: pattern.String(),
			RawMatch:       m[0],
		}
	}
	return nil, nil
}

func extractChampagne(text string) (string, *domain.MatchDetail) {
	lower := strings.ToLower(text)
	for _, brand := range champagneBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand, &domain.MatchDetail{
				MatchedPattern: "brand:" + brand,
				RawMatch:       brand,
			}
		}
	}

	for _, pattern := range champagnePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > 30 {
			name = string([]rune(name)[:30])
		}
		return name, &domain.MatchDetail{
			MatchedPattern: pattern.String(),
			RawMatch:       m[0],
		}
	}
	return "", nil
}

// extractPayment prefers an explicit payment label and checks card
// keywords before cash ones, since カード lines often sit next to 現金
// change lines on the same slip.
func extractPayment(text string) (*bool, *domain.MatchDetail) {
	if m := paymentLabeled.FindStringSubmatch(text); m != nil {
		method := strings.ToLower(m[1])
		isCard := method != "現金" && method != "cash"
		return &isCard, &domain.MatchDetail{
			MatchedPattern: paymentLabeled.String(),
			RawMatch:       m[0],
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range cardKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			isCard := true
			return &isCard, &domain.MatchDetail{
				MatchedPattern: "keyword:" + kw,
				RawMatch:       kw,
			}
		}
	}
	for _, kw := range cashKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			isCard := false
			return &isCard, &domain.MatchDetail{
				MatchedPattern: "keyword:" + kw,
				RawMatch:       kw,
			}
		}
	}
	return nil, nil
}
