package scan

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/utils/storage"
)

// testModeSampleText stands in for OCR output when no recognizer is
// configured, so the extraction pipeline stays exercisable offline.
const testModeSampleText = `伝票 No.1234
2024年11月28日
お客様名: 田中様
担当: 花子
ドリンク 8杯
シャンパン: モエ
合計: ¥35,000
支払: カード
ありがとうございました`

const testModeConfidence = 0.85

type (
	// Scanner runs the full pipeline: decode, preprocess, store,
	// recognize, extract, score.
	Scanner interface {
		Scan(ctx context.Context, imageBase64 string) domain.ScanResult
	}

	scanner struct {
		recognizer TextRecognizer
		s3         storage.AwsS3
	}
)

func NewScanner(recognizer TextRecognizer, s3 storage.AwsS3) Scanner {
	return &scanner{
		recognizer: recognizer,
		s3:         s3,
	}
}

func (s *scanner) Scan(ctx context.Context, imageBase64 string) domain.ScanResult {
	raw, err := decodeImagePayload(imageBase64)
	if err != nil {
		return domain.ScanResult{
			Success: false,
			Error:   domain.ErrImageDataInvalid.Error(),
		}
	}

	processed := Preprocess(raw)

	hash := sha256.Sum256(processed)
	imageHash := hex.EncodeToString(hash[:])

	imageURL := s.storeImage(processed, imageHash)

	result := domain.ScanResult{
		Success:   true,
		ImageURL:  imageURL,
		ImageHash: imageHash,
	}

	ocr, testMode, err := s.recognize(ctx, processed)
	result.IsTestMode = testMode
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		return result
	}
	result.RawText = ocr.Text

	fields := ExtractFields(ocr.Text, time.Now())
	result.Amount = fields.Amount
	result.Date = fields.Date
	result.CustomerName = fields.CustomerName
	result.DrinkCount = fields.DrinkCount
	result.ChampagneType = fields.ChampagneType
	result.IsCard = fields.IsCard
	result.Details = fields.Details
	result.Confidence = Score(fields, ocr.Confidence)

	return result
}

// decodeImagePayload accepts both bare base64 and data URIs.
func decodeImagePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, domain.ErrImageDataInvalid
	}
	return base64.StdEncoding.DecodeString(payload)
}

// storeImage uploads the processed image when a bucket is configured.
// Storage failures are logged and never abort the scan.
func (s *scanner) storeImage(data []byte, imageHash string) string {
	fileName := fmt.Sprintf("%s.jpg", imageHash[:16])
	if s.s3 == nil || !s.s3.Enabled() {
		return fmt.Sprintf("https://example.com/receipts/%s", fileName)
	}

	objectKey, err := s.s3.UploadBytes(fileName, data, "receipts", "image/jpeg")
	if err != nil {
		log.Printf("receipt image upload failed: %v", err)
		return fmt.Sprintf("https://example.com/receipts/%s", fileName)
	}
	return s.s3.GetPublicLinkKey(objectKey)
}

// recognize runs OCR, or the canned sample when no recognizer is
// configured. A backend error is fatal only when no text came back;
// empty text from a successful call just means nothing extractable.
func (s *scanner) recognize(ctx context.Context, data []byte) (OcrResult, bool, error) {
	if s.recognizer == nil {
		return OcrResult{
			Text:       testModeSampleText,
			Confidence: testModeConfidence,
		}, true, nil
	}

	ocr, err := s.recognizer.RecognizeText(ctx, data)
	if err != nil && ocr.Text == "" {
		log.Printf("text recognition failed: %v", err)
		return OcrResult{Confidence: -1}, false, err
	}
	return ocr, false, nil
}
