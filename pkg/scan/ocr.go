package scan

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"Bar-Management-SaaS/internal/utils"
)

const defaultVisionEndpoint = "https://vision.googleapis.com/v1/images:annotate"

type (
	// TextRecognizer turns a receipt image into text. A nil recognizer
	// puts the scanner into test mode.
	TextRecognizer interface {
		RecognizeText(ctx context.Context, imageData []byte) (OcrResult, error)
	}

	// OcrResult carries the raw text plus whatever quality signal the
	// engine exposes. Confidence is -1 when the engine reported none.
	OcrResult struct {
		Text       string
		Confidence float64
		WordCount  int
	}

	visionRecognizer struct {
		apiKey   string
		endpoint string
		client   *http.Client
	}
)

// NewVisionRecognizer returns a Cloud Vision backed recognizer, or nil
// when no API key is configured.
func NewVisionRecognizer() TextRecognizer {
	apiKey := utils.GetConfig("VISION_API_KEY")
	if apiKey == "" {
		return nil
	}

	endpoint := utils.GetConfig("VISION_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultVisionEndpoint
	}

	return &visionRecognizer{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type (
	visionRequest struct {
		Requests []visionAnnotateRequest `json:"requests"`
	}

	visionAnnotateRequest struct {
		Image    visionImage     `json:"image"`
		Features []visionFeature `json:"features"`
	}

	visionImage struct {
		Content string `json:"content"`
	}

	visionFeature struct {
		Type       string `json:"type"`
		MaxResults int    `json:"maxResults,omitempty"`
	}

	visionResponse struct {
		Responses []struct {
			TextAnnotations []struct {
				Description string  `json:"description"`
				Confidence  float64 `json:"confidence,omitempty"`
			} `json:"textAnnotations"`
			Error *struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			} `json:"error,omitempty"`
		} `json:"responses"`
	}
)

func (v *visionRecognizer) RecognizeText(ctx context.Context, imageData []byte) (OcrResult, error) {
	reqBody := visionRequest{
		Requests: []visionAnnotateRequest{
			{
				Image: visionImage{
					Content: base64.StdEncoding.EncodeToString(imageData),
				},
				Features: []visionFeature{
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return OcrResult{Confidence: -1}, err
	}

	url := fmt.Sprintf("%s?key=%s", v.endpoint, v.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return OcrResult{Confidence: -1}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return OcrResult{Confidence: -1}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OcrResult{Confidence: -1}, err
	}
	if resp.StatusCode != http.StatusOK {
		return OcrResult{Confidence: -1}, fmt.Errorf("vision API returned status %d: %s", resp.StatusCode, string(body))
	}

	var visionResp visionResponse
	if err := json.Unmarshal(body, &visionResp); err != nil {
		return OcrResult{Confidence: -1}, err
	}

	if len(visionResp.Responses) == 0 {
		return OcrResult{Confidence: -1}, fmt.Errorf("vision API returned empty response")
	}
	r := visionResp.Responses[0]
	if r.Error != nil {
		return OcrResult{Confidence: -1}, fmt.Errorf("vision API error %d: %s", r.Error.Code, r.Error.Message)
	}
	if len(r.TextAnnotations) == 0 {
		return OcrResult{Text: "", Confidence: -1}, nil
	}

	// The first annotation holds the full text block. The rest are
	// per-word annotations whose confidences, when present, average
	// into the OCR quality signal with 0.8 assumed per silent word.
	fullText := r.TextAnnotations[0].Description
	wordCount := len(r.TextAnnotations) - 1

	confidence := -1.0
	if wordCount > 0 {
		sum := 0.0
		for _, word := range r.TextAnnotations[1:] {
			if word.Confidence > 0 {
				sum += word.Confidence
			} else {
				sum += 0.8
			}
		}
		confidence = sum / float64(wordCount)
	}

	return OcrResult{
		Text:       fullText,
		Confidence: confidence,
		WordCount:  wordCount,
	}, nil
}
