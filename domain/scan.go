package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessScanReceipt = "receipt scanned"
	MessageSuccessConfirmScan = "scan confirmed"
	MessageSuccessGetScans    = "success getting scan history"
	MessageSuccessDeleteScan  = "scan deleted"
	MessageFailedScanReceipt  = "failed scanning receipt"
	MessageFailedConfirmScan  = "failed confirming scan"
	MessageFailedGetScans     = "failed getting scan history"
	MessageFailedDeleteScan   = "failed deleting scan"

	ErrImageDataInvalid = errors.New("invalid image data")
	ErrScanNotFound     = errors.New("scanned receipt not found")
	ErrScanAlreadyUsed  = errors.New("scanned receipt already confirmed")
)

type (
	ScanReceiptRequest struct {
		Image         string `json:"image" validate:"required"`
		DailyReportID string `json:"daily_report_id" validate:"omitempty,uuid"`
	}

	// ScanResult is the outcome of one pass through the extraction pipeline.
	ScanResult struct {
		Success       bool                   `json:"success"`
		Error         string                 `json:"error,omitempty"`
		ImageURL      string                 `json:"image_url,omitempty"`
		ImageHash     string                 `json:"image_hash,omitempty"`
		RawText       string                 `json:"raw_text,omitempty"`
		Amount        *int                   `json:"amount"`
		Date          string                 `json:"date,omitempty"`
		CustomerName  string                 `json:"customer_name,omitempty"`
		DrinkCount    *int                   `json:"drink_count"`
		ChampagneType string                 `json:"champagne_type,omitempty"`
		IsCard        *bool                  `json:"is_card"`
		Confidence    float64                `json:"confidence"`
		Details       map[string]MatchDetail `json:"details,omitempty"`
		IsTestMode    bool                   `json:"is_test_mode,omitempty"`
	}

	// MatchDetail records which pattern produced a field for operator review.
	MatchDetail struct {
		MatchedPattern string `json:"matched_pattern"`
		RawMatch       string `json:"raw_match"`
	}

	ScanReceiptResponse struct {
		ScanResult
		ReceiptImageID uuid.UUID `json:"receipt_image_id"`
	}

	ConfirmScanRequest struct {
		ReceiptImageID string  `json:"receipt_image_id" validate:"required,uuid"`
		DailyReportID  string  `json:"daily_report_id" validate:"required,uuid"`
		CustomerName   string  `json:"customer_name"`
		EmployeeName   string  `json:"employee_name"`
		Amount         float64 `json:"amount" validate:"min=0"`
		DrinkCount     int     `json:"drink_count" validate:"min=0"`
		ChampagneType  string  `json:"champagne_type"`
		ChampagnePrice float64 `json:"champagne_price" validate:"min=0"`
		IsCard         bool    `json:"is_card"`
		Corrections    string  `json:"manual_corrections"`
	}

	ScanHistoryItem struct {
		ID              uuid.UUID  `json:"id"`
		ImageURL        string     `json:"image_url"`
		ImageHash       string     `json:"image_hash"`
		Status          string     `json:"processing_status"`
		ConfidenceScore float64    `json:"confidence_score"`
		IsVerified      bool       `json:"is_verified"`
		DailyReportID   *uuid.UUID `json:"daily_report_id,omitempty"`
		UploadedAt      time.Time  `json:"uploaded_at"`
		ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	}
)
