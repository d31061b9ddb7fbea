package entities

import (
	"time"

	"github.com/google/uuid"
)

type ReceiptImage struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID          uuid.UUID  `json:"store_id"`
	EmployeeID       uuid.UUID  `json:"employee_id"`
	DailyReportID    *uuid.UUID `json:"daily_report_id,omitempty"`
	ImageURL         string     `json:"image_url"`
	ImageHash        string     `gorm:"index" json:"image_hash"`
	OcrRawText       string     `gorm:"type:text" json:"ocr_raw_text,omitempty"`
	OcrExtractedData string     `gorm:"type:text" json:"ocr_extracted_data,omitempty"`
	ProcessingStatus string     `gorm:"default:pending" json:"processing_status"` // pending, completed, failed
	ConfidenceScore  float64    `gorm:"default:0" json:"confidence_score"`
	IsVerified       bool       `gorm:"default:false" json:"is_verified"`
	UploadedAt       time.Time  `json:"uploaded_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`

	Store    *Store    `gorm:"foreignKey:StoreID"`
	Employee *Employee `gorm:"foreignKey:EmployeeID"`
	Timestamp
}
