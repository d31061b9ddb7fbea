package entities

import (
	"time"

	"github.com/google/uuid"
)

type DailyReport struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID              uuid.UUID  `json:"store_id"`
	EmployeeID           uuid.UUID  `json:"employee_id"`
	Date                 time.Time  `gorm:"type:date" json:"date"`
	TotalSales           float64    `gorm:"default:0" json:"total_sales"`
	AlcoholCost          float64    `gorm:"default:0" json:"alcohol_cost"`
	OtherExpenses        float64    `gorm:"default:0" json:"other_expenses"`
	CardSales            float64    `gorm:"default:0" json:"card_sales"`
	DrinkCount           int        `gorm:"default:0" json:"drink_count"`
	ChampagneType        string     `json:"champagne_type"`
	ChampagnePrice       float64    `gorm:"default:0" json:"champagne_price"`
	WorkStartTime        string     `json:"work_start_time"`
	WorkEndTime          string     `json:"work_end_time"`
	BreakMinutes         int        `gorm:"default:0" json:"break_minutes"`
	IsApproved           bool       `gorm:"default:false" json:"is_approved"`
	ApprovedByEmployeeID *uuid.UUID `json:"approved_by_employee_id,omitempty"`
	ApprovedAt           *time.Time `json:"approved_at,omitempty"`
	Notes                string     `gorm:"type:text" json:"notes,omitempty"`

	Store    *Store     `gorm:"foreignKey:StoreID"`
	Employee *Employee  `gorm:"foreignKey:EmployeeID"`
	Receipts []*Receipt `gorm:"foreignKey:DailyReportID"`
	Timestamp
}

type Receipt struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DailyReportID     uuid.UUID  `json:"daily_report_id"`
	CustomerName      string     `json:"customer_name"`
	EmployeeName      string     `json:"employee_name"`
	DrinkCount        int        `gorm:"default:0" json:"drink_count"`
	ChampagneType     string     `json:"champagne_type"`
	ChampagnePrice    float64    `gorm:"default:0" json:"champagne_price"`
	Amount            float64    `json:"amount"`
	IsCard            bool       `gorm:"default:false" json:"is_card"`
	ReceiptNumber     string     `json:"receipt_number,omitempty"`
	TableNumber       string     `json:"table_number,omitempty"`
	ServiceCharge     float64    `gorm:"default:0" json:"service_charge"`
	ReceiptImageID    *uuid.UUID `json:"receipt_image_id,omitempty"`
	IsAutoGenerated   bool       `gorm:"default:false" json:"is_auto_generated"`
	ManualCorrections string     `gorm:"type:text" json:"manual_corrections,omitempty"`

	DailyReport *DailyReport `gorm:"foreignKey:DailyReportID"`
	Timestamp
}
