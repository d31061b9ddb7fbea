package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateReport  = "daily report created"
	MessageSuccessGetReports    = "success getting daily reports"
	MessageSuccessGetReport     = "success getting daily report detail"
	MessageSuccessApproveReport = "daily report approved"

	MessageFailedCreateReport  = "failed creating daily report"
	MessageFailedGetReports    = "failed getting daily reports"
	MessageFailedGetReport     = "failed getting daily report detail"
	MessageFailedApproveReport = "failed approving daily report"

	ErrReportNotFound      = errors.New("daily report not found")
	ErrReportAlreadyExists = errors.New("daily report for this date already exists")
	ErrReportNotOwned      = errors.New("daily report belongs to another employee")
)

type (
	CreateDailyReportRequest struct {
		Date           string  `json:"date" validate:"required"`
		TotalSales     float64 `json:"total_sales" validate:"min=0"`
		AlcoholCost    float64 `json:"alcohol_cost" validate:"min=0"`
		OtherExpenses  float64 `json:"other_expenses" validate:"min=0"`
		CardSales      float64 `json:"card_sales" validate:"min=0"`
		DrinkCount     int     `json:"drink_count" validate:"min=0"`
		ChampagneType  string  `json:"champagne_type"`
		ChampagnePrice float64 `json:"champagne_price" validate:"min=0"`
		WorkStartTime  string  `json:"work_start_time"`
		WorkEndTime    string  `json:"work_end_time"`
		BreakMinutes   int     `json:"break_minutes" validate:"min=0"`
		Notes          string  `json:"notes"`
	}

	DailyReportResponse struct {
		ID             uuid.UUID         `json:"id"`
		StoreID        uuid.UUID         `json:"store_id"`
		EmployeeID     uuid.UUID         `json:"employee_id"`
		EmployeeName   string            `json:"employee_name,omitempty"`
		Date           time.Time         `json:"date"`
		TotalSales     float64           `json:"total_sales"`
		AlcoholCost    float64           `json:"alcohol_cost"`
		OtherExpenses  float64           `json:"other_expenses"`
		CardSales      float64           `json:"card_sales"`
		DrinkCount     int               `json:"drink_count"`
		ChampagneType  string            `json:"champagne_type"`
		ChampagnePrice float64           `json:"champagne_price"`
		WorkStartTime  string            `json:"work_start_time"`
		WorkEndTime    string            `json:"work_end_time"`
		BreakMinutes   int               `json:"break_minutes"`
		IsApproved     bool              `json:"is_approved"`
		ApprovedAt     *time.Time        `json:"approved_at,omitempty"`
		Notes          string            `json:"notes"`
		Receipts       []ReceiptResponse `json:"receipts,omitempty"`
		CreatedAt      time.Time         `json:"created_at"`
	}

	ReceiptResponse struct {
		ID             uuid.UUID `json:"id"`
		CustomerName   string    `json:"customer_name"`
		EmployeeName   string    `json:"employee_name"`
		DrinkCount     int       `json:"drink_count"`
		ChampagneType  string    `json:"champagne_type"`
		ChampagnePrice float64   `json:"champagne_price"`
		Amount         float64   `json:"amount"`
		IsCard         bool      `json:"is_card"`
		ReceiptNumber  string    `json:"receipt_number"`
		TableNumber    string    `json:"table_number"`
		IsAuto         bool      `json:"is_auto_generated"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
