package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateStore    = "store created"
	MessageSuccessGetStores      = "success getting stores"
	MessageSuccessGetStore       = "success getting store detail"
	MessageSuccessToggleStore    = "store status updated"
	MessageSuccessStoreDashboard = "success getting store dashboard"

	MessageFailedCreateStore    = "failed creating store"
	MessageFailedGetStores      = "failed getting stores"
	MessageFailedGetStore       = "failed getting store detail"
	MessageFailedToggleStore    = "failed updating store status"
	MessageFailedStoreDashboard = "failed getting store dashboard"

	ErrStoreNotFound = errors.New("store not found")
)

type (
	CreateStoreRequest struct {
		OrganizationID     string `json:"organization_id" validate:"required,uuid"`
		StoreName          string `json:"store_name" validate:"required"`
		StoreType          string `json:"store_type"`
		Address            string `json:"address"`
		Phone              string `json:"phone"`
		Timezone           string `json:"timezone"`
		Currency           string `json:"currency"`
		BusinessHoursStart string `json:"business_hours_start"`
		BusinessHoursEnd   string `json:"business_hours_end"`
	}

	StoreResponse struct {
		ID            uuid.UUID `json:"id"`
		StoreCode     string    `json:"store_code"`
		StoreName     string    `json:"store_name"`
		StoreType     string    `json:"store_type"`
		Address       string    `json:"address"`
		Phone         string    `json:"phone"`
		Timezone      string    `json:"timezone"`
		Currency      string    `json:"currency"`
		IsActive      bool      `json:"is_active"`
		EmployeeCount int       `json:"employee_count"`
		CreatedAt     time.Time `json:"created_at"`
	}

	StoreDetailResponse struct {
		StoreResponse
		OrganizationName string             `json:"organization_name"`
		Employees        []EmployeeResponse `json:"employees"`
		SalesHistory     []MonthlySales     `json:"sales_history,omitempty"`
	}

	MonthlySales struct {
		Year   int     `json:"year"`
		Month  int     `json:"month"`
		Sales  float64 `json:"sales"`
		Drinks int     `json:"drinks"`
	}

	StoreDashboardResponse struct {
		StoreID        uuid.UUID `json:"store_id"`
		StoreName      string    `json:"store_name"`
		TodaySales     float64   `json:"today_sales"`
		TodayDrinks    int       `json:"today_drinks"`
		MonthSales     float64   `json:"month_sales"`
		MonthDrinks    int       `json:"month_drinks"`
		ReportCount    int64     `json:"report_count"`
		PendingReports int64     `json:"pending_reports"`
		EmployeeCount  int64     `json:"employee_count"`

		RecentReports []*DailyReportResponse `json:"recent_reports"`
	}
)
