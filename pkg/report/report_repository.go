package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	ReportRepository interface {
		CreateDailyReport(ctx context.Context, report *entities.DailyReport) error
		GetDailyReportByID(ctx context.Context, id string) (*entities.DailyReport, error)
		GetDailyReportByDate(ctx context.Context, storeID string, employeeID string, date time.Time) (*entities.DailyReport, error)
		UpdateDailyReport(ctx context.Context, report *entities.DailyReport) error
		GetDailyReports(ctx context.Context, storeID string, employeeID string, from, to *time.Time, approved *bool, page, limit int) ([]*entities.DailyReport, int64, error)
		RecalculateTotals(ctx context.Context, dailyReportID string) error
		SumSalesForPeriod(ctx context.Context, storeID string, from, to time.Time) (float64, int, error)
		SumEmployeeSalesForPeriod(ctx context.Context, employeeID string, from, to time.Time) (float64, int, error)
		CountPendingReports(ctx context.Context, storeID string) (int64, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateDailyReport(ctx context.Context, report *entities.DailyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetDailyReportByID(ctx context.Context, id string) (*entities.DailyReport, error) {
	var report entities.DailyReport
	if err := r.db.WithContext(ctx).
		Preload("Receipts").
		Preload("Employee").
		Where("id = ?", id).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetDailyReportByDate(ctx context.Context, storeID string, employeeID string, date time.Time) (*entities.DailyReport, error) {
	var report entities.DailyReport
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND employee_id = ? AND date = ?", storeID, employeeID, date).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) UpdateDailyReport(ctx context.Context, report *entities.DailyReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *reportRepository) GetDailyReports(ctx context.Context, storeID string, employeeID string, from, to *time.Time, approved *bool, page, limit int) ([]*entities.DailyReport, int64, error) {
	var reports []*entities.DailyReport
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}
	if approved != nil {
		query = query.Where("is_approved = ?", *approved)
	}

	if err := query.Model(&entities.DailyReport{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Employee").
		Offset(offset).Limit(limit).
		Order("date desc").
		Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, count, nil
}

// RecalculateTotals resyncs a report's aggregate columns from its
// receipts after a scan confirmation or manual edit.
func (r *reportRepository) RecalculateTotals(ctx context.Context, dailyReportID string) error {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("daily_report_id = ?", dailyReportID).
		Find(&receipts).Error; err != nil {
		return err
	}

	var totalSales, cardSales, champagnePrice float64
	var drinkCount int
	champagneTypes := make([]string, 0)
	seen := map[string]bool{}

	for _, receipt := range receipts {
		totalSales += receipt.Amount
		if receipt.IsCard {
			cardSales += receipt.Amount
		}
		drinkCount += receipt.DrinkCount
		champagnePrice += receipt.ChampagnePrice
		if receipt.ChampagneType != "" && !seen[receipt.ChampagneType] {
			seen[receipt.ChampagneType] = true
			champagneTypes = append(champagneTypes, receipt.ChampagneType)
		}
	}

	return r.db.WithContext(ctx).Model(&entities.DailyReport{}).
		Where("id = ?", dailyReportID).
		Updates(map[string]interface{}{
			"total_sales":     totalSales,
			"card_sales":      cardSales,
			"drink_count":     drinkCount,
			"champagne_price": champagnePrice,
			"champagne_type":  strings.Join(champagneTypes, ", "),
		}).Error
}

func (r *reportRepository) SumSalesForPeriod(ctx context.Context, storeID string, from, to time.Time) (float64, int, error) {
	type row struct {
		Sales  float64
		Drinks int
	}
	var res row
	err := r.db.WithContext(ctx).Model(&entities.DailyReport{}).
		Select("COALESCE(SUM(total_sales), 0) as sales, COALESCE(SUM(drink_count), 0) as drinks").
		Where("store_id = ? AND date BETWEEN ? AND ?", storeID, from, to).
		Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}
	return res.Sales, res.Drinks, nil
}

func (r *reportRepository) SumEmployeeSalesForPeriod(ctx context.Context, employeeID string, from, to time.Time) (float64, int, error) {
	type row struct {
		Sales  float64
		Drinks int
	}
	var res row
	err := r.db.WithContext(ctx).Model(&entities.DailyReport{}).
		Select("COALESCE(SUM(total_sales), 0) as sales, COALESCE(SUM(drink_count), 0) as drinks").
		Where("employee_id = ? AND date BETWEEN ? AND ?", employeeID, from, to).
		Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}
	return res.Sales, res.Drinks, nil
}

func (r *reportRepository) CountPendingReports(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.DailyReport{}).
		Where("store_id = ? AND is_approved = ?", storeID, false).
		Count(&count).Error
	return count, err
}
