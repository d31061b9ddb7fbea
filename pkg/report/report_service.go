package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
)

type (
	ReportService interface {
		CreateDailyReport(ctx context.Context, req domain.CreateDailyReportRequest, employeeID string, storeID string) (*domain.DailyReportResponse, error)
		GetDailyReports(ctx context.Context, storeID string, requesterID string, role string, from, to, approved string, page, limit int) ([]*domain.DailyReportResponse, int64, error)
		GetDailyReportByID(ctx context.Context, id string, storeID string, requesterID string, role string) (*domain.DailyReportResponse, error)
		ApproveDailyReport(ctx context.Context, id string, approverID string, storeID string) error
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

func (s *reportService) CreateDailyReport(ctx context.Context, req domain.CreateDailyReportRequest, employeeID string, storeID string) (*domain.DailyReportResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.reportRepository.GetDailyReportByDate(ctx, storeID, employeeID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrReportAlreadyExists
	}

	report := &entities.DailyReport{
		StoreID:        storeUUID,
		EmployeeID:     employeeUUID,
		Date:           date,
		TotalSales:     req.TotalSales,
		AlcoholCost:    req.AlcoholCost,
		OtherExpenses:  req.OtherExpenses,
		CardSales:      req.CardSales,
		DrinkCount:     req.DrinkCount,
		ChampagneType:  req.ChampagneType,
		ChampagnePrice: req.ChampagnePrice,
		WorkStartTime:  req.WorkStartTime,
		WorkEndTime:    req.WorkEndTime,
		BreakMinutes:   req.BreakMinutes,
		Notes:          req.Notes,
	}

	if err := s.reportRepository.CreateDailyReport(ctx, report); err != nil {
		return nil, err
	}

	return ToReportResponse(report), nil
}

func (s *reportService) GetDailyReports(ctx context.Context, storeID string, requesterID string, role string, from, to, approved string, page, limit int) ([]*domain.DailyReportResponse, int64, error) {
	// Staff only see their own reports. Managers and above see the
	// whole store.
	employeeFilter := ""
	if !domain.RoleAtLeast(role, domain.RoleManager) {
		employeeFilter = requesterID
	}

	var fromDate, toDate *time.Time
	if from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			fromDate = &t
		}
	}
	if to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			toDate = &t
		}
	}

	var approvedFilter *bool
	if approved == "true" || approved == "false" {
		value := approved == "true"
		approvedFilter = &value
	}

	reports, count, err := s.reportRepository.GetDailyReports(ctx, storeID, employeeFilter, fromDate, toDate, approvedFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]*domain.DailyReportResponse, 0, len(reports))
	for _, report := range reports {
		res = append(res, ToReportResponse(report))
	}
	return res, count, nil
}

func (s *reportService) GetDailyReportByID(ctx context.Context, id string, storeID string, requesterID string, role string) (*domain.DailyReportResponse, error) {
	report, err := s.reportRepository.GetDailyReportByID(ctx, id)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	if report.StoreID.String() != storeID {
		return nil, domain.ErrStoreAccessDenied
	}
	if !domain.RoleAtLeast(role, domain.RoleManager) && report.EmployeeID.String() != requesterID {
		return nil, domain.ErrReportNotOwned
	}

	return ToReportResponse(report), nil
}

func (s *reportService) ApproveDailyReport(ctx context.Context, id string, approverID string, storeID string) error {
	report, err := s.reportRepository.GetDailyReportByID(ctx, id)
	if err != nil {
		return domain.ErrReportNotFound
	}
	if report.StoreID.String() != storeID {
		return domain.ErrStoreAccessDenied
	}

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return domain.ErrParseUUID
	}

	now := time.Now()
	report.IsApproved = true
	report.ApprovedByEmployeeID = &approverUUID
	report.ApprovedAt = &now

	return s.reportRepository.UpdateDailyReport(ctx, report)
}

func ToReportResponse(report *entities.DailyReport) *domain.DailyReportResponse {
	res := &domain.DailyReportResponse{
		ID:             report.ID,
		StoreID:        report.StoreID,
		EmployeeID:     report.EmployeeID,
		Date:           report.Date,
		TotalSales:     report.TotalSales,
		AlcoholCost:    report.AlcoholCost,
		OtherExpenses:  report.OtherExpenses,
		CardSales:      report.CardSales,
		DrinkCount:     report.DrinkCount,
		ChampagneType:  report.ChampagneType,
		ChampagnePrice: report.ChampagnePrice,
		WorkStartTime:  report.WorkStartTime,
		WorkEndTime:    report.WorkEndTime,
		BreakMinutes:   report.BreakMinutes,
		IsApproved:     report.IsApproved,
		ApprovedAt:     report.ApprovedAt,
		Notes:          report.Notes,
		CreatedAt:      report.CreatedAt,
	}

	if report.Employee != nil {
		res.EmployeeName = report.Employee.Name
	}

	for _, receipt := range report.Receipts {
		res.Receipts = append(res.Receipts, domain.ReceiptResponse{
			ID:             receipt.ID,
			CustomerName:   receipt.CustomerName,
			EmployeeName:   receipt.EmployeeName,
			DrinkCount:     receipt.DrinkCount,
			ChampagneType:  receipt.ChampagneType,
			ChampagnePrice: receipt.ChampagnePrice,
			Amount:         receipt.Amount,
			IsCard:         receipt.IsCard,
			ReceiptNumber:  receipt.ReceiptNumber,
			TableNumber:    receipt.TableNumber,
			IsAuto:         receipt.IsAutoGenerated,
			CreatedAt:      receipt.CreatedAt,
		})
	}

	return res
}
