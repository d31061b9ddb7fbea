package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/internal/utils"
	"Bar-Management-SaaS/pkg/report"
)

type (
	StoreService interface {
		CreateStore(ctx context.Context, req domain.CreateStoreRequest) (*domain.StoreResponse, error)
		GetStores(ctx context.Context, organizationID string) ([]*domain.StoreResponse, error)
		GetStoreByID(ctx context.Context, id string, requesterStoreID string, userType string) (*domain.StoreDetailResponse, error)
		ToggleStore(ctx context.Context, id string) (*domain.StoreResponse, error)
		GetStoreDashboard(ctx context.Context, id string, requesterStoreID string, userType string) (*domain.StoreDashboardResponse, error)
	}

	storeService struct {
		storeRepository  StoreRepository
		reportRepository report.ReportRepository
	}
)

func NewStoreService(storeRepository StoreRepository, reportRepository report.ReportRepository) StoreService {
	return &storeService{
		storeRepository:  storeRepository,
		reportRepository: reportRepository,
	}
}

func (s *storeService) CreateStore(ctx context.Context, req domain.CreateStoreRequest) (*domain.StoreResponse, error) {
	organizationUUID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	count, err := s.storeRepository.CountStoresByOrganization(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	subscription, err := s.storeRepository.GetSubscriptionByOrganization(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if subscription != nil && subscription.MaxStores > 0 && count >= int64(subscription.MaxStores) {
		return nil, domain.ErrStoreLimitReached
	}

	storeType := req.StoreType
	if storeType == "" {
		storeType = "bar"
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "Asia/Tokyo"
	}
	currency := req.Currency
	if currency == "" {
		currency = "JPY"
	}

	store := &entities.Store{
		OrganizationID:     organizationUUID,
		StoreCode:          utils.GenerateStoreCode(),
		StoreName:          req.StoreName,
		StoreType:          storeType,
		Address:            req.Address,
		Phone:              req.Phone,
		Timezone:           timezone,
		Currency:           currency,
		BusinessHoursStart: req.BusinessHoursStart,
		BusinessHoursEnd:   req.BusinessHoursEnd,
		IsActive:           true,
	}
	if err := s.storeRepository.CreateStore(ctx, store); err != nil {
		return nil, err
	}

	return toStoreResponse(store), nil
}

func (s *storeService) GetStores(ctx context.Context, organizationID string) ([]*domain.StoreResponse, error) {
	stores, err := s.storeRepository.GetStores(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.StoreResponse, 0, len(stores))
	for _, store := range stores {
		res = append(res, toStoreResponse(store))
	}
	return res, nil
}

// Employees can only read their own store. System admins read any.
func (s *storeService) GetStoreByID(ctx context.Context, id string, requesterStoreID string, userType string) (*domain.StoreDetailResponse, error) {
	if userType != domain.UserTypeAdmin && requesterStoreID != id {
		return nil, domain.ErrStoreAccessDenied
	}

	store, err := s.storeRepository.GetStoreByID(ctx, id)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}

	detail := &domain.StoreDetailResponse{
		StoreResponse: *toStoreResponse(store),
	}
	if store.Organization != nil {
		detail.OrganizationName = store.Organization.Name
	}
	for _, employee := range store.Employees {
		detail.Employees = append(detail.Employees, domain.EmployeeResponse{
			ID:             employee.ID,
			EmployeeCode:   employee.EmployeeCode,
			Name:           employee.Name,
			Email:          employee.Email,
			Role:           employee.Role,
			IsActive:       employee.IsActive,
			HireDate:       employee.HireDate,
			EmploymentType: employee.EmploymentType,
			LastLoginAt:    employee.LastLoginAt,
			CreatedAt:      employee.CreatedAt,
		})
	}

	// Admin detail view includes the last six months of sales.
	if userType == domain.UserTypeAdmin {
		history, err := s.monthlySales(ctx, id, 6)
		if err != nil {
			return nil, err
		}
		detail.SalesHistory = history
	}

	return detail, nil
}

func (s *storeService) monthlySales(ctx context.Context, storeID string, months int) ([]domain.MonthlySales, error) {
	now := time.Now()
	history := make([]domain.MonthlySales, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		sales, drinks, err := s.reportRepository.SumSalesForPeriod(ctx, storeID, start, end)
		if err != nil {
			return nil, err
		}
		history = append(history, domain.MonthlySales{
			Year:   start.Year(),
			Month:  int(start.Month()),
			Sales:  sales,
			Drinks: drinks,
		})
	}
	return history, nil
}

func (s *storeService) ToggleStore(ctx context.Context, id string) (*domain.StoreResponse, error) {
	store, err := s.storeRepository.GetStoreByID(ctx, id)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}

	store.IsActive = !store.IsActive
	if err := s.storeRepository.UpdateStore(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) GetStoreDashboard(ctx context.Context, id string, requesterStoreID string, userType string) (*domain.StoreDashboardResponse, error) {
	if userType != domain.UserTypeAdmin && requesterStoreID != id {
		return nil, domain.ErrStoreAccessDenied
	}

	store, err := s.storeRepository.GetStoreByID(ctx, id)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}

	today := time.Now().Truncate(24 * time.Hour)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	todaySales, todayDrinks, err := s.reportRepository.SumSalesForPeriod(ctx, id, today, today)
	if err != nil {
		return nil, err
	}
	monthSales, monthDrinks, err := s.reportRepository.SumSalesForPeriod(ctx, id, monthStart, today)
	if err != nil {
		return nil, err
	}
	pending, err := s.reportRepository.CountPendingReports(ctx, id)
	if err != nil {
		return nil, err
	}
	recent, reportCount, err := s.reportRepository.GetDailyReports(ctx, id, "", &monthStart, &today, nil, 1, 5)
	if err != nil {
		return nil, err
	}
	employeeCount, err := s.storeRepository.CountEmployeesByStore(ctx, id)
	if err != nil {
		return nil, err
	}

	recentReports := make([]*domain.DailyReportResponse, 0, len(recent))
	for _, row := range recent {
		recentReports = append(recentReports, report.ToReportResponse(row))
	}

	return &domain.StoreDashboardResponse{
		StoreID:        store.ID,
		StoreName:      store.StoreName,
		TodaySales:     todaySales,
		TodayDrinks:    todayDrinks,
		MonthSales:     monthSales,
		MonthDrinks:    monthDrinks,
		ReportCount:    reportCount,
		PendingReports: pending,
		EmployeeCount:  employeeCount,
		RecentReports:  recentReports,
	}, nil
}

func toStoreResponse(store *entities.Store) *domain.StoreResponse {
	return &domain.StoreResponse{
		ID:            store.ID,
		StoreCode:     store.StoreCode,
		StoreName:     store.StoreName,
		StoreType:     store.StoreType,
		Address:       store.Address,
		Phone:         store.Phone,
		Timezone:      store.Timezone,
		Currency:      store.Currency,
		IsActive:      store.IsActive,
		EmployeeCount: len(store.Employees),
		CreatedAt:     store.CreatedAt,
	}
}
