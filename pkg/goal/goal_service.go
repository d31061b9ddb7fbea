package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/pkg/report"
)

type (
	GoalService interface {
		SetGoal(ctx context.Context, req domain.SetGoalRequest, employeeID string) (*domain.GoalResponse, error)
		GetGoal(ctx context.Context, employeeID string, year, month int) (*domain.GoalProgressResponse, error)
		GetGoalHistory(ctx context.Context, employeeID string, limit int) ([]*domain.GoalResponse, error)
	}

	goalService struct {
		goalRepository   GoalRepository
		reportRepository report.ReportRepository
	}
)

func NewGoalService(goalRepository GoalRepository, reportRepository report.ReportRepository) GoalService {
	return &goalService{
		goalRepository:   goalRepository,
		reportRepository: reportRepository,
	}
}

func (s *goalService) SetGoal(ctx context.Context, req domain.SetGoalRequest, employeeID string) (*domain.GoalResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	goal, err := s.goalRepository.GetGoal(ctx, employeeID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	if goal == nil {
		goal = &entities.PersonalGoal{
			EmployeeID: employeeUUID,
			Year:       req.Year,
			Month:      req.Month,
			SalesGoal:  req.SalesGoal,
			DrinksGoal: req.DrinksGoal,
			CatchGoal:  req.CatchGoal,
		}
		if err := s.goalRepository.CreateGoal(ctx, goal); err != nil {
			return nil, err
		}
	} else {
		goal.SalesGoal = req.SalesGoal
		goal.DrinksGoal = req.DrinksGoal
		goal.CatchGoal = req.CatchGoal
		if err := s.goalRepository.UpdateGoal(ctx, goal); err != nil {
			return nil, err
		}
	}

	return toGoalResponse(goal, false), nil
}

// GetGoal returns the stored goal for the period, or the defaults when
// none is set, together with progress computed from daily reports.
func (s *goalService) GetGoal(ctx context.Context, employeeID string, year, month int) (*domain.GoalProgressResponse, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrGoalPeriodInvalid
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	goal, err := s.goalRepository.GetGoal(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	var res domain.GoalResponse
	if goal == nil {
		res = domain.GoalResponse{
			EmployeeID: employeeUUID,
			Year:       year,
			Month:      month,
			SalesGoal:  domain.DefaultSalesGoal,
			DrinksGoal: domain.DefaultDrinksGoal,
			CatchGoal:  domain.DefaultCatchGoal,
			IsDefault:  true,
		}
	} else {
		res = *toGoalResponse(goal, false)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	sales, drinks, err := s.reportRepository.SumEmployeeSalesForPeriod(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	progress := &domain.GoalProgressResponse{
		GoalResponse:  res,
		CurrentSales:  sales,
		CurrentDrinks: drinks,
	}
	if res.SalesGoal > 0 {
		progress.SalesPercent = sales / res.SalesGoal * 100
	}
	if res.DrinksGoal > 0 {
		progress.DrinksPercent = float64(drinks) / float64(res.DrinksGoal) * 100
	}

	return progress, nil
}

func (s *goalService) GetGoalHistory(ctx context.Context, employeeID string, limit int) ([]*domain.GoalResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 12
	}

	goals, err := s.goalRepository.GetGoalHistory(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		res = append(res, toGoalResponse(goal, false))
	}
	return res, nil
}

func toGoalResponse(goal *entities.PersonalGoal, isDefault bool) *domain.GoalResponse {
	return &domain.GoalResponse{
		EmployeeID: goal.EmployeeID,
		Year:       goal.Year,
		Month:      goal.Month,
		SalesGoal:  goal.SalesGoal,
		DrinksGoal: goal.DrinksGoal,
		CatchGoal:  goal.CatchGoal,
		IsDefault:  isDefault,
	}
}
