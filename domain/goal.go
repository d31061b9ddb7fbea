package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageSuccessSetGoal        = "personal goal saved"
	MessageSuccessGetGoal        = "success getting personal goal"
	MessageSuccessGetGoalHistory = "success getting goal history"

	MessageFailedSetGoal        = "failed saving personal goal"
	MessageFailedGetGoal        = "failed getting personal goal"
	MessageFailedGetGoalHistory = "failed getting goal history"

	ErrGoalPeriodInvalid = errors.New("invalid goal period")
)

// Defaults applied when an employee has no goal stored for the period.
const (
	DefaultSalesGoal  = 500000
	DefaultDrinksGoal = 100
	DefaultCatchGoal  = 50
)

type (
	SetGoalRequest struct {
		Year       int     `json:"year" validate:"required,min=2000,max=2100"`
		Month      int     `json:"month" validate:"required,min=1,max=12"`
		SalesGoal  float64 `json:"sales_goal" validate:"min=0"`
		DrinksGoal int     `json:"drinks_goal" validate:"min=0"`
		CatchGoal  int     `json:"catch_goal" validate:"min=0"`
	}

	GoalResponse struct {
		EmployeeID uuid.UUID `json:"employee_id"`
		Year       int       `json:"year"`
		Month      int       `json:"month"`
		SalesGoal  float64   `json:"sales_goal"`
		DrinksGoal int       `json:"drinks_goal"`
		CatchGoal  int       `json:"catch_goal"`
		IsDefault  bool      `json:"is_default"`
	}

	GoalProgressResponse struct {
		GoalResponse
		CurrentSales  float64 `json:"current_sales"`
		CurrentDrinks int     `json:"current_drinks"`
		SalesPercent  float64 `json:"sales_percent"`
		DrinksPercent float64 `json:"drinks_percent"`
	}
)
