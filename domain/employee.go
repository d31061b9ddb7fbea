package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateEmployee = "employee created"
	MessageSuccessGetEmployees   = "success getting employees"

	MessageFailedCreateEmployee = "failed creating employee"
	MessageFailedGetEmployees   = "failed getting employees"

	ErrEmployeeNotFound = errors.New("employee not found")
)

type (
	CreateEmployeeRequest struct {
		StoreID              string   `json:"store_id" validate:"required,uuid"`
		Name                 string   `json:"name" validate:"required"`
		Email                string   `json:"email" validate:"required,email"`
		Password             string   `json:"password" validate:"required,min=8"`
		Role                 string   `json:"role" validate:"omitempty,oneof=staff manager owner"`
		HourlyWage           *float64 `json:"hourly_wage"`
		EmploymentType       string   `json:"employment_type" validate:"omitempty,oneof=part_time full_time contract"`
		Phone                string   `json:"phone"`
		EmergencyContactName string   `json:"emergency_contact_name"`
		EmergencyContact     string   `json:"emergency_contact_phone"`
	}

	EmployeeResponse struct {
		ID             uuid.UUID  `json:"id"`
		EmployeeCode   string     `json:"employee_code"`
		Name           string     `json:"name"`
		Email          string     `json:"email"`
		Role           string     `json:"role"`
		IsActive       bool       `json:"is_active"`
		HireDate       *time.Time `json:"hire_date,omitempty"`
		EmploymentType string     `json:"employment_type"`
		Phone          string     `json:"phone,omitempty"`
		LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}
)
