package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessCreateOrganization = "organization created"
	MessageSuccessGetOrganizations   = "success getting organizations"
	MessageSuccessGetOrganization    = "success getting organization detail"
	MessageSuccessSetupOrganization  = "organization setup completed"
	MessageSuccessGetAdminDashboard  = "success getting admin dashboard"
	MessageSuccessUpdateSubscription = "subscription updated"

	MessageFailedCreateOrganization = "failed creating organization"
	MessageFailedGetOrganizations   = "failed getting organizations"
	MessageFailedGetOrganization    = "failed getting organization detail"
	MessageFailedSetupOrganization  = "organization setup failed"
	MessageFailedGetAdminDashboard  = "failed getting admin dashboard"
	MessageFailedUpdateSubscription = "failed updating subscription"

	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrDomainAlreadyExists   = errors.New("organization domain already registered")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrStoreLimitReached     = errors.New("store limit for this organization reached")
	ErrAdminPermissionNeeded = errors.New("system admin permission required")
)

type (
	CreateOrganizationRequest struct {
		Name         string `json:"name" validate:"required"`
		Domain       string `json:"domain" validate:"required"`
		ContactEmail string `json:"contact_email" validate:"required,email"`
		Phone        string `json:"phone"`
		Address      string `json:"address"`
	}

	SetupOrganizationRequest struct {
		Organization CreateOrganizationRequest `json:"organization" validate:"required"`
		Subscription SubscriptionRequest       `json:"subscription" validate:"required"`
		Store        SetupStoreRequest         `json:"store" validate:"required"`
		Owner        SetupOwnerRequest         `json:"owner" validate:"required"`
	}

	SubscriptionRequest struct {
		PlanName             string  `json:"plan_name" validate:"required"`
		MaxStores            int     `json:"max_stores" validate:"required,min=1"`
		MaxEmployeesPerStore int     `json:"max_employees_per_store" validate:"required,min=1"`
		MonthlyFee           float64 `json:"monthly_fee" validate:"min=0"`
	}

	SetupStoreRequest struct {
		StoreName string `json:"store_name" validate:"required"`
		StoreType string `json:"store_type"`
		Address   string `json:"address"`
		Phone     string `json:"phone"`
	}

	SetupOwnerRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UpdateSubscriptionRequest struct {
		PlanName             string   `json:"plan_name"`
		Status               string   `json:"status" validate:"omitempty,oneof=active suspended cancelled trial"`
		MaxStores            *int     `json:"max_stores"`
		MaxEmployeesPerStore *int     `json:"max_employees_per_store"`
		MonthlyFee           *float64 `json:"monthly_fee"`
	}

	OrganizationResponse struct {
		ID           uuid.UUID `json:"id"`
		Name         string    `json:"name"`
		Domain       string    `json:"domain"`
		ContactEmail string    `json:"contact_email"`
		Phone        string    `json:"phone"`
		Address      string    `json:"address"`
		IsActive     bool      `json:"is_active"`
		StoreCount   int       `json:"store_count"`
		CreatedAt    time.Time `json:"created_at"`
	}

	SetupOrganizationResponse struct {
		Organization OrganizationResponse `json:"organization"`
		StoreID      uuid.UUID            `json:"store_id"`
		StoreCode    string               `json:"store_code"`
		OwnerID      uuid.UUID            `json:"owner_id"`
		OwnerCode    string               `json:"owner_code"`
		InviteCode   string               `json:"invite_code"`
	}

	AdminDashboardResponse struct {
		TotalOrganizations  int64            `json:"total_organizations"`
		ActiveOrganizations int64            `json:"active_organizations"`
		TotalStores         int64            `json:"total_stores"`
		ActiveStores        int64            `json:"active_stores"`
		NewStoresThisMonth  int64            `json:"new_stores_this_month"`
		TotalEmployees      int64            `json:"total_employees"`
		MonthlyRevenue      float64          `json:"monthly_revenue"`
		MonthlySales        float64          `json:"monthly_sales"`
		PlanBreakdown       map[string]int64 `json:"plan_breakdown"`
	}
)
