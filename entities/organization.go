package entities

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Domain       string    `gorm:"uniqueIndex" json:"domain"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	Stores        []*Store        `gorm:"foreignKey:OrganizationID"`
	Subscriptions []*Subscription `gorm:"foreignKey:OrganizationID"`
	Timestamp
}

type Subscription struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID       uuid.UUID  `json:"organization_id"`
	PlanName             string     `json:"plan_name"`
	Status               string     `json:"status"` // active, suspended, cancelled, trial
	MaxStores            int        `gorm:"default:1" json:"max_stores"`
	MaxEmployeesPerStore int        `gorm:"default:10" json:"max_employees_per_store"`
	MonthlyFee           float64    `gorm:"default:0" json:"monthly_fee"`
	BillingCycleDay      int        `gorm:"default:1" json:"billing_cycle_day"`
	TrialEndDate         *time.Time `json:"trial_end_date,omitempty"`
	NextBillingDate      *time.Time `json:"next_billing_date,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Timestamp
}
