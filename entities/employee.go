package entities

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID               uuid.UUID  `json:"store_id"`
	EmployeeCode          string     `gorm:"uniqueIndex" json:"employee_code"`
	Name                  string     `json:"name"`
	Email                 string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash          string     `json:"-"`
	Role                  string     `gorm:"default:staff" json:"role"` // staff, manager, owner, super_admin
	IsActive              bool       `gorm:"default:true" json:"is_active"`
	HireDate              *time.Time `gorm:"type:date" json:"hire_date,omitempty"`
	HourlyWage            float64    `gorm:"default:0" json:"hourly_wage"`
	EmploymentType        string     `gorm:"default:part_time" json:"employment_type"`
	Phone                 string     `json:"phone,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`

	Store        *Store         `gorm:"foreignKey:StoreID"`
	DailyReports []*DailyReport `gorm:"foreignKey:EmployeeID"`
	Timestamp
}

type SystemAdmin struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email                  string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash           string     `json:"-"`
	Name                   string     `json:"name"`
	IsSuperAdmin           bool       `gorm:"default:true" json:"is_super_admin"`
	CanCreateOrganizations bool       `gorm:"default:true" json:"can_create_organizations"`
	CanManageSubscriptions bool       `gorm:"default:true" json:"can_manage_subscriptions"`
	CanAccessAllData       bool       `gorm:"default:true" json:"can_access_all_data"`
	LastLoginAt            *time.Time `json:"last_login_at,omitempty"`
	IsActive               bool       `gorm:"default:true" json:"is_active"`

	Timestamp
}
