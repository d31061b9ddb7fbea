package entities

import (
	"github.com/google/uuid"
)

type Store struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID     uuid.UUID `json:"organization_id"`
	StoreCode          string    `gorm:"uniqueIndex" json:"store_code"`
	StoreName          string    `json:"store_name"`
	StoreType          string    `gorm:"default:bar" json:"store_type"`
	Address            string    `gorm:"type:text" json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Timezone           string    `gorm:"default:Asia/Tokyo" json:"timezone"`
	Currency           string    `gorm:"default:JPY" json:"currency"`
	BusinessHoursStart string    `json:"business_hours_start,omitempty"`
	BusinessHoursEnd   string    `json:"business_hours_end,omitempty"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`

	Organization *Organization  `gorm:"foreignKey:OrganizationID"`
	Employees    []*Employee    `gorm:"foreignKey:StoreID"`
	DailyReports []*DailyReport `gorm:"foreignKey:StoreID"`
	InviteCodes  []*InviteCode  `gorm:"foreignKey:StoreID"`
	Timestamp
}
