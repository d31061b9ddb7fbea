package entities

import (
	"time"

	"github.com/google/uuid"
)

type InviteCode struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StoreID             uuid.UUID  `json:"store_id"`
	InviteCode          string     `gorm:"uniqueIndex" json:"invite_code"`
	InvitedRole         string     `json:"invited_role"`
	InvitedByEmployeeID *uuid.UUID `json:"invited_by_employee_id,omitempty"`
	InvitedEmail        string     `json:"invited_email,omitempty"`
	Status              string     `gorm:"default:pending" json:"status"` // pending, accepted, expired
	ExpiresAt           time.Time  `json:"expires_at"`
	UsedAt              *time.Time `json:"used_at,omitempty"`
	UsedByEmployeeID    *uuid.UUID `json:"used_by_employee_id,omitempty"`
	MaxUses             int        `gorm:"default:1" json:"max_uses"`
	CurrentUses         int        `gorm:"default:0" json:"current_uses"`

	Store *Store `gorm:"foreignKey:StoreID"`
	Timestamp
}
