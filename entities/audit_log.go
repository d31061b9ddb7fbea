package entities

import (
	"github.com/google/uuid"
)

type AuditLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	UserType       string     `json:"user_type"` // admin, employee
	UserEmail      string     `json:"user_email"`
	Action         string     `json:"action"`
	ResourceType   string     `json:"resource_type,omitempty"`
	ResourceID     *uuid.UUID `json:"resource_id,omitempty"`
	Changes        string     `gorm:"type:text" json:"changes,omitempty"`
	IPAddress      string     `json:"ip_address,omitempty"`
	UserAgent      string     `gorm:"type:text" json:"user_agent,omitempty"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	StoreID        *uuid.UUID `json:"store_id,omitempty"`

	Timestamp
}
