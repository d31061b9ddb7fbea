package domain

import (
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessGetAuditLogs = "successfully get audit logs"
	MessageFailedGetAuditLogs  = "failed to get audit logs"
)

type AuditLogResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	UserType     string     `json:"user_type"`
	UserEmail    string     `json:"user_email,omitempty"`
	Action       string     `json:"action"`
	ResourceType string     `json:"resource_type,omitempty"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty"`
	Changes      string     `json:"changes,omitempty"`
	IPAddress    string     `json:"ip_address,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
