package audit

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
)

type (
	// AuditService records who did what. Recording is best effort and
	// never fails the calling operation.
	AuditService interface {
		Record(ctx context.Context, entry Entry)
		GetAuditLogs(ctx context.Context, storeID string, page int, limit int) ([]domain.AuditLogResponse, int64, error)
	}

	Entry struct {
		UserID         string
		UserType       string
		UserEmail      string
		Action         string
		ResourceType   string
		ResourceID     string
		Changes        interface{}
		IPAddress      string
		UserAgent      string
		OrganizationID string
		StoreID        string
	}

	auditService struct {
		db *gorm.DB
	}
)

func NewAuditService(db *gorm.DB) AuditService {
	return &auditService{db: db}
}

func (s *auditService) Record(ctx context.Context, entry Entry) {
	row := &entities.AuditLog{
		UserType:     entry.UserType,
		UserEmail:    entry.UserEmail,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
	}

	row.UserID = parseOptionalUUID(entry.UserID)
	row.ResourceID = parseOptionalUUID(entry.ResourceID)
	row.OrganizationID = parseOptionalUUID(entry.OrganizationID)
	row.StoreID = parseOptionalUUID(entry.StoreID)

	if entry.Changes != nil {
		if data, err := json.Marshal(entry.Changes); err == nil {
			row.Changes = string(data)
		}
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

func (s *auditService) GetAuditLogs(ctx context.Context, storeID string, page int, limit int) ([]domain.AuditLogResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Model(&entities.AuditLog{})
	if storeID != "" {
		id, err := uuid.Parse(storeID)
		if err != nil {
			return nil, 0, domain.ErrParseUUID
		}
		query = query.Where("store_id = ?", id)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var logs []*entities.AuditLog
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	res := make([]domain.AuditLogResponse, 0, len(logs))
	for _, row := range logs {
		res = append(res, domain.AuditLogResponse{
			ID:           row.ID,
			UserID:       row.UserID,
			UserType:     row.UserType,
			UserEmail:    row.UserEmail,
			Action:       row.Action,
			ResourceType: row.ResourceType,
			ResourceID:   row.ResourceID,
			Changes:      row.Changes,
			IPAddress:    row.IPAddress,
			CreatedAt:    row.CreatedAt,
		})
	}

	return res, count, nil
}

func parseOptionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
