package invite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	InviteRepository interface {
		CreateInviteCode(ctx context.Context, invite *entities.InviteCode) error
		GetInviteByCode(ctx context.Context, code string) (*entities.InviteCode, error)
		UpdateInviteCode(ctx context.Context, invite *entities.InviteCode) error
		GetInvitesByStore(ctx context.Context, storeID string) ([]*entities.InviteCode, error)
		GetStoreByID(ctx context.Context, id string) (*entities.Store, error)
		CountEmployeesByStore(ctx context.Context, storeID string) (int64, error)
		EmailTaken(ctx context.Context, email string) (bool, error)
		CreateEmployee(ctx context.Context, employee *entities.Employee) error
	}

	inviteRepository struct {
		db *gorm.DB
	}
)

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) CreateInviteCode(ctx context.Context, invite *entities.InviteCode) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *inviteRepository) GetInviteByCode(ctx context.Context, code string) (*entities.InviteCode, error) {
	var invite entities.InviteCode
	err := r.db.WithContext(ctx).
		Preload("Store").
		Where("invite_code = ?", code).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invite, nil
}

func (r *inviteRepository) UpdateInviteCode(ctx context.Context, invite *entities.InviteCode) error {
	return r.db.WithContext(ctx).Save(invite).Error
}

func (r *inviteRepository) GetInvitesByStore(ctx context.Context, storeID string) ([]*entities.InviteCode, error) {
	var invites []*entities.InviteCode
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) GetStoreByID(ctx context.Context, id string) (*entities.Store, error) {
	var store entities.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *inviteRepository) CountEmployeesByStore(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *inviteRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *inviteRepository) CreateEmployee(ctx context.Context, employee *entities.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}
