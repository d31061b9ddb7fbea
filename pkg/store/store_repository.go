package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	StoreRepository interface {
		CreateStore(ctx context.Context, store *entities.Store) error
		GetStoreByID(ctx context.Context, id string) (*entities.Store, error)
		UpdateStore(ctx context.Context, store *entities.Store) error
		GetStores(ctx context.Context, organizationID string) ([]*entities.Store, error)
		CountStoresByOrganization(ctx context.Context, organizationID string) (int64, error)
		GetSubscriptionByOrganization(ctx context.Context, organizationID string) (*entities.Subscription, error)
		CountEmployeesByStore(ctx context.Context, storeID string) (int64, error)
	}

	storeRepository struct {
		db *gorm.DB
	}
)

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) CreateStore(ctx context.Context, store *entities.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetStoreByID(ctx context.Context, id string) (*entities.Store, error) {
	var store entities.Store
	if err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("Employees").
		Where("id = ?", id).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) UpdateStore(ctx context.Context, store *entities.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) GetStores(ctx context.Context, organizationID string) ([]*entities.Store, error) {
	var stores []*entities.Store

	query := r.db.WithContext(ctx).Preload("Employees")
	if organizationID != "" {
		query = query.Where("organization_id = ?", organizationID)
	}

	if err := query.Order("created_at asc").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) CountStoresByOrganization(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Store{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}

func (r *storeRepository) GetSubscriptionByOrganization(ctx context.Context, organizationID string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at desc").
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *storeRepository) CountEmployeesByStore(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}
