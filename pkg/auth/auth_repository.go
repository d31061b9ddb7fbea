package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	AuthRepository interface {
		GetAdminByEmail(ctx context.Context, email string) (*entities.SystemAdmin, error)
		GetAdminByID(ctx context.Context, id string) (*entities.SystemAdmin, error)
		GetEmployeeByEmail(ctx context.Context, email string) (*entities.Employee, error)
		GetEmployeeByID(ctx context.Context, id string) (*entities.Employee, error)
		EmailTaken(ctx context.Context, email string) (bool, error)
		GetStoreByCode(ctx context.Context, storeCode string) (*entities.Store, error)
		GetSubscriptionByOrganization(ctx context.Context, organizationID string) (*entities.Subscription, error)
		CountEmployeesByStore(ctx context.Context, storeID string) (int64, error)
		CreateEmployee(ctx context.Context, employee *entities.Employee) error
		UpdateEmployee(ctx context.Context, employee *entities.Employee) error
		UpdateAdmin(ctx context.Context, admin *entities.SystemAdmin) error
	}

	authRepository struct {
		db *gorm.DB
	}
)

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) GetAdminByEmail(ctx context.Context, email string) (*entities.SystemAdmin, error) {
	var admin entities.SystemAdmin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *authRepository) GetAdminByID(ctx context.Context, id string) (*entities.SystemAdmin, error) {
	var admin entities.SystemAdmin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *authRepository) GetEmployeeByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	var employee entities.Employee
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Where("email = ?", email).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *authRepository) GetEmployeeByID(ctx context.Context, id string) (*entities.Employee, error) {
	var employee entities.Employee
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Where("id = ?", id).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *authRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *authRepository) GetStoreByCode(ctx context.Context, storeCode string) (*entities.Store, error) {
	var store entities.Store
	err := r.db.WithContext(ctx).Where("store_code = ?", storeCode).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *authRepository) GetSubscriptionByOrganization(ctx context.Context, organizationID string) (*entities.Subscription, error) {
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

func (r *authRepository) CountEmployeesByStore(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *authRepository) CreateEmployee(ctx context.Context, employee *entities.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *authRepository) UpdateEmployee(ctx context.Context, employee *entities.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *authRepository) UpdateAdmin(ctx context.Context, admin *entities.SystemAdmin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}
