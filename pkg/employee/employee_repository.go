package employee

import (
	"context"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	EmployeeRepository interface {
		CreateEmployee(ctx context.Context, employee *entities.Employee) error
		GetEmployeeByID(ctx context.Context, id string) (*entities.Employee, error)
		GetEmployeesByStore(ctx context.Context, storeID string, role string, activeOnly bool) ([]*entities.Employee, error)
		CountEmployeesByStore(ctx context.Context, storeID string) (int64, error)
		EmailTaken(ctx context.Context, email string) (bool, error)
		GetStoreByID(ctx context.Context, id string) (*entities.Store, error)
	}

	employeeRepository struct {
		db *gorm.DB
	}
)

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *entities.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetEmployeeByID(ctx context.Context, id string) (*entities.Employee, error) {
	var employee entities.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetEmployeesByStore(ctx context.Context, storeID string, role string, activeOnly bool) ([]*entities.Employee, error) {
	query := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var employees []*entities.Employee
	if err := query.Order("employee_code asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) CountEmployeesByStore(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	return count, err
}

func (r *employeeRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *employeeRepository) GetStoreByID(ctx context.Context, id string) (*entities.Store, error) {
	var store entities.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}
