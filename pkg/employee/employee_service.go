package employee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/internal/utils"
)

type (
	EmployeeService interface {
		CreateEmployee(ctx context.Context, req domain.CreateEmployeeRequest, requesterStoreID string, userType string) (*domain.EmployeeResponse, error)
		GetEmployees(ctx context.Context, storeID string, role string, activeOnly bool, requesterStoreID string, userType string) ([]*domain.EmployeeResponse, error)
	}

	employeeService struct {
		employeeRepository EmployeeRepository
	}
)

func NewEmployeeService(employeeRepository EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepository: employeeRepository}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req domain.CreateEmployeeRequest, requesterStoreID string, userType string) (*domain.EmployeeResponse, error) {
	if userType != domain.UserTypeAdmin && requesterStoreID != req.StoreID {
		return nil, domain.ErrStoreAccessDenied
	}

	storeUUID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	store, err := s.employeeRepository.GetStoreByID(ctx, req.StoreID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}

	if !utils.IsPasswordStrong(req.Password) {
		return nil, domain.ErrPasswordTooWeak
	}

	taken, err := s.employeeRepository.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	count, err := s.employeeRepository.CountEmployeesByStore(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleStaff
	}
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = "part_time"
	}

	now := time.Now()
	employee := &entities.Employee{
		StoreID:               storeUUID,
		EmployeeCode:          utils.GenerateEmployeeCode(store.StoreCode, int(count)+1),
		Name:                  req.Name,
		Email:                 req.Email,
		PasswordHash:          hash,
		Role:                  role,
		IsActive:              true,
		HireDate:              &now,
		EmploymentType:        employmentType,
		Phone:                 req.Phone,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContact,
	}
	if req.HourlyWage != nil {
		employee.HourlyWage = *req.HourlyWage
	}

	if err := s.employeeRepository.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}

	return toEmployeeResponse(employee), nil
}

func (s *employeeService) GetEmployees(ctx context.Context, storeID string, role string, activeOnly bool, requesterStoreID string, userType string) ([]*domain.EmployeeResponse, error) {
	if userType != domain.UserTypeAdmin && requesterStoreID != storeID {
		return nil, domain.ErrStoreAccessDenied
	}

	employees, err := s.employeeRepository.GetEmployeesByStore(ctx, storeID, role, activeOnly)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		res = append(res, toEmployeeResponse(employee))
	}
	return res, nil
}

func toEmployeeResponse(employee *entities.Employee) *domain.EmployeeResponse {
	return &domain.EmployeeResponse{
		ID:             employee.ID,
		EmployeeCode:   employee.EmployeeCode,
		Name:           employee.Name,
		Email:          employee.Email,
		Role:           employee.Role,
		IsActive:       employee.IsActive,
		HireDate:       employee.HireDate,
		EmploymentType: employee.EmploymentType,
		Phone:          employee.Phone,
		LastLoginAt:    employee.LastLoginAt,
		CreatedAt:      employee.CreatedAt,
	}
}
