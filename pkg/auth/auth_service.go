package auth

import (
	"context"
	"time"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/internal/utils"
	"Bar-Management-SaaS/pkg/jwt"
)

type (
	AuthService interface {
		LoginAdmin(ctx context.Context, req domain.AdminLoginRequest) (*domain.LoginResponse, error)
		LoginEmployee(ctx context.Context, req domain.EmployeeLoginRequest) (*domain.LoginResponse, error)
		RegisterEmployee(ctx context.Context, req domain.EmployeeRegisterRequest) (*domain.LoginResponse, error)
		VerifyStoreCode(ctx context.Context, storeCode string) (*domain.VerifyStoreCodeResponse, error)
		GetProfile(ctx context.Context, userID string, userType string) (*domain.UserProfile, error)
	}

	authService struct {
		authRepository AuthRepository
		jwtService     jwt.JWTService
	}
)

func NewAuthService(authRepository AuthRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		authRepository: authRepository,
		jwtService:     jwtService,
	}
}

func (s *authService) LoginAdmin(ctx context.Context, req domain.AdminLoginRequest) (*domain.LoginResponse, error) {
	admin, err := s.authRepository.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrCredentialsInvalid
	}
	if !admin.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if !utils.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, domain.ErrCredentialsInvalid
	}

	now := time.Now()
	admin.LastLoginAt = &now
	_ = s.authRepository.UpdateAdmin(ctx, admin)

	role := domain.RoleSuperAdmin
	token := s.jwtService.GenerateToken(admin.ID.String(), domain.UserTypeAdmin, role, "")

	return &domain.LoginResponse{
		Token: token,
		User: domain.UserProfile{
			ID:       admin.ID,
			UserType: domain.UserTypeAdmin,
			Name:     admin.Name,
			Email:    admin.Email,
			Role:     role,
		},
	}, nil
}

func (s *authService) LoginEmployee(ctx context.Context, req domain.EmployeeLoginRequest) (*domain.LoginResponse, error) {
	employee, err := s.authRepository.GetEmployeeByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrCredentialsInvalid
	}
	if !employee.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if employee.Store != nil && !employee.Store.IsActive {
		return nil, domain.ErrStoreInactive
	}
	if !utils.CheckPassword(employee.PasswordHash, req.Password) {
		return nil, domain.ErrCredentialsInvalid
	}

	now := time.Now()
	employee.LastLoginAt = &now
	_ = s.authRepository.UpdateEmployee(ctx, employee)

	return s.employeeLoginResponse(employee), nil
}

func (s *authService) RegisterEmployee(ctx context.Context, req domain.EmployeeRegisterRequest) (*domain.LoginResponse, error) {
	if !utils.IsPasswordStrong(req.Password) {
		return nil, domain.ErrPasswordTooWeak
	}

	store, err := s.authRepository.GetStoreByCode(ctx, req.StoreCode)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreCodeNotFound
	}
	if !store.IsActive {
		return nil, domain.ErrStoreInactive
	}

	taken, err := s.authRepository.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	count, err := s.authRepository.CountEmployeesByStore(ctx, store.ID.String())
	if err != nil {
		return nil, err
	}
	subscription, err := s.authRepository.GetSubscriptionByOrganization(ctx, store.OrganizationID.String())
	if err != nil {
		return nil, err
	}
	if subscription != nil && subscription.MaxEmployeesPerStore > 0 && count >= int64(subscription.MaxEmployeesPerStore) {
		return nil, domain.ErrEmployeeLimitReached
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	employee := &entities.Employee{
		StoreID:      store.ID,
		EmployeeCode: utils.GenerateEmployeeCode(store.StoreCode, int(count)+1),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleStaff,
		IsActive:     true,
		HireDate:     &now,
		Phone:        req.Phone,
	}

	if err := s.authRepository.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	employee.Store = store

	return s.employeeLoginResponse(employee), nil
}

func (s *authService) VerifyStoreCode(ctx context.Context, storeCode string) (*domain.VerifyStoreCodeResponse, error) {
	store, err := s.authRepository.GetStoreByCode(ctx, storeCode)
	if err != nil {
		return nil, err
	}
	if store == nil || !store.IsActive {
		return &domain.VerifyStoreCodeResponse{Valid: false}, nil
	}
	return &domain.VerifyStoreCodeResponse{
		Valid:     true,
		StoreName: store.StoreName,
		StoreType: store.StoreType,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string, userType string) (*domain.UserProfile, error) {
	if userType == domain.UserTypeAdmin {
		admin, err := s.authRepository.GetAdminByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &domain.UserProfile{
			ID:       admin.ID,
			UserType: domain.UserTypeAdmin,
			Name:     admin.Name,
			Email:    admin.Email,
			Role:     domain.RoleSuperAdmin,
		}, nil
	}

	employee, err := s.authRepository.GetEmployeeByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := &domain.UserProfile{
		ID:       employee.ID,
		UserType: domain.UserTypeEmployee,
		Name:     employee.Name,
		Email:    employee.Email,
		Role:     employee.Role,
		StoreID:  &employee.StoreID,
	}
	if employee.Store != nil {
		profile.StoreName = employee.Store.StoreName
	}
	return profile, nil
}

func (s *authService) employeeLoginResponse(employee *entities.Employee) *domain.LoginResponse {
	token := s.jwtService.GenerateToken(
		employee.ID.String(),
		domain.UserTypeEmployee,
		employee.Role,
		employee.StoreID.String(),
	)

	profile := domain.UserProfile{
		ID:       employee.ID,
		UserType: domain.UserTypeEmployee,
		Name:     employee.Name,
		Email:    employee.Email,
		Role:     employee.Role,
		StoreID:  &employee.StoreID,
	}
	if employee.Store != nil {
		profile.StoreName = employee.Store.StoreName
	}

	return &domain.LoginResponse{
		Token: token,
		User:  profile,
	}
}
