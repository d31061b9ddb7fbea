package organization

import (
	"context"
	"time"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/internal/utils"
)

type (
	OrganizationService interface {
		CreateOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.OrganizationResponse, error)
		GetOrganizations(ctx context.Context) ([]*domain.OrganizationResponse, error)
		GetOrganizationByID(ctx context.Context, id string) (*domain.OrganizationResponse, error)
		SetupOrganization(ctx context.Context, req domain.SetupOrganizationRequest) (*domain.SetupOrganizationResponse, error)
		UpdateSubscription(ctx context.Context, organizationID string, req domain.UpdateSubscriptionRequest) error
		GetAdminDashboard(ctx context.Context) (*domain.AdminDashboardResponse, error)
	}

	organizationService struct {
		organizationRepository OrganizationRepository
	}
)

func NewOrganizationService(organizationRepository OrganizationRepository) OrganizationService {
	return &organizationService{organizationRepository: organizationRepository}
}

func (s *organizationService) CreateOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.OrganizationResponse, error) {
	existing, err := s.organizationRepository.GetOrganizationByDomain(ctx, req.Domain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDomainAlreadyExists
	}

	organization := &entities.Organization{
		Name:         req.Name,
		Domain:       req.Domain,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     true,
	}
	if err := s.organizationRepository.CreateOrganization(ctx, organization); err != nil {
		return nil, err
	}

	return toOrganizationResponse(organization), nil
}

func (s *organizationService) GetOrganizations(ctx context.Context) ([]*domain.OrganizationResponse, error) {
	organizations, err := s.organizationRepository.GetOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.OrganizationResponse, 0, len(organizations))
	for _, organization := range organizations {
		res = append(res, toOrganizationResponse(organization))
	}
	return res, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, id string) (*domain.OrganizationResponse, error) {
	organization, err := s.organizationRepository.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, domain.ErrOrganizationNotFound
	}
	return toOrganizationResponse(organization), nil
}

// SetupOrganization provisions a new tenant in one call: the
// organization, its subscription, the first store and its owner
// account.
func (s *organizationService) SetupOrganization(ctx context.Context, req domain.SetupOrganizationRequest) (*domain.SetupOrganizationResponse, error) {
	if !utils.IsPasswordStrong(req.Owner.Password) {
		return nil, domain.ErrPasswordTooWeak
	}

	existing, err := s.organizationRepository.GetOrganizationByDomain(ctx, req.Organization.Domain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDomainAlreadyExists
	}

	organization := &entities.Organization{
		Name:         req.Organization.Name,
		Domain:       req.Organization.Domain,
		ContactEmail: req.Organization.ContactEmail,
		Phone:        req.Organization.Phone,
		Address:      req.Organization.Address,
		IsActive:     true,
	}
	if err := s.organizationRepository.CreateOrganization(ctx, organization); err != nil {
		return nil, err
	}

	nextBilling := time.Now().AddDate(0, 1, 0)
	subscription := &entities.Subscription{
		OrganizationID:       organization.ID,
		PlanName:             req.Subscription.PlanName,
		Status:               "active",
		MaxStores:            req.Subscription.MaxStores,
		MaxEmployeesPerStore: req.Subscription.MaxEmployeesPerStore,
		MonthlyFee:           req.Subscription.MonthlyFee,
		BillingCycleDay:      1,
		NextBillingDate:      &nextBilling,
	}
	if err := s.organizationRepository.CreateSubscription(ctx, subscription); err != nil {
		return nil, err
	}

	storeType := req.Store.StoreType
	if storeType == "" {
		storeType = "bar"
	}
	store := &entities.Store{
		OrganizationID: organization.ID,
		StoreCode:      utils.GenerateStoreCode(),
		StoreName:      req.Store.StoreName,
		StoreType:      storeType,
		Address:        req.Store.Address,
		Phone:          req.Store.Phone,
		Timezone:       "Asia/Tokyo",
		Currency:       "JPY",
		IsActive:       true,
	}
	if err := s.organizationRepository.CreateStore(ctx, store); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Owner.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	owner := &entities.Employee{
		StoreID:      store.ID,
		EmployeeCode: utils.GenerateEmployeeCode(store.StoreCode, 1),
		Name:         req.Owner.Name,
		Email:        req.Owner.Email,
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		IsActive:     true,
		HireDate:     &now,
	}
	if err := s.organizationRepository.CreateEmployee(ctx, owner); err != nil {
		return nil, err
	}

	// A starter invite so the owner can onboard the first manager.
	invite := &entities.InviteCode{
		StoreID:             store.ID,
		InviteCode:          utils.GenerateInviteCode(),
		InvitedRole:         domain.RoleManager,
		InvitedByEmployeeID: &owner.ID,
		Status:              "pending",
		ExpiresAt:           now.AddDate(0, 0, 7),
		MaxUses:             1,
	}
	if err := s.organizationRepository.CreateInvite(ctx, invite); err != nil {
		return nil, err
	}

	return &domain.SetupOrganizationResponse{
		Organization: *toOrganizationResponse(organization),
		StoreID:      store.ID,
		StoreCode:    store.StoreCode,
		OwnerID:      owner.ID,
		OwnerCode:    owner.EmployeeCode,
		InviteCode:   invite.InviteCode,
	}, nil
}

func (s *organizationService) UpdateSubscription(ctx context.Context, organizationID string, req domain.UpdateSubscriptionRequest) error {
	subscription, err := s.organizationRepository.GetSubscriptionByOrganization(ctx, organizationID)
	if err != nil {
		return err
	}
	if subscription == nil {
		return domain.ErrSubscriptionNotFound
	}

	if req.PlanName != "" {
		subscription.PlanName = req.PlanName
	}
	if req.Status != "" {
		subscription.Status = req.Status
	}
	if req.MaxStores != nil {
		subscription.MaxStores = *req.MaxStores
	}
	if req.MaxEmployeesPerStore != nil {
		subscription.MaxEmployeesPerStore = *req.MaxEmployeesPerStore
	}
	if req.MonthlyFee != nil {
		subscription.MonthlyFee = *req.MonthlyFee
	}

	return s.organizationRepository.UpdateSubscription(ctx, subscription)
}

func (s *organizationService) GetAdminDashboard(ctx context.Context) (*domain.AdminDashboardResponse, error) {
	counts, err := s.organizationRepository.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AdminDashboardResponse{
		TotalOrganizations:  counts.TotalOrganizations,
		ActiveOrganizations: counts.ActiveOrganizations,
		TotalStores:         counts.TotalStores,
		ActiveStores:        counts.ActiveStores,
		NewStoresThisMonth:  counts.NewStoresThisMonth,
		TotalEmployees:      counts.TotalEmployees,
		MonthlyRevenue:      counts.MonthlyRevenue,
		MonthlySales:        counts.MonthlySales,
		PlanBreakdown:       counts.PlanBreakdown,
	}, nil
}

func toOrganizationResponse(organization *entities.Organization) *domain.OrganizationResponse {
	return &domain.OrganizationResponse{
		ID:           organization.ID,
		Name:         organization.Name,
		Domain:       organization.Domain,
		ContactEmail: organization.ContactEmail,
		Phone:        organization.Phone,
		Address:      organization.Address,
		IsActive:     organization.IsActive,
		StoreCount:   len(organization.Stores),
		CreatedAt:    organization.CreatedAt,
	}
}
