package organization

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	OrganizationRepository interface {
		CreateOrganization(ctx context.Context, organization *entities.Organization) error
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)
		GetOrganizationByDomain(ctx context.Context, domainName string) (*entities.Organization, error)
		GetOrganizations(ctx context.Context) ([]*entities.Organization, error)
		CreateSubscription(ctx context.Context, subscription *entities.Subscription) error
		GetSubscriptionByOrganization(ctx context.Context, organizationID string) (*entities.Subscription, error)
		UpdateSubscription(ctx context.Context, subscription *entities.Subscription) error
		CreateStore(ctx context.Context, store *entities.Store) error
		CreateEmployee(ctx context.Context, employee *entities.Employee) error
		CreateInvite(ctx context.Context, invite *entities.InviteCode) error
		CountStoresByOrganization(ctx context.Context, organizationID string) (int64, error)
		DashboardCounts(ctx context.Context) (*DashboardCounts, error)
	}

	DashboardCounts struct {
		TotalOrganizations  int64
		ActiveOrganizations int64
		TotalStores         int64
		ActiveStores        int64
		NewStoresThisMonth  int64
		TotalEmployees      int64
		MonthlyRevenue      float64
		MonthlySales        float64
		PlanBreakdown       map[string]int64
	}

	organizationRepository struct {
		db *gorm.DB
	}
)

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) CreateOrganization(ctx context.Context, organization *entities.Organization) error {
	return r.db.WithContext(ctx).Create(organization).Error
}

func (r *organizationRepository) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	var organization entities.Organization
	if err := r.db.WithContext(ctx).
		Preload("Stores").
		Preload("Subscriptions").
		Where("id = ?", id).
		First(&organization).Error; err != nil {
		return nil, err
	}
	return &organization, nil
}

func (r *organizationRepository) GetOrganizationByDomain(ctx context.Context, domainName string) (*entities.Organization, error) {
	var organization entities.Organization
	err := r.db.WithContext(ctx).Where("domain = ?", domainName).First(&organization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &organization, nil
}

func (r *organizationRepository) GetOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	var organizations []*entities.Organization
	if err := r.db.WithContext(ctx).
		Preload("Stores").
		Order("created_at desc").
		Find(&organizations).Error; err != nil {
		return nil, err
	}
	return organizations, nil
}

func (r *organizationRepository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *organizationRepository) GetSubscriptionByOrganization(ctx context.Context, organizationID string) (*entities.Subscription, error) {
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

func (r *organizationRepository) UpdateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *organizationRepository) CreateStore(ctx context.Context, store *entities.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *organizationRepository) CreateEmployee(ctx context.Context, employee *entities.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *organizationRepository) CreateInvite(ctx context.Context, invite *entities.InviteCode) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *organizationRepository) CountStoresByOrganization(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Store{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}

func (r *organizationRepository) DashboardCounts(ctx context.Context) (*DashboardCounts, error) {
	counts := &DashboardCounts{}

	if err := r.db.WithContext(ctx).Model(&entities.Organization{}).
		Count(&counts.TotalOrganizations).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.Organization{}).
		Where("is_active = ?", true).
		Count(&counts.ActiveOrganizations).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.Store{}).
		Count(&counts.TotalStores).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.Store{}).
		Where("is_active = ?", true).
		Count(&counts.ActiveStores).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.Employee{}).
		Count(&counts.TotalEmployees).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Now().Location())
	if err := r.db.WithContext(ctx).Model(&entities.Store{}).
		Where("created_at >= ?", monthStart).
		Count(&counts.NewStoresThisMonth).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total float64 }
	if err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Select("COALESCE(SUM(monthly_fee), 0) as total").
		Where("status = ?", "active").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	counts.MonthlyRevenue = revenue.Total

	var sales struct{ Total float64 }
	if err := r.db.WithContext(ctx).Model(&entities.DailyReport{}).
		Select("COALESCE(SUM(total_sales), 0) as total").
		Where("date >= ?", monthStart).
		Scan(&sales).Error; err != nil {
		return nil, err
	}
	counts.MonthlySales = sales.Total

	var plans []struct {
		PlanName string
		Count    int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Select("plan_name, COUNT(*) as count").
		Where("status = ?", "active").
		Group("plan_name").
		Scan(&plans).Error; err != nil {
		return nil, err
	}
	counts.PlanBreakdown = make(map[string]int64, len(plans))
	for _, plan := range plans {
		counts.PlanBreakdown[plan.PlanName] = plan.Count
	}

	return counts, nil
}
