package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/utils"
	"Bar-Management-SaaS/pkg/organization"
)

type (
	// BillingService creates payment sessions for subscription fees.
	BillingService interface {
		CreateCheckout(ctx context.Context, req domain.CreateCheckoutRequest) (*domain.CheckoutResponse, error)
	}

	billingService struct {
		organizationRepository organization.OrganizationRepository
		snapClient             snap.Client
	}
)

func NewBillingService(organizationRepository organization.OrganizationRepository) BillingService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &billingService{
		organizationRepository: organizationRepository,
		snapClient:             client,
	}
}

func (s *billingService) CreateCheckout(ctx context.Context, req domain.CreateCheckoutRequest) (*domain.CheckoutResponse, error) {
	org, err := s.organizationRepository.GetOrganizationByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, domain.ErrOrganizationNotFound
	}

	subscription, err := s.organizationRepository.GetSubscriptionByOrganization(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, domain.ErrSubscriptionNotFound
	}

	orderID := fmt.Sprintf("SUB-%s-%d", org.ID.String()[:8], time.Now().Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(subscription.MonthlyFee),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: org.Name,
			Email: org.ContactEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    subscription.ID.String(),
				Name:  fmt.Sprintf("%s plan monthly fee", subscription.PlanName),
				Price: int64(subscription.MonthlyFee),
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, domain.ErrPaymentGateway
	}

	return &domain.CheckoutResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		Amount:      subscription.MonthlyFee,
		PlanName:    subscription.PlanName,
	}, nil
}
