package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCheckout = "checkout created"
	MessageFailedCreateCheckout  = "failed creating checkout"

	ErrPaymentGateway = errors.New("payment gateway error")
)

type (
	CreateCheckoutRequest struct {
		OrganizationID string `json:"organization_id" validate:"required,uuid"`
	}

	CheckoutResponse struct {
		OrderID     string  `json:"order_id"`
		Token       string  `json:"token"`
		RedirectURL string  `json:"redirect_url"`
		Amount      float64 `json:"amount"`
		PlanName    string  `json:"plan_name"`
	}
)
