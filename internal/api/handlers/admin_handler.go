package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/audit"
	"Bar-Management-SaaS/pkg/billing"
	"Bar-Management-SaaS/pkg/organization"
	"Bar-Management-SaaS/pkg/store"
)

type (
	AdminHandler interface {
		CreateOrganization(c *fiber.Ctx) error
		GetOrganizations(c *fiber.Ctx) error
		GetOrganization(c *fiber.Ctx) error
		SetupOrganization(c *fiber.Ctx) error
		UpdateSubscription(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		CreateStore(c *fiber.Ctx) error
		ToggleStore(c *fiber.Ctx) error
		CreateCheckout(c *fiber.Ctx) error
		GetAuditLogs(c *fiber.Ctx) error
	}

	adminHandler struct {
		organizationService organization.OrganizationService
		storeService        store.StoreService
		billingService      billing.BillingService
		auditService        audit.AuditService
		validator           *validator.Validate
	}
)

func NewAdminHandler(
	organizationService organization.OrganizationService,
	storeService store.StoreService,
	billingService billing.BillingService,
	auditService audit.AuditService,
	validator *validator.Validate,
) AdminHandler {
	return &adminHandler{
		organizationService: organizationService,
		storeService:        storeService,
		billingService:      billingService,
		auditService:        auditService,
		validator:           validator,
	}
}

func (h *adminHandler) record(c *fiber.Ctx, action, resourceType, resourceID string, changes interface{}) {
	userID, _ := c.Locals("user_id").(string)
	userType, _ := c.Locals("user_type").(string)
	h.auditService.Record(c.Context(), audit.Entry{
		UserID:       userID,
		UserType:     userType,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changes,
		IPAddress:    c.IP(),
		UserAgent:    c.Get("User-Agent"),
	})
}

func (h *adminHandler) CreateOrganization(c *fiber.Ctx) error {
	req := new(domain.CreateOrganizationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrganization, err)
	}

	res, err := h.organizationService.CreateOrganization(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrganization, err)
	}

	h.record(c, "create", "organization", res.ID.String(), req)
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrganization)
}

func (h *adminHandler) GetOrganizations(c *fiber.Ctx) error {
	res, err := h.organizationService.GetOrganizations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrganizations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrganizations)
}

func (h *adminHandler) GetOrganization(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.organizationService.GetOrganizationByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrganization, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrganization)
}

func (h *adminHandler) SetupOrganization(c *fiber.Ctx) error {
	req := new(domain.SetupOrganizationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetupOrganization, err)
	}

	res, err := h.organizationService.SetupOrganization(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetupOrganization, err)
	}

	h.record(c, "setup", "organization", res.Organization.ID.String(), req.Organization)
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSetupOrganization)
}

func (h *adminHandler) UpdateSubscription(c *fiber.Ctx) error {
	organizationID := c.Params("id")
	req := new(domain.UpdateSubscriptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSubscription, err)
	}

	if err := h.organizationService.UpdateSubscription(c.Context(), organizationID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSubscription, err)
	}

	h.record(c, "update", "subscription", organizationID, req)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateSubscription)
}

func (h *adminHandler) GetDashboard(c *fiber.Ctx) error {
	res, err := h.organizationService.GetAdminDashboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAdminDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdminDashboard)
}

func (h *adminHandler) CreateStore(c *fiber.Ctx) error {
	req := new(domain.CreateStoreRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStore, err)
	}

	res, err := h.storeService.CreateStore(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStore, err)
	}

	h.record(c, "create", "store", res.ID.String(), req)
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStore)
}

func (h *adminHandler) ToggleStore(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.storeService.ToggleStore(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleStore, err)
	}

	h.record(c, "toggle", "store", id, fiber.Map{"is_active": res.IsActive})
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleStore)
}

func (h *adminHandler) CreateCheckout(c *fiber.Ctx) error {
	req := new(domain.CreateCheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheckout, err)
	}

	res, err := h.billingService.CreateCheckout(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCheckout)
}

func (h *adminHandler) GetAuditLogs(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	logs, count, err := h.auditService.GetAuditLogs(c.Context(), c.Query("store_id"), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAuditLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"logs": logs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetAuditLogs)
}
