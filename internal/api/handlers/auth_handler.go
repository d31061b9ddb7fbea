package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/audit"
	"Bar-Management-SaaS/pkg/auth"
)

type (
	AuthHandler interface {
		AdminLogin(c *fiber.Ctx) error
		EmployeeLogin(c *fiber.Ctx) error
		EmployeeRegister(c *fiber.Ctx) error
		VerifyStoreCode(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	authHandler struct {
		authService  auth.AuthService
		auditService audit.AuditService
		validator    *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, auditService audit.AuditService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService:  authService,
		auditService: auditService,
		validator:    validator,
	}
}

func (h *authHandler) recordLogin(c *fiber.Ctx, res *domain.LoginResponse) {
	entry := audit.Entry{
		UserID:    res.User.ID.String(),
		UserType:  res.User.UserType,
		UserEmail: res.User.Email,
		Action:    "login",
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if res.User.StoreID != nil {
		entry.StoreID = res.User.StoreID.String()
	}
	h.auditService.Record(c.Context(), entry)
}

func (h *authHandler) AdminLogin(c *fiber.Ctx) error {
	req := new(domain.AdminLoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.authService.LoginAdmin(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	h.recordLogin(c, res)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) EmployeeLogin(c *fiber.Ctx) error {
	req := new(domain.EmployeeLoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.authService.LoginEmployee(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	h.recordLogin(c, res)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *authHandler) EmployeeRegister(c *fiber.Ctx) error {
	req := new(domain.EmployeeRegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.authService.RegisterEmployee(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *authHandler) VerifyStoreCode(c *fiber.Ctx) error {
	req := new(domain.VerifyStoreCodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyStoreCode, err)
	}

	res, err := h.authService.VerifyStoreCode(c.Context(), req.StoreCode)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyStoreCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyStoreCode)
}

func (h *authHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userType := c.Locals("user_type").(string)

	res, err := h.authService.GetProfile(c.Context(), userID, userType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}
