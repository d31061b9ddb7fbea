package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/invite"
)

type (
	InviteHandler interface {
		CreateInvite(c *fiber.Ctx) error
		GetInvites(c *fiber.Ctx) error
		UseInvite(c *fiber.Ctx) error
	}

	inviteHandler struct {
		inviteService invite.InviteService
		validator     *validator.Validate
	}
)

func NewInviteHandler(inviteService invite.InviteService, validator *validator.Validate) InviteHandler {
	return &inviteHandler{
		inviteService: inviteService,
		validator:     validator,
	}
}

func (h *inviteHandler) CreateInvite(c *fiber.Ctx) error {
	inviterID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	req := new(domain.CreateInviteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvite, err)
	}

	res, err := h.inviteService.CreateInvite(c.Context(), *req, inviterID, storeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateInvite)
}

func (h *inviteHandler) GetInvites(c *fiber.Ctx) error {
	storeID, _ := c.Locals("store_id").(string)

	res, err := h.inviteService.GetInvites(c.Context(), storeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInvites, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInvites)
}

func (h *inviteHandler) UseInvite(c *fiber.Ctx) error {
	req := new(domain.UseInviteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUseInvite, err)
	}

	res, err := h.inviteService.UseInvite(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUseInvite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUseInvite)
}
