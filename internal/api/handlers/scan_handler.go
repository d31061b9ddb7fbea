package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/auth"
	"Bar-Management-SaaS/pkg/scan"
)

type (
	ScanHandler interface {
		ScanReceipt(c *fiber.Ctx) error
		ConfirmScan(c *fiber.Ctx) error
		GetScanHistory(c *fiber.Ctx) error
		DeleteScan(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, authService auth.AuthService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		authService: authService,
		validator:   validator,
	}
}

func (h *scanHandler) ScanReceipt(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	req := new(domain.ScanReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	res, err := h.scanService.ScanReceipt(c.Context(), *req, employeeID, storeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanReceipt)
}

func (h *scanHandler) ConfirmScan(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	userType, _ := c.Locals("user_type").(string)
	req := new(domain.ConfirmScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmScan, err)
	}

	employeeName := ""
	if profile, err := h.authService.GetProfile(c.Context(), employeeID, userType); err == nil {
		employeeName = profile.Name
	}

	res, err := h.scanService.ConfirmScan(c.Context(), *req, employeeID, employeeName, storeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConfirmScan)
}

func (h *scanHandler) GetScanHistory(c *fiber.Ctx) error {
	storeID, _ := c.Locals("store_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	res, err := h.scanService.GetScanHistory(c.Context(), storeID, c.Query("daily_report_id"), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScans)
}

func (h *scanHandler) DeleteScan(c *fiber.Ctx) error {
	storeID, _ := c.Locals("store_id").(string)
	id := c.Params("id")

	if err := h.scanService.DeleteScan(c.Context(), id, storeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteScan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteScan)
}
