package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/report"
)

type (
	ReportHandler interface {
		CreateDailyReport(c *fiber.Ctx) error
		GetDailyReports(c *fiber.Ctx) error
		GetDailyReport(c *fiber.Ctx) error
		ApproveDailyReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		validator:     validator,
	}
}

func (h *reportHandler) CreateDailyReport(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	req := new(domain.CreateDailyReportRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	res, err := h.reportService.CreateDailyReport(c.Context(), *req, employeeID, storeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}

func (h *reportHandler) GetDailyReports(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	role, _ := c.Locals("role").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "31"))
	if err != nil || limit < 1 {
		limit = 31
	}

	reports, count, err := h.reportService.GetDailyReports(
		c.Context(), storeID, employeeID, role,
		c.Query("from"), c.Query("to"), c.Query("approved"), page, limit,
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reports": reports,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *reportHandler) GetDailyReport(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	role, _ := c.Locals("role").(string)
	id := c.Params("id")

	res, err := h.reportService.GetDailyReportByID(c.Context(), id, storeID, employeeID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

func (h *reportHandler) ApproveDailyReport(c *fiber.Ctx) error {
	approverID := c.Locals("user_id").(string)
	storeID, _ := c.Locals("store_id").(string)
	id := c.Params("id")

	if err := h.reportService.ApproveDailyReport(c.Context(), id, approverID, storeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveReport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveReport)
}
