package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/employee"
	"Bar-Management-SaaS/pkg/store"
)

type (
	StoreHandler interface {
		GetStores(c *fiber.Ctx) error
		GetStore(c *fiber.Ctx) error
		GetStoreDashboard(c *fiber.Ctx) error
		GetStoreEmployees(c *fiber.Ctx) error
		CreateEmployee(c *fiber.Ctx) error
	}

	storeHandler struct {
		storeService    store.StoreService
		employeeService employee.EmployeeService
		validator       *validator.Validate
	}
)

func NewStoreHandler(storeService store.StoreService, employeeService employee.EmployeeService, validator *validator.Validate) StoreHandler {
	return &storeHandler{
		storeService:    storeService,
		employeeService: employeeService,
		validator:       validator,
	}
}

func (h *storeHandler) GetStores(c *fiber.Ctx) error {
	organizationID := c.Query("organization_id")

	res, err := h.storeService.GetStores(c.Context(), organizationID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStores, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStores)
}

func (h *storeHandler) GetStore(c *fiber.Ctx) error {
	id := c.Params("id")
	requesterStoreID, _ := c.Locals("store_id").(string)
	userType, _ := c.Locals("user_type").(string)

	res, err := h.storeService.GetStoreByID(c.Context(), id, requesterStoreID, userType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetStore, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStore)
}

func (h *storeHandler) GetStoreDashboard(c *fiber.Ctx) error {
	id := c.Params("id")
	requesterStoreID, _ := c.Locals("store_id").(string)
	userType, _ := c.Locals("user_type").(string)

	res, err := h.storeService.GetStoreDashboard(c.Context(), id, requesterStoreID, userType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedStoreDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessStoreDashboard)
}

func (h *storeHandler) GetStoreEmployees(c *fiber.Ctx) error {
	id := c.Params("id")
	requesterStoreID, _ := c.Locals("store_id").(string)
	userType, _ := c.Locals("user_type").(string)

	res, err := h.employeeService.GetEmployees(
		c.Context(), id,
		c.Query("role"), c.Query("active") == "true",
		requesterStoreID, userType,
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetEmployees, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEmployees)
}

func (h *storeHandler) CreateEmployee(c *fiber.Ctx) error {
	requesterStoreID, _ := c.Locals("store_id").(string)
	userType, _ := c.Locals("user_type").(string)
	req := new(domain.CreateEmployeeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.StoreID == "" {
		req.StoreID = c.Params("id")
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEmployee, err)
	}

	res, err := h.employeeService.CreateEmployee(c.Context(), *req, requesterStoreID, userType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateEmployee, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateEmployee)
}
