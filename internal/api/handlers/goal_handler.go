package handlers

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/internal/api/presenters"
	"Bar-Management-SaaS/pkg/goal"
)

type (
	GoalHandler interface {
		SetGoal(c *fiber.Ctx) error
		GetGoal(c *fiber.Ctx) error
		GetGoalHistory(c *fiber.Ctx) error
	}

	goalHandler struct {
		goalService goal.GoalService
		validator   *validator.Validate
	}
)

func NewGoalHandler(goalService goal.GoalService, validator *validator.Validate) GoalHandler {
	return &goalHandler{
		goalService: goalService,
		validator:   validator,
	}
}

func (h *goalHandler) SetGoal(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)
	req := new(domain.SetGoalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetGoal, err)
	}

	res, err := h.goalService.SetGoal(c.Context(), *req, employeeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetGoal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetGoal)
}

func (h *goalHandler) GetGoal(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)

	now := time.Now()
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		month = int(now.Month())
	}

	res, err := h.goalService.GetGoal(c.Context(), employeeID, year, month)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGoal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoal)
}

func (h *goalHandler) GetGoalHistory(c *fiber.Ctx) error {
	employeeID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}

	res, err := h.goalService.GetGoalHistory(c.Context(), employeeID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGoalHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoalHistory)
}
