package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/usecase"
	"github.com/sairajmatkardevX/stockpilot-api/pkg/logger"
)

// ExpenseHandler reporte de gastos por categoría.
type ExpenseHandler struct {
	uc  *usecase.ExpenseUseCase
	log *logger.Logger
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, log *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Gastos por categoría (montos como string)
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExpenseByCategoryResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("gastos por categoría fallaron")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
