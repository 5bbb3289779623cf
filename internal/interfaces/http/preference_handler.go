package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/usecase"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/pkg/logger"
)

// PreferenceHandler preferencias de UI del caller autenticado.
type PreferenceHandler struct {
	uc  *usecase.PreferenceUseCase
	log *logger.Logger
}

// NewPreferenceHandler construye el handler.
func NewPreferenceHandler(uc *usecase.PreferenceUseCase, log *logger.Logger) *PreferenceHandler {
	return &PreferenceHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Preferencias de UI del caller
// @Tags         preferences
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserPreferenceResponse
// @Router       /api/me/preferences [get]
func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", GetUserID(c)).Msg("obtener preferencias falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar preferencias de UI del caller
// @Tags         preferences
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.UserPreferenceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/me/preferences [put]
func (h *PreferenceHandler) Update(c *fiber.Ctx) error {
	out, err := h.uc.Update(GetUserID(c), c.Body())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "el cuerpo debe ser JSON válido"})
		}
		h.log.Error().Err(err).Int64("user_id", GetUserID(c)).Msg("guardar preferencias falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
