package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/usecase"
	"github.com/jrfmotorparts/pos-backend/pkg/validator"
)

// SettingHandler parámetros de configuración (requiere view-reports para leer,
// manage-inventory para escribir, ver router).
type SettingHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingHandler construye el handler.
func NewSettingHandler(uc *usecase.SettingsUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// List lista todos los parámetros.
// GET /api/settings
func (h *SettingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update crea o reemplaza un parámetro.
// PUT /api/settings/:category/:key
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Update(c.Context(), c.Params("category"), c.Params("key"), in, GetStaffID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
