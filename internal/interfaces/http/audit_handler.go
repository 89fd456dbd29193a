package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// AuditHandler lectura del registro de auditoría (requiere manage-staff).
// Lee directo del repositorio: no hay lógica de negocio en el listado.
type AuditHandler struct {
	auditRepo repository.AuditRepository
}

// NewAuditHandler construye el handler.
func NewAuditHandler(auditRepo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// List lista entradas de auditoría, más recientes primero.
// GET /api/audit-logs
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.auditRepo.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
