package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/reports"
)

// ReportHandler reportes de negocio (requiere view-reports).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard resumen del tablero principal.
// GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlySales agregado mensual. Query: year, month (por defecto mes actual).
// GET /api/reports/monthly-sales
func (h *ReportHandler) MonthlySales(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	out, err := h.uc.MonthlySales(c.Context(), year, month)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesByStaff ventas por empleado en un rango. Query: start, end (RFC 3339
// o YYYY-MM-DD); sin rango se usa el mes en curso.
// GET /api/reports/sales-by-staff
func (h *ReportHandler) SalesByStaff(c *fiber.Ctx) error {
	start, ok1 := parseDateQuery(c.Query("start"))
	end, ok2 := parseDateQuery(c.Query("end"))
	if !ok1 || !ok2 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas, usar RFC 3339 o YYYY-MM-DD"})
	}
	out, err := h.uc.SalesByStaff(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock repuestos bajo el umbral configurado.
// GET /api/reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery acepta vacío (ok, zero), RFC 3339 o fecha simple.
func parseDateQuery(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
