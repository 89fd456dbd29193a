package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP. El orden importa:
// primero los errores tipados (llevan detalle propio), luego los centinela.
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
	}
	var invalidSale *domain.InvalidSaleError
	if errors.As(err, &invalidSale) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SALE", Message: invalidSale.Error()})
	}
	var denied *domain.PermissionDeniedError
	if errors.As(err, &denied) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: denied.Error()})
	}
	var aborted *domain.TransactionAbortedError
	if errors.As(err, &aborted) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TX_ABORTED", Message: "la venta no se pudo completar, ningún cambio fue aplicado"})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrStaffNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// respondValidation responde 400 con el detalle de los campos que fallaron.
func respondValidation(c *fiber.Ctx, fields any) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    "VALIDATION",
		"message": "datos inválidos",
		"fields":  fields,
	})
}
