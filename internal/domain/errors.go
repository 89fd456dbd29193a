package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrStaffNotFound      = errors.New("empleado no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// ErrUnauthenticated identidad no autenticada (sin token o token inválido).
var ErrUnauthenticated = errors.New("no autenticado")

// InsufficientStockError se retorna cuando la cantidad solicitada excede el
// stock disponible del repuesto. Incluye el detalle para identificar la línea
// que falló (id, solicitado vs disponible).
type InsufficientStockError struct {
	PartID    string
	PartName  string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q (%s): solicitado %d, disponible %d",
		e.PartName, e.PartID, e.Requested, e.Available)
}

// InvalidSaleError venta rechazada antes de abrir la transacción
// (lista vacía, cantidad <= 0, método de pago desconocido).
type InvalidSaleError struct {
	Reason string
}

func (e *InvalidSaleError) Error() string {
	return "venta inválida: " + e.Reason
}

// TransactionAbortedError fallo de infraestructura dentro de la transacción de
// venta; la transacción completa se revirtió (ninguna fila quedó visible).
type TransactionAbortedError struct {
	Cause error
}

func (e *TransactionAbortedError) Error() string {
	return "transacción de venta abortada: " + e.Cause.Error()
}

func (e *TransactionAbortedError) Unwrap() error { return e.Cause }

// PermissionDeniedError identidad autenticada sin el permiso requerido.
type PermissionDeniedError struct {
	Role       string
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("rol %q no tiene el permiso %q", e.Role, e.Permission)
}
