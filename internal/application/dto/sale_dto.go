package dto

import (
	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta solicitada. UnitPrice en cero = usar el precio
// vigente del repuesto (el valor que termine aplicado queda congelado como
// price_at_sale).
type SaleItemRequest struct {
	PartID    string          `json:"part_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest venta a procesar.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,payment_method"`
	CustomerID    string            `json:"customer_id"`
	Notes         string            `json:"notes"`
}

// SaleLineResponse confirmación por línea.
type SaleLineResponse struct {
	PartID      string          `json:"part_id"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse resultado de una venta confirmada.
type SaleResponse struct {
	ID            string             `json:"id"`
	ReceiptNumber string             `json:"receipt_number"`
	SaleDate      string             `json:"sale_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	StaffID       string             `json:"staff_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Lines         []SaleLineResponse `json:"lines"`
}
