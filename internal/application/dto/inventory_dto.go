package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest alta de repuesto en el catálogo.
type CreatePartRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	PartType     string          `json:"part_type"`
	Brand        string          `json:"brand"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int64           `json:"initial_stock" validate:"omitempty,min=0"`
}

// UpdatePartRequest edición de catálogo. El stock NO se edita por aquí:
// todo cambio de stock pasa por AdjustStockRequest para mantener el libro.
type UpdatePartRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	PartType    string          `json:"part_type"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
}

// AdjustStockRequest ajuste manual de stock (delta con signo).
type AdjustStockRequest struct {
	Delta  int64  `json:"delta" validate:"required"`
	Reason string `json:"reason"`
}

// AdjustStockResponse resultado del ajuste: delta aplicado (con clamp) y stock final.
type AdjustStockResponse struct {
	PartID         string `json:"part_id"`
	RequestedDelta int64  `json:"requested_delta"`
	AppliedDelta   int64  `json:"applied_delta"`
	NewQuantity    int64  `json:"new_quantity"`
}

// PartResponse repuesto con su estado de stock calculado.
type PartResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	PartType      string          `json:"part_type,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	StockStatus   string          `json:"stock_status"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockEntryResponse entrada del libro de stock.
type StockEntryResponse struct {
	ID        string    `json:"id"`
	PartID    string    `json:"part_id"`
	Quantity  int64     `json:"quantity"`
	EntryDate time.Time `json:"entry_date"`
}
