package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del catálogo.
// StockQuantity nunca es negativo: toda escritura pasa por la regla de clamp en
// cero del motor de inventario (ver application/inventory).
type Part struct {
	ID            string
	Name          string
	Description   string
	PartType      string // ej. engine, brake, electrical, accessory
	Brand         string
	Price         decimal.Decimal // precio de venta vigente, >= 0
	StockQuantity int64
	UpdatedAt     time.Time
}
