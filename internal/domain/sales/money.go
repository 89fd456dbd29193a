// Package sales contiene reglas de negocio puras del flujo de ventas
// (totales, descuentos, estado de stock). Sin dependencias de infraestructura.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
)

// Estados de stock para reportes e inventario.
const (
	StockStatusOut = "Out of Stock"
	StockStatusLow = "Low Stock"
	StockStatusOK  = "In Stock"
)

// Total calcula Σ(cantidad × precio de línea) con aritmética decimal exacta.
func Total(details []entity.SaleDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.PriceAtSale.Mul(decimal.NewFromInt(d.Quantity)))
	}
	return total
}

// Discount aplica un porcentaje de descuento sobre un monto y devuelve el
// monto final redondeado a 2 decimales. Porcentajes fuera de [0,100] se
// tratan como 0 (sin descuento).
func Discount(amount decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if percent.LessThan(decimal.Zero) || percent.GreaterThan(hundred) {
		return amount.Round(2)
	}
	factor := hundred.Sub(percent).Div(hundred)
	return amount.Mul(factor).Round(2)
}

// StockStatus clasifica una cantidad contra el umbral de stock bajo.
func StockStatus(quantity, threshold int64) string {
	switch {
	case quantity <= 0:
		return StockStatusOut
	case quantity < threshold:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
