package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago permitidos (conjunto cerrado).
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentEWallet      = "e-wallet"
	PaymentBankTransfer = "bank_transfer"
)

// ValidPaymentMethod indica si el método pertenece al conjunto cerrado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentEWallet, PaymentBankTransfer:
		return true
	}
	return false
}

// Sale cabecera de una venta. Se crea de forma atómica junto con sus detalles;
// nunca queda parcialmente persistida.
type Sale struct {
	ID            string
	SaleDate      time.Time
	TotalAmount   decimal.Decimal // == Σ(detalle.Quantity × detalle.PriceAtSale), exacto
	PaymentMethod string
	StaffID       string // obligatorio
	CustomerID    string // opcional, vacío = venta de mostrador
	ReceiptNumber string // único
	Notes         string
}

// SaleDetail línea de venta. Identidad compuesta (SaleID, PartID).
// PriceAtSale es una foto histórica del precio: inmutable después del commit
// aunque el precio vigente del repuesto cambie.
type SaleDetail struct {
	SaleID      string
	PartID      string
	Quantity    int64 // > 0
	PriceAtSale decimal.Decimal
}
