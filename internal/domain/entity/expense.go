package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo del negocio (arriendo, servicios, insumos...).
type Expense struct {
	ID            string
	ExpenseDate   time.Time
	Category      string // rent, utilities, supplies, maintenance, other
	Description   string
	Amount        decimal.Decimal
	PaymentMethod string
	ReceiptNumber string
	CreatedBy     string // StaffID
}
