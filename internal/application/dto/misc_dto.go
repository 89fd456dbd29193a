package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingRequest edición de un parámetro (category y key van en la ruta).
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
	Type  string `json:"type" validate:"omitempty,oneof=string number boolean json"`
}

// SettingResponse parámetro persistido.
type SettingResponse struct {
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NotificationResponse aviso para el empleado autenticado.
type NotificationResponse struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Type       string     `json:"type"`
	Category   string     `json:"category"`
	IsRead     bool       `json:"is_read"`
	CreatedAt  time.Time  `json:"created_at"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	ActionURL  string     `json:"action_url,omitempty"`
	ActionText string     `json:"action_text,omitempty"`
}

// ExpenseRequest alta/edición de gasto.
type ExpenseRequest struct {
	Category      string          `json:"category" validate:"required,oneof=rent utilities supplies maintenance other"`
	Description   string          `json:"description" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,payment_method"`
	ReceiptNumber string          `json:"receipt_number"`
}

// ExpenseResponse gasto.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	ExpenseDate   time.Time       `json:"expense_date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
}
