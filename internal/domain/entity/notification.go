package entity

import "time"

// Tipos de notificación.
const (
	NotifInfo    = "info"
	NotifWarning = "warning"
	NotifError   = "error"
	NotifSuccess = "success"
)

// Categorías de notificación.
const (
	NotifCategorySystem    = "system"
	NotifCategoryInventory = "inventory"
	NotifCategorySales     = "sales"
	NotifCategoryStaff     = "staff"
)

// Notification aviso dirigido a un empleado. Se crea de forma fire-and-forget
// después del commit de la operación que la origina.
type Notification struct {
	ID         string
	StaffID    string
	Title      string
	Message    string
	Type       string // info, warning, error, success
	Category   string // system, inventory, sales, staff
	IsRead     bool
	CreatedAt  time.Time
	ReadAt     *time.Time
	ActionURL  string // opcional
	ActionText string // opcional
}
