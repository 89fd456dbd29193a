package entity

import "time"

// Claves de settings que consulta el flujo de ventas.
// El par (Category, Key) es único en la tabla.
const (
	SettingCategoryGeneral   = "general"
	SettingCategoryInventory = "inventory"
	SettingCategorySales     = "sales"

	SettingKeyLowStockThreshold  = "low_stock_threshold"
	SettingKeyHighValueThreshold = "high_value_sale_threshold"
	SettingKeyStoreName          = "store_name"
	SettingKeyCurrency           = "currency"
)

// Setting parámetro de configuración persistido, editable por admin/manager.
type Setting struct {
	ID          string
	Category    string
	Key         string
	Value       string
	Type        string // string, number, boolean, json
	Description string
	UpdatedAt   time.Time
	UpdatedBy   string // StaffID, vacío si fue seed
}
