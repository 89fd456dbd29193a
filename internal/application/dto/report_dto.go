package dto

import "github.com/shopspring/decimal"

// MonthlySalesDTO agregado mensual de ventas.
type MonthlySalesDTO struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	SaleCount int64           `json:"sale_count"`
	Total     decimal.Decimal `json:"total"`
}

// StaffSalesDTO ventas por empleado en un rango.
type StaffSalesDTO struct {
	StaffID   string          `json:"staff_id"`
	StaffName string          `json:"staff_name"`
	SaleCount int64           `json:"sale_count"`
	TotalSold decimal.Decimal `json:"total_sold"`
}

// DashboardSummaryDTO resumen del tablero principal.
type DashboardSummaryDTO struct {
	TotalParts     int64           `json:"total_parts"`
	LowStockParts  int64           `json:"low_stock_parts"`
	TotalSales     int64           `json:"total_sales"`
	TotalSuppliers int64           `json:"total_suppliers"`
	TodayTotal     decimal.Decimal `json:"today_total"`
	TodayCount     int64           `json:"today_count"`
	MonthTotal     decimal.Decimal `json:"month_total"`
	MonthCount     int64           `json:"month_count"`
}

// LowStockPartDTO repuesto bajo el umbral.
type LowStockPartDTO struct {
	PartID        string `json:"part_id"`
	Name          string `json:"name"`
	StockQuantity int64  `json:"stock_quantity"`
	StockStatus   string `json:"stock_status"`
}
