package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
)

// StaffSalesResult total vendido por un empleado en un rango.
type StaffSalesResult struct {
	StaffID    string
	StaffName  string
	SaleCount  int64
	TotalSold  decimal.Decimal
}

// MonthlySalesResult agregado de un mes calendario.
type MonthlySalesResult struct {
	Year      int
	Month     time.Month
	SaleCount int64
	Total     decimal.Decimal
}

// DashboardCounts contadores del tablero principal.
type DashboardCounts struct {
	TotalParts     int64
	LowStockParts  int64
	TotalSales     int64
	TotalSuppliers int64
}

// ReportRepository consultas de solo lectura para reportes (proyecciones SQL puras,
// fuera del núcleo transaccional).
type ReportRepository interface {
	MonthlySales(ctx context.Context, year int, month time.Month) (*MonthlySalesResult, error)
	SalesByStaff(ctx context.Context, start, end time.Time) ([]StaffSalesResult, error)
	LowStockParts(ctx context.Context, threshold int64) ([]*entity.Part, error)
	DashboardCounts(ctx context.Context, lowStockThreshold int64) (*DashboardCounts, error)
	SalesTotalBetween(ctx context.Context, start, end time.Time) (total decimal.Decimal, count int64, err error)
}
