package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reportes sobre PostgreSQL. Solo lectura; las
// agregaciones se resuelven en SQL, no en memoria.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// MonthlySales agregado de un mes calendario.
func (r *ReportRepo) MonthlySales(ctx context.Context, year int, month time.Month) (*repository.MonthlySalesResult, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales WHERE sale_date >= $1 AND sale_date < $2`
	res := repository.MonthlySalesResult{Year: year, Month: month}
	err := r.q.QueryRow(ctx, query, start, end).Scan(&res.SaleCount, &res.Total)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	return &res, nil
}

// SalesByStaff total vendido por empleado en el rango, mayor venta primero.
func (r *ReportRepo) SalesByStaff(ctx context.Context, start, end time.Time) ([]repository.StaffSalesResult, error) {
	query := `
		SELECT s.staff_id, st.name, COUNT(*), COALESCE(SUM(s.total_amount), 0)
		FROM sales s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.sale_date >= $1 AND s.sale_date <= $2
		GROUP BY s.staff_id, st.name
		ORDER BY SUM(s.total_amount) DESC`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by staff: %w", err)
	}
	defer rows.Close()
	var list []repository.StaffSalesResult
	for rows.Next() {
		var res repository.StaffSalesResult
		if err := rows.Scan(&res.StaffID, &res.StaffName, &res.SaleCount, &res.TotalSold); err != nil {
			return nil, fmt.Errorf("scan staff sales: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// LowStockParts repuestos en o bajo el umbral, los más escasos primero.
func (r *ReportRepo) LowStockParts(ctx context.Context, threshold int64) ([]*entity.Part, error) {
	query := `
		SELECT id, name, description, part_type, brand, price, stock_quantity, updated_at
		FROM parts WHERE stock_quantity <= $1
		ORDER BY stock_quantity, name`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PartType, &p.Brand,
			&p.Price, &p.StockQuantity, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DashboardCounts contadores del tablero en una sola consulta.
func (r *ReportRepo) DashboardCounts(ctx context.Context, lowStockThreshold int64) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM parts),
			(SELECT COUNT(*) FROM parts WHERE stock_quantity <= $1),
			(SELECT COUNT(*) FROM sales),
			(SELECT COUNT(*) FROM suppliers)`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query, lowStockThreshold).Scan(
		&c.TotalParts, &c.LowStockParts, &c.TotalSales, &c.TotalSuppliers,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// SalesTotalBetween total y cantidad de ventas en el rango.
func (r *ReportRepo) SalesTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales WHERE sale_date >= $1 AND sale_date <= $2`
	var total decimal.Decimal
	var count int64
	err := r.q.QueryRow(ctx, query, start, end).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales total between: %w", err)
	}
	return total, count, nil
}
