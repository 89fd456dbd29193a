// Package reports contiene los casos de uso de reportes de negocio y el
// resumen del tablero principal.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/inventory"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	domsales "github.com/jrfmotorparts/pos-backend/internal/domain/sales"
)

// UseCase reportes read-only: agregados mensuales, ventas por empleado,
// stock bajo y resumen del tablero. Delega todas las consultas en
// ReportRepository; no toca el núcleo transaccional.
type UseCase struct {
	reportRepo repository.ReportRepository
	thresholds inventory.ThresholdReader
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, thresholds inventory.ThresholdReader) *UseCase {
	return &UseCase{reportRepo: reportRepo, thresholds: thresholds}
}

// MonthlySales agregado de un mes calendario. Mes fuera de rango es inválido.
func (uc *UseCase) MonthlySales(ctx context.Context, year, month int) (*dto.MonthlySalesDTO, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("reportes: mes inválido %d", month)
	}
	res, err := uc.reportRepo.MonthlySales(ctx, year, time.Month(month))
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas mensuales: %w", err)
	}
	return &dto.MonthlySalesDTO{
		Year:      res.Year,
		Month:     int(res.Month),
		SaleCount: res.SaleCount,
		Total:     res.Total.Round(2),
	}, nil
}

// SalesByStaff total vendido por cada empleado en el rango dado.
// Si el rango viene vacío se usa el mes en curso.
func (uc *UseCase) SalesByStaff(ctx context.Context, start, end time.Time) ([]dto.StaffSalesDTO, error) {
	if start.IsZero() || end.IsZero() {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = now
	}
	results, err := uc.reportRepo.SalesByStaff(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas por empleado: %w", err)
	}
	out := make([]dto.StaffSalesDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.StaffSalesDTO{
			StaffID:   r.StaffID,
			StaffName: r.StaffName,
			SaleCount: r.SaleCount,
			TotalSold: r.TotalSold.Round(2),
		})
	}
	return out, nil
}

// LowStock repuestos en o bajo el umbral configurado de stock bajo.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockPartDTO, error) {
	threshold := uc.thresholds.LowStockThreshold(ctx)
	parts, err := uc.reportRepo.LowStockParts(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("reportes: stock bajo: %w", err)
	}
	out := make([]dto.LowStockPartDTO, 0, len(parts))
	for _, p := range parts {
		out = append(out, dto.LowStockPartDTO{
			PartID:        p.ID,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			StockStatus:   domsales.StockStatus(p.StockQuantity, threshold),
		})
	}
	return out, nil
}

// Dashboard construye el resumen del tablero principal.
//
// Tres llamadas en paralelo:
//  1. DashboardCounts            → contadores de catálogo y ventas
//  2. SalesTotalBetween(hoy)     → TodayTotal + TodayCount
//  3. SalesTotalBetween(mes)     → MonthTotal + MonthCount
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	threshold := uc.thresholds.LowStockThreshold(ctx)

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countsResult struct {
		counts *repository.DashboardCounts
		err    error
	}
	type totalResult struct {
		total decimal.Decimal
		count int64
		err   error
	}

	countsCh := make(chan countsResult, 1)
	todayCh := make(chan totalResult, 1)
	monthCh := make(chan totalResult, 1)

	go func() {
		c, err := uc.reportRepo.DashboardCounts(ctx, threshold)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		total, count, err := uc.reportRepo.SalesTotalBetween(ctx, todayStart, todayEnd)
		todayCh <- totalResult{total, count, err}
	}()
	go func() {
		total, count, err := uc.reportRepo.SalesTotalBetween(ctx, monthStart, todayEnd)
		monthCh <- totalResult{total, count, err}
	}()

	counts := <-countsCh
	today := <-todayCh
	month := <-monthCh

	if counts.err != nil {
		return nil, fmt.Errorf("tablero: contadores: %w", counts.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("tablero: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("tablero: ventas del mes: %w", month.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalParts:     counts.counts.TotalParts,
		LowStockParts:  counts.counts.LowStockParts,
		TotalSales:     counts.counts.TotalSales,
		TotalSuppliers: counts.counts.TotalSuppliers,
		TodayTotal:     today.total.Round(2),
		TodayCount:     today.count,
		MonthTotal:     month.total.Round(2),
		MonthCount:     month.count,
	}, nil
}
