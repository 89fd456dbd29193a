package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de venta e inventario atados a esa tx. Commit si fn retorna nil,
// Rollback si retorna error: la venta es todo-o-nada.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		saleRepo repository.SaleRepository,
		entryRepo repository.StockEntryRepository,
	) error) error
}

// StockEngine contrato mínimo hacia el motor de inventario: aplicar un delta
// con clamp y libro dentro de la transacción del caller.
// Lo implementa *inventory.UseCase.
type StockEngine interface {
	AdjustInTx(
		partRepo repository.PartRepository,
		entryRepo repository.StockEntryRepository,
		partID string,
		delta int64,
		now time.Time,
	) (applied, newQty int64, err error)
}

// PartSnapshot estado de un repuesto inmediatamente después de la venta
// (insumo para las alertas de stock bajo post-commit).
type PartSnapshot struct {
	PartID   string
	Name     string
	Quantity int64
}

// PostSaleHooks efectos informativos posteriores al commit (notificaciones,
// auditoría, hitos). Best-effort: sus fallos se registran en el log y jamás
// revierten ni afectan la venta ya confirmada.
type PostSaleHooks interface {
	AfterSale(ctx context.Context, sale *entity.Sale, snapshots []PartSnapshot)
}

// SettingsReader umbrales vigentes que consulta el flujo de ventas.
type SettingsReader interface {
	LowStockThreshold(ctx context.Context) int64
	HighValueThreshold(ctx context.Context) decimal.Decimal
	StoreName(ctx context.Context) string
	Currency(ctx context.Context) string
}
