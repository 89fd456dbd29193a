package inventory

import (
	"context"

	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		entryRepo repository.StockEntryRepository,
	) error) error
}

// ThresholdReader umbral de stock bajo vigente (tabla settings, con caché).
type ThresholdReader interface {
	LowStockThreshold(ctx context.Context) int64
}
