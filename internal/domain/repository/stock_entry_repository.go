package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// StockEntryRepository libro de stock append-only.
type StockEntryRepository interface {
	Append(entry *entity.StockEntry) error
	ListByPart(partID string, limit, offset int) ([]*entity.StockEntry, error)
	// SumByPart devuelve la suma de los deltas aplicados del repuesto
	// (para verificar la propiedad suma-del-libro == stock actual).
	SumByPart(partID string) (int64, error)
}
