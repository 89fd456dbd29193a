package postgres

import (
	"context"
	"fmt"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: las entradas nunca se modifican ni se borran.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Append inserta una entrada del libro.
func (r *StockEntryRepo) Append(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, part_id, quantity, entry_date)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.PartID, entry.Quantity, entry.EntryDate,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// ListByPart lista las entradas de un repuesto, más recientes primero.
func (r *StockEntryRepo) ListByPart(partID string, limit, offset int) ([]*entity.StockEntry, error) {
	query := `
		SELECT id, part_id, quantity, entry_date
		FROM stock_entries WHERE part_id = $1
		ORDER BY entry_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, partID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.PartID, &e.Quantity, &e.EntryDate); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumByPart suma los deltas aplicados de un repuesto.
func (r *StockEntryRepo) SumByPart(partID string) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE part_id = $1`,
		partID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum stock entries: %w", err)
	}
	return sum, nil
}
