package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación de PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un nuevo repuesto.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, name, description, part_type, brand, price, stock_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Description, part.PartType, part.Brand,
		part.Price, part.StockQuantity, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `
		SELECT id, name, description, part_type, brand, price, stock_quantity, updated_at
		FROM parts WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el repuesto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *PartRepo) GetForUpdate(id string) (*entity.Part, error) {
	query := `
		SELECT id, name, description, part_type, brand, price, stock_quantity, updated_at
		FROM parts WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *PartRepo) scanOne(query, id string) (*entity.Part, error) {
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.PartType, &p.Brand,
		&p.Price, &p.StockQuantity, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de catálogo. No toca stock_quantity: esa columna
// solo se escribe vía UpdateStock dentro del motor de inventario.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, description = $3, part_type = $4, brand = $5, price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Description, part.PartType, part.Brand,
		part.Price, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateStock escribe la cantidad ya clampeada por el motor de inventario.
func (r *PartRepo) UpdateStock(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	return nil
}

// List lista repuestos con paginación.
func (r *PartRepo) List(limit, offset int) ([]*entity.Part, error) {
	query := `
		SELECT id, name, description, part_type, brand, price, stock_quantity, updated_at
		FROM parts ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PartType, &p.Brand,
			&p.Price, &p.StockQuantity, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count total de repuestos en catálogo.
func (r *PartRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM parts`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	return n, nil
}

// Delete elimina un repuesto por ID.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}
