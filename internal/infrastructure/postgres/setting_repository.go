package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre PostgreSQL.
// El par (category, key) es único.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador de settings. Pasar pool o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get obtiene un parámetro por categoría y clave.
func (r *SettingRepo) Get(category, key string) (*entity.Setting, error) {
	query := `
		SELECT id, category, key, value, type, description, updated_at, COALESCE(updated_by, '')
		FROM settings WHERE category = $1 AND key = $2`
	var s entity.Setting
	err := r.q.QueryRow(context.Background(), query, category, key).Scan(
		&s.ID, &s.Category, &s.Key, &s.Value, &s.Type, &s.Description, &s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza el parámetro (conflicto sobre category, key).
func (r *SettingRepo) Upsert(setting *entity.Setting) error {
	query := `
		INSERT INTO settings (id, category, key, value, type, description, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (category, key)
		DO UPDATE SET value = EXCLUDED.value, type = EXCLUDED.type,
			updated_at = EXCLUDED.updated_at, updated_by = EXCLUDED.updated_by`
	_, err := r.q.Exec(context.Background(), query,
		setting.ID, setting.Category, setting.Key, setting.Value,
		setting.Type, setting.Description, setting.UpdatedAt, nullIfEmpty(setting.UpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

// ListAll lista todos los parámetros.
func (r *SettingRepo) ListAll() ([]*entity.Setting, error) {
	query := `
		SELECT id, category, key, value, type, description, updated_at, COALESCE(updated_by, '')
		FROM settings ORDER BY category, key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.ID, &s.Category, &s.Key, &s.Value, &s.Type, &s.Description, &s.UpdatedAt, &s.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
