package postgres

import (
	"context"
	"fmt"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación append-only del registro de auditoría sobre PostgreSQL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de auditoría. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append inserta una entrada de auditoría.
func (r *AuditRepo) Append(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, action_date, staff_id, action, table_name, record_id, old_values, new_values, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ActionDate, log.StaffID, log.Action, log.TableName,
		nullIfEmpty(log.RecordID), log.OldValues, log.NewValues,
		log.IPAddress, log.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List lista entradas de auditoría con paginación, más recientes primero.
func (r *AuditRepo) List(limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, action_date, staff_id, action, table_name, COALESCE(record_id, ''), old_values, new_values, ip_address, user_agent
		FROM audit_logs ORDER BY action_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var a entity.AuditLog
		if err := rows.Scan(&a.ID, &a.ActionDate, &a.StaffID, &a.Action, &a.TableName,
			&a.RecordID, &a.OldValues, &a.NewValues, &a.IPAddress, &a.UserAgent); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
