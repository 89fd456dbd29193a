package postgres

import (
	"context"
	"fmt"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
// Las operaciones de escritura por ID exigen también el staff_id dueño.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de avisos. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste un aviso.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, staff_id, title, message, type, category, is_read, created_at, read_at, action_url, action_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.StaffID, n.Title, n.Message, n.Type, n.Category,
		n.IsRead, n.CreatedAt, n.ReadAt, n.ActionURL, n.ActionText,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByStaff lista los avisos del empleado, más recientes primero.
func (r *NotificationRepo) ListByStaff(staffID string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, staff_id, title, message, type, category, is_read, created_at, read_at, action_url, action_text
		FROM notifications WHERE staff_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.StaffID, &n.Title, &n.Message, &n.Type, &n.Category,
			&n.IsRead, &n.CreatedAt, &n.ReadAt, &n.ActionURL, &n.ActionText); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// UnreadCount cantidad de avisos sin leer del empleado.
func (r *NotificationRepo) UnreadCount(staffID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notifications WHERE staff_id = $1 AND is_read = false`,
		staffID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead marca un aviso como leído si pertenece al empleado.
func (r *NotificationRepo) MarkRead(id, staffID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = true, read_at = now() WHERE id = $1 AND staff_id = $2`,
		id, staffID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marca todos los avisos del empleado como leídos.
func (r *NotificationRepo) MarkAllRead(staffID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = true, read_at = now() WHERE staff_id = $1 AND is_read = false`,
		staffID,
	)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// Delete elimina un aviso si pertenece al empleado.
func (r *NotificationRepo) Delete(id, staffID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM notifications WHERE id = $1 AND staff_id = $2`, id, staffID)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// DeleteAll elimina todos los avisos del empleado.
func (r *NotificationRepo) DeleteAll(staffID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM notifications WHERE staff_id = $1`, staffID)
	if err != nil {
		return fmt.Errorf("delete all notifications: %w", err)
	}
	return nil
}
