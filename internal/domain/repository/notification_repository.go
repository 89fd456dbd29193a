package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// NotificationRepository avisos por empleado.
// MarkRead y Delete exigen el staffID dueño para evitar acceso cruzado.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByStaff(staffID string, limit int) ([]*entity.Notification, error)
	UnreadCount(staffID string) (int64, error)
	MarkRead(id, staffID string) error
	MarkAllRead(staffID string) error
	Delete(id, staffID string) error
	DeleteAll(staffID string) error
}
