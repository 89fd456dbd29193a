package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// AuditRepository registro de auditoría append-only.
type AuditRepository interface {
	Append(log *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
}
