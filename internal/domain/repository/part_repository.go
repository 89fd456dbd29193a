package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// PartRepository acceso a repuestos del catálogo.
// GetForUpdate solo tiene sentido dentro de una transacción (bloquea la fila).
type PartRepository interface {
	Create(part *entity.Part) error
	Update(part *entity.Part) error
	Delete(id string) error
	GetByID(id string) (*entity.Part, error)
	GetForUpdate(id string) (*entity.Part, error)
	UpdateStock(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Part, error)
	Count() (int64, error)
}
