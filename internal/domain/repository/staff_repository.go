package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// StaffRepository acceso a empleados (usuarios del sistema).
type StaffRepository interface {
	Create(staff *entity.Staff) error
	Update(staff *entity.Staff) error
	Delete(id string) error
	GetByID(id string) (*entity.Staff, error)
	FindByEmail(email string) (*entity.Staff, error)
	FindByUsername(username string) (*entity.Staff, error)
	List(limit, offset int) ([]*entity.Staff, error)
	ListByRole(role string) ([]*entity.Staff, error)
}
