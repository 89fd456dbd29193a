package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// CustomerRepository acceso a clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	Update(customer *entity.Customer) error
	Deactivate(id string) error
	GetByID(id string) (*entity.Customer, error)
	FindByEmail(email string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
