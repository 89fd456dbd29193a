package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// SupplierRepository acceso a proveedores y su asociación con repuestos.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Count() (int64, error)
	AddPart(supplierID, partID string) error
	RemovePart(supplierID, partID string) error
	ListParts(supplierID string) ([]*entity.Part, error)
}
