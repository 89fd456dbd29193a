package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// SaleRepository acceso a ventas y sus detalles.
// Delete elimina en cascada los detalles (no pueden quedar líneas huérfanas).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error)
	Delete(id string) error
	List(limit, offset int) ([]*entity.Sale, error)
	Count() (int64, error)
}
