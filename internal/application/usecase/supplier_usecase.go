package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// SupplierUseCase gestión de proveedores y su asociación con repuestos.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	partRepo     repository.PartRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository, partRepo repository.PartRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, partRepo: partRepo}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ContactNo: in.ContactNo,
		Address:   in.Address,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	return supplierToResponse(s), nil
}

// Update edita un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.ContactNo = in.ContactNo
	s.Address = in.Address
	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, err
	}
	return supplierToResponse(s), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.supplierRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierToResponse(s))
	}
	return out, nil
}

// LinkPart asocia un repuesto al proveedor (relación muchos-a-muchos).
func (uc *SupplierUseCase) LinkPart(ctx context.Context, supplierID, partID string) error {
	s, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	part, err := uc.partRepo.GetByID(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.AddPart(supplierID, partID)
}

// UnlinkPart quita la asociación repuesto-proveedor.
func (uc *SupplierUseCase) UnlinkPart(ctx context.Context, supplierID, partID string) error {
	return uc.supplierRepo.RemovePart(supplierID, partID)
}

// ListParts lista los repuestos que surte un proveedor.
func (uc *SupplierUseCase) ListParts(ctx context.Context, supplierID string) ([]*entity.Part, error) {
	s, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return uc.supplierRepo.ListParts(supplierID)
}

func supplierToResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		ContactNo: s.ContactNo,
		Address:   s.Address,
	}
}
