package usecase

import (
	"context"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// StaffUseCase gestión de empleados (permiso manage-staff: solo admin).
// El alta pasa por auth.RegisterStaff (hashing de credenciales).
type StaffUseCase struct {
	staffRepo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(staffRepo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{staffRepo: staffRepo}
}

// List lista empleados paginados (sin credenciales).
func (uc *StaffUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.StaffResponse, error) {
	page.DefaultPage()
	staff, err := uc.staffRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, staffToResponse(s))
	}
	return out, nil
}

// Get obtiene un empleado por ID.
func (uc *StaffUseCase) Get(ctx context.Context, id string) (*dto.StaffResponse, error) {
	s, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return staffToResponse(s), nil
}

// UpdateProfile edita nombre, contacto y rol. El rol es inmutable salvo por
// esta vía (que exige manage-staff).
func (uc *StaffUseCase) UpdateProfile(ctx context.Context, id string, name, contactNo, role string) (*dto.StaffResponse, error) {
	s, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if name != "" {
		s.Name = name
	}
	if contactNo != "" {
		s.ContactNo = contactNo
	}
	if role != "" {
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
		s.Role = role
	}
	if err := uc.staffRepo.Update(s); err != nil {
		return nil, err
	}
	return staffToResponse(s), nil
}

// Delete elimina un empleado.
func (uc *StaffUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.staffRepo.Delete(id)
}

func staffToResponse(s *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Role:      s.Role,
		ContactNo: s.ContactNo,
		Email:     s.Email,
		Username:  s.Username,
	}
}
