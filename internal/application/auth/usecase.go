package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/authz"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	"github.com/jrfmotorparts/pos-backend/pkg/jwt"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y alta de empleados.
type AuthUseCase struct {
	staffRepo repository.StaffRepository
	auditRepo repository.AuditRepository
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(staffRepo repository.StaffRepository, auditRepo repository.AuditRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{staffRepo: staffRepo, auditRepo: auditRepo, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login verifica credenciales (username o email), genera JWT con el rol y
// retorna token + perfil + permisos. La auditoría del login es fire-and-forget.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	login := strings.TrimSpace(in.Login)
	staff, err := uc.staffRepo.FindByUsername(login)
	if err != nil {
		return nil, err
	}
	if staff == nil && strings.Contains(login, "@") {
		staff, err = uc.staffRepo.FindByEmail(login)
		if err != nil {
			return nil, err
		}
	}
	if staff == nil {
		return nil, domain.ErrStaffNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthenticated
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.appendAudit(staff.ID, entity.AuditLogin)

	return &dto.LoginResponse{
		Token:       token,
		Staff:       *toStaffResponse(staff),
		Permissions: authz.Permissions(staff.Role),
	}, nil
}

// Logout solo audita el evento; el token JWT expira por sí mismo.
func (uc *AuthUseCase) Logout(ctx context.Context, staffID string) {
	uc.appendAudit(staffID, entity.AuditLogout)
}

// RegisterStaff crea un empleado (permiso manage-staff): hashea el password con
// bcrypt y valida rol cerrado y unicidad de email y username.
func (uc *AuthUseCase) RegisterStaff(ctx context.Context, in dto.RegisterStaffRequest) (*dto.StaffResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.staffRepo.FindByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.staffRepo.FindByUsername(in.Username); existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	staff := &entity.Staff{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Role:         in.Role,
		ContactNo:    in.ContactNo,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
	}
	if err := uc.staffRepo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

func (uc *AuthUseCase) appendAudit(staffID, action string) {
	audit := &entity.AuditLog{
		ID:         uuid.New().String(),
		ActionDate: time.Now(),
		StaffID:    staffID,
		Action:     action,
		TableName:  "staff",
		RecordID:   staffID,
	}
	if err := uc.auditRepo.Append(audit); err != nil {
		uc.log.Error().Err(err).Str("staff_id", staffID).Str("action", action).Msg("auditoría de sesión")
	}
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Role:      s.Role,
		ContactNo: s.ContactNo,
		Email:     s.Email,
		Username:  s.Username,
	}
}
