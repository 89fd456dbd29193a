package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/application/sales"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

// Broadcaster empuja avisos en tiempo real a los clientes conectados.
// Lo implementa el hub de WebSocket; un broadcast fallido no afecta la
// persistencia del aviso.
type Broadcaster interface {
	Push(staffID string, payload any)
}

// NoopBroadcaster para entornos sin WebSocket (seed, tests).
type NoopBroadcaster struct{}

func (NoopBroadcaster) Push(_ string, _ any) {}

// NotificationUseCase avisos por empleado: creación, listado y estado de lectura.
// Implementa sales.Notifier para los hooks post-venta.
type NotificationUseCase struct {
	notifRepo   repository.NotificationRepository
	staffRepo   repository.StaffRepository
	broadcaster Broadcaster
	log         *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	notifRepo repository.NotificationRepository,
	staffRepo repository.StaffRepository,
	broadcaster Broadcaster,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		notifRepo:   notifRepo,
		staffRepo:   staffRepo,
		broadcaster: broadcaster,
		log:         log.Component("notifications"),
	}
}

var _ sales.Notifier = (*NotificationUseCase)(nil)

// NotifyStaff crea un aviso para un empleado concreto y lo empuja por WebSocket.
func (uc *NotificationUseCase) NotifyStaff(ctx context.Context, staffID, title, message, typ, category, actionURL, actionText string) error {
	n := &entity.Notification{
		ID:         uuid.New().String(),
		StaffID:    staffID,
		Title:      title,
		Message:    message,
		Type:       typ,
		Category:   category,
		CreatedAt:  time.Now(),
		ActionURL:  actionURL,
		ActionText: actionText,
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return err
	}
	uc.broadcaster.Push(staffID, notificationToResponse(n))
	return nil
}

// NotifyRole crea el mismo aviso para cada empleado activo con el rol dado.
// Si falla para alguno se registra y se continúa con el resto.
func (uc *NotificationUseCase) NotifyRole(ctx context.Context, role, title, message, typ, category, actionURL, actionText string) error {
	staff, err := uc.staffRepo.ListByRole(role)
	if err != nil {
		return err
	}
	for _, s := range staff {
		if err := uc.NotifyStaff(ctx, s.ID, title, message, typ, category, actionURL, actionText); err != nil {
			uc.log.Error().Err(err).Str("staff_id", s.ID).Str("role", role).Msg("aviso por rol")
		}
	}
	return nil
}

// List devuelve los avisos más recientes del empleado autenticado.
func (uc *NotificationUseCase) List(ctx context.Context, staffID string, limit int) ([]*dto.NotificationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	notifs, err := uc.notifRepo.ListByStaff(staffID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, notificationToResponse(n))
	}
	return out, nil
}

// UnreadCount cantidad de avisos sin leer.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, staffID string) (int64, error) {
	return uc.notifRepo.UnreadCount(staffID)
}

// MarkRead marca un aviso como leído. Solo el dueño puede hacerlo.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, staffID string) error {
	return uc.notifRepo.MarkRead(id, staffID)
}

// MarkAllRead marca todos los avisos del empleado como leídos.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, staffID string) error {
	return uc.notifRepo.MarkAllRead(staffID)
}

// Delete elimina un aviso del empleado.
func (uc *NotificationUseCase) Delete(ctx context.Context, id, staffID string) error {
	return uc.notifRepo.Delete(id, staffID)
}

// DeleteAll elimina todos los avisos del empleado.
func (uc *NotificationUseCase) DeleteAll(ctx context.Context, staffID string) error {
	return uc.notifRepo.DeleteAll(staffID)
}

func notificationToResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		Category:   n.Category,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
		ReadAt:     n.ReadAt,
		ActionURL:  n.ActionURL,
		ActionText: n.ActionText,
	}
}
