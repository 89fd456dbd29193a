package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

// criticalStockLevel por debajo de este nivel se alerta a manager y admin
// aunque el umbral configurado de stock bajo sea mayor.
const criticalStockLevel = 2

// milestoneEvery cada cuántas ventas acumuladas se notifica un hito.
const milestoneEvery = 10

// Notifier contrato mínimo hacia el servicio de notificaciones.
type Notifier interface {
	NotifyStaff(ctx context.Context, staffID, title, message, typ, category, actionURL, actionText string) error
	NotifyRole(ctx context.Context, role, title, message, typ, category, actionURL, actionText string) error
}

// SaleHooks implementación por defecto de PostSaleHooks: notificaciones de
// venta, alertas de stock crítico, venta de alto valor, hitos y auditoría.
type SaleHooks struct {
	notifier  Notifier
	auditRepo repository.AuditRepository
	saleRepo  repository.SaleRepository
	settings  SettingsReader
	log       *logger.Logger
}

// NewSaleHooks construye los hooks post-venta.
func NewSaleHooks(
	notifier Notifier,
	auditRepo repository.AuditRepository,
	saleRepo repository.SaleRepository,
	settings SettingsReader,
	log *logger.Logger,
) *SaleHooks {
	return &SaleHooks{
		notifier:  notifier,
		auditRepo: auditRepo,
		saleRepo:  saleRepo,
		settings:  settings,
		log:       log.Component("sale-hooks"),
	}
}

var _ PostSaleHooks = (*SaleHooks)(nil)

// AfterSale ejecuta los efectos informativos de una venta ya confirmada.
// Cada paso es independiente: un fallo se registra y se sigue con el resto.
func (h *SaleHooks) AfterSale(ctx context.Context, sale *entity.Sale, snapshots []PartSnapshot) {
	currency := h.settings.Currency(ctx)

	// 1) Confirmación para quien procesó la venta.
	msg := fmt.Sprintf("%s completada por %s%s.", sale.ReceiptNumber, currency, sale.TotalAmount.StringFixed(2))
	if err := h.notifier.NotifyStaff(ctx, sale.StaffID,
		"Sale Completed", msg,
		entity.NotifSuccess, entity.NotifCategorySales, "/sales", "View Sale",
	); err != nil {
		h.log.Error().Err(err).Str("sale_id", sale.ID).Msg("notificación de venta completada")
	}

	// 2) Alertas de stock crítico para manager y admin.
	for _, snap := range snapshots {
		if snap.Quantity > criticalStockLevel {
			continue
		}
		alert := fmt.Sprintf("%s is critically low on stock (%d remaining)", snap.Name, snap.Quantity)
		for _, role := range []string{entity.RoleManager, entity.RoleAdmin} {
			if err := h.notifier.NotifyRole(ctx, role,
				"Critical Stock Alert", alert,
				entity.NotifWarning, entity.NotifCategoryInventory, "/inventory", "View Inventory",
			); err != nil {
				h.log.Error().Err(err).Str("part_id", snap.PartID).Msg("alerta de stock crítico")
			}
		}
	}

	// 3) Venta de alto valor.
	if sale.TotalAmount.GreaterThanOrEqual(h.settings.HighValueThreshold(ctx)) {
		hv := fmt.Sprintf("High value sale of %s%s processed.", currency, sale.TotalAmount.StringFixed(2))
		for _, role := range []string{entity.RoleManager, entity.RoleAdmin} {
			if err := h.notifier.NotifyRole(ctx, role,
				"High Value Sale", hv,
				entity.NotifWarning, entity.NotifCategorySales, "/reports", "View Reports",
			); err != nil {
				h.log.Error().Err(err).Str("sale_id", sale.ID).Msg("alerta de venta de alto valor")
			}
		}
	}

	// 4) Hito de ventas acumuladas.
	if count, err := h.saleRepo.Count(); err != nil {
		h.log.Error().Err(err).Msg("conteo de ventas para hito")
	} else if count > 0 && count%milestoneEvery == 0 {
		mile := fmt.Sprintf("%d total sales have been completed.", count)
		for _, role := range []string{entity.RoleManager, entity.RoleAdmin} {
			if err := h.notifier.NotifyRole(ctx, role,
				"Sales Milestone Reached", mile,
				entity.NotifInfo, entity.NotifCategorySales, "/reports", "View Reports",
			); err != nil {
				h.log.Error().Err(err).Msg("notificación de hito de ventas")
			}
		}
	}

	// 5) Auditoría de la venta.
	newValues, _ := json.Marshal(map[string]any{
		"total_amount":   sale.TotalAmount,
		"payment_method": sale.PaymentMethod,
		"customer_id":    sale.CustomerID,
		"receipt_number": sale.ReceiptNumber,
	})
	audit := &entity.AuditLog{
		ID:         uuid.New().String(),
		ActionDate: time.Now(),
		StaffID:    sale.StaffID,
		Action:     entity.AuditCreate,
		TableName:  "sales",
		RecordID:   sale.ID,
		NewValues:  newValues,
	}
	if err := h.auditRepo.Append(audit); err != nil {
		h.log.Error().Err(err).Str("sale_id", sale.ID).Msg("registro de auditoría de venta")
	}
}
