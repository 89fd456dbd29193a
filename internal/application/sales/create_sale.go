package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// CreateSaleUseCase procesa una venta: cabecera, detalles y descuento de stock
// en UNA transacción; notificaciones y auditoría como hooks post-commit.
//
// Es el único camino de escritura multi-tabla del sistema. El modelo de fallo
// es asimétrico a propósito: la parte monetaria/de stock es estrictamente
// atómica; los efectos informativos son fire-and-forget.
type CreateSaleUseCase struct {
	txRunner     SaleTxRunner
	stockEngine  StockEngine
	partRepo     repository.PartRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	hooks        PostSaleHooks
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SaleTxRunner,
	stockEngine StockEngine,
	partRepo repository.PartRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	hooks PostSaleHooks,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		stockEngine:  stockEngine,
		partRepo:     partRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		hooks:        hooks,
	}
}

// CreateSale valida la solicitud, ejecuta la transacción de venta y dispara los
// hooks post-commit. Nunca reintenta: una venta reintentada descontaría stock
// dos veces.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, staffID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if staffID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if len(in.Items) == 0 {
		return nil, &domain.InvalidSaleError{Reason: "la venta no tiene líneas"}
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, &domain.InvalidSaleError{Reason: fmt.Sprintf("cantidad inválida (%d) para el repuesto %s", item.Quantity, item.PartID)}
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, &domain.InvalidSaleError{Reason: "precio unitario negativo para el repuesto " + item.PartID}
		}
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, &domain.InvalidSaleError{Reason: "método de pago desconocido: " + in.PaymentMethod}
	}

	// Validar cliente (solo lectura, fuera de la tx)
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		SaleDate:      now,
		PaymentMethod: in.PaymentMethod,
		StaffID:       staffID,
		CustomerID:    in.CustomerID,
		ReceiptNumber: generateReceiptNumber(now),
		Notes:         in.Notes,
	}
	var details []*entity.SaleDetail
	var snapshots []PartSnapshot

	txErr := uc.txRunner.RunSale(ctx, func(
		partRepo repository.PartRepository,
		saleRepo repository.SaleRepository,
		entryRepo repository.StockEntryRepository,
	) error {
		total := decimal.Zero
		details = details[:0]
		snapshots = snapshots[:0]

		// 1) Verificación de stock con la fila bloqueada (FOR UPDATE): la
		// lectura es fresca dentro de esta transacción, así dos ventas
		// concurrentes sobre el mismo repuesto no pueden sobrevender.
		type lockedLine struct {
			part *entity.Part
			item dto.SaleItemRequest
		}
		lines := make([]lockedLine, 0, len(in.Items))
		for _, item := range in.Items {
			part, err := partRepo.GetForUpdate(item.PartID)
			if err != nil {
				return err
			}
			if part == nil {
				return domain.ErrNotFound
			}
			if item.Quantity > part.StockQuantity {
				return &domain.InsufficientStockError{
					PartID:    part.ID,
					PartName:  part.Name,
					Requested: item.Quantity,
					Available: part.StockQuantity,
				}
			}
			lines = append(lines, lockedLine{part: part, item: item})
		}

		// 2) Cabecera y detalles: price_at_sale queda congelado aquí.
		for _, ln := range lines {
			price := ln.item.UnitPrice
			if price.IsZero() {
				price = ln.part.Price
			}
			details = append(details, &entity.SaleDetail{
				SaleID:      sale.ID,
				PartID:      ln.part.ID,
				Quantity:    ln.item.Quantity,
				PriceAtSale: price,
			})
			total = total.Add(price.Mul(decimal.NewFromInt(ln.item.Quantity)))
		}
		sale.TotalAmount = total
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, d := range details {
			if err := saleRepo.CreateDetail(d); err != nil {
				return err
			}
		}

		// 3) Descuento de stock vía el motor de inventario: exactamente un
		// registro del libro por repuesto tocado, con el delta aplicado.
		for _, ln := range lines {
			_, newQty, err := uc.stockEngine.AdjustInTx(
				partRepo, entryRepo,
				ln.part.ID, -ln.item.Quantity, now,
			)
			if err != nil {
				return err
			}
			snapshots = append(snapshots, PartSnapshot{
				PartID:   ln.part.ID,
				Name:     ln.part.Name,
				Quantity: newQty,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, classifySaleError(txErr)
	}

	// Post-commit, best-effort: fallos se registran en el log, nunca se
	// propagan a quien procesó la venta.
	uc.hooks.AfterSale(ctx, sale, snapshots)

	return toSaleResponse(sale, details), nil
}

// GetSale obtiene una venta confirmada con sus líneas.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// ListSales lista ventas paginadas (más recientes primero).
func (uc *CreateSaleUseCase) ListSales(ctx context.Context, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	salesList, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(salesList))
	for _, s := range salesList {
		out = append(out, toSaleResponse(s, nil))
	}
	return out, nil
}

// DeleteSale elimina una venta y, en cascada, sus líneas (admin).
// No repone stock: la anulación contable es un ajuste de inventario explícito.
func (uc *CreateSaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}

// classifySaleError deja pasar los errores de dominio tal cual (traen el
// detalle de la entidad ofensora) y envuelve fallos de infraestructura como
// TransactionAbortedError: la transacción ya fue revertida completa.
func classifySaleError(err error) error {
	var insufficient *domain.InsufficientStockError
	var invalid *domain.InvalidSaleError
	if errors.As(err, &insufficient) || errors.As(err, &invalid) ||
		errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return &domain.TransactionAbortedError{Cause: err}
}

// generateReceiptNumber genera un número de recibo único: RCP-YYYYMMDD-XXXXXXXX.
func generateReceiptNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("RCP-%s-%s", now.Format("20060102"), suffix)
}

func toSaleResponse(sale *entity.Sale, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		ReceiptNumber: sale.ReceiptNumber,
		SaleDate:      sale.SaleDate.Format(time.RFC3339),
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		StaffID:       sale.StaffID,
		CustomerID:    sale.CustomerID,
		Notes:         sale.Notes,
		Lines:         make([]dto.SaleLineResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			PartID:      d.PartID,
			Quantity:    d.Quantity,
			PriceAtSale: d.PriceAtSale,
			Subtotal:    d.PriceAtSale.Mul(decimal.NewFromInt(d.Quantity)),
		})
	}
	return resp
}
