package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	"github.com/jrfmotorparts/pos-backend/internal/domain/sales"
)

// UseCase motor de inventario: CRUD de repuestos y ajustes de stock con libro.
//
// Regla de clamp (decisión de negocio preservada del sistema fuente): un
// decremento que dejaría el stock negativo se recorta en cero en lugar de
// rechazarse, y el libro registra el delta APLICADO, no el solicitado. Aplica
// incondicionalmente a todo camino de escritura, incluidas las ediciones
// manuales de inventario.
type UseCase struct {
	txRunner   TxRunner
	partRepo   repository.PartRepository
	entryRepo  repository.StockEntryRepository
	thresholds ThresholdReader
}

// NewUseCase construye el motor de inventario.
func NewUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	entryRepo repository.StockEntryRepository,
	thresholds ThresholdReader,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		partRepo:   partRepo,
		entryRepo:  entryRepo,
		thresholds: thresholds,
	}
}

// ClampDelta aplica la regla de clamp en cero: devuelve la nueva cantidad y el
// delta realmente aplicado. Función pura, compartida con el flujo de ventas.
func ClampDelta(current, delta int64) (newQty, applied int64) {
	newQty = current + delta
	if newQty < 0 {
		newQty = 0
	}
	return newQty, newQty - current
}

// AdjustInTx aplica un delta al stock de un repuesto usando los repositorios
// proporcionados (misma transacción del caller) y anota el libro con el delta
// aplicado. La usa el servicio de ventas por cada línea dentro de su propia tx.
func (uc *UseCase) AdjustInTx(
	partRepo repository.PartRepository,
	entryRepo repository.StockEntryRepository,
	partID string,
	delta int64,
	now time.Time,
) (applied, newQty int64, err error) {
	// Bloquea la fila del repuesto (SELECT FOR UPDATE): la lectura es fresca
	// dentro de la transacción, nunca un valor cacheado de otra petición.
	part, err := partRepo.GetForUpdate(partID)
	if err != nil {
		return 0, 0, err
	}
	if part == nil {
		return 0, 0, domain.ErrNotFound
	}
	newQty, applied = ClampDelta(part.StockQuantity, delta)
	if err := partRepo.UpdateStock(partID, newQty); err != nil {
		return 0, 0, err
	}
	entry := &entity.StockEntry{
		ID:        uuid.New().String(),
		PartID:    partID,
		Quantity:  applied,
		EntryDate: now,
	}
	if err := entryRepo.Append(entry); err != nil {
		return 0, 0, err
	}
	return applied, newQty, nil
}

// AdjustStock ajusta el stock de un repuesto en su propia transacción
// (entradas de mercancía, correcciones manuales). Delta cero se rechaza.
func (uc *UseCase) AdjustStock(ctx context.Context, partID string, delta int64) (*dto.AdjustStockResponse, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var resp *dto.AdjustStockResponse
	err := uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		entryRepo repository.StockEntryRepository,
	) error {
		applied, newQty, err := uc.AdjustInTx(partRepo, entryRepo, partID, delta, now)
		if err != nil {
			return err
		}
		resp = &dto.AdjustStockResponse{
			PartID:         partID,
			RequestedDelta: delta,
			AppliedDelta:   applied,
			NewQuantity:    newQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreatePart da de alta un repuesto. El stock inicial entra como ajuste dentro
// de la misma transacción, así la suma del libro siempre iguala el stock actual.
func (uc *UseCase) CreatePart(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	part := &entity.Part{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		PartType:    in.PartType,
		Brand:       in.Brand,
		Price:       in.Price,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		entryRepo repository.StockEntryRepository,
	) error {
		if err := partRepo.Create(part); err != nil {
			return err
		}
		if in.InitialStock > 0 {
			_, newQty, err := uc.AdjustInTx(partRepo, entryRepo, part.ID, in.InitialStock, now)
			if err != nil {
				return err
			}
			part.StockQuantity = newQty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, part), nil
}

// UpdatePart edita los campos de catálogo. El stock no se toca por aquí.
func (uc *UseCase) UpdatePart(ctx context.Context, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	part.Name = in.Name
	part.Description = in.Description
	part.PartType = in.PartType
	part.Brand = in.Brand
	part.Price = in.Price
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, part), nil
}

// DeletePart elimina un repuesto del catálogo.
func (uc *UseCase) DeletePart(ctx context.Context, id string) error {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.partRepo.Delete(id)
}

// GetPart obtiene un repuesto por ID.
func (uc *UseCase) GetPart(ctx context.Context, id string) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(ctx, part), nil
}

// ListParts lista el catálogo paginado.
func (uc *UseCase) ListParts(ctx context.Context, page dto.PageRequest) ([]*dto.PartResponse, error) {
	page.DefaultPage()
	parts, err := uc.partRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartResponse, 0, len(parts))
	threshold := uc.thresholds.LowStockThreshold(ctx)
	for _, p := range parts {
		out = append(out, toPartResponse(p, threshold))
	}
	return out, nil
}

// ListLedger lista el libro de stock de un repuesto.
func (uc *UseCase) ListLedger(ctx context.Context, partID string, page dto.PageRequest) ([]*dto.StockEntryResponse, error) {
	page.DefaultPage()
	entries, err := uc.entryRepo.ListByPart(partID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.StockEntryResponse{
			ID:        e.ID,
			PartID:    e.PartID,
			Quantity:  e.Quantity,
			EntryDate: e.EntryDate,
		})
	}
	return out, nil
}

func (uc *UseCase) toResponse(ctx context.Context, p *entity.Part) *dto.PartResponse {
	return toPartResponse(p, uc.thresholds.LowStockThreshold(ctx))
}

func toPartResponse(p *entity.Part, threshold int64) *dto.PartResponse {
	return &dto.PartResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PartType:      p.PartType,
		Brand:         p.Brand,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		StockStatus:   sales.StockStatus(p.StockQuantity, threshold),
		UpdatedAt:     p.UpdatedAt,
	}
}
