package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jrfmotorparts/pos-backend/internal/application/dto"
	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

// ExpenseUseCase registro de gastos operativos.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create registra un gasto. El monto debe ser positivo.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest, createdBy string) (*dto.ExpenseResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Expense{
		ID:            uuid.New().String(),
		ExpenseDate:   time.Now(),
		Category:      in.Category,
		Description:   in.Description,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		ReceiptNumber: in.ReceiptNumber,
		CreatedBy:     createdBy,
	}
	if err := uc.expenseRepo.Create(e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

// Update edita un gasto existente.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	e.Category = in.Category
	e.Description = in.Description
	e.Amount = in.Amount
	e.PaymentMethod = in.PaymentMethod
	e.ReceiptNumber = in.ReceiptNumber
	if err := uc.expenseRepo.Update(e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

// Get obtiene un gasto por ID.
func (uc *ExpenseUseCase) Get(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return expenseToResponse(e), nil
}

// List lista gastos paginados, más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ExpenseResponse, error) {
	page.DefaultPage()
	expenses, err := uc.expenseRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, expenseToResponse(e))
	}
	return out, nil
}

func expenseToResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		ExpenseDate:   e.ExpenseDate,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		ReceiptNumber: e.ReceiptNumber,
	}
}
