package repository

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// ExpenseRepository acceso a gastos operativos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	Update(expense *entity.Expense) error
	Delete(id string) error
	GetByID(id string) (*entity.Expense, error)
	List(limit, offset int) ([]*entity.Expense, error)
}
