package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jrfmotorparts/pos-backend/internal/domain"
	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, name, role, contact_no, email, username, password_hash`

// Create persiste un nuevo empleado. Email y username son únicos.
func (r *StaffRepo) Create(staff *entity.Staff) error {
	query := `
		INSERT INTO staff (id, name, role, contact_no, email, username, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.Name, staff.Role, staff.ContactNo,
		staff.Email, staff.Username, staff.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// Update actualiza los datos de un empleado.
func (r *StaffRepo) Update(staff *entity.Staff) error {
	query := `
		UPDATE staff SET name = $2, role = $3, contact_no = $4, email = $5, username = $6, password_hash = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		staff.ID, staff.Name, staff.Role, staff.ContactNo,
		staff.Email, staff.Username, staff.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *StaffRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	return r.findOne(`SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
}

// FindByEmail busca un empleado por email.
func (r *StaffRepo) FindByEmail(email string) (*entity.Staff, error) {
	return r.findOne(`SELECT `+staffColumns+` FROM staff WHERE email = $1`, email)
}

// FindByUsername busca un empleado por username.
func (r *StaffRepo) FindByUsername(username string) (*entity.Staff, error) {
	return r.findOne(`SELECT `+staffColumns+` FROM staff WHERE username = $1`, username)
}

func (r *StaffRepo) findOne(query string, arg any) (*entity.Staff, error) {
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Role, &s.ContactNo, &s.Email, &s.Username, &s.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

// List lista empleados con paginación.
func (r *StaffRepo) List(limit, offset int) ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	return scanStaffRows(rows)
}

// ListByRole lista todos los empleados con el rol dado.
func (r *StaffRepo) ListByRole(role string) ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE role = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, role)
	if err != nil {
		return nil, fmt.Errorf("list staff by role: %w", err)
	}
	defer rows.Close()
	return scanStaffRows(rows)
}

func scanStaffRows(rows pgx.Rows) ([]*entity.Staff, error) {
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.ContactNo, &s.Email, &s.Username, &s.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
