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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
// La asociación con repuestos vive en la tabla supplier_part.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_no, address)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactNo, supplier.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_no = $3, address = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactNo, supplier.Address,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina el proveedor y sus asociaciones con repuestos.
func (r *SupplierRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM supplier_part WHERE supplier_id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier parts: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, contact_no, address FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactNo, &s.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, contact_no, address FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactNo, &s.Address); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count total de proveedores.
func (r *SupplierRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM suppliers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

// AddPart asocia un repuesto al proveedor. Idempotente.
func (r *SupplierRepo) AddPart(supplierID, partID string) error {
	query := `
		INSERT INTO supplier_part (supplier_id, part_id)
		VALUES ($1, $2)
		ON CONFLICT (supplier_id, part_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, supplierID, partID)
	if err != nil {
		return fmt.Errorf("add supplier part: %w", err)
	}
	return nil
}

// RemovePart elimina la asociación repuesto-proveedor.
func (r *SupplierRepo) RemovePart(supplierID, partID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM supplier_part WHERE supplier_id = $1 AND part_id = $2`,
		supplierID, partID,
	)
	if err != nil {
		return fmt.Errorf("remove supplier part: %w", err)
	}
	return nil
}

// ListParts lista los repuestos asociados a un proveedor.
func (r *SupplierRepo) ListParts(supplierID string) ([]*entity.Part, error) {
	query := `
		SELECT p.id, p.name, p.description, p.part_type, p.brand, p.price, p.stock_quantity, p.updated_at
		FROM parts p
		JOIN supplier_part sp ON sp.part_id = p.id
		WHERE sp.supplier_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PartType, &p.Brand,
			&p.Price, &p.StockQuantity, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
