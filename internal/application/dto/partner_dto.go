package dto

import "time"

// SupplierRequest alta/edición de proveedor.
type SupplierRequest struct {
	Name      string `json:"name" validate:"required"`
	ContactNo string `json:"contact_no"`
	Address   string `json:"address"`
}

// SupplierResponse proveedor.
type SupplierResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ContactNo string `json:"contact_no,omitempty"`
	Address   string `json:"address,omitempty"`
}

// CustomerRequest alta/edición de cliente.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse cliente.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedDate time.Time `json:"created_date"`
}
