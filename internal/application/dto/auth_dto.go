package dto

// LoginRequest credenciales de login (username o email en Login, password plano).
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterStaffRequest alta de empleado (solo admin).
type RegisterStaffRequest struct {
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin manager staff"`
	ContactNo string `json:"contact_no"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3"`
	Password  string `json:"password" validate:"required,min=8"`
}

// StaffResponse empleado sin credenciales.
type StaffResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ContactNo string `json:"contact_no,omitempty"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// LoginResponse token emitido más el perfil del empleado y sus permisos
// (los permisos son para renderizado de UI, no frontera de seguridad).
type LoginResponse struct {
	Token       string        `json:"token"`
	Staff       StaffResponse `json:"staff"`
	Permissions []string      `json:"permissions"`
}
