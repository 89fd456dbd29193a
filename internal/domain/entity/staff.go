package entity

// Roles válidos para Staff (conjunto cerrado).
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// Staff representa un empleado del negocio (usuario del sistema).
type Staff struct {
	ID           string
	Name         string
	Role         string // admin, manager, staff
	ContactNo    string
	Email        string // único
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}
