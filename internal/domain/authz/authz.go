// Package authz define la matriz estática rol→permisos del negocio.
//
// El conjunto de roles y permisos es cerrado y pequeño, así que una tabla
// estática reemplaza cualquier jerarquía polimórfica. Authorize es una función
// pura: la consulta todo punto de entrada mutante antes de actuar, y la capa
// de presentación solo para decidir qué renderizar (esa decisión no es
// frontera de seguridad).
package authz

import "github.com/jrfmotorparts/pos-backend/internal/domain/entity"

// Permisos observados en el sistema.
const (
	PermManageStaff     = "manage-staff"
	PermManageInventory = "manage-inventory"
	PermManageSuppliers = "manage-suppliers"
	PermViewReports     = "view-reports"
	PermProcessSale     = "process-sale"
	PermViewInventory   = "view-inventory"
)

// matrix: permiso → roles que lo tienen.
var matrix = map[string]map[string]bool{
	PermManageStaff: {
		entity.RoleAdmin: true,
	},
	PermManageInventory: {
		entity.RoleAdmin:   true,
		entity.RoleManager: true,
	},
	PermManageSuppliers: {
		entity.RoleAdmin:   true,
		entity.RoleManager: true,
	},
	PermViewReports: {
		entity.RoleAdmin:   true,
		entity.RoleManager: true,
	},
	PermProcessSale: {
		entity.RoleAdmin:   true,
		entity.RoleManager: true,
		entity.RoleStaff:   true,
	},
	PermViewInventory: {
		entity.RoleAdmin:   true,
		entity.RoleManager: true,
		entity.RoleStaff:   true,
	},
}

// Authorize indica si el rol tiene el permiso. Total sobre el conjunto cerrado:
// rol o permiso desconocido → false, nunca error.
func Authorize(role, permission string) bool {
	roles, ok := matrix[permission]
	if !ok {
		return false
	}
	return roles[role]
}

// Permissions devuelve los permisos del rol (para renderizado de UI, no para
// decisiones de seguridad).
func Permissions(role string) []string {
	var perms []string
	for _, p := range []string{
		PermManageStaff, PermManageInventory, PermManageSuppliers,
		PermViewReports, PermProcessSale, PermViewInventory,
	} {
		if Authorize(role, p) {
			perms = append(perms, p)
		}
	}
	return perms
}
