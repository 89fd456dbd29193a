package entity

// Supplier proveedor de repuestos. Relación muchos-a-muchos con Part
// vía la tabla supplier_part.
type Supplier struct {
	ID        string
	Name      string
	ContactNo string
	Address   string
}
