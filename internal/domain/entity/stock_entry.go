package entity

import "time"

// StockEntry registro del libro de stock. Append-only.
// Quantity es el delta APLICADO (con clamp incluido): la suma de los deltas de
// un repuesto, partiendo de su stock inicial, siempre es igual a su stock actual.
type StockEntry struct {
	ID        string
	PartID    string
	Quantity  int64 // delta con signo: positivo entrada, negativo salida
	EntryDate time.Time
}
