package entity

import "time"

// Customer cliente registrado. Las ventas lo referencian de forma opcional.
type Customer struct {
	ID          string
	Name        string
	Email       string // único
	Phone       string
	Address     string
	IsActive    bool
	CreatedDate time.Time
}
