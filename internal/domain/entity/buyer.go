package entity

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is a purchasing customer registered through a storefront.
type Buyer struct {
	ID           uuid.UUID
	Name         string
	LastName     string
	TaxID        string
	Email        string // Unique among buyers only; a seller may share it.
	PostalCode   string
	Number       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
