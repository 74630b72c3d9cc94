package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item listed in a store's catalog.
type Product struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	Name        string
	Image       string
	Category    string
	Description string
	Amount      int             // Units in stock.
	Value       decimal.Decimal // Unit price, persisted as text.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the product can currently be sold.
func (p *Product) IsActive() bool {
	return p.Amount > 0
}
