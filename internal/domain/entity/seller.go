// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the account that owns and operates a store.
type Seller struct {
	ID           uuid.UUID  // Server-assigned identifier.
	Name         string     // First name.
	LastName     string     // Family name.
	TaxID        string     // National tax identifier of the person.
	Email        string     // Login identifier, unique among sellers.
	PostalCode   string     // Postal code of the seller's address.
	Number       string     // House number of the seller's address.
	PasswordHash string     // bcrypt hash; never leaves the service.
	StoreID      *uuid.UUID // Back-reference to the owned store, nil until one is provisioned.
	Store        *Store     // Populated store, only set when the repository preloads it.
	CreatedAt    time.Time  // Server-assigned creation timestamp.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}

// HasStore reports whether the seller already owns a store.
func (s *Seller) HasStore() bool {
	return s.StoreID != nil && *s.StoreID != uuid.Nil
}

// AssignStore sets the seller's back-reference to the given store.
func (s *Seller) AssignStore(store *Store) {
	storeID := store.ID
	s.StoreID = &storeID
	s.Store = store
}
