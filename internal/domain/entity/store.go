package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is a seller-owned catalog identified by its (name, registration number) pair.
type Store struct {
	ID                 uuid.UUID
	Name               string // Public store name, also the URL segment and token scope.
	RegistrationNumber string // Company registration number.
	StateRegistration  string // State registration id.
	CorporateName      string
	Category           string
	LogoImage          string
	OwnerID            uuid.UUID       // The owning seller.
	Owner              *Seller         // Populated owner, only set when preloaded.
	Products           []*Product      // Catalog, empty at creation.
	BalanceAvailable   decimal.Decimal // Persisted as text; zero at creation.
	ClientIDs          []uuid.UUID     // Buyers registered through this store.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewStore builds a store owned by the given seller with an empty catalog,
// no clients and a zero balance.
func NewStore(owner *Seller, name, registrationNumber, stateRegistration, corporateName, category string) *Store {
	return &Store{
		Name:               name,
		RegistrationNumber: registrationNumber,
		StateRegistration:  stateRegistration,
		CorporateName:      corporateName,
		Category:           category,
		OwnerID:            owner.ID,
		Owner:              owner,
		Products:           []*Product{},
		BalanceAvailable:   decimal.Zero,
		ClientIDs:          []uuid.UUID{},
	}
}
