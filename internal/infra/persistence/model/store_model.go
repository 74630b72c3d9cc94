package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel mirrors the 'stores' table. The (name, registration_number) pair is unique.
type StoreModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_stores_name_registration;index:idx_stores_name"`
	RegistrationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_stores_name_registration"`
	StateRegistration  string    `gorm:"type:varchar(32);not null"`
	CorporateName      string    `gorm:"type:varchar(255);not null"`
	Category           string    `gorm:"type:varchar(100);not null"`
	LogoImage          string    `gorm:"type:text"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	BalanceAvailable   string    `gorm:"type:text;not null;default:'0'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Owner    *SellerModel        `gorm:"foreignKey:OwnerID;references:ID"`
	Products []*ProductModel     `gorm:"foreignKey:StoreID"`
	Clients  []*StoreClientModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *StoreModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// StoreClientModel mirrors the 'store_clients' join table between stores and buyers.
type StoreClientModel struct {
	StoreID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreClientModel) TableName() string {
	return "store_clients"
}
