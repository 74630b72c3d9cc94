// Package model contains the GORM persistence models. They are exported so
// migrations and test fixtures can reference them from other packages.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerModel mirrors the 'sellers' table.
type SellerModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	TaxID        string     `gorm:"type:varchar(32);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex:idx_sellers_email;not null"`
	PostalCode   string     `gorm:"type:varchar(20);not null"`
	Number       string     `gorm:"type:varchar(20);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	StoreID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *SellerModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
