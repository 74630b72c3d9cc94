package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuyerModel mirrors the 'buyers' table.
type BuyerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	TaxID        string    `gorm:"type:varchar(32);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_buyers_email;not null"`
	PostalCode   string    `gorm:"type:varchar(20);not null"`
	Number       string    `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *BuyerModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
