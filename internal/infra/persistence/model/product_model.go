package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Value is a decimal kept as text.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Amount      int       `gorm:"not null;default:0"`
	Value       string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// All returns every persistence model, in dependency order.
func All() []any {
	return []any{
		&SellerModel{},
		&StoreModel{},
		&BuyerModel{},
		&StoreClientModel{},
		&ProductModel{},
	}
}
