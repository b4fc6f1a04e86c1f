package models

import "github.com/shopspring/decimal"

// Size is a reference row describing a pizza size and its base price.
// Price is a whole currency unit.
type Size struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Price int    `gorm:"not null" json:"price"`
}

// Topping is a reference row with a per-unit price
type Topping struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
