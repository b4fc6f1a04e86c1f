package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the snapshot of an order total taken at checkout.
// Total is never recomputed once the row exists.
type Sale struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	OrderID   uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	CreatedAt time.Time       `json:"created_at"`
}
