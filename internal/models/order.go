package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root of a customer's order.
// Deleting an order deletes its pizzas, their topping amounts and its sale.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:60" json:"first_name"`
	LastName  string    `gorm:"size:60" json:"last_name"`
	OrderDate time.Time `gorm:"not null;autoCreateTime" json:"order_date"`

	Pizzas []Pizza `gorm:"constraint:OnDelete:CASCADE" json:"pizzas"`
	Sale   *Sale   `gorm:"constraint:OnDelete:CASCADE" json:"sale,omitempty"`
}

// FullName joins first and last name with a single space
func (o *Order) FullName() string {
	return o.FirstName + " " + o.LastName
}

// Total sums the totals of the loaded pizzas.
// Every pizza total is already rounded, the sum is rounded again so the
// result always carries two decimal places.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Pizzas {
		total = total.Add(o.Pizzas[i].Total())
	}
	return total.Round(TotalPlaces)
}
