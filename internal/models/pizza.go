package models

import "github.com/shopspring/decimal"

// TotalPlaces is the number of decimal places every derived total is rounded to
const TotalPlaces = 2

// Pizza belongs to exactly one order and one size
type Pizza struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SizeID  uint `gorm:"not null;index" json:"size_id"`
	Size    Size `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"size"`
	OrderID uint `gorm:"not null;index" json:"order_id"`

	ToppingAmounts []ToppingAmount `gorm:"constraint:OnDelete:CASCADE" json:"toppings"`
}

// ToppingAmount is the quantified join between a pizza and a topping.
// There is at most one row per (pizza, topping) pair.
type ToppingAmount struct {
	PizzaID   uint    `gorm:"primaryKey;autoIncrement:false" json:"pizza_id"`
	ToppingID uint    `gorm:"primaryKey;autoIncrement:false" json:"topping_id"`
	Topping   Topping `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"topping"`
	Amount    int     `gorm:"not null;check:chk_topping_amounts_amount,amount >= 0" json:"amount"`
}

// AmountOf returns how many units of the topping the pizza carries, 0 when the
// pizza has no row for it
func (p *Pizza) AmountOf(toppingID uint) int {
	for _, ta := range p.ToppingAmounts {
		if ta.ToppingID == toppingID {
			return ta.Amount
		}
	}
	return 0
}

// Total returns the size price plus price x amount for every topping.
// Size and ToppingAmounts.Topping must be loaded.
func (p *Pizza) Total() decimal.Decimal {
	total := decimal.NewFromInt(int64(p.Size.Price))
	for _, ta := range p.ToppingAmounts {
		if ta.Amount <= 0 {
			continue
		}
		total = total.Add(ta.Topping.Price.Mul(decimal.NewFromInt(int64(ta.Amount))))
	}
	return total.Round(TotalPlaces)
}
