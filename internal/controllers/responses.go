package controllers

import (
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
)

// ToppingLine is one topping on a pizza with its quantity
type ToppingLine struct {
	ToppingID uint   `json:"topping_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Amount    int    `json:"amount"`
}

// PizzaResponse is a pizza with its computed total
type PizzaResponse struct {
	ID       uint          `json:"id"`
	OrderID  uint          `json:"order_id"`
	Size     models.Size   `json:"size"`
	Toppings []ToppingLine `json:"toppings"`
	Total    string        `json:"total"`
}

// SaleResponse is the snapshot recorded at checkout
type SaleResponse struct {
	ID        uint      `json:"id"`
	OrderID   uint      `json:"order_id"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse is an order with its pizzas and derived fields
type OrderResponse struct {
	ID        uint            `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	FullName  string          `json:"full_name"`
	OrderDate time.Time       `json:"order_date"`
	Pizzas    []PizzaResponse `json:"pizzas"`
	Total     string          `json:"total"`
	Sale      *SaleResponse   `json:"sale,omitempty"`
}

// OrderTotalResponse is the current total of an order
type OrderTotalResponse struct {
	OrderID uint   `json:"order_id"`
	Total   string `json:"total"`
}

// ToppingAmountResponse is the quantity of a topping on a pizza
type ToppingAmountResponse struct {
	PizzaID   uint `json:"pizza_id"`
	ToppingID uint `json:"topping_id"`
	Amount    int  `json:"amount"`
}

func newPizzaResponse(p *models.Pizza) PizzaResponse {
	toppings := make([]ToppingLine, 0, len(p.ToppingAmounts))
	for _, ta := range p.ToppingAmounts {
		toppings = append(toppings, ToppingLine{
			ToppingID: ta.ToppingID,
			Name:      ta.Topping.Name,
			Price:     ta.Topping.Price.StringFixed(models.TotalPlaces),
			Amount:    ta.Amount,
		})
	}
	return PizzaResponse{
		ID:       p.ID,
		OrderID:  p.OrderID,
		Size:     p.Size,
		Toppings: toppings,
		Total:    p.Total().StringFixed(models.TotalPlaces),
	}
}

func newSaleResponse(s *models.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		OrderID:   s.OrderID,
		Total:     s.Total.StringFixed(models.TotalPlaces),
		CreatedAt: s.CreatedAt,
	}
}

func newOrderResponse(o *models.Order) OrderResponse {
	pizzas := make([]PizzaResponse, 0, len(o.Pizzas))
	for i := range o.Pizzas {
		pizzas = append(pizzas, newPizzaResponse(&o.Pizzas[i]))
	}
	resp := OrderResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		FullName:  o.FullName(),
		OrderDate: o.OrderDate,
		Pizzas:    pizzas,
		Total:     o.Total().StringFixed(models.TotalPlaces),
	}
	if o.Sale != nil {
		sale := newSaleResponse(o.Sale)
		resp.Sale = &sale
	}
	return resp
}
