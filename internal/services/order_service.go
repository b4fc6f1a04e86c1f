package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ToppingRequest asks for amount units of a topping
type ToppingRequest struct {
	ToppingID uint `json:"topping_id" binding:"required"`
	Amount    int  `json:"amount"`
}

// PizzaRequest describes a pizza to add to an order
type PizzaRequest struct {
	SizeID   uint             `json:"size_id" binding:"required"`
	Toppings []ToppingRequest `json:"toppings" binding:"omitempty,dive"`
}

// PlaceOrderRequest is a complete order placed in one step
type PlaceOrderRequest struct {
	FirstName string         `json:"first_name" binding:"required"`
	LastName  string         `json:"last_name" binding:"required"`
	Pizzas    []PizzaRequest `json:"pizzas" binding:"omitempty,dive"`
}

// OrderService places orders and computes their totals
type OrderService interface {
	// CreateOrder opens a new order for the customer
	CreateOrder(ctx context.Context, firstName, lastName string) (*models.Order, error)
	// PlaceOrder creates the order with all its pizzas atomically; nothing is
	// stored when any pizza is invalid
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error)
	// GetOrder loads the order with its pizzas and sale
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	// OrderTotal recomputes the order total from its current pizzas
	OrderTotal(ctx context.Context, id uint) (decimal.Decimal, error)
	// AddPizza attaches a pizza with its toppings to the order
	AddPizza(ctx context.Context, orderID uint, req PizzaRequest) (*models.Pizza, error)
	// ListPizzas returns the order's pizzas in the order they were added
	ListPizzas(ctx context.Context, orderID uint) ([]models.Pizza, error)
	// SetToppingAmount inserts or updates the quantity of a topping on a pizza
	SetToppingAmount(ctx context.Context, orderID, pizzaID, toppingID uint, amount int) (*models.Pizza, error)
	// ToppingAmount returns the quantity of a topping on a pizza, 0 when absent
	ToppingAmount(ctx context.Context, orderID, pizzaID, toppingID uint) (int, error)
	// DeleteOrder removes the order with its pizzas and sale
	DeleteOrder(ctx context.Context, id uint) error
}

type orderService struct {
	db      *gorm.DB
	orders  *repository.OrderRepository
	catalog *repository.CatalogRepository
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{
		db:      db,
		orders:  repository.NewOrderRepository(db),
		catalog: repository.NewCatalogRepository(db),
	}
}

// notFound maps gorm.ErrRecordNotFound to the given sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func (s *orderService) CreateOrder(ctx context.Context, firstName, lastName string) (*models.Order, error) {
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidCustomer
	}

	order := &models.Order{FirstName: firstName, LastName: lastName}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	log.WithFields(logrus.Fields{"order_id": order.ID, "customer": order.FullName()}).Info("Order created")
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.GetOrderWithPizzas(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return order, nil
}

func (s *orderService) OrderTotal(ctx context.Context, id uint) (decimal.Decimal, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return order.Total(), nil
}

func (s *orderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	firstName, lastName := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidCustomer
	}
	for i, p := range req.Pizzas {
		if err := validateToppings(p.Toppings); err != nil {
			return nil, fmt.Errorf("pizza %d: %w", i+1, err)
		}
	}

	order := &models.Order{FirstName: firstName, LastName: lastName}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		catalog := s.catalog.WithTx(tx)

		if err := orders.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for i, p := range req.Pizzas {
			if _, err := addPizza(ctx, orders, catalog, order.ID, p); err != nil {
				return fmt.Errorf("pizza %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	placed, err := s.orders.GetOrderWithPizzas(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"order_id": placed.ID,
		"customer": placed.FullName(),
		"pizzas":   len(placed.Pizzas),
		"total":    placed.Total().StringFixed(models.TotalPlaces),
	}).Info("Order placed")
	return placed, nil
}

func (s *orderService) AddPizza(ctx context.Context, orderID uint, req PizzaRequest) (*models.Pizza, error) {
	if err := validateToppings(req.Toppings); err != nil {
		return nil, err
	}

	var pizzaID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		if _, err := orders.GetOrder(ctx, orderID); err != nil {
			return notFound(err, ErrOrderNotFound)
		}

		var err error
		pizzaID, err = addPizza(ctx, orders, s.catalog.WithTx(tx), orderID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	pizza, err := s.orders.GetPizza(ctx, orderID, pizzaID)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"order_id": orderID,
		"pizza_id": pizza.ID,
		"size":     pizza.Size.Name,
		"total":    pizza.Total().StringFixed(models.TotalPlaces),
	}).Info("Pizza added to order")
	return pizza, nil
}

func validateToppings(toppings []ToppingRequest) error {
	seen := make(map[uint]bool, len(toppings))
	for _, t := range toppings {
		if t.Amount < 0 {
			return ErrInvalidAmount
		}
		if seen[t.ToppingID] {
			return ErrDuplicateTopping
		}
		seen[t.ToppingID] = true
	}
	return nil
}

// addPizza inserts the pizza and its topping amounts. The caller owns the
// transaction and has checked that the order exists.
func addPizza(ctx context.Context, orders *repository.OrderRepository, catalog *repository.CatalogRepository, orderID uint, req PizzaRequest) (uint, error) {
	if _, err := catalog.GetSize(ctx, req.SizeID); err != nil {
		return 0, notFound(err, ErrSizeNotFound)
	}

	pizza := models.Pizza{OrderID: orderID, SizeID: req.SizeID}
	if err := orders.CreatePizza(ctx, &pizza); err != nil {
		return 0, fmt.Errorf("create pizza: %w", err)
	}

	for _, t := range req.Toppings {
		if _, err := catalog.GetTopping(ctx, t.ToppingID); err != nil {
			return 0, notFound(err, ErrToppingNotFound)
		}
		ta := models.ToppingAmount{PizzaID: pizza.ID, ToppingID: t.ToppingID, Amount: t.Amount}
		if err := orders.UpsertToppingAmount(ctx, &ta); err != nil {
			return 0, fmt.Errorf("add topping %d: %w", t.ToppingID, err)
		}
	}
	return pizza.ID, nil
}

func (s *orderService) ListPizzas(ctx context.Context, orderID uint) ([]models.Pizza, error) {
	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return s.orders.ListPizzasForOrder(ctx, orderID)
}

func (s *orderService) SetToppingAmount(ctx context.Context, orderID, pizzaID, toppingID uint, amount int) (*models.Pizza, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		if _, err := orders.GetPizza(ctx, orderID, pizzaID); err != nil {
			return notFound(err, ErrPizzaNotFound)
		}
		if _, err := s.catalog.WithTx(tx).GetTopping(ctx, toppingID); err != nil {
			return notFound(err, ErrToppingNotFound)
		}
		return orders.UpsertToppingAmount(ctx, &models.ToppingAmount{
			PizzaID:   pizzaID,
			ToppingID: toppingID,
			Amount:    amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetPizza(ctx, orderID, pizzaID)
}

func (s *orderService) ToppingAmount(ctx context.Context, orderID, pizzaID, toppingID uint) (int, error) {
	if _, err := s.orders.GetPizza(ctx, orderID, pizzaID); err != nil {
		return 0, notFound(err, ErrPizzaNotFound)
	}
	return s.orders.GetToppingAmount(ctx, pizzaID, toppingID)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.orders.WithTx(tx).DeleteOrder(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrOrderNotFound
		}
		log.WithField("order_id", id).Info("Order deleted with its pizzas and sale")
		return nil
	})
}
