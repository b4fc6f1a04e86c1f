package repository

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository persists orders, their pizzas and topping amounts
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// pizzaDetails preloads everything Pizza.Total needs, pizzas in insertion order
func pizzaDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Size").
		Preload("ToppingAmounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("topping_id")
		}).
		Preload("ToppingAmounts.Topping")
}

func (r *OrderRepository) CreateOrder(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

// GetOrder loads the order row only
func (r *OrderRepository) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithPizzas loads the whole aggregate: pizzas with size and
// toppings, and the sale when one was recorded
func (r *OrderRepository) GetOrderWithPizzas(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).
		Preload("Pizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("pizzas.id")
		}).
		Preload("Pizzas.Size").
		Preload("Pizzas.ToppingAmounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("topping_id")
		}).
		Preload("Pizzas.ToppingAmounts.Topping").
		Preload("Sale").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListPizzasForOrder returns the order's pizzas in insertion order
func (r *OrderRepository) ListPizzasForOrder(ctx context.Context, orderID uint) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := pizzaDetails(r.db.WithContext(ctx)).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

// GetPizza loads a pizza of the given order with size and toppings
func (r *OrderRepository) GetPizza(ctx context.Context, orderID, pizzaID uint) (*models.Pizza, error) {
	var p models.Pizza
	err := pizzaDetails(r.db.WithContext(ctx)).
		Where("order_id = ?", orderID).
		First(&p, pizzaID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePizza inserts the pizza row; topping amounts are written separately
func (r *OrderRepository) CreatePizza(ctx context.Context, p *models.Pizza) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

// UpsertToppingAmount inserts the join row or overwrites its amount
func (r *OrderRepository) UpsertToppingAmount(ctx context.Context, ta *models.ToppingAmount) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pizza_id"}, {Name: "topping_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).
		Create(ta).Error
}

// GetToppingAmount returns the quantity of a topping on a pizza.
// A missing join row is a quantity of zero, not an error.
func (r *OrderRepository) GetToppingAmount(ctx context.Context, pizzaID, toppingID uint) (int, error) {
	var ta models.ToppingAmount
	err := r.db.WithContext(ctx).
		Where("pizza_id = ? AND topping_id = ?", pizzaID, toppingID).
		Take(&ta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ta.Amount, nil
}

// DeleteOrder removes the order with its sale, pizzas and their topping
// amounts. Run it inside a transaction; it returns the number of orders removed.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	db := r.db.WithContext(ctx)

	pizzaIDs := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Pizza{}).Select("id").Where("order_id = ?", id)
	if err := db.Where("pizza_id IN (?)", pizzaIDs).Delete(&models.ToppingAmount{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("order_id = ?", id).Delete(&models.Pizza{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("order_id = ?", id).Delete(&models.Sale{}).Error; err != nil {
		return 0, err
	}
	result := db.Delete(&models.Order{}, id)
	return result.RowsAffected, result.Error
}
