package services

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/events"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver: "sqlite",
		Path:   "file:" + uuid.New().String() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type recordingPublisher struct {
	events []events.SaleRecorded
	err    error
}

func (p *recordingPublisher) PublishSaleRecorded(ctx context.Context, event events.SaleRecorded) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type catalogIDs struct {
	sizes    map[string]uint
	toppings map[string]uint
}

func bootstrap(t *testing.T, db *gorm.DB) catalogIDs {
	catalog := NewCatalogService(db, true)
	ctx := context.Background()
	_, err := catalog.Bootstrap(ctx)
	require.NoError(t, err)

	ids := catalogIDs{sizes: map[string]uint{}, toppings: map[string]uint{}}
	sizes, err := catalog.ListSizes(ctx)
	require.NoError(t, err)
	for _, s := range sizes {
		ids.sizes[s.Name] = s.ID
	}
	toppings, err := catalog.ListToppings(ctx)
	require.NoError(t, err)
	for _, tp := range toppings {
		ids.toppings[tp.Name] = tp.ID
	}
	return ids
}

func TestBootstrapIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db, false)
	ctx := context.Background()

	first, err := catalog.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedReport{SizesCreated: 3, ToppingsCreated: 7}, first)

	second, err := catalog.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedReport{AlreadySeeded: true}, second)

	sizes, err := catalog.ListSizes(ctx)
	require.NoError(t, err)
	require.Len(t, sizes, 3)
	assert.Equal(t, "small", sizes[0].Name)
	assert.Equal(t, 20, sizes[2].Price)

	toppings, err := catalog.ListToppings(ctx)
	require.NoError(t, err)
	assert.Len(t, toppings, 7)
}

func TestBootstrapFillsMissingRows(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Size{Name: "medium", Price: 16}).Error)

	report, err := NewCatalogService(db, false).Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.SizesCreated)
	assert.Equal(t, 7, report.ToppingsCreated)
	assert.False(t, report.AlreadySeeded)
}

func TestOrderScenario(t *testing.T) {
	db := setupTestDB(t)
	ids := bootstrap(t, db)
	publisher := &recordingPublisher{}
	orders := NewOrderService(db)
	sales := NewSaleService(db, publisher, DefaultQRGenerator{BaseURL: "http://localhost:8080"})
	ctx := context.Background()

	order, err := orders.CreateOrder(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	assert.False(t, order.OrderDate.IsZero())

	total, err := orders.OrderTotal(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", total.StringFixed(2), "empty order")

	pizza, err := orders.AddPizza(ctx, order.ID, PizzaRequest{
		SizeID: ids.sizes["medium"],
		Toppings: []ToppingRequest{
			{ToppingID: ids.toppings["pepperoni"], Amount: 2},
			{ToppingID: ids.toppings["olives"], Amount: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "29.45", pizza.Total().StringFixed(2))

	total, err = orders.OrderTotal(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "29.45", total.StringFixed(2))

	sale, err := sales.Checkout(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "29.45", sale.Total.StringFixed(2))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.ID, publisher.events[0].OrderID)
	assert.Equal(t, "Ada Lovelace", publisher.events[0].CustomerName)

	// adding a pizza afterwards changes the order total but not the sale
	_, err = orders.AddPizza(ctx, order.ID, PizzaRequest{SizeID: ids.sizes["small"]})
	require.NoError(t, err)

	total, err = orders.OrderTotal(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "39.45", total.StringFixed(2))

	stored, err := sales.GetSale(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "29.45", stored.Total.StringFixed(2))

	// deleting the order removes its sale and keeps the reference data
	require.NoError(t, orders.DeleteOrder(ctx, order.ID))

	_, err = sales.GetSale(ctx, order.ID)
	assert.ErrorIs(t, err, ErrSaleNotFound)
	_, err = orders.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	var sizes, toppings int64
	db.Model(&models.Size{}).Count(&sizes)
	db.Model(&models.Topping{}).Count(&toppings)
	assert.Equal(t, int64(3), sizes)
	assert.Equal(t, int64(7), toppings)
}

func TestCheckoutTwiceIsRejected(t *testing.T) {
	db := setupTestDB(t)
	ids := bootstrap(t, db)
	orders := NewOrderService(db)
	sales := NewSaleService(db, &recordingPublisher{}, DefaultQRGenerator{})
	ctx := context.Background()

	order, err := orders.CreateOrder(ctx, "Grace", "Hopper")
	require.NoError(t, err)
	_, err = orders.AddPizza(ctx, order.ID, PizzaRequest{SizeID: ids.sizes["family"]})
	require.NoError(t, err)

	_, err = sales.Checkout(ctx, order.ID)
	require.NoError(t, err)

	_, err = sales.Checkout(ctx, order.ID)
	assert.ErrorIs(t, err, ErrSaleAlreadyRecorded)

	list, err := sales.ListSales(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCheckoutSurvivesPublishFailure(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	sales := NewSaleService(db, &recordingPublisher{err: errors.New("broker down")}, DefaultQRGenerator{})
	ctx := context.Background()

	order, err := orders.CreateOrder(ctx, "Alan", "Turing")
	require.NoError(t, err)

	sale, err := sales.Checkout(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", sale.Total.StringFixed(2))

	_, err = sales.GetSale(ctx, order.ID)
	assert.NoError(t, err)
}

type blockingPublisher struct {
	hadDeadline bool
}

func (p *blockingPublisher) PublishSaleRecorded(ctx context.Context, event events.SaleRecorded) error {
	_, p.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func (p *blockingPublisher) Close() error { return nil }

func TestCheckoutBoundsPublish(t *testing.T) {
	previous := publishTimeout
	publishTimeout = 50 * time.Millisecond
	t.Cleanup(func() { publishTimeout = previous })

	db := setupTestDB(t)
	publisher := &blockingPublisher{}
	orders := NewOrderService(db)
	sales := NewSaleService(db, publisher, DefaultQRGenerator{})

	// a request context without deadline, the publish must still return
	order, err := orders.CreateOrder(context.Background(), "Barbara", "Liskov")
	require.NoError(t, err)

	start := time.Now()
	sale, err := sales.Checkout(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, publisher.hadDeadline)

	stored, err := sales.GetSale(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, stored.ID)
}

func TestCheckoutUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	sales := NewSaleService(db, &recordingPublisher{}, DefaultQRGenerator{})

	_, err := sales.Checkout(context.Background(), 404)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAddPizzaValidation(t *testing.T) {
	db := setupTestDB(t)
	ids := bootstrap(t, db)
	orders := NewOrderService(db)
	ctx := context.Background()

	order, err := orders.CreateOrder(ctx, "Ada", "Lovelace")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		orderID  uint
		req      PizzaRequest
		expected error
	}{
		{
			name:     "unknown order",
			orderID:  order.ID + 100,
			req:      PizzaRequest{SizeID: ids.sizes["small"]},
			expected: ErrOrderNotFound,
		},
		{
			name:     "unknown size",
			orderID:  order.ID,
			req:      PizzaRequest{SizeID: 999},
			expected: ErrSizeNotFound,
		},
		{
			name:    "unknown topping",
			orderID: order.ID,
			req: PizzaRequest{SizeID: ids.sizes["small"], Toppings: []ToppingRequest{
				{ToppingID: 999, Amount: 1},
			}},
			expected: ErrToppingNotFound,
		},
		{
			name:    "negative amount",
			orderID: order.ID,
			req: PizzaRequest{SizeID: ids.sizes["small"], Toppings: []ToppingRequest{
				{ToppingID: ids.toppings["ham"], Amount: -1},
			}},
			expected: ErrInvalidAmount,
		},
		{
			name:    "duplicate topping",
			orderID: order.ID,
			req: PizzaRequest{SizeID: ids.sizes["small"], Toppings: []ToppingRequest{
				{ToppingID: ids.toppings["ham"], Amount: 1},
				{ToppingID: ids.toppings["ham"], Amount: 2},
			}},
			expected: ErrDuplicateTopping,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orders.AddPizza(ctx, tt.orderID, tt.req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	pizzas, err := orders.ListPizzas(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, pizzas, "failed requests must not leave pizzas behind")
}

func TestPlaceOrder(t *testing.T) {
	db := setupTestDB(t)
	ids := bootstrap(t, db)
	orders := NewOrderService(db)
	ctx := context.Background()

	order, err := orders.PlaceOrder(ctx, PlaceOrderRequest{
		FirstName: " Ada ",
		LastName:  "Lovelace",
		Pizzas: []PizzaRequest{
			{
				SizeID: ids.sizes["medium"],
				Toppings: []ToppingRequest{
					{ToppingID: ids.toppings["pepperoni"], Amount: 2},
					{ToppingID: ids.toppings["olives"], Amount: 1},
				},
			},
			{SizeID: ids.sizes["small"]},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", order.FullName())
	require.Len(t, order.Pizzas, 2)
	assert.Equal(t, "39.45", order.Total().StringFixed(2))

	empty, err := orders.PlaceOrder(ctx, PlaceOrderRequest{FirstName: "Grace", LastName: "Hopper"})
	require.NoError(t, err)
	assert.Empty(t, empty.Pizzas)
	assert.Equal(t, "0.00", empty.Total().StringFixed(2))
}

func TestPlaceOrderIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	ids := bootstrap(t, db)
	orders := NewOrderService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      PlaceOrderRequest
		expected error
	}{
		{
			name: "unknown topping in third pizza",
			req: PlaceOrderRequest{FirstName: "Ada", LastName: "Lovelace", Pizzas: []PizzaRequest{
				{SizeID: ids.sizes["small"], Toppings: []ToppingRequest{{ToppingID: ids.toppings["ham"], Amount: 1}}},
				{SizeID: ids.sizes["medium"]},
				{SizeID: ids.sizes["family"], Toppings: []ToppingRequest{{ToppingID: 999, Amount: 1}}},
			}},
			expected: ErrToppingNotFound,
		},
		{
			name: "unknown size in second pizza",
			req: PlaceOrderRequest{FirstName: "Ada", LastName: "Lovelace", Pizzas: []PizzaRequest{
				{SizeID: ids.sizes["small"]},
				{SizeID: 999},
			}},
			expected: ErrSizeNotFound,
		},
		{
			name: "negative amount",
			req: PlaceOrderRequest{FirstName: "Ada", LastName: "Lovelace", Pizzas: []PizzaRequest{
				{SizeID: ids.sizes["small"], Toppings: []ToppingRequest{{ToppingID: ids.toppings["ham"], Amount: -1}}},
			}},
			expected: ErrInvalidAmount,
		},
		{
			name:     "missing last name",
			req:      PlaceOrderRequest{FirstName: "Ada", Pizzas: []PizzaRequest{{SizeID: ids.sizes["small"]}}},
			expected: ErrInvalidCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orders.PlaceOrder(ctx, tt.req)
			assert.ErrorIs(t, err, tt.expected)

			var count int64
			db.Model(&models.Order{}).Count(&count)
			assert.Zero(t, count, "orders")
			db.Model(&models.Pizza{}).Count(&count)
			assert.Zero(t, count, "pizzas")
			db.Model(&models.ToppingAmount{}).Count(&count)
			assert.Zero(t, count, "topping amounts")
		})
	}
}

func TestConcurrentOrdersOnFileDatabase(t *testing.T) {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "pizza.sqlite"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	ids := bootstrap(t, db)
	orders := NewOrderService(db)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := orders.CreateOrder(ctx, "Ada", "Lovelace")
			if err != nil {
				errs <- err
				return
			}
			_, err = orders.AddPizza(ctx, order.ID, PizzaRequest{
				SizeID:   ids.sizes["medium"],
				Toppings: []ToppingRequest{{ToppingID: ids.toppings["pepperoni"], Amount: 2}},
			})
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(workers), count)
	db.Model(&models.Pizza{}).Count(&count)
	assert.Equal(t, int64(workers), count)
}

func TestCreateOrderRequiresNames(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	_, err := orders.CreateOrder(context.Background(), "  ", "Lovelace")
	assert.ErrorIs(t, err, ErrInvalidCustomer)
}

func TestToppingAmounts(t *testing.T) {
	db := setupTestDB(t)
	ids := bootstrap(t, db)
	orders := NewOrderService(db)
	ctx := context.Background()

	order, err := orders.CreateOrder(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	pizza, err := orders.AddPizza(ctx, order.ID, PizzaRequest{SizeID: ids.sizes["small"]})
	require.NoError(t, err)

	amount, err := orders.ToppingAmount(ctx, order.ID, pizza.ID, ids.toppings["sausage"])
	require.NoError(t, err)
	assert.Equal(t, 0, amount, "missing join row reads as zero")

	updated, err := orders.SetToppingAmount(ctx, order.ID, pizza.ID, ids.toppings["sausage"], 2)
	require.NoError(t, err)
	assert.Equal(t, "22.50", updated.Total().StringFixed(2))

	updated, err = orders.SetToppingAmount(ctx, order.ID, pizza.ID, ids.toppings["sausage"], 0)
	require.NoError(t, err)
	assert.Equal(t, "10.00", updated.Total().StringFixed(2), "zero amount is the same as no topping")

	_, err = orders.SetToppingAmount(ctx, order.ID, pizza.ID, ids.toppings["sausage"], -3)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = orders.SetToppingAmount(ctx, order.ID, pizza.ID+50, ids.toppings["sausage"], 1)
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	_, err = orders.ToppingAmount(ctx, order.ID+1, pizza.ID, ids.toppings["sausage"])
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestDeleteUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	err := NewOrderService(db).DeleteOrder(context.Background(), 77)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestReceiptIsPNG(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	sales := NewSaleService(db, &recordingPublisher{}, DefaultQRGenerator{BaseURL: "http://localhost:8080"})
	ctx := context.Background()

	order, err := orders.CreateOrder(ctx, "Ada", "Lovelace")
	require.NoError(t, err)

	_, err = sales.Receipt(ctx, order.ID)
	assert.ErrorIs(t, err, ErrSaleNotFound)

	_, err = sales.Checkout(ctx, order.ID)
	require.NoError(t, err)

	png, err := sales.Receipt(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestClientLifecycle(t *testing.T) {
	db := setupTestDB(t)
	staffService := NewStaffService(db)
	clients := NewClientService(db)
	ctx := context.Background()

	staff := &models.Staff{Email: "manager@pizza.test", Name: "Manager", Role: models.RoleAdmin}
	require.NoError(t, staffService.CreateStaff(ctx, staff))
	assert.ErrorIs(t, staffService.CreateStaff(ctx, &models.Staff{Email: staff.Email}), ErrStaffExists)

	client, secret, err := clients.CreateClient(ctx, staff.ID, "till", "orders")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.True(t, client.VerifyPassword(secret))
	assert.False(t, client.VerifyPassword("wrong"))

	list, err := clients.GetClientsByStaffID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, clients.DeleteClient(ctx, client.ID, staff.ID+1), ErrClientNotFound)
	assert.NoError(t, clients.DeleteClient(ctx, client.ID, staff.ID))
}
