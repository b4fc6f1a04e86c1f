package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders and their pizzas
type OrderController interface {
	CreateOrder(c *gin.Context)
	GetOrder(c *gin.Context)
	GetOrderTotal(c *gin.Context)
	AddPizza(c *gin.Context)
	ListPizzas(c *gin.Context)
	SetToppingAmount(c *gin.Context)
	GetToppingAmount(c *gin.Context)
	DeleteOrder(c *gin.Context)
}

// CreateOrderRequest is the body of POST /orders; pizzas are optional and are
// stored with the order in one transaction
type CreateOrderRequest struct {
	FirstName string                  `json:"first_name" binding:"required"`
	LastName  string                  `json:"last_name" binding:"required"`
	Pizzas    []services.PizzaRequest `json:"pizzas" binding:"omitempty,dive"`
}

// ToppingAmountRequest is the body of PUT .../toppings/:toppingId
type ToppingAmountRequest struct {
	Amount *int `json:"amount" binding:"required"`
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// CreateOrder godoc
// @Summary Create an order
// @Description Open a new order for a customer, optionally with its pizzas
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Customer and pizzas"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders [post]
func (oc *orderController) CreateOrder(ctx *gin.Context) {
	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	order, err := oc.service.PlaceOrder(ctx.Request.Context(), services.PlaceOrderRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Pizzas:    req.Pizzas,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newOrderResponse(order))
}

// GetOrder godoc
// @Summary Get an order
// @Description Get an order with its pizzas, full name and current total
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id} [get]
func (oc *orderController) GetOrder(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	order, err := oc.service.GetOrder(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// GetOrderTotal godoc
// @Summary Get an order total
// @Description Recompute the order total from its current pizzas
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderTotalResponse
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/total [get]
func (oc *orderController) GetOrderTotal(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	total, err := oc.service.OrderTotal(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, OrderTotalResponse{OrderID: id, Total: total.StringFixed(models.TotalPlaces)})
}

// AddPizza godoc
// @Summary Add a pizza
// @Description Add a pizza of the given size with topping amounts to the order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param pizza body services.PizzaRequest true "Pizza"
// @Success 201 {object} PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/pizzas [post]
func (oc *orderController) AddPizza(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	var req services.PizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	pizza, err := oc.service.AddPizza(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newPizzaResponse(pizza))
}

// ListPizzas godoc
// @Summary List the pizzas of an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} PizzaResponse
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/pizzas [get]
func (oc *orderController) ListPizzas(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	pizzas, err := oc.service.ListPizzas(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	resp := make([]PizzaResponse, 0, len(pizzas))
	for i := range pizzas {
		resp = append(resp, newPizzaResponse(&pizzas[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetToppingAmount godoc
// @Summary Set a topping amount
// @Description Insert or update how many units of a topping a pizza carries. 0 removes it from the total.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param pizzaId path int true "Pizza ID"
// @Param toppingId path int true "Topping ID"
// @Param amount body ToppingAmountRequest true "Amount"
// @Success 200 {object} PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/pizzas/{pizzaId}/toppings/{toppingId} [put]
func (oc *orderController) SetToppingAmount(ctx *gin.Context) {
	orderID, pizzaID, toppingID, ok := toppingParams(ctx)
	if !ok {
		return
	}

	var req ToppingAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	pizza, err := oc.service.SetToppingAmount(ctx.Request.Context(), orderID, pizzaID, toppingID, *req.Amount)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPizzaResponse(pizza))
}

// GetToppingAmount godoc
// @Summary Get a topping amount
// @Description How many units of a topping a pizza carries, 0 when it has none
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Param pizzaId path int true "Pizza ID"
// @Param toppingId path int true "Topping ID"
// @Success 200 {object} ToppingAmountResponse
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/pizzas/{pizzaId}/toppings/{toppingId} [get]
func (oc *orderController) GetToppingAmount(ctx *gin.Context) {
	orderID, pizzaID, toppingID, ok := toppingParams(ctx)
	if !ok {
		return
	}

	amount, err := oc.service.ToppingAmount(ctx.Request.Context(), orderID, pizzaID, toppingID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ToppingAmountResponse{PizzaID: pizzaID, ToppingID: toppingID, Amount: amount})
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order together with its pizzas, topping amounts and sale
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204 "Order deleted"
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [delete]
func (oc *orderController) DeleteOrder(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	if err := oc.service.DeleteOrder(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func toppingParams(ctx *gin.Context) (orderID, pizzaID, toppingID uint, ok bool) {
	if orderID, ok = uintParam(ctx, "id"); !ok {
		return
	}
	if pizzaID, ok = uintParam(ctx, "pizzaId"); !ok {
		return
	}
	toppingID, ok = uintParam(ctx, "toppingId")
	return
}
