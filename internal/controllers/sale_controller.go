package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// SaleController handles checkout and sale lookups
type SaleController interface {
	Checkout(c *gin.Context)
	GetSale(c *gin.Context)
	GetReceipt(c *gin.Context)
	ListSales(c *gin.Context)
}

type saleController struct {
	service services.SaleService
}

func NewSaleController(service services.SaleService) SaleController {
	return &saleController{service: service}
}

// Checkout godoc
// @Summary Check out an order
// @Description Record the current order total as the order's sale. An order can only be checked out once.
// @Tags sales
// @Produce json
// @Param id path int true "Order ID"
// @Success 201 {object} SaleResponse
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/public/orders/{id}/checkout [post]
func (sc *saleController) Checkout(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	sale, err := sc.service.Checkout(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newSaleResponse(sale))
}

// GetSale godoc
// @Summary Get the sale of an order
// @Tags sales
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} SaleResponse
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/sale [get]
func (sc *saleController) GetSale(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	sale, err := sc.service.GetSale(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSaleResponse(sale))
}

// GetReceipt godoc
// @Summary Get the sale receipt
// @Description QR code PNG linking to the recorded sale
// @Tags sales
// @Produce png
// @Param id path int true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id}/sale/receipt.png [get]
func (sc *saleController) GetReceipt(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}

	png, err := sc.service.Receipt(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

// ListSales godoc
// @Summary List sales
// @Description Every recorded sale, newest first
// @Tags sales
// @Produce json
// @Success 200 {array} SaleResponse
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/sales [get]
func (sc *saleController) ListSales(ctx *gin.Context) {
	sales, err := sc.service.ListSales(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	resp := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, newSaleResponse(&sales[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}
