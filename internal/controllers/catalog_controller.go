package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the size and topping reference data
type CatalogController interface {
	ListSizes(c *gin.Context)
	ListToppings(c *gin.Context)
	// Bootstrap re-runs the reference data seeding
	Bootstrap(c *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

func NewCatalogController(service services.CatalogService) CatalogController {
	return &catalogController{service: service}
}

// ListSizes godoc
// @Summary List sizes
// @Description Get every pizza size, cheapest first
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Size
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/sizes [get]
func (cc *catalogController) ListSizes(ctx *gin.Context) {
	sizes, err := cc.service.ListSizes(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sizes)
}

// ListToppings godoc
// @Summary List toppings
// @Description Get every topping ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Topping
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/toppings [get]
func (cc *catalogController) ListToppings(ctx *gin.Context) {
	toppings, err := cc.service.ListToppings(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toppings)
}

// Bootstrap godoc
// @Summary Seed reference data
// @Description Insert the default sizes and toppings that are missing. Safe to call repeatedly.
// @Tags catalog
// @Produce json
// @Success 200 {object} services.SeedReport
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/bootstrap [post]
func (cc *catalogController) Bootstrap(ctx *gin.Context) {
	report, err := cc.service.Bootstrap(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
