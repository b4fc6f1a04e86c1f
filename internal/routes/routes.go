package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the router exposes
type Dependencies struct {
	Catalog   services.CatalogService
	Orders    services.OrderService
	Sales     services.SaleService
	Clients   services.ClientService
	OAuth     *auth.OAuthService
	JWTSecret string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	catalogController := controllers.NewCatalogController(deps.Catalog)
	orderController := controllers.NewOrderController(deps.Orders)
	saleController := controllers.NewSaleController(deps.Sales)
	clientController := controllers.NewClientController(deps.Clients)

	router.GET("/health", healthCheckHandler)
	router.POST("/oauth/token", deps.OAuth.HandleToken)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/sizes", catalogController.ListSizes)
			publicApi.GET("/toppings", catalogController.ListToppings)

			publicApi.POST("/orders", orderController.CreateOrder)
			publicApi.GET("/orders/:id", orderController.GetOrder)
			publicApi.GET("/orders/:id/total", orderController.GetOrderTotal)
			publicApi.POST("/orders/:id/pizzas", orderController.AddPizza)
			publicApi.GET("/orders/:id/pizzas", orderController.ListPizzas)
			publicApi.PUT("/orders/:id/pizzas/:pizzaId/toppings/:toppingId", orderController.SetToppingAmount)
			publicApi.GET("/orders/:id/pizzas/:pizzaId/toppings/:toppingId", orderController.GetToppingAmount)

			publicApi.POST("/orders/:id/checkout", saleController.Checkout)
			publicApi.GET("/orders/:id/sale", saleController.GetSale)
			publicApi.GET("/orders/:id/sale/receipt.png", saleController.GetReceipt)
		}

		protectedApi := v1.Group("/protected", middleware.OAuth2Auth([]byte(deps.JWTSecret)))
		{
			staffApi := protectedApi.Group("", middleware.RequireRole(models.RoleAdmin, models.RoleStaff))
			{
				staffApi.GET("/clients", clientController.ListClients)
				staffApi.POST("/clients", clientController.CreateClient)
				staffApi.DELETE("/clients/:id", clientController.DeleteClient)
			}

			adminApi := protectedApi.Group("", middleware.RequireRole(models.RoleAdmin))
			{
				adminApi.DELETE("/orders/:id", orderController.DeleteOrder)
				adminApi.GET("/sales", saleController.ListSales)
				adminApi.POST("/bootstrap", catalogController.Bootstrap)
			}
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// WithCORS wraps the handler so browsers on the allowed origins can call the API
func WithCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(handler)
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-orders",
	})
}
