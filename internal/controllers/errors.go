package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel sets the level of the request error logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// errorMappings translates service sentinels to HTTP responses
var errorMappings = []struct {
	err    error
	status int
	code   string
}{
	{services.ErrOrderNotFound, http.StatusNotFound, models.ErrOrderNotFound},
	{services.ErrPizzaNotFound, http.StatusNotFound, models.ErrPizzaNotFound},
	{services.ErrSizeNotFound, http.StatusNotFound, models.ErrSizeNotFound},
	{services.ErrToppingNotFound, http.StatusNotFound, models.ErrToppingNotFound},
	{services.ErrSaleNotFound, http.StatusNotFound, models.ErrSaleNotFound},
	{services.ErrClientNotFound, http.StatusNotFound, models.ErrNotFound},
	{services.ErrSaleAlreadyRecorded, http.StatusConflict, models.ErrSaleAlreadyExists},
	{services.ErrInvalidAmount, http.StatusBadRequest, models.ErrInvalidAmount},
	{services.ErrDuplicateTopping, http.StatusBadRequest, models.ErrValidationFailed},
	{services.ErrInvalidCustomer, http.StatusBadRequest, models.ErrValidationFailed},
}

// respondError writes the APIError matching err, or a 500
func respondError(ctx *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			ctx.JSON(m.status, models.NewAPIError(m.code, err.Error()))
			return
		}
	}
	log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
}

// uintParam parses a positive numeric path parameter, writing a 400 on failure
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || value == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid "+name+" format"))
		return 0, false
	}
	return uint(value), true
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid request body",
		map[string]interface{}{"error": err.Error()}))
}
