package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(sale *models.Sale) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the sale of an order
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(sale *models.Sale) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/v1/public/orders/%d/sale?total=%s",
		g.BaseURL, sale.OrderID, sale.Total.StringFixed(models.TotalPlaces))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
