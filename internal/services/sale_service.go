package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/events"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// publishTimeout bounds how long a checkout waits on the event broker
var publishTimeout = 2 * time.Second

// SaleService records checkout snapshots
type SaleService interface {
	// Checkout freezes the current order total into a sale.
	// An order has at most one sale; a second checkout fails with ErrSaleAlreadyRecorded.
	Checkout(ctx context.Context, orderID uint) (*models.Sale, error)
	// GetSale returns the sale recorded for the order
	GetSale(ctx context.Context, orderID uint) (*models.Sale, error)
	// ListSales returns every sale, newest first
	ListSales(ctx context.Context) ([]models.Sale, error)
	// Receipt renders a PNG QR code pointing at the order's sale
	Receipt(ctx context.Context, orderID uint) ([]byte, error)
}

type saleService struct {
	db        *gorm.DB
	orders    *repository.OrderRepository
	sales     *repository.SaleRepository
	publisher events.SalePublisher
	qr        QRGenerator
}

// NewSaleService creates a new instance of SaleService
func NewSaleService(db *gorm.DB, publisher events.SalePublisher, qr QRGenerator) SaleService {
	return &saleService{
		db:        db,
		orders:    repository.NewOrderRepository(db),
		sales:     repository.NewSaleRepository(db),
		publisher: publisher,
		qr:        qr,
	}
}

func (s *saleService) Checkout(ctx context.Context, orderID uint) (*models.Sale, error) {
	var (
		sale  models.Sale
		order *models.Order
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sales := s.sales.WithTx(tx)

		var err error
		order, err = s.orders.WithTx(tx).GetOrderWithPizzas(ctx, orderID)
		if err != nil {
			return notFound(err, ErrOrderNotFound)
		}

		exists, err := sales.ExistsForOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if exists {
			return ErrSaleAlreadyRecorded
		}

		sale = models.Sale{OrderID: orderID, Total: order.Total()}
		if err := sales.CreateSale(ctx, &sale); err != nil {
			// the unique index on order_id catches a concurrent checkout
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSaleAlreadyRecorded
			}
			return fmt.Errorf("create sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"order_id": orderID,
		"sale_id":  sale.ID,
		"total":    sale.Total.StringFixed(models.TotalPlaces),
	}).Info("Sale recorded")

	event := events.SaleRecorded{
		SaleID:       sale.ID,
		OrderID:      orderID,
		CustomerName: order.FullName(),
		Total:        sale.Total,
		RecordedAt:   sale.CreatedAt,
	}
	// the sale is committed, a client disconnect must not abort the publish
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishSaleRecorded(publishCtx, event); err != nil {
		log.WithError(err).WithField("sale_id", sale.ID).Error("Failed to publish sale event")
	}
	return &sale, nil
}

func (s *saleService) GetSale(ctx context.Context, orderID uint) (*models.Sale, error) {
	sale, err := s.sales.GetSaleForOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrSaleNotFound)
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]models.Sale, error) {
	return s.sales.ListSales(ctx)
}

func (s *saleService) Receipt(ctx context.Context, orderID uint) ([]byte, error) {
	sale, err := s.GetSale(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(sale)
}
