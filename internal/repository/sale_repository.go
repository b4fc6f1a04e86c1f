package repository

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// SaleRepository persists checkout snapshots
type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *SaleRepository) WithTx(tx *gorm.DB) *SaleRepository {
	return &SaleRepository{db: tx}
}

func (r *SaleRepository) CreateSale(ctx context.Context, s *models.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SaleRepository) ExistsForOrder(ctx context.Context, orderID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Sale{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SaleRepository) GetSaleForOrder(ctx context.Context, orderID uint) (*models.Sale, error) {
	var s models.Sale
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSales returns every sale, newest first
func (r *SaleRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
