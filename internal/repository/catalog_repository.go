package repository

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository reads and seeds the size and topping reference rows
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *CatalogRepository) WithTx(tx *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: tx}
}

func (r *CatalogRepository) ListSizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := r.db.WithContext(ctx).Order("price, id").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *CatalogRepository) ListToppings(ctx context.Context) ([]models.Topping, error) {
	var toppings []models.Topping
	if err := r.db.WithContext(ctx).Order("name").Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

func (r *CatalogRepository) GetSize(ctx context.Context, id uint) (*models.Size, error) {
	var size models.Size
	if err := r.db.WithContext(ctx).First(&size, id).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *CatalogRepository) GetTopping(ctx context.Context, id uint) (*models.Topping, error) {
	var topping models.Topping
	if err := r.db.WithContext(ctx).First(&topping, id).Error; err != nil {
		return nil, err
	}
	return &topping, nil
}

// EnsureSize inserts the size unless a row with the same name exists.
// On return size holds the stored row; created reports whether it was inserted.
func (r *CatalogRepository) EnsureSize(ctx context.Context, size *models.Size) (bool, error) {
	var existing models.Size
	res := r.db.WithContext(ctx).Where("name = ?", size.Name).Limit(1).Find(&existing)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		*size = existing
		return false, nil
	}
	if err := r.db.WithContext(ctx).Create(size).Error; err != nil {
		return false, err
	}
	return true, nil
}

// EnsureTopping is EnsureSize for toppings
func (r *CatalogRepository) EnsureTopping(ctx context.Context, topping *models.Topping) (bool, error) {
	var existing models.Topping
	res := r.db.WithContext(ctx).Where("name = ?", topping.Name).Limit(1).Find(&existing)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		*topping = existing
		return false, nil
	}
	if err := r.db.WithContext(ctx).Create(topping).Error; err != nil {
		return false, err
	}
	return true, nil
}
