package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

type StaffService interface {
	CreateStaff(ctx context.Context, staff *models.Staff) error
	GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetStaffByID(ctx context.Context, id uint) (*models.Staff, error)
}

type staffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) StaffService {
	return &staffService{db: db}
}

func (s *staffService) CreateStaff(ctx context.Context, staff *models.Staff) error {
	var existing models.Staff
	err := s.db.WithContext(ctx).Where("email = ?", staff.Email).First(&existing).Error
	if err == nil {
		return ErrStaffExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(staff).Error
}

func (s *staffService) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}
