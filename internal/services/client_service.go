package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientService manages the OAuth clients back-office devices use
type ClientService interface {
	// CreateClient registers a client for the staff member and returns it
	// with the plain secret, which is only available at creation time
	CreateClient(ctx context.Context, staffID uint, name, scopes string) (*models.OAuthClient, string, error)
	GetClientsByStaffID(ctx context.Context, staffID uint) ([]models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, staffID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, staffID uint, name, scopes string) (*models.OAuthClient, string, error) {
	secret := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash client secret: %w", err)
	}

	client := &models.OAuthClient{
		ID:      uuid.New().String(),
		Secret:  string(hashed),
		Name:    name,
		StaffID: staffID,
		Scopes:  scopes,
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, "", err
	}
	return client, secret, nil
}

func (s *clientService) GetClientsByStaffID(ctx context.Context, staffID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("staff_id = ?", staffID).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, staffID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND staff_id = ?", clientID, staffID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
