package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// StaffLookup resolves the staff member a client acts for
type StaffLookup interface {
	GetStaffByID(ctx context.Context, id uint) (*models.Staff, error)
}

// StaffJWTAccessGenerate signs access tokens whose claims carry the staff id
// (uid) and the staff role looked up at issue time
type StaffJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	Staff        StaffLookup
}

func NewStaffJWTAccessGenerate(key []byte, method jwt.SigningMethod, staff StaffLookup) *StaffJWTAccessGenerate {
	return &StaffJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		Staff:        staff,
	}
}

// Token implements oauth2.AccessGenerate
func (g *StaffJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud": data.Client.GetID(),
		"iat": createdAt.Unix(),
		"exp": createdAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}

	// client_credentials has no resource owner, the client's staff member stands in
	staffID := data.UserID
	if staffID == "" {
		staffID = data.Client.GetUserID()
	}
	if staffID == "" {
		return "", "", fmt.Errorf("cannot generate token: client %s has no staff member", data.Client.GetID())
	}
	claims["uid"] = staffID
	if data.TokenInfo.GetUserID() == "" {
		data.TokenInfo.SetUserID(staffID)
	}

	role, err := g.staffRole(ctx, staffID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch staff role: %w", err)
	}
	claims["role"] = role

	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"aud": data.Client.GetID(),
			"uid": staffID,
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

func (g *StaffJWTAccessGenerate) staffRole(ctx context.Context, staffIDStr string) (string, error) {
	staffID, err := strconv.ParseUint(staffIDStr, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid staff ID format: %w", err)
	}

	staff, err := g.Staff.GetStaffByID(ctx, uint(staffID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("staff member %d not found", staffID)
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	if staff.Role == "" {
		return models.RoleStaff, nil
	}
	return staff.Role, nil
}
