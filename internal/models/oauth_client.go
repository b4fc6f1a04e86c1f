package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is a back-office client (kitchen screen, till, reporting job)
// authenticating with the client credentials grant. Secret holds a bcrypt hash.
type OAuthClient struct {
	ID        string `gorm:"primaryKey"`
	Secret    string `gorm:"not null"`
	Name      string
	Domain    string
	StaffID   uint   // Staff member the client acts for
	Scopes    string // Space-separated list of allowed scopes
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }

// GetUserID returns the owning staff id as the OAuth user id
func (c *OAuthClient) GetUserID() string {
	if c.StaffID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.StaffID), 10)
}

// VerifyPassword compares a plain secret against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
