package auth

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
)

// TokenResponse is the body of a successful token request
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// HandleToken handles the token endpoint
// @Summary Token Endpoint
// @Description Obtain a back-office access token with the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type, must be client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope, defaults to the client's scopes"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if grantType := c.PostForm("grant_type"); grantType != oauth2.ClientCredentials.String() {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType,
			"Only the client_credentials grant is supported"))
		return
	}

	clientID := c.PostForm("client_id")
	clientSecret := c.PostForm("client_secret")
	if clientID == "" || clientSecret == "" {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest,
			"client_id and client_secret are required"))
		return
	}

	scope := c.PostForm("scope")
	if scope == "" {
		if info, err := o.server.Manager.GetClient(c.Request.Context(), clientID); err == nil {
			if client, ok := info.(*models.OAuthClient); ok {
				scope = client.Scopes
			}
		}
	}

	// the manager checks the secret through OAuthClient.VerifyPassword
	ti, err := o.server.Manager.GenerateAccessToken(c.Request.Context(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        scope,
		Request:      c.Request,
	})
	if err != nil {
		if errors.Is(err, oauth2errors.ErrInvalidClient) {
			log.WithField("client_id", clientID).Warn("Rejected token request")
			c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient,
				"Client authentication failed"))
			return
		}
		log.WithError(err).WithField("client_id", clientID).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewOAuth2Error(models.ErrServerError,
			"Token generation failed"))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: ti.GetAccess(),
		TokenType:   "Bearer",
		ExpiresIn:   int64(ti.GetAccessExpiresIn().Seconds()),
		Scope:       ti.GetScope(),
	})
}
