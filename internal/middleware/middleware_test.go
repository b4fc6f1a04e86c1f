package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"aud":  "till",
		"uid":  "7",
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	protected := router.Group("/protected", OAuth2Auth(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"staff_id": c.GetUint(StaffIDKey),
			"role":     c.GetString(StaffRoleKey),
			"client":   c.GetString(ClientIDKey),
		})
	})
	protected.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOAuth2AuthSetsClaims(t *testing.T) {
	router := setupRouter()
	token := signToken(t, jwt.SigningMethodHS512, validClaims(models.RoleStaff))

	w := get(router, "/protected/whoami", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["staff_id"])
	assert.Equal(t, models.RoleStaff, body["role"])
	assert.Equal(t, "till", body["client"])
}

func TestOAuth2AuthRejects(t *testing.T) {
	router := setupRouter()

	expired := validClaims(models.RoleAdmin)
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	unknownRole := validClaims("customer")

	missingUID := validClaims(models.RoleAdmin)
	delete(missingUID, "uid")

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(models.RoleAdmin)).SignedString([]byte("other"))
	require.NoError(t, err)

	testCases := []struct {
		name      string
		header    string
		errorCode string
	}{
		{name: "missing header", header: "", errorCode: models.ErrAuthRequired},
		{name: "basic scheme", header: "Basic abc", errorCode: models.ErrInvalidRequest},
		{name: "garbage token", header: "Bearer not-a-jwt", errorCode: models.ErrInvalidToken},
		{name: "expired", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, expired), errorCode: models.ErrInvalidToken},
		{name: "unknown role", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, unknownRole), errorCode: models.ErrInvalidToken},
		{name: "missing uid", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, missingUID), errorCode: models.ErrInvalidToken},
		{name: "wrong key", header: "Bearer " + otherKey, errorCode: models.ErrInvalidToken},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/protected/whoami", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body models.OAuth2Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.errorCode, body.Error)
		})
	}
}

func TestRequireRole(t *testing.T) {
	router := setupRouter()

	w := get(router, "/protected/admin", "Bearer "+signToken(t, jwt.SigningMethodHS512, validClaims(models.RoleAdmin)))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = get(router, "/protected/admin", "Bearer "+signToken(t, jwt.SigningMethodHS512, validClaims(models.RoleStaff)))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ErrForbidden, body.Code)
	assert.Equal(t, models.RoleStaff, body.Details["staff_role"])
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := get(router, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
