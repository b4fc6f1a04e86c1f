package auth

import (
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel sets the level of the token issuing logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// OAuthService issues back-office access tokens with the client credentials grant
type OAuthService struct {
	server *server.Server
}

func NewOAuthService(db *gorm.DB, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()

	// Access tokens are HS512 JWTs carrying the staff id and role
	manager.MapAccessGenerate(NewStaffJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS512, services.NewStaffService(db)))

	manager.MustTokenStorage(NewGormTokenStore(db), nil)
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{server: srv}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}
