package main

import (
	"context"
	"fmt"
	"net/http"

	_ "github.com/franciscosanchezn/gin-pizza-orders/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-pizza-orders/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/config"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/events"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/routes"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Orders API
// @version 1.0
// @description Orders, pizzas with topping amounts and checkout sales for a pizza shop
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	loadDotenvFile()

	setUpLogger()

	configuration := loadConfig()
	applyLogLevel(configuration.Level())
	if !configuration.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := setupDatabase(configuration)

	publisher := setupPublisher(configuration)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.WithError(err).Warn("Failed to close sale publisher")
		}
	}()

	router := routes.NewRouter(routes.Dependencies{
		Catalog:   services.NewCatalogService(db, configuration.IsDevelopment()),
		Orders:    services.NewOrderService(db),
		Sales:     services.NewSaleService(db, publisher, services.DefaultQRGenerator{BaseURL: configuration.ReceiptBaseURL}),
		Clients:   services.NewClientService(db),
		OAuth:     auth.NewOAuthService(db, configuration.JWTSecret),
		JWTSecret: configuration.JWTSecret,
	})
	handler := routes.WithCORS(router, configuration.CORSAllowedOrigins)

	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.WithError(err).Error("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", config.EnvDevelopment)
	log.SetLevel(config.LevelForEnvironment(environment))
}

// applyLogLevel sets the configured level on the standard logger and on
// every package logger
func applyLogLevel(level log.Level) {
	log.SetLevel(level)
	for _, setLevel := range []func(log.Level){
		config.SetLogLevel,
		database.SetLogLevel,
		events.SetLogLevel,
		services.SetLogLevel,
		auth.SetLogLevel,
		controllers.SetLogLevel,
	} {
		setLevel(level)
	}
	log.WithField("level", level.String()).Info("Log level applied")
}

func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates the schema and seeds the reference data.
// Seeding only inserts the rows that are missing so restarts are safe.
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	report, err := services.NewCatalogService(db, conf.IsDevelopment()).Bootstrap(context.Background())
	checkPanicErr(err)
	if report.AlreadySeeded {
		log.Info("Database already seeded with reference data")
	}
	return db
}

// setupPublisher returns the Kafka publisher when a broker is configured,
// otherwise sale events are only logged
func setupPublisher(conf *config.Config) events.SalePublisher {
	if conf.KafkaBroker == "" {
		log.Info("KAFKA_BROKER not set, sale events will only be logged")
		return events.LogPublisher{}
	}
	log.WithFields(log.Fields{"broker": conf.KafkaBroker, "topic": conf.KafkaSalesTopic}).Info("Publishing sale events to Kafka")
	return events.NewKafkaPublisher(events.NewKafkaWriter(conf.KafkaBroker, conf.KafkaSalesTopic))
}
