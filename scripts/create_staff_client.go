package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/config"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Provisions a staff member and an OAuth client for the back office.
// Uses the same DB_* environment as the server.
func main() {
	role := flag.String("role", models.RoleAdmin, "Staff role (admin or staff)")
	email := flag.String("email", "", "Staff email, defaults to <role>@pizza.local")
	name := flag.String("name", "", "Client name, defaults to '<role> till'")
	scopes := flag.String("scopes", "orders sales", "Space-separated client scopes")
	flag.Parse()

	if *role != models.RoleAdmin && *role != models.RoleStaff {
		log.Fatalf("Unknown role %q", *role)
	}
	if *email == "" {
		*email = fmt.Sprintf("%s@pizza.local", *role)
	}
	if *name == "" {
		*name = fmt.Sprintf("%s till", *role)
	}

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	db, err := database.InitDatabase(conf.Database())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	ctx := context.Background()
	staff, err := findOrCreateStaff(ctx, services.NewStaffService(db), *email, *role)
	if err != nil {
		log.WithError(err).Fatal("Failed to provision staff member")
	}

	client, secret, err := services.NewClientService(db).CreateClient(ctx, staff.ID, *name, *scopes)
	if err != nil {
		log.WithError(err).Fatal("Failed to create client")
	}

	fmt.Printf("OAuth client created for %s (role '%s')\n", staff.Email, staff.Role)
	fmt.Printf("Client ID: %s\n", client.ID)
	fmt.Printf("Client Secret: %s\n", secret)
	fmt.Println("\nThe secret is not stored in plain text, keep it now. Request a token with:")
	fmt.Printf("curl -X POST http://%s:%d/oauth/token \\\n", conf.Host, conf.Port)
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", client.ID)
	fmt.Printf("  -d 'client_secret=%s'\n", secret)
}

func findOrCreateStaff(ctx context.Context, staffService services.StaffService, email, role string) (*models.Staff, error) {
	staff, err := staffService.GetStaffByEmail(ctx, email)
	if err == nil {
		fmt.Printf("Found existing staff member: %s (ID: %d, Role: %s)\n", staff.Email, staff.ID, staff.Role)
		return staff, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	staff = &models.Staff{Email: email, Name: fmt.Sprintf("%s member", role), Role: role}
	if err := staffService.CreateStaff(ctx, staff); err != nil {
		return nil, err
	}
	fmt.Printf("Created staff member: %s (ID: %d, Role: %s)\n", staff.Email, staff.ID, staff.Role)
	return staff, nil
}
