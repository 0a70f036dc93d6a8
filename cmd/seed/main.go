// Command seed bootstraps a fresh database with the default departments
// and an admin login. Safe to re-run: existing rows are left alone.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/humbingo/hrms-backend-go/internal/config"
	"github.com/humbingo/hrms-backend-go/internal/domain/user"
	"github.com/humbingo/hrms-backend-go/internal/fixtures"
	"github.com/humbingo/hrms-backend-go/internal/pkg/database"
	"github.com/humbingo/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	departmentRepo := postgresql.NewDepartmentRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	for _, dept := range fixtures.DefaultDepartments() {
		existing, err := departmentRepo.GetByName(ctx, dept.Name)
		if err != nil {
			log.Fatal("Failed to look up department: ", err)
		}
		if existing != nil {
			continue
		}
		created, err := departmentRepo.Create(ctx, dept)
		if err != nil {
			log.Fatal("Failed to seed department: ", err)
		}
		fmt.Printf("Seeded department %q (%s)\n", created.Name, created.ID)
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", fixtures.DefaultAdminEmail)
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	existing, err := userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal("Failed to look up admin user: ", err)
	}
	if existing != nil {
		fmt.Printf("Admin %s already exists, skipping\n", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password: ", err)
	}

	admin, err := userRepo.Create(ctx, user.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	if err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}
	fmt.Printf("Seeded admin %s (%s)\n", admin.Email, admin.ID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
