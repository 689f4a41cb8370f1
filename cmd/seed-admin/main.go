// Bootstrap script to create the initial scout admin account
// cmd/seed-admin/main.go
package main

import (
	"log"
	"os"

	"github.com/Truthtechno/LockerRoom-sub003/config"
	"github.com/Truthtechno/LockerRoom-sub003/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	// Initialize database
	config.InitDB()

	var existing models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", email).First(&existing).Error; err == nil {
		log.Printf("Admin account %s already exists, nothing to do\n", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		FirstName: "Locker",
		LastName:  "Admin",
		Email:     email,
		Password:  string(hashed),
		RoleID:    models.RoleScoutAdmin,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account:", err)
	}

	log.Printf("Created scout admin account %s (user_id=%d)\n", email, admin.UserID)
}
