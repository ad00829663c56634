package main

import (
	"errors"
	"log"
	"os"

	"chatlog-admin-be/internal/config"
	"chatlog-admin-be/internal/model"
	"chatlog-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the initial admin panel account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Safe to run repeatedly: an existing account is left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("Error: ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	fullName := os.Getenv("ADMIN_FULL_NAME")
	if fullName == "" {
		fullName = "Administrator"
	}

	dsn := config.ResolveDSN(os.LookupEnv)
	if dsn == "" {
		log.Fatal("Error: no database connection string set (DB_CONNECTION_STRING, DATABASE_URL or POSTGRES_URL)")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var existing model.AdminUser
	err = db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		color.Yellow("Admin account %s already exists, nothing to do.", email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Error: Failed to check existing admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}

	admin := model.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create admin: %v", err)
	}

	color.Green("Admin account %s created.", email)
}
