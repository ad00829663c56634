package main

import (
	"log"
	"os"

	"chatlog-admin-be/internal/config"
	"chatlog-admin-be/internal/model"
	"chatlog-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := config.ResolveDSN(os.LookupEnv)
	if dsn == "" {
		log.Fatal("Error: no database connection string set (DB_CONNECTION_STRING, DATABASE_URL or POSTGRES_URL)")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do)
	color.Cyan("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'chat_status') THEN CREATE TYPE chat_status AS ENUM ('new', 'contacted', 'in_progress', 'completed', 'archived'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'chat_sender') THEN CREATE TYPE chat_sender AS ENUM ('bot', 'user'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 3.5 Cleanup: earlier schema versions allowed orphaned messages with a
	// NULL chat_id; drop them before the NOT NULL constraint lands.
	if err := db.Exec(`DO $$ BEGIN IF to_regclass('chat_messages') IS NOT NULL THEN DELETE FROM chat_messages WHERE chat_id IS NULL; END IF; END $$;`).Error; err != nil {
		log.Printf("Warn: Failed to clean orphaned messages: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Chat{},
		&model.ChatMessage{},
		&model.BlogPost{},
		&model.AdminUser{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Green("Migration complete.")
}
