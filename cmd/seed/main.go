package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"notesapi/internal/config"
	"notesapi/internal/db"
	"notesapi/internal/model"
	"notesapi/internal/repository"
	"notesapi/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Category{}, &model.Note{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	categoryRepo := repository.NewCategoryRepository(gormDB)
	ctx := context.Background()

	created, err := seed.Categories(ctx, categoryRepo)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	total := len(seed.DefaultCategories())

	if cfg.SeedDemoUser {
		userRepo := repository.NewUserRepository(gormDB)
		if err := seed.EnsureDemoUser(ctx, userRepo); err != nil {
			log.Fatalf("Failed to ensure demo user: %v", err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New categories created: %d", created)
	log.Printf("  - Already existing: %d", total-created)
}
