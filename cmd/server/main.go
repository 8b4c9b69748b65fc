package main

import (
	"context"
	"log"
	"net/http"

	_ "notesapi/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"notesapi/internal/cache"
	"notesapi/internal/config"
	"notesapi/internal/db"
	"notesapi/internal/handler"
	"notesapi/internal/model"
	"notesapi/internal/repository"
	"notesapi/internal/router"
	"notesapi/internal/seed"
	"notesapi/internal/service"
	"notesapi/internal/session"
)

// @title Notes API
// @version 1.0
// @description Categorized note-taking API with session-cookie authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Note{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)

	// Seed fixed categories. A failure here is logged but does not stop
	// startup; the rows can be created later with cmd/seed.
	ctx := context.Background()
	if created, err := seed.Categories(ctx, categoryRepo); err != nil {
		log.Printf("seed categories: %v", err)
	} else if created > 0 {
		log.Printf("seeded %d categories", created)
	}

	// The demo account is a development convenience. Unlike category
	// seeding, a failure here is fatal: a deployment that asked for the
	// account should not come up without usable credentials.
	if cfg.SeedDemoUser {
		if err := seed.EnsureDemoUser(ctx, userRepo); err != nil {
			log.Fatalf("ensure demo user: %v", err)
		}
	}

	sessionStore := session.NewStore(cacheClient, cfg.SessionTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, noteRepo)
	noteService := service.NewNoteService(noteRepo, categoryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessionStore, cfg.SessionTTL)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	noteHandler := handler.NewNoteHandler(noteService)

	// Register routes
	router.Register(e, sessionStore, authHandler, categoryHandler, noteHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
