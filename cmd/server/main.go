package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "coachhub/docs" // swagger docs

	"coachhub/internal/auth"
	"coachhub/internal/cache"
	"coachhub/internal/config"
	"coachhub/internal/db"
	"coachhub/internal/handler"
	"coachhub/internal/model"
	"coachhub/internal/repository"
	"coachhub/internal/router"
	"coachhub/internal/service"
)

// @title CoachHub API
// @version 1.0
// @description Coaching marketplace API with signup/login, skill and credit package catalogs, and coach administration.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, continuing with environment")
	}

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Course{},
			&model.Coach{},
			&model.CreditPackage{},
			&model.Skill{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Coach{},
		&model.Skill{},
		&model.CreditPackage{},
		&model.Course{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	coachRepo := repository.NewCoachRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	packageRepo := repository.NewCreditPackageRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpires)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	adminService := service.NewAdminService(userRepo, coachRepo, courseRepo)
	skillService := service.NewSkillService(skillRepo, cacheClient)
	packageService := service.NewCreditPackageService(packageRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	skillHandler := handler.NewSkillHandler(skillService)
	packageHandler := handler.NewCreditPackageHandler(packageService)

	// Register routes
	router.Register(
		e,
		jwtService,
		userRepo,
		userHandler,
		adminHandler,
		skillHandler,
		packageHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
