package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/hirebridge/internal/config"
	"github.com/hirebridge/hirebridge/internal/database"
	"github.com/hirebridge/hirebridge/internal/handlers"
	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/repository/jsonfile"
	"github.com/hirebridge/hirebridge/internal/repository/postgres"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/store"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	// 2. Storage backend, picked once at startup
	var (
		jobsRepo  repository.Jobs
		appsRepo  repository.Applications
		usersRepo repository.Users
	)
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("unable to connect to postgres: %v", err)
		}
		jobsRepo = postgres.NewJobs(db)
		appsRepo = postgres.NewApplications(db)
		usersRepo = postgres.NewUsers(db)
		log.Println("Storage: postgres")
	case config.DriverJSONFile:
		st, err := store.New(cfg.DataDir)
		if err != nil {
			log.Fatalf("unable to initialise data directory: %v", err)
		}
		jobsRepo = jsonfile.NewJobs(st)
		appsRepo = jsonfile.NewApplications(st)
		usersRepo = jsonfile.NewUsers(st)
		log.Println("Storage: jsonfile at", cfg.DataDir)
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	// 3. Services
	jobService := services.NewJobService(jobsRepo, usersRepo)
	applicationService := services.NewApplicationService(appsRepo, jobsRepo)
	userService := services.NewUserService(usersRepo)

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	userHandler := handlers.NewUserHandler(userService)

	// 5. Router & CORS for the browser client
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	handlers.RegisterRoutes(r, jobHandler, applicationHandler, userHandler)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
