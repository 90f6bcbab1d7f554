package app

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/api"
	"github.com/coachdesk/coachdesk-api/config"
	"github.com/coachdesk/coachdesk-api/database"
	"github.com/coachdesk/coachdesk-api/router"
	"github.com/coachdesk/coachdesk-api/services/cron"
)

func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		log.Println("Check whether Postgres is running and DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Failed to run database migrations")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// The seed admin must exist before the first login
	if err := database.NewSeeder(db).SeedAll(); err != nil {
		return err
	}

	// Background jobs
	var cronManager *cron.CronManager
	if getEnv.CRON_ENABLED {
		cronManager = cron.NewCronManager(db)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: failed to start cron jobs: %v", err)
			cronManager = nil
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Setup Routes
	router.SetupRoutes(app, store)

	return server.Run()
}
