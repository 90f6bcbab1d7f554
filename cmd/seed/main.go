// Command seed runs the database seeders without starting the API server.
// Useful for provisioning a fresh install or recreating the admin account.
package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/config"
	"github.com/coachdesk/coachdesk-api/database"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatalf("failed to load env: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("failed to get GORM DB instance")
	}

	if err := database.NewSeeder(db).SeedAll(); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("Seeding finished")
}
