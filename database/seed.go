package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/config"
	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/auth"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}
	if getEnv.SEED_DEMO_DATA {
		if err := s.SeedDemoCourses(); err != nil {
			return fmt.Errorf("failed to seed demo courses: %w", err)
		}
	}

	log.Println("Database seeding completed.")
	return nil
}

// SeedAdminUser guarantees the seed admin account exists. The panel is
// unusable without it, so unlike other seeds this one always runs.
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("seed = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed admin already exists, skipping...")
		return nil
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	password := getEnv.ADMIN_PASSWORD
	if password == "" {
		password = "changeme8"
		log.Println("WARNING: ADMIN_PASSWORD not set; seeding admin with the default password. Change it immediately.")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     getEnv.ADMIN_USERNAME,
		PasswordHash: passwordHash,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
		Seed:         true,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %q", admin.Username)
	return nil
}

// SeedDemoCourses loads a small course catalog for demo installs
func (s *Seeder) SeedDemoCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Courses already present, skipping demo catalog...")
		return nil
	}

	courses := []model.Course{
		{Name: "Tally", Fee: 5000},
		{Name: "DCA", Fee: 8000},
		{Name: "Typing", Fee: 2500},
		{Name: "Spoken English", Fee: 4000},
	}

	return s.db.Create(&courses).Error
}
