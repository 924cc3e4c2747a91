package db

import (
	"fmt"
	"log"

	"github.com/linskybing/naming-go/config"
	"github.com/linskybing/naming-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('submitter', 'reviewer', 'admin'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func createIndexes() {
	indexes := []string{
		// Backstop for the single-active-configuration invariant; the
		// activation transaction is the primary guard.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_form_configurations_active
		 ON form_configurations (is_active) WHERE is_active AND deleted_at IS NULL;`,
	}

	for _, idx := range indexes {
		if err := DB.Exec(idx).Error; err != nil {
			log.Printf("Failed to create index: %v", err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	createIndexes()

	log.Println("Database connected and migrated")
}

// Migrate runs AutoMigrate for every entity. Shared with the test harness.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.FormConfiguration{},
		&models.NamingRequest{},
		&models.ApprovedName{},
		&models.RequestAudit{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
