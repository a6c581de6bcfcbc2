package main

import (
	"log"

	"github.com/proyectos-api/config"
	"github.com/proyectos-api/database"
)

func main() {
	log.Println("Starting database migration...")

	config.LoadEnv()

	sourceDriver := config.GetEnv("SOURCE_DB_DRIVER", config.DriverPostgres)
	sourceDBURL := config.GetEnv("SOURCE_DATABASE_URL", "")
	if sourceDBURL == "" {
		log.Fatal("SOURCE_DATABASE_URL is required")
	}

	targetDriver := config.GetEnv("TARGET_DB_DRIVER", config.DriverPostgres)
	targetDBURL := config.GetEnv("TARGET_DATABASE_URL", "")
	if targetDBURL == "" {
		log.Fatal("TARGET_DATABASE_URL is required")
	}

	// Connect to source database
	sourceDB, err := database.NewDBConnection("source", sourceDriver, sourceDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to source database: %v", err)
	}

	// Connect to target database
	targetDB, err := database.NewDBConnection("target", targetDriver, targetDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to target database: %v", err)
	}

	// Ensure target database schema is migrated
	if err := targetDB.Migrate(); err != nil {
		log.Fatalf("Failed to migrate target database schema: %v", err)
	}

	// Migrate data from source to target
	if err := database.MigrateDataBetweenDatabases(sourceDB, targetDB); err != nil {
		log.Fatalf("Data migration failed: %v", err)
	}

	log.Println("Database migration completed successfully!")
}
