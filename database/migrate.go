package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/proyectos-api/config"
	"github.com/proyectos-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBConnection represents a database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	Driver string
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, driver, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	dialector, err := Dialector(driver, dbURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewLogger("warn"),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	if driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get SQL DB for %s: %w", name, err)
		}
		configureSQLite(sqlDB)
	}

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:     db,
		Name:   name,
		Driver: driver,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	if err := Migrate(c.DB); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases copies employees, projects and assignments from source to target
// in a single target transaction. Ids are preserved so manager and assignment references stay valid.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	return target.DB.Transaction(func(tx *gorm.DB) error {
		// Step 1: Migrate Employees
		var employees []models.Employee
		if err := source.DB.Order("id").Find(&employees).Error; err != nil {
			return fmt.Errorf("failed to fetch employees: %w", err)
		}
		log.Printf("Found %d employees to migrate", len(employees))
		if len(employees) > 0 {
			if err := tx.Create(&employees).Error; err != nil {
				return fmt.Errorf("failed to migrate employees: %w", err)
			}
		}

		// Step 2: Migrate Projects
		var projects []models.Project
		if err := source.DB.Order("id").Find(&projects).Error; err != nil {
			return fmt.Errorf("failed to fetch projects: %w", err)
		}
		log.Printf("Found %d projects to migrate", len(projects))
		if len(projects) > 0 {
			if err := tx.Omit(clause.Associations).Create(&projects).Error; err != nil {
				return fmt.Errorf("failed to migrate projects: %w", err)
			}
		}

		// Step 3: Migrate Assignments
		var assignments []models.Assignment
		if err := source.DB.Find(&assignments).Error; err != nil {
			return fmt.Errorf("failed to fetch assignments: %w", err)
		}
		log.Printf("Found %d assignments to migrate", len(assignments))
		if len(assignments) > 0 {
			if err := tx.Omit(clause.Associations).Create(&assignments).Error; err != nil {
				return fmt.Errorf("failed to migrate assignments: %w", err)
			}
		}

		if target.Driver == config.DriverPostgres {
			if err := resetSequences(tx); err != nil {
				return err
			}
		}

		log.Println("✅ Data migration completed successfully!")
		return nil
	})
}

// resetSequences moves the postgres id sequences past the copied ids
func resetSequences(tx *gorm.DB) error {
	for _, table := range []string{"empleado", "proyecto"} {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
			table, table,
		)
		if err := tx.Exec(query).Error; err != nil {
			return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
		}
	}
	return nil
}
