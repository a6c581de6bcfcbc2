package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// GormStore is a Store backed by a relational database through GORM
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on top of an open database handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Transaction runs fn inside a database transaction
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormTx{db: tx})
	})
}

// Ping checks the database connection
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// DB returns the database instance
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

type gormTx struct {
	db *gorm.DB
}

func (t gormTx) Employees() EmployeeRepository {
	return &employeeRepository{db: t.db}
}

func (t gormTx) Projects() ProjectRepository {
	return &projectRepository{db: t.db}
}

func (t gormTx) Assignments() AssignmentRepository {
	return &assignmentRepository{db: t.db}
}

// translateError maps GORM errors onto the repository sentinels.
// Duplicate and foreign key errors require gorm.Config.TranslateError.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}

	// SQLite constraint codes the dialect does not translate
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	default:
		return err
	}
}

// containsClause builds a case-sensitive substring predicate for column.
// LIKE is case-insensitive on SQLite, so position functions are used instead.
func containsClause(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return "strpos(" + column + ", ?) > 0"
	}
	return "instr(" + column + ", ?) > 0"
}
