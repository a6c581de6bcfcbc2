package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/proyectos-api/config"
	"github.com/proyectos-api/database"
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"github.com/proyectos-api/repositories"
)

func newSQLiteStore(t *testing.T) *repositories.GormStore {
	t.Helper()
	db, err := database.Open(&config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    ":memory:",
		DBLogLevel:     "silent",
		MaxIdleConns:   1,
		MaxOpenConns:   1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repositories.NewGormStore(db)
}

// stores returns every Store implementation so behaviour is checked on both
func stores(t *testing.T) map[string]repositories.Store {
	return map[string]repositories.Store{
		"memory": repositories.NewMemoryStore(),
		"sqlite": newSQLiteStore(t),
	}
}

func employee(name, specialty string) models.Employee {
	return models.Employee{Name: name, Specialty: specialty, Salary: 1000, Status: models.StatusActive}
}

func project(name string, managerID uint, budget float64) models.Project {
	return models.Project{
		Name:        name,
		Description: "A valid description here",
		Budget:      budget,
		Status:      models.StatusActive,
		ManagerID:   managerID,
	}
}

func TestStoreSpecialtyFilterIsCaseSensitive(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			err := store.Transaction(ctx, func(tx repositories.Tx) error {
				for _, e := range []models.Employee{employee("Ana", "Backend"), employee("Luis", "backend")} {
					if _, err := tx.Employees().Create(e); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				t.Fatalf("seed: %v", err)
			}

			err = store.Transaction(ctx, func(tx repositories.Tx) error {
				got, err := tx.Employees().FindAll(dto.EmployeeFilter{Specialty: "Back"})
				if err != nil {
					return err
				}
				if len(got) != 1 || got[0].Name != "Ana" {
					t.Errorf("FindAll = %+v, want only Ana", got)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("query: %v", err)
			}
		})
	}
}

func TestStoreProjectBudgetRange(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			err := store.Transaction(ctx, func(tx repositories.Tx) error {
				ana, err := tx.Employees().Create(employee("Ana", "Backend"))
				if err != nil {
					return err
				}
				for i, n := range []string{"Alpha", "Beta", "Gamma"} {
					if _, err := tx.Projects().Create(project(n, ana.ID, float64(i+1)*100)); err != nil {
						return err
					}
				}

				unbounded, err := tx.Projects().FindAll(dto.NewProjectFilter())
				if err != nil {
					return err
				}
				if len(unbounded) != 3 {
					t.Errorf("unbounded range returned %d projects, want 3", len(unbounded))
				}

				filter := dto.NewProjectFilter()
				filter.BudgetMin, filter.BudgetMax = 200, 300
				ranged, err := tx.Projects().FindAll(filter)
				if err != nil {
					return err
				}
				if len(ranged) != 2 || ranged[0].Name != "Beta" || ranged[1].Name != "Gamma" {
					t.Errorf("inclusive range = %+v, want Beta and Gamma", ranged)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("transaction: %v", err)
			}
		})
	}
}

func TestStoreDuplicateProjectName(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Transaction(context.Background(), func(tx repositories.Tx) error {
				ana, err := tx.Employees().Create(employee("Ana", "Backend"))
				if err != nil {
					return err
				}
				if _, err := tx.Projects().Create(project("Alpha", ana.ID, 100)); err != nil {
					return err
				}
				_, err = tx.Projects().Create(project("Alpha", ana.ID, 200))
				return err
			})
			if !errors.Is(err, repositories.ErrDuplicateKey) {
				t.Fatalf("expected ErrDuplicateKey, got %v", err)
			}
		})
	}
}

func TestStoreRollsBackOnError(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			boom := errors.New("boom")

			err := store.Transaction(ctx, func(tx repositories.Tx) error {
				if _, err := tx.Employees().Create(employee("Ana", "Backend")); err != nil {
					return err
				}
				return boom
			})
			if !errors.Is(err, boom) {
				t.Fatalf("expected boom, got %v", err)
			}

			err = store.Transaction(ctx, func(tx repositories.Tx) error {
				all, err := tx.Employees().FindAll(dto.EmployeeFilter{})
				if err != nil {
					return err
				}
				if len(all) != 0 {
					t.Errorf("rolled back transaction left %d employees", len(all))
				}
				return nil
			})
			if err != nil {
				t.Fatalf("query: %v", err)
			}
		})
	}
}

func TestStoreAssignmentLifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Transaction(context.Background(), func(tx repositories.Tx) error {
				ana, err := tx.Employees().Create(employee("Ana", "Backend"))
				if err != nil {
					return err
				}
				luis, err := tx.Employees().Create(employee("Luis", "Frontend"))
				if err != nil {
					return err
				}
				alpha, err := tx.Projects().Create(project("Alpha", ana.ID, 100))
				if err != nil {
					return err
				}

				link := models.Assignment{EmployeeID: luis.ID, ProjectID: alpha.ID}
				if err := tx.Assignments().Create(link); err != nil {
					return err
				}
				if err := tx.Assignments().Create(link); !errors.Is(err, repositories.ErrDuplicateKey) {
					t.Errorf("second Create = %v, want ErrDuplicateKey", err)
				}

				exists, err := tx.Assignments().Exists(alpha.ID, luis.ID)
				if err != nil {
					return err
				}
				if !exists {
					t.Error("expected assignment to exist")
				}

				staff, err := tx.Assignments().FindEmployeesByProjectID(alpha.ID)
				if err != nil {
					return err
				}
				if len(staff) != 1 || staff[0].ID != luis.ID {
					t.Errorf("staff = %+v, want Luis", staff)
				}

				projects, err := tx.Assignments().FindProjectsByEmployeeID(luis.ID)
				if err != nil {
					return err
				}
				if len(projects) != 1 || projects[0].Name != "Alpha" {
					t.Errorf("projects = %+v, want Alpha", projects)
				}

				if err := tx.Assignments().Delete(alpha.ID, luis.ID); err != nil {
					return err
				}
				if err := tx.Assignments().Delete(alpha.ID, luis.ID); !errors.Is(err, repositories.ErrNotFound) {
					t.Errorf("second Delete = %v, want ErrNotFound", err)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("transaction: %v", err)
			}
		})
	}
}

func TestStoreDeleteProjectCascades(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Transaction(context.Background(), func(tx repositories.Tx) error {
				ana, err := tx.Employees().Create(employee("Ana", "Backend"))
				if err != nil {
					return err
				}
				alpha, err := tx.Projects().Create(project("Alpha", ana.ID, 100))
				if err != nil {
					return err
				}
				if err := tx.Assignments().Create(models.Assignment{EmployeeID: ana.ID, ProjectID: alpha.ID}); err != nil {
					return err
				}

				if err := tx.Projects().Delete(alpha.ID); err != nil {
					return err
				}

				projects, err := tx.Assignments().FindProjectsByEmployeeID(ana.ID)
				if err != nil {
					return err
				}
				if len(projects) != 0 {
					t.Errorf("assignments survived project delete: %+v", projects)
				}

				if err := tx.Projects().Delete(alpha.ID); !errors.Is(err, repositories.ErrNotFound) {
					t.Errorf("second Delete = %v, want ErrNotFound", err)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("transaction: %v", err)
			}
		})
	}
}

func TestStoreManagerDeleteIsRestricted(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Transaction(context.Background(), func(tx repositories.Tx) error {
				ana, err := tx.Employees().Create(employee("Ana", "Backend"))
				if err != nil {
					return err
				}
				if _, err := tx.Projects().Create(project("Alpha", ana.ID, 100)); err != nil {
					return err
				}
				return tx.Employees().Delete(ana.ID)
			})
			if !errors.Is(err, repositories.ErrForeignKey) {
				t.Fatalf("expected ErrForeignKey, got %v", err)
			}
		})
	}
}

func TestStoreFindByIDMissing(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Transaction(context.Background(), func(tx repositories.Tx) error {
				if _, err := tx.Employees().FindByID(42); !errors.Is(err, repositories.ErrNotFound) {
					t.Errorf("employee FindByID = %v, want ErrNotFound", err)
				}
				if _, err := tx.Projects().FindByID(42); !errors.Is(err, repositories.ErrNotFound) {
					t.Errorf("project FindByID = %v, want ErrNotFound", err)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("transaction: %v", err)
			}
		})
	}
}

func TestStorePing(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Ping(context.Background()); err != nil {
				t.Fatalf("Ping: %v", err)
			}
		})
	}
}
