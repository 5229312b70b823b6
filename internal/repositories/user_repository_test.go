package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/boomchecker/users-api/internal/database"
	"github.com/boomchecker/users-api/internal/models"
	"github.com/boomchecker/users-api/internal/validators"
	"gorm.io/gorm"
)

// repositoryFactories builds every UserRepository backend for the shared tests
func repositoryFactories() map[string]func(t *testing.T) UserRepository {
	return map[string]func(t *testing.T) UserRepository{
		"memory": func(t *testing.T) UserRepository {
			return NewMemoryUserRepository()
		},
		"gorm": func(t *testing.T) UserRepository {
			return NewGormUserRepository(setupTestDB(t))
		},
	}
}

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDB(database.TestConfig())
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// TestUserRepository_SaveGeneratesID tests that saving without an id assigns a UUID
func TestUserRepository_SaveGeneratesID(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			saved, err := repo.Save(ctx, models.User{Name: "Ana", Email: "ana@x.com"})
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if !validators.IsValidUUID(saved.ID) {
				t.Errorf("Save() ID = %q, want a UUID", saved.ID)
			}
			if saved.Name != "Ana" || saved.Email != "ana@x.com" {
				t.Errorf("Save() = %+v, want name Ana and email ana@x.com", saved)
			}

			found, ok, err := repo.FindByID(ctx, saved.ID)
			if err != nil {
				t.Fatalf("FindByID() error = %v", err)
			}
			if !ok {
				t.Fatal("FindByID() found = false, want true")
			}
			if found != saved {
				t.Errorf("FindByID() = %+v, want %+v", found, saved)
			}
		})
	}
}

// TestUserRepository_SaveUpserts tests insert and overwrite under a supplied id
func TestUserRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			inserted, err := repo.Save(ctx, models.User{ID: "fixed-id", Name: "Ana", Email: "ana@x.com"})
			if err != nil {
				t.Fatalf("Save(insert) error = %v", err)
			}
			if inserted.ID != "fixed-id" {
				t.Errorf("Save(insert) ID = %q, want fixed-id", inserted.ID)
			}

			updated, err := repo.Save(ctx, models.User{ID: "fixed-id", Name: "Bea", Email: "bea@x.com"})
			if err != nil {
				t.Fatalf("Save(overwrite) error = %v", err)
			}
			if updated.ID != "fixed-id" {
				t.Errorf("Save(overwrite) ID = %q, want fixed-id", updated.ID)
			}

			found, ok, err := repo.FindByID(ctx, "fixed-id")
			if err != nil || !ok {
				t.Fatalf("FindByID() = %v, %v, want found", ok, err)
			}
			if found.Name != "Bea" || found.Email != "bea@x.com" {
				t.Errorf("FindByID() = %+v, want overwritten fields", found)
			}

			all, err := repo.FindAll(ctx)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(all) != 1 {
				t.Errorf("FindAll() len = %d, want 1", len(all))
			}
		})
	}
}

// TestUserRepository_FindByIDMissing tests that a miss is not an error
func TestUserRepository_FindByIDMissing(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			for _, id := range []string{"does-not-exist", ""} {
				_, ok, err := repo.FindByID(ctx, id)
				if err != nil {
					t.Errorf("FindByID(%q) error = %v, want nil", id, err)
				}
				if ok {
					t.Errorf("FindByID(%q) found = true, want false", id)
				}
			}
		})
	}
}

// TestUserRepository_FindAllEmpty tests that an empty store lists as an empty, non-nil slice
func TestUserRepository_FindAllEmpty(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			all, err := repo.FindAll(ctx)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if all == nil {
				t.Error("FindAll() = nil, want empty slice")
			}
			if len(all) != 0 {
				t.Errorf("FindAll() len = %d, want 0", len(all))
			}
		})
	}
}

// TestUserRepository_Delete tests that delete succeeds once per existing id
func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			saved, err := repo.Save(ctx, models.User{Name: "Ana", Email: "ana@x.com"})
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			deleted, err := repo.Delete(ctx, saved.ID)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if !deleted {
				t.Error("Delete() first call = false, want true")
			}

			for i := 0; i < 2; i++ {
				deleted, err = repo.Delete(ctx, saved.ID)
				if err != nil {
					t.Fatalf("Delete() error = %v", err)
				}
				if deleted {
					t.Errorf("Delete() repeat call %d = true, want false", i+1)
				}
			}

			if _, ok, _ := repo.FindByID(ctx, saved.ID); ok {
				t.Error("FindByID() after delete found = true, want false")
			}

			all, err := repo.FindAll(ctx)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(all) != 0 {
				t.Errorf("FindAll() after delete len = %d, want 0", len(all))
			}
		})
	}
}

// TestUserRepository_ConcurrentSaves tests that concurrent creates get distinct ids
func TestUserRepository_ConcurrentSaves(t *testing.T) {
	const workers = 50
	ctx := context.Background()

	for name, newRepo := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			ids := make(chan string, workers)
			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					saved, err := repo.Save(ctx, models.User{
						Name:  fmt.Sprintf("user-%d", i),
						Email: fmt.Sprintf("user-%d@x.com", i),
					})
					if err != nil {
						t.Errorf("Save() error = %v", err)
						return
					}
					ids <- saved.ID
				}(i)
			}
			wg.Wait()
			close(ids)

			seen := make(map[string]bool)
			for id := range ids {
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
			}
			if len(seen) != workers {
				t.Errorf("distinct ids = %d, want %d", len(seen), workers)
			}

			all, err := repo.FindAll(ctx)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(all) != workers {
				t.Errorf("FindAll() len = %d, want %d", len(all), workers)
			}
		})
	}
}

// TestMemoryUserRepository_RegeneratesOnCollision tests that a colliding id is never reused
func TestMemoryUserRepository_RegeneratesOnCollision(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	sequence := []string{"taken", "taken", "", "fresh"}
	repo.newID = func() string {
		id := sequence[0]
		sequence = sequence[1:]
		return id
	}

	if _, err := repo.Save(ctx, models.User{Name: "Ana", Email: "ana@x.com"}); err != nil {
		t.Fatalf("Save(first) error = %v", err)
	}

	second, err := repo.Save(ctx, models.User{Name: "Bea", Email: "bea@x.com"})
	if err != nil {
		t.Fatalf("Save(second) error = %v", err)
	}
	if second.ID != "fresh" {
		t.Errorf("Save(second) ID = %q, want fresh", second.ID)
	}
	if repo.Count() != 2 {
		t.Errorf("Count() = %d, want 2", repo.Count())
	}
}

// TestMemoryUserRepository_FindAllIsSnapshot tests that listed records are copies
func TestMemoryUserRepository_FindAllIsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	saved, err := repo.Save(ctx, models.User{Name: "Ana", Email: "ana@x.com"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	all, _ := repo.FindAll(ctx)
	all[0].Name = "mutated"

	found, _, _ := repo.FindByID(ctx, saved.ID)
	if found.Name != "Ana" {
		t.Errorf("stored Name = %q, want Ana", found.Name)
	}
}
