package repositories

import (
	"context"
	"sync"

	"github.com/boomchecker/users-api/internal/models"
	"github.com/google/uuid"
)

// UserRepository is the keyed collection of user records and the sole source of user ids.
// All operations are linearizable with respect to each other.
type UserRepository interface {
	// Save inserts the user under a fresh id when user.ID is empty,
	// otherwise inserts or overwrites the record stored under user.ID.
	Save(ctx context.Context, user models.User) (models.User, error)

	// FindByID returns the stored record and true, or false when the id is absent.
	FindByID(ctx context.Context, id string) (models.User, bool, error)

	// FindAll returns a snapshot of every stored record in no particular order.
	FindAll(ctx context.Context) ([]models.User, error)

	// Delete removes the record and reports whether one was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// MemoryUserRepository keeps users in a map guarded by a single lock
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	newID func() string
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
		newID: uuid.NewString,
	}
}

// Save inserts or overwrites a user, generating an id when none is set
func (r *MemoryUserRepository) Save(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !user.HasID() {
		user.ID = r.generateIDLocked()
	}
	r.users[user.ID] = user

	return user, nil
}

// FindByID retrieves a user by id
func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (models.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	return user, ok, nil
}

// FindAll returns a copy of every stored user
func (r *MemoryUserRepository) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	return users, nil
}

// Delete removes a user if present
func (r *MemoryUserRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)

	return true, nil
}

// Count returns the number of stored users
func (r *MemoryUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// generateIDLocked returns an id not held by any stored user. Caller holds r.mu.
func (r *MemoryUserRepository) generateIDLocked() string {
	for {
		id := r.newID()
		if _, taken := r.users[id]; id != "" && !taken {
			return id
		}
	}
}
