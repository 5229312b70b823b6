package services

import (
	"context"
	"log"

	"github.com/boomchecker/users-api/internal/models"
	"github.com/boomchecker/users-api/internal/repositories"
)

// UserService exposes the CRUD contract for user records.
// It holds no record state: every call goes to the repository.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UserRequest contains the user fields accepted by create and update.
// ID is accepted for compatibility with clients that echo records back, but it is never used.
type UserRequest struct {
	ID    string `json:"id,omitempty" example:""`
	Name  string `json:"name" binding:"required,max=100" example:"Ana"`
	Email string `json:"email" binding:"required,email" example:"ana@x.com"`
}

// Create stores a new user under a freshly generated id.
// Any id present on the request is ignored.
func (s *UserService) Create(ctx context.Context, req *UserRequest) (models.User, error) {
	log.Printf("Saving new user: name=%q email=%q", req.Name, req.Email)
	return s.userRepo.Save(ctx, models.User{
		Name:  req.Name,
		Email: req.Email,
	})
}

// Update replaces name and email of the user stored under id.
// The id always comes from the caller's path, never from the request body.
//
// This is an unconditional upsert: callers must confirm the id exists with Get
// first, otherwise an update to a missing id creates it.
func (s *UserService) Update(ctx context.Context, id string, req *UserRequest) (models.User, error) {
	log.Printf("Updating user %s: name=%q email=%q", id, req.Name, req.Email)
	return s.userRepo.Save(ctx, models.User{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
}

// Get looks up a user by id. A missing user is reported as false.
func (s *UserService) Get(ctx context.Context, id string) (models.User, bool, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List returns all stored users in no particular order
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// Delete removes a user and reports whether one was removed
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	log.Printf("Deleting user %s", id)
	return s.userRepo.Delete(ctx, id)
}
