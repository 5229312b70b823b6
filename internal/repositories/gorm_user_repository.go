package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/boomchecker/users-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository handles user storage through GORM.
// It expects a database opened by database.InitDB, whose single connection
// serializes every statement.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-backed user repository instance
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save inserts a user under a fresh UUID, or upserts when the id is set
func (r *GormUserRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	if !user.HasID() {
		user.ID = uuid.NewString()
		if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
			return models.User{}, fmt.Errorf("failed to create user: %w", err)
		}
		return user, nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email"}),
	}).Create(&user).Error
	if err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

// FindByID retrieves a user by id
// A missing user is reported as false, not as an error
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (models.User, bool, error) {
	if id == "" {
		return models.User{}, false, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("failed to find user: %w", err)
	}

	return user, true, nil
}

// FindAll retrieves all users
func (r *GormUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Delete permanently removes a user
func (r *GormUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
