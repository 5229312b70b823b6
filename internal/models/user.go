package models

// User represents a user record held by the user store.
type User struct {
	// ID is the store-generated unique identifier for this user (RFC 4122 v4)
	// Format: 550e8400-e29b-41d4-a716-446655440000
	// Never changes once assigned
	ID string `gorm:"primaryKey;type:text;not null" json:"id"`

	// Name is the user's display name
	Name string `gorm:"type:text;not null" json:"name"`

	// Email is the user's contact address
	Email string `gorm:"type:text;not null" json:"email"`
}

// TableName overrides the default table name for GORM
func (User) TableName() string {
	return "users"
}

// HasID returns true if an identifier has been assigned
func (u *User) HasID() bool {
	return u.ID != ""
}

// UserNotFoundResponse is the body returned when a user lookup misses
type UserNotFoundResponse struct {
	Message string `json:"message" example:"User not found"`
	ID      string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// NewUserNotFoundResponse builds the not-found body for the given id
func NewUserNotFoundResponse(id string) UserNotFoundResponse {
	return UserNotFoundResponse{
		Message: "User not found",
		ID:      id,
	}
}
