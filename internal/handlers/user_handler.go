package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/boomchecker/users-api/internal/models"
	"github.com/boomchecker/users-api/internal/services"
	"github.com/boomchecker/users-api/internal/validators"
	"github.com/gin-gonic/gin"
)

// notifyTimeout bounds the best-effort notification sent after a delete
const notifyTimeout = 5 * time.Second

// UserDeletedNotifier is told about every user removed through the API
type UserDeletedNotifier interface {
	NotifyUserDeleted(ctx context.Context, userID string) error
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// UserHandler handles HTTP requests for user records
type UserHandler struct {
	userService *services.UserService
	notifier    UserDeletedNotifier
}

// NewUserHandler creates a new user handler.
// notifier may be nil when notifications are disabled.
func NewUserHandler(userService *services.UserService, notifier UserDeletedNotifier) *UserHandler {
	return &UserHandler{
		userService: userService,
		notifier:    notifier,
	}
}

// CreateUser handles POST /users
// @Summary Create a user
// @Description Stores a new user. The id is always generated by the server; any id in the body is ignored.
// @Tags users
// @Accept json
// @Produce json
// @Param request body services.UserRequest true "User name and email"
// @Success 201 {object} models.User "User created"
// @Header 201 {string} Location "/users/{id}"
// @Failure 400 {object} ErrorResponse "Invalid request or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.UserRequest
	if !bindUserRequest(c, &req) {
		return
	}

	log.Printf("Creating user: name=%q email=%q", req.Name, req.Email)
	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		internalError(c, "Failed to create user", err)
		return
	}

	log.Printf("User created with id: %s", user.ID)
	c.Header("Location", "/users/"+user.ID)
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User "User found"
// @Failure 404 {object} models.UserNotFoundResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, ok, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		internalError(c, "Failed to get user", err)
		return
	}
	if !ok {
		log.Printf("Warning: user not found: %s", id)
		c.JSON(http.StatusNotFound, models.NewUserNotFoundResponse(id))
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
// @Summary List users
// @Description Returns every stored user in no particular order
// @Tags users
// @Produce json
// @Success 200 {array} models.User "All users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /users/:id
// @Summary Update a user
// @Description Replaces name and email of an existing user. The id in the path wins over any id in the body.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body services.UserRequest true "New user name and email"
// @Success 200 {object} models.User "User updated"
// @Failure 400 {object} ErrorResponse "Invalid request or validation error"
// @Failure 404 "User not found (null body)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req services.UserRequest
	if !bindUserRequest(c, &req) {
		return
	}

	// UserService.Update upserts; existence is checked here
	_, ok, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		internalError(c, "Failed to update user", err)
		return
	}
	if !ok {
		log.Printf("Warning: user not found for update: %s", id)
		c.JSON(http.StatusNotFound, nil)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		internalError(c, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Tags users
// @Param id path string true "User id"
// @Success 204 "User deleted"
// @Failure 404 "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.userService.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, "Failed to delete user", err)
		return
	}
	if !deleted {
		log.Printf("Warning: user not found for deletion: %s", id)
		c.Status(http.StatusNotFound)
		return
	}

	log.Printf("User deleted: %s", id)
	h.notifyDeleted(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// notifyDeleted sends the deletion notification; failures never affect the response
func (h *UserHandler) notifyDeleted(ctx context.Context, id string) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := h.notifier.NotifyUserDeleted(ctx, id); err != nil {
		log.Printf("Warning: failed to send user deleted notification for %s: %v", id, err)
	}
}

// bindUserRequest binds the JSON body, writing a 400 response on failure
func bindUserRequest(c *gin.Context, req *services.UserRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Message: validators.FormatValidationErrors(validators.FromBindingError(err)),
		})
		return false
	}
	return true
}

func internalError(c *gin.Context, message string, err error) {
	log.Printf("ERROR: %s: %v", message, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Message: err.Error(),
	})
}
