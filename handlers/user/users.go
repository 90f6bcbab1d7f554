package user

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/auth"
	"github.com/coachdesk/coachdesk-api/utils/response"
	"github.com/coachdesk/coachdesk-api/utils/validation"
)

// UserHandler handles staff account management (admin only)
type UserHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin data-entry"`
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := h.db.Order("username").Find(&users).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}
	return response.Success(c, users)
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	req.Username = validation.SanitizeString(req.Username)

	var existing model.User
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return response.Conflict(c, "Username already taken")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user := model.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Name:         validation.SanitizeString(req.Name),
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	if user.Seed {
		return response.Forbidden(c, "The seed admin account cannot be deleted")
	}

	if err := h.db.Delete(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.SuccessWithMessage(c, "User deleted", nil)
}

// UpdatePasswordRequest represents a password change
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UpdatePassword handles PUT /api/v1/users/:id/password
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var user model.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user.PasswordHash = passwordHash
	if err := h.db.Save(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to update password")
	}

	return response.SuccessWithMessage(c, "Password updated", nil)
}
