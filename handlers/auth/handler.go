package auth

import (
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/utils/auth"
	"github.com/coachdesk/coachdesk-api/utils/middleware"
)

// AuthHandler handles login and token refresh
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *auth.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
	}
}
