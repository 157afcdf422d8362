// auth.go handles user accounts and sessions.
//
// Login returns the token in the body for API clients and also sets it as
// an HttpOnly cookie so a browser frontend is authenticated without
// touching the token itself.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/database"
	"github.com/Shimizu-Technology/doc2deck/internal/middleware"
	"github.com/Shimizu-Technology/doc2deck/internal/models"
	"github.com/Shimizu-Technology/doc2deck/internal/services/password"
)

// Register creates a new user account.
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request",
			"Username (3-50 chars), a valid email and a password (min 8 chars) are required")
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Printf("❌ Failed to hash password: %v", err)
		respondError(c, http.StatusInternalServerError, "server_error", "Failed to create account")
		return
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}

	if err := h.DB.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondError(c, http.StatusConflict, "account_exists", "Username or email already registered")
			return
		}
		log.Printf("❌ Failed to create user: %v", err)
		respondError(c, http.StatusInternalServerError, "database_error", "Failed to create account")
		return
	}

	log.Printf("✅ Registered user %s", user.Username)
	h.issueSession(c, http.StatusCreated, user)
}

// Login authenticates a user and returns a JWT token.
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "Username and password are required")
		return
	}

	user, err := h.DB.GetUserByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			log.Printf("❌ Failed to look up user: %v", err)
		}
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	if err := password.Verify(req.Password, user.PasswordHash); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	h.issueSession(c, http.StatusOK, user)
}

// Logout clears the session cookie.
// POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.Config.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// GetMe returns the current authenticated user.
// GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, user)
}

// issueSession signs a token for user, sets the cookie and writes the body.
func (h *Handler) issueSession(c *gin.Context, status int, user *models.User) {
	token, err := middleware.GenerateJWT(user, h.Config.JWTSecret, h.Config.TokenTTL)
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		respondError(c, http.StatusInternalServerError, "token_error", "Failed to generate token")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "Bearer "+token, int(h.Config.TokenTTL.Seconds()),
		"/", "", h.Config.SecureCookie, true)

	c.JSON(status, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// currentUser returns the authenticated user, or writes a 401 and returns nil.
func currentUser(c *gin.Context) *models.User {
	user := middleware.GetUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "Not authenticated")
	}
	return user
}
