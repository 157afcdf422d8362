// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, String, Status)
// - Middleware data (c.Get/c.Set)
//
// Unlike Ruby controllers, Go handlers are plain functions — no class inheritance.
// We group related handlers into a struct (Handler) that holds shared dependencies.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
	"github.com/Shimizu-Technology/doc2deck/internal/services/ai"
	"github.com/Shimizu-Technology/doc2deck/internal/services/deck"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Store is everything the handlers need from persistence.
// *database.DB satisfies it; tests use an in-memory fake.
type Store interface {
	HealthCheck(ctx context.Context) error

	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	CreatePresentation(ctx context.Context, p *models.Presentation) error
	GetPresentation(ctx context.Context, userID, id string) (*models.Presentation, error)
	GetLatestPresentation(ctx context.Context, userID string) (*models.Presentation, error)
	ListPresentations(ctx context.Context, userID string) ([]models.Presentation, error)
	UpdateNotes(ctx context.Context, userID, id, notes string) error
	SetDeckPath(ctx context.Context, userID, id, path string) error
	DeletePresentation(ctx context.Context, userID, id string) error
}

// Options carries the settings handlers read at request time.
type Options struct {
	UploadDir    string
	JWTSecret    string
	TokenTTL     time.Duration
	SecureCookie bool   // Set the Secure flag on the session cookie (release mode)
	AIMode       string // "openrouter" or "heuristic", reported by HealthCheck
}

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy — just create a Handler with fake dependencies.
type Handler struct {
	DB     Store
	AI     ai.Writer
	Decks  *deck.Renderer
	Config Options
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db Store, writer ai.Writer, decks *deck.Renderer, opts Options) *Handler {
	return &Handler{
		DB:     db,
		AI:     writer,
		Decks:  decks,
		Config: opts,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  Version,
		Database: dbStatus,
		AI:       h.Config.AIMode,
	})
}

// respondError writes the standard error body.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    status,
	})
}
