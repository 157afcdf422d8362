// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/handlers"
	"github.com/Shimizu-Technology/doc2deck/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(h *handlers.Handler, users middleware.UserLookup, rateLimit int, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	rateLimiter := middleware.NewRateLimiter(rateLimit)

	// --- Public Routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/logout", h.Logout)

	// --- Protected Routes (Bearer header or session cookie) ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(users, h.Config.JWTSecret))
	{
		protected.GET("/auth/me", h.GetMe)

		protected.GET("/presentations", h.ListPresentations)
		protected.GET("/presentations/latest", h.GetLatestPresentation)
		protected.GET("/presentations/:id", h.GetPresentation)
		protected.PUT("/presentations/:id/notes", h.UpdateNotes)
		protected.GET("/presentations/:id/slides", h.GetSlides)
		protected.GET("/presentations/:id/deck", h.DownloadDeck)
		protected.GET("/presentations/:id/export", h.ExportNotes)
		protected.DELETE("/presentations/:id", h.DeletePresentation)
		protected.POST("/notes/save", h.SaveLatestNotes)

		// Upload and rendering do the heavy lifting, so they are rate limited.
		limited := protected.Group("")
		limited.Use(rateLimiter.RateLimit())
		limited.POST("/presentations", h.UploadPresentation)
		limited.POST("/presentations/:id/deck", h.GenerateDeck)
		limited.POST("/generate-deck", h.GenerateLatestDeck)
	}

	return r
}
