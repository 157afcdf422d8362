// deck.go renders slide decks and serves them for download.
//
// POST /api/v1/presentations/:id/deck — Render the deck and review the notes
// POST /api/v1/generate-deck          — Same, for the latest presentation
// GET  /api/v1/presentations/:id/deck — Download the rendered deck
package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
	"github.com/Shimizu-Technology/doc2deck/internal/services/ai"
)

// GenerateDeck renders one presentation's notes into a deck.
// POST /api/v1/presentations/:id/deck
func (h *Handler) GenerateDeck(c *gin.Context) {
	p := h.loadPresentation(c)
	if p == nil {
		return
	}
	h.generateDeck(c, p)
}

// GenerateLatestDeck renders the latest presentation's notes into a deck.
// POST /api/v1/generate-deck
func (h *Handler) GenerateLatestDeck(c *gin.Context) {
	p := h.loadLatest(c)
	if p == nil {
		return
	}
	h.generateDeck(c, p)
}

// DownloadDeck streams the rendered deck as an attachment.
// GET /api/v1/presentations/:id/deck
func (h *Handler) DownloadDeck(c *gin.Context) {
	p := h.loadPresentation(c)
	if p == nil {
		return
	}

	if !p.HasDeck() {
		respondError(c, http.StatusNotFound, "deck_not_found", "No deck has been generated for this presentation")
		return
	}
	if _, err := os.Stat(p.DeckPath); err != nil {
		log.Printf("⚠️  Deck file missing for %s: %v", p.ID, err)
		respondError(c, http.StatusNotFound, "deck_not_found", "Deck file is missing; generate it again")
		return
	}

	filename := sanitizeFilename(p.Title)
	if filename == "" {
		filename = "presentation"
	}
	c.FileAttachment(p.DeckPath, filename+".pdf")
}

func (h *Handler) generateDeck(c *gin.Context, p *models.Presentation) {
	if strings.TrimSpace(p.Notes) == "" {
		respondError(c, http.StatusBadRequest, "no_notes", "No notes available")
		return
	}

	result, err := h.Decks.Create(p.Notes, p.ID)
	if err != nil {
		log.Printf("❌ Deck rendering failed for %s: %v", p.ID, err)
		respondError(c, http.StatusInternalServerError, "render_error", "Failed to render deck")
		return
	}

	if err := h.DB.SetDeckPath(c.Request.Context(), p.UserID, p.ID, result.Path); err != nil {
		h.respondLookupError(c, err)
		return
	}

	feedback, err := h.AI.ReviewNotes(c.Request.Context(), p.Notes)
	if err != nil {
		log.Printf("⚠️  Review failed, using heuristic feedback: %v", err)
		feedback = ai.ReviewHeuristic(p.Notes)
	}

	log.Printf("✅ Deck rendered for %s: %d slides", p.ID, len(result.Slides))

	c.JSON(http.StatusOK, models.DeckResponse{
		PresentationID: p.ID,
		DeckPath:       result.Path,
		SlideCount:     len(result.Slides),
		Feedback:       feedback,
		TrimmedItems:   result.Trimmed,
	})
}
