// presentations.go handles PDF upload, notes editing and slide previews.
//
// POST   /api/v1/presentations             — Upload a PDF, generate study notes
// GET    /api/v1/presentations             — List the user's presentations
// GET    /api/v1/presentations/latest      — Most recent presentation
// GET    /api/v1/presentations/:id         — One presentation with notes HTML
// PUT    /api/v1/presentations/:id/notes   — Save edited notes
// POST   /api/v1/notes/save                — Save notes on the latest presentation
// GET    /api/v1/presentations/:id/slides  — Slides the notes would produce
// DELETE /api/v1/presentations/:id         — Delete a presentation and its files
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shimizu-Technology/doc2deck/internal/database"
	"github.com/Shimizu-Technology/doc2deck/internal/models"
	"github.com/Shimizu-Technology/doc2deck/internal/services/notes"
	pdfservice "github.com/Shimizu-Technology/doc2deck/internal/services/pdf"
	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

// maxPDFSize is the max upload size for PDF files (50MB).
const maxPDFSize = 50 << 20

// Column limits from migrations/000002_create_presentations.up.sql, in characters.
const (
	maxTitleLen    = 255
	maxFilenameLen = 255
	maxPagesLen    = 100
)

// defaultTitleSuffix is the " - YYYY-MM-DD HH:MM" part of a default title.
const defaultTitleSuffix = " - 2006-01-02 15:04"

// UploadPresentation turns an uploaded PDF into study notes.
// POST /api/v1/presentations
//
// Accepts multipart form fields:
//   - file:  the PDF (required, .pdf only)
//   - pages: page selection such as "all", "2", "1-3,7" (default "all")
//   - title: optional; defaults to "<filename> - YYYY-MM-DD HH:MM"
func (h *Handler) UploadPresentation(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPDFSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request",
			"No PDF file provided. Upload a file with the field name 'file'. Max size: 50MB.")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		respondError(c, http.StatusBadRequest, "invalid_file_type",
			fmt.Sprintf("Unsupported file format '%s'. Only .pdf files are accepted.", ext))
		return
	}

	pages := strings.TrimSpace(c.DefaultPostForm("pages", "all"))
	if pages == "" {
		pages = "all"
	}
	if utf8.RuneCountInString(pages) > maxPagesLen {
		respondError(c, http.StatusBadRequest, "invalid_pages",
			fmt.Sprintf("Page selection must be at most %d characters", maxPagesLen))
		return
	}
	// Syntax check only; out-of-range pages are skipped during extraction.
	if _, err := pdfservice.ParsePages(pages, 0); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_pages", err.Error())
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if utf8.RuneCountInString(title) > maxTitleLen {
		respondError(c, http.StatusBadRequest, "invalid_title",
			fmt.Sprintf("Title must be at most %d characters", maxTitleLen))
		return
	}
	filename := truncateRunes(header.Filename, maxFilenameLen)
	if title == "" {
		base := truncateRunes(filename, maxTitleLen-utf8.RuneCountInString(defaultTitleSuffix))
		title = base + time.Now().Format(defaultTitleSuffix)
	}

	// Go Pattern: io.ReadAll reads the entire reader into a byte slice.
	// For PDFs up to 50MB this is fine — the pdf library needs random access.
	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, "read_error", "Failed to read uploaded file")
		return
	}

	if !pdfservice.ValidatePDF(data) {
		respondError(c, http.StatusBadRequest, "invalid_pdf", "The uploaded file does not appear to be a valid PDF")
		return
	}

	result, err := pdfservice.Extract(data, pages)
	if err != nil {
		log.Printf("❌ PDF extraction failed for %s: %v", header.Filename, err)
		respondError(c, http.StatusUnprocessableEntity, "extraction_failed",
			"Failed to extract text from PDF. The file may be corrupted or password-protected.")
		return
	}
	if result.Text == "" {
		log.Printf("⚠️  No text found in %s (pages %s)", header.Filename, pages)
	}

	storedName, err := h.storeUpload(data)
	if err != nil {
		log.Printf("❌ Failed to store upload: %v", err)
		respondError(c, http.StatusInternalServerError, "storage_error", "Failed to store uploaded file")
		return
	}

	noteText, err := h.AI.GenerateNotes(c.Request.Context(), result.Text)
	if err != nil {
		// Only reachable with a Writer that has no fallback.
		log.Printf("❌ Notes generation failed: %v", err)
		h.removeUpload(storedName)
		respondError(c, http.StatusBadGateway, "notes_failed", "Failed to generate notes")
		return
	}

	p := &models.Presentation{
		UserID:         user.ID,
		Title:          title,
		Notes:          noteText,
		PDFFilename:    filename,
		StoredFilename: storedName,
		PageSelection:  pages,
	}
	if err := h.DB.CreatePresentation(c.Request.Context(), p); err != nil {
		log.Printf("❌ Failed to save presentation: %v", err)
		h.removeUpload(storedName)
		respondError(c, http.StatusInternalServerError, "database_error", "Failed to save presentation")
		return
	}

	log.Printf("✅ Notes generated for %s: %d/%d pages, %d words", header.Filename,
		result.Extracted, result.PageCount, result.WordCount)

	c.JSON(http.StatusCreated, models.UploadResponse{
		Presentation: *p,
		PageCount:    result.PageCount,
		PagesUsed:    result.Extracted,
		WordCount:    result.WordCount,
	})
}

// ListPresentations returns the user's presentations, newest first.
// GET /api/v1/presentations
func (h *Handler) ListPresentations(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	presentations, err := h.DB.ListPresentations(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Failed to list presentations: %v", err)
		respondError(c, http.StatusInternalServerError, "database_error", "Failed to list presentations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": presentations})
}

// GetPresentation returns one presentation with its notes rendered to HTML.
// GET /api/v1/presentations/:id
func (h *Handler) GetPresentation(c *gin.Context) {
	p := h.loadPresentation(c)
	if p == nil {
		return
	}
	h.respondPresentation(c, p)
}

// GetLatestPresentation returns the most recent presentation.
// GET /api/v1/presentations/latest
func (h *Handler) GetLatestPresentation(c *gin.Context) {
	p := h.loadLatest(c)
	if p == nil {
		return
	}
	h.respondPresentation(c, p)
}

// UpdateNotes replaces the notes of one presentation.
// PUT /api/v1/presentations/:id/notes
func (h *Handler) UpdateNotes(c *gin.Context) {
	p := h.loadPresentation(c)
	if p == nil {
		return
	}
	h.saveNotes(c, p)
}

// SaveLatestNotes replaces the notes of the most recent presentation.
// POST /api/v1/notes/save
//
// Accepts either JSON {"notes": "..."} or a form field "notes".
func (h *Handler) SaveLatestNotes(c *gin.Context) {
	p := h.loadLatest(c)
	if p == nil {
		return
	}
	h.saveNotes(c, p)
}

// GetSlides previews the slides the current notes produce.
// GET /api/v1/presentations/:id/slides
func (h *Handler) GetSlides(c *gin.Context) {
	p := h.loadPresentation(c)
	if p == nil {
		return
	}

	slides := segmenter.NotesToSlides(p.Notes)
	views := make([]models.SlideView, len(slides))
	for i, s := range slides {
		views[i] = models.SlideView{Slide: s, Body: segmenter.StyleSlide(s)}
	}

	c.JSON(http.StatusOK, models.SlidesResponse{
		PresentationID: p.ID,
		Slides:         views,
	})
}

// DeletePresentation removes a presentation with its upload and deck.
// DELETE /api/v1/presentations/:id
func (h *Handler) DeletePresentation(c *gin.Context) {
	p := h.loadPresentation(c)
	if p == nil {
		return
	}

	if err := h.DB.DeletePresentation(c.Request.Context(), p.UserID, p.ID); err != nil {
		h.respondLookupError(c, err)
		return
	}

	h.removeUpload(p.StoredFilename)
	if p.HasDeck() {
		if err := os.Remove(p.DeckPath); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️  Could not remove deck %s: %v", p.DeckPath, err)
		}
	}

	c.Status(http.StatusNoContent)
}

// --- Helpers ---

func (h *Handler) saveNotes(c *gin.Context, p *models.Presentation) {
	var req models.UpdateNotesRequest
	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid_request", "Body must be {\"notes\": \"...\"}")
			return
		}
	} else {
		notesField, ok := c.GetPostForm("notes")
		if !ok {
			respondError(c, http.StatusBadRequest, "invalid_request", "Form field 'notes' is required")
			return
		}
		req.Notes = notesField
	}

	if err := h.DB.UpdateNotes(c.Request.Context(), p.UserID, p.ID, req.Notes); err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved", "presentation_id": p.ID})
}

func (h *Handler) respondPresentation(c *gin.Context, p *models.Presentation) {
	html, err := notes.HTML(p.Notes)
	if err != nil {
		log.Printf("⚠️  Failed to render notes for %s: %v", p.ID, err)
	}
	c.JSON(http.StatusOK, models.PresentationResponse{Presentation: *p, NotesHTML: html})
}

// loadPresentation fetches :id for the current user, writing the error
// response and returning nil when it can't.
func (h *Handler) loadPresentation(c *gin.Context) *models.Presentation {
	user := currentUser(c)
	if user == nil {
		return nil
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "Presentation not found")
		return nil
	}

	p, err := h.DB.GetPresentation(c.Request.Context(), user.ID, id)
	if err != nil {
		h.respondLookupError(c, err)
		return nil
	}
	return p
}

func (h *Handler) loadLatest(c *gin.Context) *models.Presentation {
	user := currentUser(c)
	if user == nil {
		return nil
	}

	p, err := h.DB.GetLatestPresentation(c.Request.Context(), user.ID)
	if err != nil {
		h.respondLookupError(c, err)
		return nil
	}
	return p
}

func (h *Handler) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not_found", "Presentation not found")
		return
	}
	log.Printf("❌ Presentation lookup failed: %v", err)
	respondError(c, http.StatusInternalServerError, "database_error", "Failed to load presentation")
}

// storeUpload writes the PDF under a random name and returns that name.
func (h *Handler) storeUpload(data []byte) (string, error) {
	if err := os.MkdirAll(h.Config.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	name := uuid.NewString() + ".pdf"
	if err := os.WriteFile(filepath.Join(h.Config.UploadDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return name, nil
}

func (h *Handler) removeUpload(name string) {
	if name == "" {
		return
	}
	err := os.Remove(filepath.Join(h.Config.UploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Could not remove upload %s: %v", name, err)
	}
}

// truncateRunes shortens s to at most n characters.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
