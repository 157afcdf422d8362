// export.go handles notes export in multiple formats.
//
// Supported formats:
//   - md   — The notes markdown exactly as stored
//   - txt  — Plain text with heading markers removed
//   - html — A standalone HTML page rendered from the markdown
//
// Go Pattern: Each export format is its own function. This makes it easy
// to add new formats later — just add a case to the switch and a new
// formatter function. This is the "Strategy pattern" without the ceremony.
package handlers

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
	"github.com/Shimizu-Technology/doc2deck/internal/services/notes"
)

// ExportNotes exports a presentation's notes in the requested format.
// GET /api/v1/presentations/:id/export?format=md|txt|html
//
// Response headers are set for file download:
//   - Content-Type: appropriate MIME type
//   - Content-Disposition: attachment with filename
func (h *Handler) ExportNotes(c *gin.Context) {
	format := c.DefaultQuery("format", "md")

	// Validate format before doing any database work
	validFormats := map[string]bool{"md": true, "txt": true, "html": true}
	if !validFormats[format] {
		respondError(c, http.StatusBadRequest, "invalid_format", "Supported formats: md, txt, html")
		return
	}

	p := h.loadPresentation(c)
	if p == nil {
		return
	}

	filename := sanitizeFilename(p.Title)
	if filename == "" {
		filename = "study-notes"
	}

	switch format {
	case "md":
		exportMarkdown(c, p, filename)
	case "txt":
		exportTXT(c, p, filename)
	case "html":
		exportHTML(c, p, filename)
	}
}

// exportMarkdown returns the notes unchanged.
func exportMarkdown(c *gin.Context, p *models.Presentation, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.md"`, filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(p.Notes))
}

// exportTXT returns the notes as plain text.
func exportTXT(c *gin.Context, p *models.Presentation, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.txt"`, filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(notes.PlainText(p.Notes)))
}

// exportHTML wraps the rendered notes in a minimal standalone page.
func exportHTML(c *gin.Context, p *models.Presentation, filename string) {
	body, err := notes.HTML(p.Notes)
	if err != nil {
		log.Printf("❌ Failed to render notes for export: %v", err)
		respondError(c, http.StatusInternalServerError, "export_error", "Failed to generate HTML export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.html"`, filename))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlPage(p.Title, body)))
}

func htmlPage(title, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(title))
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// --- Helper Functions ---

// sanitizeFilename removes characters that aren't safe for filenames.
// Go Pattern: Keep it simple — replace unsafe characters with hyphens
// and trim the result. We don't need a full filesystem-safe sanitizer
// since this is just for the Content-Disposition header.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-",
		"|", "-", "\n", " ", "\r", "",
	)
	name = replacer.Replace(name)

	// Collapse multiple hyphens/spaces
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	name = strings.TrimSpace(name)

	// Limit length without splitting a multi-byte character
	if runes := []rune(name); len(runes) > 100 {
		name = string(runes[:100])
	}

	return name
}
