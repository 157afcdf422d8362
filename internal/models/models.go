// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// Unlike Ruby's ActiveRecord or JavaScript's Mongoose, Go models are just
// data containers — no ORM magic. The database package handles persistence.
//
// JSON tags (e.g., `json:"id"`) control how struct fields are serialized
// to/from JSON. The `db` tags work with sqlx for database column mapping.
package models

import (
	"time"

	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

// User is an account that owns presentations.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // "-" means never serialize to JSON
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Presentation is one uploaded PDF, the study notes generated from it and
// the deck rendered from those notes.
type Presentation struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Title          string    `json:"title" db:"title"`
	Notes          string    `json:"notes" db:"notes"`
	PDFFilename    string    `json:"pdf_filename" db:"pdf_filename"`     // Name as uploaded
	StoredFilename string    `json:"-" db:"stored_filename"`             // Name under UPLOAD_DIR
	PageSelection  string    `json:"page_selection" db:"page_selection"` // e.g. "all", "1-3,5"
	DeckPath       string    `json:"deck_path,omitempty" db:"deck_path"` // Empty until a deck is generated
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// HasDeck reports whether a deck has been rendered for the presentation.
func (p *Presentation) HasDeck() bool {
	return p.DeckPath != ""
}

// --- Request/Response DTOs (Data Transfer Objects) ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps your API contract clean and independent of your database schema.

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateNotesRequest is the JSON body for saving edited notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// PresentationResponse is a presentation plus its notes rendered to HTML.
type PresentationResponse struct {
	Presentation
	NotesHTML string `json:"notes_html"`
}

// UploadResponse is returned after a PDF has been turned into notes.
type UploadResponse struct {
	Presentation Presentation `json:"presentation"`
	PageCount    int          `json:"page_count"`
	PagesUsed    int          `json:"pages_used"`
	WordCount    int          `json:"word_count"`
}

// SlideView is a slide record with its content styled for display.
type SlideView struct {
	segmenter.Slide
	Body []segmenter.Styled `json:"body"`
}

// SlidesResponse lists the slides the current notes would produce.
type SlidesResponse struct {
	PresentationID string      `json:"presentation_id"`
	Slides         []SlideView `json:"slides"`
}

// DeckResponse is returned after a deck has been rendered.
type DeckResponse struct {
	PresentationID string   `json:"presentation_id"`
	DeckPath       string   `json:"deck_path"`
	SlideCount     int      `json:"slide_count"`
	Feedback       []string `json:"feedback"`
	TrimmedItems   int      `json:"trimmed_items"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	AI       string `json:"ai"` // "openrouter" or "heuristic"
}
