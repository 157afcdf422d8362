// presentations.go handles presentation persistence.
//
// Every query takes the owner's user ID: a presentation that exists but
// belongs to someone else is reported as ErrNotFound.
package database

import (
	"context"
	"fmt"

	"github.com/Shimizu-Technology/doc2deck/internal/models"
)

// CreatePresentation inserts a new presentation and fills in its ID and
// timestamps.
func (db *DB) CreatePresentation(ctx context.Context, p *models.Presentation) error {
	query := `
		INSERT INTO presentations (user_id, title, notes, pdf_filename, stored_filename, page_selection)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return db.QueryRowContext(ctx, query,
		p.UserID, p.Title, p.Notes, p.PDFFilename, p.StoredFilename, p.PageSelection,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetPresentation retrieves one of the user's presentations.
func (db *DB) GetPresentation(ctx context.Context, userID, id string) (*models.Presentation, error) {
	var p models.Presentation
	err := db.GetContext(ctx, &p,
		`SELECT * FROM presentations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, notFound("presentation", err)
	}
	return &p, nil
}

// GetLatestPresentation retrieves the user's most recently created presentation.
func (db *DB) GetLatestPresentation(ctx context.Context, userID string) (*models.Presentation, error) {
	var p models.Presentation
	err := db.GetContext(ctx, &p,
		`SELECT * FROM presentations WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID)
	if err != nil {
		return nil, notFound("presentation", err)
	}
	return &p, nil
}

// ListPresentations returns the user's presentations, newest first.
func (db *DB) ListPresentations(ctx context.Context, userID string) ([]models.Presentation, error) {
	presentations := []models.Presentation{}
	err := db.SelectContext(ctx, &presentations,
		`SELECT * FROM presentations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presentations: %w", err)
	}
	return presentations, nil
}

// UpdateNotes replaces the notes of one presentation.
func (db *DB) UpdateNotes(ctx context.Context, userID, id, notes string) error {
	return db.execOwned(ctx,
		`UPDATE presentations SET notes = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, notes)
}

// SetDeckPath records where the rendered deck for a presentation lives.
func (db *DB) SetDeckPath(ctx context.Context, userID, id, path string) error {
	return db.execOwned(ctx,
		`UPDATE presentations SET deck_path = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID, path)
}

// DeletePresentation removes one presentation row.
func (db *DB) DeletePresentation(ctx context.Context, userID, id string) error {
	return db.execOwned(ctx,
		`DELETE FROM presentations WHERE id = $1 AND user_id = $2`, id, userID)
}

// execOwned runs a statement that must touch exactly one owned row.
func (db *DB) execOwned(ctx context.Context, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update presentation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update presentation: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("presentation: %w", ErrNotFound)
	}
	return nil
}
