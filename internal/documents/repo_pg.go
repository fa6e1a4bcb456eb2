package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
	id, user_id, filename, content_type, size_bytes, storage_key, sha256, extracted_text, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.Filename,
		doc.ContentType,
		doc.SizeBytes,
		doc.StorageKey,
		doc.SHA256,
		doc.ExtractedText,
		doc.CreatedAt,
	)
	return err
}

// GetByID returns a document owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT id, user_id, filename, content_type, size_bytes, storage_key, sha256, extracted_text, created_at
FROM documents
WHERE id = $1 AND user_id = $2
LIMIT 1`
	var doc Document
	err := r.DB.QueryRowContext(ctx, query, documentID, userID).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Filename,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.StorageKey,
		&doc.SHA256,
		&doc.ExtractedText,
		&doc.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return doc, err
}

// ListByUser returns the user's documents, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Document, error) {
	const query = `
SELECT id, user_id, filename, content_type, size_bytes, storage_key, sha256, extracted_text, created_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Filename,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.StorageKey,
			&doc.SHA256,
			&doc.ExtractedText,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}
