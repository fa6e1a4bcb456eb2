package documents

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the document does not exist or belongs to another user.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput indicates a malformed upload request.
	ErrInvalidInput = errors.New("invalid input")
)

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userID, documentID string) (Document, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Document, error)
}
