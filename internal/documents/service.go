package documents

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"detectia-backend/internal/extract"
	"detectia-backend/internal/shared/storage/object"
	"detectia-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage, extracts its plain text and
// records the document. Extraction failure fails the upload: a submission the
// analyzer cannot read is useless to the caller.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}
	if len(raw) == 0 {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(raw))
	if err != nil {
		return Document{}, fmt.Errorf("store upload: %w", err)
	}

	text, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, mimeType)
		}
		return Document{}, err
	}

	digest := sha256.Sum256(raw)
	doc := Document{
		ID:            uuid.NewString(),
		UserID:        userID,
		Filename:      fileName,
		ContentType:   mimeType,
		SizeBytes:     size,
		StorageKey:    storageKey,
		SHA256:        hex.EncodeToString(digest[:]),
		ExtractedText: text,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	telemetry.Info("document.uploaded", map[string]any{
		"document_id":  doc.ID,
		"user_id":      userID,
		"content_type": mimeType,
		"size_bytes":   size,
		"text_chars":   len([]rune(text)),
	})
	return doc, nil
}

// Get returns a document owned by the user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]Document, error) {
	return s.Repo.ListByUser(ctx, userID, limit)
}
