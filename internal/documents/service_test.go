package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	localstore "detectia-backend/internal/shared/storage/object/local"
)

const essayText = "Les vacances d'été sont un moment privilégié pour les élèves. " +
	"Chacun en profite à sa manière, entre lectures, voyages et moments en famille."

func newTestService(t *testing.T) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	svc := &Service{
		Store: localstore.New(t.TempDir()),
		Repo:  repo,
	}
	return svc, repo
}

func TestUploadTextDocument(t *testing.T) {
	svc, repo := newTestService(t)

	doc, err := svc.Upload(context.Background(), "u1", "redaction.txt", strings.NewReader(essayText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected generated id")
	}
	if doc.ExtractedText != essayText {
		t.Fatalf("unexpected extracted text: %q", doc.ExtractedText)
	}
	if doc.SHA256 == "" {
		t.Fatalf("expected content digest")
	}
	if doc.SizeBytes != int64(len(essayText)) {
		t.Fatalf("expected size %d, got %d", len(essayText), doc.SizeBytes)
	}

	stored, err := repo.GetByID(context.Background(), "u1", doc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.StorageKey == "" {
		t.Fatalf("expected storage key to be recorded")
	}

	body, err := svc.Store.Open(context.Background(), stored.StorageKey)
	if err != nil {
		t.Fatalf("open stored object: %v", err)
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(raw) != essayText {
		t.Fatalf("stored bytes differ from upload")
	}
}

func TestUploadKeepsDerivedTextCopy(t *testing.T) {
	svc, repo := newTestService(t)

	doc, err := svc.Upload(context.Background(), "u1", "redaction.txt", strings.NewReader(essayText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	stored, err := repo.GetByID(context.Background(), "u1", doc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	body, err := svc.Store.Open(context.Background(), stored.StorageKey+".extracted.txt")
	if err != nil {
		t.Fatalf("open derived copy: %v", err)
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read derived copy: %v", err)
	}
	if string(raw) != essayText {
		t.Fatalf("derived copy differs from extracted text")
	}
}

func TestUploadRejectsUnsupportedFormat(t *testing.T) {
	svc, _ := newTestService(t)

	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	_, err := svc.Upload(context.Background(), "u1", "image.png", bytes.NewReader(pngHeader))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Upload(context.Background(), "u1", "vide.txt", strings.NewReader("")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty file, got %v", err)
	}
}

func TestGetHidesOtherUsersDocuments(t *testing.T) {
	svc, _ := newTestService(t)

	doc, err := svc.Upload(context.Background(), "u1", "redaction.txt", strings.NewReader(essayText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := svc.Get(context.Background(), "u2", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign document, got %v", err)
	}
}
