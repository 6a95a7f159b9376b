package documents

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyhub-backend/internal/extract"
	"studyhub-backend/internal/shared/metrics"
	"studyhub-backend/internal/shared/storage/object"
	"studyhub-backend/internal/shared/telemetry"
	"studyhub-backend/internal/shared/util"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// UploadInput carries the fields of an upload request.
type UploadInput struct {
	Title      string
	Subject    string
	FileName   string
	UploadedBy string
	File       io.Reader
}

// Upload stores the file under a fresh random key, then records the document
// metadata. The storage write happens strictly before the insert: a failed
// upload never produces a metadata row. A failed insert triggers a
// compensating delete of the just-stored object.
func (s *Service) Upload(ctx context.Context, in UploadInput) (Document, error) {
	title := strings.TrimSpace(in.Title)
	subject := strings.TrimSpace(in.Subject)
	if title == "" || subject == "" || strings.TrimSpace(in.FileName) == "" || in.File == nil {
		return Document{}, ErrInvalidInput
	}

	fileName, err := util.SanitizeFileName(in.FileName)
	if err != nil {
		return Document{}, ErrInvalidInput
	}

	// Random key preserving the original extension, so unrelated uploads
	// with identical names can never collide.
	key := uuid.NewString() + util.FileExt(fileName)

	size, mimeType, err := s.Store.Save(ctx, object.NamespaceDocs, key, in.File)
	if err != nil {
		metrics.IncDocumentUploadFailed()
		return Document{}, fmt.Errorf("upload document: %w", err)
	}

	fileURL := s.Store.PublicURL(object.NamespaceDocs, key)

	// Best-effort preview; an unreadable file never blocks the upload.
	preview, err := extract.Preview(ctx, s.Store, object.NamespaceDocs, key, mimeType, fileName)
	if err != nil {
		telemetry.Info("documents.preview.skipped", map[string]any{
			"key": key,
			"err": err.Error(),
		})
		preview = ""
	}

	doc := Document{
		ID:          uuid.NewString(),
		Title:       title,
		Subject:     subject,
		FileURL:     fileURL,
		FileName:    fileName,
		StorageKey:  key,
		PreviewText: preview,
		UploadedBy:  in.UploadedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		metrics.IncDocumentUploadFailed()
		if delErr := s.Store.Delete(ctx, object.NamespaceDocs, key); delErr != nil {
			telemetry.Error("documents.orphaned_object", map[string]any{
				"key": key,
				"err": delErr.Error(),
			})
		}
		return Document{}, fmt.Errorf("save document: %w", err)
	}

	metrics.IncDocumentUploaded()
	metrics.ObserveUploadSizeBytes(float64(size))
	return doc, nil
}

// List returns all documents, newest first.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
