package local

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"studyhub-backend/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem. Objects are
// publicly reachable under <publicBaseURL>/files/<namespace>/<key>, which the
// HTTP router serves from baseDir.
type Store struct {
	baseDir       string
	publicBaseURL string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir, publicBaseURL string) object.ObjectStore {
	return &Store{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save writes the reader to disk under the namespace and key.
func (s *Store) Save(ctx context.Context, namespace, key string, r io.Reader) (int64, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}

	rel, err := cleanKey(namespace, key)
	if err != nil {
		return 0, "", err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, "", fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return 0, "", fmt.Errorf("read sniff: %w", readErr)
	}

	mimeType := http.DetectContentType(sniff[:n])

	size := int64(0)
	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return 0, "", fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, "", fmt.Errorf("write body: %w", err)
	}
	size += written

	return size, mimeType, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, namespace, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := cleanKey(namespace, key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a stored object. Missing objects are not an error.
func (s *Store) Delete(ctx context.Context, namespace, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := cleanKey(namespace, key)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// PublicURL returns the URL under which the object is served.
func (s *Store) PublicURL(namespace, key string) string {
	return s.publicBaseURL + "/files/" + namespace + "/" + key
}

func cleanKey(namespace, key string) (string, error) {
	if strings.Contains(key, "..") || strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("invalid storage key")
	}
	rel := namespace + "/" + key
	clean := filepath.Clean(filepath.FromSlash(rel))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key")
	}
	return filepath.ToSlash(clean), nil
}

var _ object.ObjectStore = (*Store)(nil)
