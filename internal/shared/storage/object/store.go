package object

import (
	"context"
	"io"
)

// Namespaces for stored objects. Documents and question images live in
// separate prefixes so their keys can never collide.
const (
	NamespaceDocs = "docs"
	NamespaceQA   = "qa"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// Keys are caller-generated and unique; Save never overwrites silently by
// accident because every key carries a random component.
type ObjectStore interface {
	Save(ctx context.Context, namespace, key string, r io.Reader) (sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, namespace, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, namespace, key string) error
	PublicURL(namespace, key string) string
}
