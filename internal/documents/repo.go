package documents

import "context"

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	// List returns all documents, newest first.
	List(ctx context.Context) ([]Document, error)
}
