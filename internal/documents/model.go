package documents

import "time"

// Document is a shared study document. Records are append-only: nothing in
// this system edits or deletes them.
type Document struct {
	ID          string
	Title       string
	Subject     string
	FileURL     string
	FileName    string
	StorageKey  string
	PreviewText string
	UploadedBy  string
	CreatedAt   time.Time
}
