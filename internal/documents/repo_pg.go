package documents

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    title,
    subject,
    file_url,
    file_name,
    storage_key,
    preview_text,
    uploaded_by,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Title,
		doc.Subject,
		doc.FileURL,
		doc.FileName,
		doc.StorageKey,
		doc.PreviewText,
		doc.UploadedBy,
		doc.CreatedAt,
	)
	return err
}

// List returns all documents ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Document, error) {
	const query = `
SELECT id, title, subject, file_url, file_name, storage_key, preview_text, uploaded_by, created_at
FROM documents
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.Title,
			&doc.Subject,
			&doc.FileURL,
			&doc.FileName,
			&doc.StorageKey,
			&doc.PreviewText,
			&doc.UploadedBy,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
