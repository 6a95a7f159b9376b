package documents

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	doc := Document{
		ID:          "doc-1",
		Title:       "Đề cương",
		Subject:     "Triết học",
		FileURL:     "http://files.test/docs/k.pdf",
		FileName:    "de-cuong.pdf",
		StorageKey:  "k.pdf",
		PreviewText: "preview",
		UploadedBy:  "An",
		CreatedAt:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.Subject, doc.FileURL, doc.FileName, doc.StorageKey, doc.PreviewText, doc.UploadedBy, doc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "title", "subject", "file_url", "file_name", "storage_key", "preview_text", "uploaded_by", "created_at",
	}).
		AddRow("new", "Mới", "Toán", "u1", "f1", "k1", "", "An", now.Add(time.Hour)).
		AddRow("old", "Cũ", "Toán", "u2", "f2", "k2", "", "Binh", now)

	mock.ExpectQuery("SELECT (.+) FROM documents").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	docs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "new" || docs[1].ID != "old" {
		t.Fatalf("unexpected rows: %+v", docs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
