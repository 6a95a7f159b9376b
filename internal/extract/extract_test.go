package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)
	if _, err := w.Write([]byte(doc.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t, "Đề thi Toán", "Học kỳ 1")

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "de-thi.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(text, "Đề thi Toán") {
		t.Fatalf("expected first paragraph in text, got %q", text)
	}
	if !strings.Contains(text, "Học kỳ 1") {
		t.Fatalf("expected second paragraph in text, got %q", text)
	}
}

func TestTextFromBytesZipMimeNormalizesToDocx(t *testing.T) {
	data := buildDocx(t, "nội dung")

	if _, err := TextFromBytes(context.Background(), data, "application/zip", "tai-lieu.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytesPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("  ngắn  ", 400); got != "ngắn" {
		t.Fatalf("expected trimmed text, got %q", got)
	}

	long := strings.Repeat("à", 500)
	got := Truncate(long, 400)
	if len([]rune(got)) != 400 {
		t.Fatalf("expected 400 runes, got %d", len([]rune(got)))
	}
}
