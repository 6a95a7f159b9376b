package documents

import (
	"reflect"
	"testing"
	"time"
)

func sampleDocs() []Document {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return []Document{
		{ID: "1", Title: "Giải tích 1 - Đề cương", Subject: "Toán cao cấp", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "2", Title: "Physics lab report", Subject: "Vật lý đại cương", CreatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Nguyên lý kế toán", Subject: "Kế toán", CreatedAt: base},
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	docs := sampleDocs()
	got := Filter(docs, "")
	if !reflect.DeepEqual(got, docs) {
		t.Fatalf("empty query changed the result: %+v", got)
	}
	got = Filter(docs, "   ")
	if !reflect.DeepEqual(got, docs) {
		t.Fatalf("blank query changed the result: %+v", got)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	docs := sampleDocs()

	got := Filter(docs, "PHYSICS")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected doc 2, got %+v", got)
	}

	// Subject matches too.
	got = Filter(docs, "kế toán")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected doc 3, got %+v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	docs := sampleDocs()
	once := Filter(docs, "toán")
	twice := Filter(once, "toán")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(sampleDocs(), "hoá hữu cơ")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(sampleDocs(), "toán")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected docs 1 and 3 in order, got %+v", got)
	}
}
