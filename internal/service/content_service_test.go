package service

import (
	"errors"
	"testing"
)

func TestGetSectionDefaultsForKnownKeys(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService(gdb)

	about, err := svc.Get("about")
	if err != nil {
		t.Fatalf("Get(about) returned error: %v", err)
	}
	if about.Title != "À propos" || about.Content == "" {
		t.Fatalf("expected about placeholder, got %+v", about)
	}

	conclusion, err := svc.Get("conclusion")
	if err != nil {
		t.Fatalf("Get(conclusion) returned error: %v", err)
	}
	if conclusion.Title != "Conclusion" || len(conclusion.Goals) == 0 {
		t.Fatalf("expected conclusion placeholder, got %+v", conclusion)
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected placeholders to stay unpersisted, got %d rows", count)
	}
}

func TestGetSectionUnknownKeyIsEmptyShape(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService(gdb)

	doc, err := svc.Get("galerie")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if doc.Section != "galerie" || doc.Title != "" || doc.Content != "" {
		t.Fatalf("expected empty shape, got %+v", doc)
	}
	if doc.Goals == nil || doc.Images == nil {
		t.Fatal("expected empty slices, not nulls")
	}
}

func TestUpsertSectionRoundTrip(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService(gdb)

	input := SectionInput{
		Title:   "À propos",
		Content: "Étudiant en informatique, passionné de systèmes.",
		Goals:   []string{"Obtenir le diplôme"},
		Images:  []string{"data:image/png;base64,AAAA"},
	}
	if _, err := svc.Upsert("about", input); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	doc, err := svc.Get("about")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if doc.Title != input.Title || doc.Content != input.Content {
		t.Fatalf("round trip lost fields: %+v", doc)
	}
	if len(doc.Goals) != 1 || len(doc.Images) != 1 {
		t.Fatalf("round trip lost lists: %+v", doc)
	}
	if doc.UpdatedAt == nil {
		t.Fatal("expected updated_at to be stamped")
	}
}

func TestUpsertSectionReplacesPreviousVersion(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService(gdb)

	if _, err := svc.Upsert("conclusion", SectionInput{
		Title: "Old", Goals: []string{"a", "b"},
	}); err != nil {
		t.Fatalf("seed Upsert returned error: %v", err)
	}
	if _, err := svc.Upsert("conclusion", SectionInput{Title: "New"}); err != nil {
		t.Fatalf("replace Upsert returned error: %v", err)
	}

	doc, err := svc.Get("conclusion")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if doc.Title != "New" {
		t.Fatalf("expected replaced title, got %q", doc.Title)
	}
	if len(doc.Goals) != 0 {
		t.Fatalf("expected omitted goals to be cleared, got %v", doc.Goals)
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row per key, got %d", count)
	}
}

func TestUpsertSectionRequiresKey(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewContentService(gdb)

	if _, err := svc.Upsert("", SectionInput{Title: "x"}); !errors.Is(err, ErrSectionInvalidInput) {
		t.Fatalf("expected ErrSectionInvalidInput, got %v", err)
	}
}
