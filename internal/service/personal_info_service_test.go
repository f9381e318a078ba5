package service

import (
	"errors"
	"testing"

	"github.com/stagefolio/internal/db"
)

func TestGetPersonalInfoDefault(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewPersonalInfoService(gdb)

	doc, err := svc.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if doc.Name != "" || doc.Description == "" {
		t.Fatalf("expected placeholder profile, got %+v", doc)
	}
	if doc.Skills == nil {
		t.Fatal("expected empty skills slice, not null")
	}
}

func TestUpsertPersonalInfoIsSingleton(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewPersonalInfoService(gdb)

	if _, err := svc.Upsert(PersonalInfoInput{
		Name:   "Jean Dupont",
		Email:  "jean@example.com",
		Phone:  "+33 1 23 45 67 89",
		Skills: []string{"Go", "React"},
	}); err != nil {
		t.Fatalf("first Upsert returned error: %v", err)
	}

	if _, err := svc.Upsert(PersonalInfoInput{
		Name:  "Jean Dupont",
		Email: "jean.dupont@example.com",
	}); err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.PersonalInfo{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single profile row, got %d", count)
	}

	doc, err := svc.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if doc.Email != "jean.dupont@example.com" {
		t.Fatalf("expected replaced email, got %q", doc.Email)
	}
	if len(doc.Skills) != 0 {
		t.Fatalf("expected omitted skills to be cleared, got %v", doc.Skills)
	}
}

func TestUpsertPersonalInfoRequiresNameAndEmail(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewPersonalInfoService(gdb)

	if _, err := svc.Upsert(PersonalInfoInput{Email: "a@example.com"}); !errors.Is(err, ErrPersonalInfoInvalidInput) {
		t.Fatalf("expected ErrPersonalInfoInvalidInput, got %v", err)
	}
	if _, err := svc.Upsert(PersonalInfoInput{Name: "A"}); !errors.Is(err, ErrPersonalInfoInvalidInput) {
		t.Fatalf("expected ErrPersonalInfoInvalidInput, got %v", err)
	}
}
