package state

import (
	"errors"
	"testing"
	"time"
)

func TestSlotsMergeOverwritesOnlyDetected(t *testing.T) {
	t.Parallel()

	s := Slots{
		School:   SchoolShivNadar,
		Category: CategoryNormalUniform,
		Size:     "8–10Y",
		OutletID: 2,
		Intent:   IntentAvailabilityCheck,
	}
	s.Merge(Slots{Category: CategoryShoes, Size: "7"})

	if s.School != SchoolShivNadar {
		t.Fatalf("school = %q", s.School)
	}
	if s.Category != CategoryShoes {
		t.Fatalf("category = %q", s.Category)
	}
	if s.Size != "7" {
		t.Fatalf("size = %q", s.Size)
	}
	if s.OutletID != 2 {
		t.Fatalf("outlet_id = %d", s.OutletID)
	}
	if s.Intent != IntentAvailabilityCheck {
		t.Fatalf("intent = %q", s.Intent)
	}
}

func TestSlotsMergeNeverClears(t *testing.T) {
	t.Parallel()

	s := Slots{
		School:   SchoolKnowledgeHabitat,
		Category: CategorySportsUniform,
		Size:     "10–12Y",
		Color:    "Red",
		OutletID: 4,
		Intent:   IntentAvailabilityCheck,
	}
	before := s
	s.Merge(Slots{})
	if s != before {
		t.Fatalf("empty merge changed slots: %+v -> %+v", before, s)
	}
}

func TestSlotsRequiresColor(t *testing.T) {
	t.Parallel()

	if !(Slots{Category: CategorySportsUniform}).RequiresColor() {
		t.Fatal("sports uniform must require a color")
	}
	for _, cat := range []string{CategoryNormalUniform, CategoryShoes, CategorySocks, ""} {
		if (Slots{Category: cat}).RequiresColor() {
			t.Fatalf("category %q must not require a color", cat)
		}
	}
}

func TestSlotsValidate(t *testing.T) {
	t.Parallel()

	valid := Slots{
		School:   SchoolShivNadar,
		Category: CategorySportsUniform,
		Size:     "8–10Y",
		Color:    "Blue",
		OutletID: 3,
		Intent:   IntentAvailabilityCheck,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid slots rejected: %v", err)
	}

	if err := (Slots{}).Validate(); err != nil {
		t.Fatalf("zero slots rejected: %v", err)
	}

	bad := []Slots{
		{School: "Hogwarts"},
		{Category: "Capes"},
		{Color: "Purple"},
		{OutletID: 6},
		{OutletID: -1},
		{Intent: Intent("chitchat")},
	}
	for _, s := range bad {
		if err := s.Validate(); !errors.Is(err, ErrInvalidSlotValue) {
			t.Fatalf("Validate(%+v) = %v, want ErrInvalidSlotValue", s, err)
		}
	}
}

func TestNewSessionDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	s := NewSession("abc", now)

	if s.SessionID != "abc" {
		t.Fatalf("session_id = %q", s.SessionID)
	}
	if s.Slots.Intent != IntentAvailabilityCheck {
		t.Fatalf("intent = %q", s.Slots.Intent)
	}
	if s.UpdatedAt.Location() != time.UTC {
		t.Fatalf("updated_at not UTC: %v", s.UpdatedAt)
	}
	if !s.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at = %v, want %v", s.UpdatedAt, now)
	}
}
