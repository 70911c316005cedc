package dialognode

import (
	"testing"
	"time"
)

func TestResolveReportWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	startOfDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	w := ResolveReportWindow("how did we do today", now)
	if w.Label != "today" {
		t.Fatalf("label = %q", w.Label)
	}
	if !w.From.Equal(startOfDay) || !w.To.Equal(startOfDay.AddDate(0, 0, 1)) {
		t.Fatalf("window = %v .. %v", w.From, w.To)
	}

	w = ResolveReportWindow("yesterday's numbers", now)
	if w.Label != "yesterday" {
		t.Fatalf("label = %q", w.Label)
	}
	if !w.From.Equal(startOfDay.AddDate(0, 0, -1)) || !w.To.Equal(startOfDay) {
		t.Fatalf("window = %v .. %v", w.From, w.To)
	}

	w = ResolveReportWindow("overall summary", now)
	if w.Label != "the last 7 days" {
		t.Fatalf("label = %q", w.Label)
	}
	if !w.From.Equal(now.AddDate(0, 0, -7)) || !w.To.Equal(now) {
		t.Fatalf("window = %v .. %v", w.From, w.To)
	}
}

func TestResolveReportWindowHalfOpenBoundary(t *testing.T) {
	t.Parallel()

	// At exactly midnight "today" still spans the full new day, and
	// "yesterday" ends exactly where "today" begins.
	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	today := ResolveReportWindow("today", midnight)
	yesterday := ResolveReportWindow("yesterday", midnight)

	if !yesterday.To.Equal(today.From) {
		t.Fatalf("windows not adjacent: %v vs %v", yesterday.To, today.From)
	}
	if today.To.Sub(today.From) != 24*time.Hour {
		t.Fatalf("today spans %v", today.To.Sub(today.From))
	}
}
