package ical

import (
	"strings"
	"testing"
	"time"

	"tfi-timeline/internal/event"
)

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestExportBasics(t *testing.T) {
	events := []event.Event{
		{ID: "e1", Title: "Pushpa 2 Trailer", Date: d("2024-11-15"), Category: event.CategoryTrailer, Link: "https://youtube.com"},
		{ID: "e2", Title: "Prabhas Birthday", Date: d("2024-10-23"), Category: event.CategoryBirthday},
	}

	out, err := Export(events)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("missing calendar envelope")
	}
	if !strings.Contains(out, "SUMMARY:Pushpa 2 Trailer") {
		t.Error("missing event summary")
	}
	if !strings.Contains(out, "UID:e1") {
		t.Error("missing event uid")
	}
}

func TestExportRecurrence(t *testing.T) {
	events := []event.Event{
		{ID: "bday", Title: "Prabhas Birthday", Date: d("2024-10-23"), Category: event.CategoryBirthday},
		{ID: "once", Title: "Song Drop", Date: d("2024-09-01"), Category: event.CategoryRelease},
	}

	out, err := Export(events)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "RRULE") || !strings.Contains(out, "FREQ=YEARLY") {
		t.Error("birthday must carry a yearly recurrence rule")
	}
	// only one RRULE expected, the release must not recur
	if strings.Count(out, "RRULE") != 1 {
		t.Errorf("expected exactly 1 RRULE, got %d", strings.Count(out, "RRULE"))
	}
}

func TestExportEmpty(t *testing.T) {
	out, err := Export(nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("empty export still yields a valid envelope")
	}
}
