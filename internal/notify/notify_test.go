package notify

import (
	"testing"
	"time"

	"tfi-timeline/internal/event"
)

func TestPushAndRead(t *testing.T) {
	c := NewCenter()
	n := c.Push(Notification{Title: "Hello", Type: TypeSystem})
	if n.ID == "" {
		t.Error("expected assigned id")
	}
	if c.UnreadCount() != 1 {
		t.Errorf("expected 1 unread, got %d", c.UnreadCount())
	}
	if !c.MarkRead(n.ID) {
		t.Error("expected mark-read to succeed")
	}
	if c.UnreadCount() != 0 {
		t.Errorf("expected 0 unread, got %d", c.UnreadCount())
	}
	if c.MarkRead("ghost") {
		t.Error("unknown id must not be markable")
	}
}

func TestNewestFirst(t *testing.T) {
	c := NewCenter()
	c.Push(Notification{Title: "first"})
	c.Push(Notification{Title: "second"})
	got := c.List()
	if got[0].Title != "second" {
		t.Errorf("expected newest first, got %q", got[0].Title)
	}
}

func TestScanReminders(t *testing.T) {
	now := time.Date(2024, 11, 14, 12, 0, 0, 0, time.UTC)
	events := []event.Event{
		{ID: "due", Title: "Trailer Launch", Date: now.Add(12 * time.Hour), Reminder: event.Reminder1Day},
		{ID: "early", Title: "Far Away", Date: now.AddDate(0, 1, 0), Reminder: event.Reminder1Day},
		{ID: "none", Title: "No Reminder", Date: now.Add(time.Hour)},
		{ID: "past", Title: "Long Gone", Date: now.AddDate(0, 0, -10), Reminder: event.Reminder1Hour},
	}

	c := NewCenter()
	fired := c.ScanReminders(events, now)
	if len(fired) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(fired))
	}
	if fired[0].EventID != "due" {
		t.Errorf("expected reminder for 'due', got %s", fired[0].EventID)
	}
	if fired[0].Type != TypeReminder {
		t.Errorf("expected REMINDER type, got %s", fired[0].Type)
	}

	// a second scan must not re-fire
	if again := c.ScanReminders(events, now.Add(time.Hour)); len(again) != 0 {
		t.Errorf("expected no duplicate reminders, got %d", len(again))
	}
}
