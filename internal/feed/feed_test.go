package feed

import (
	"testing"
	"time"

	"tfi-timeline/internal/event"
	"tfi-timeline/internal/timeline"
)

func d(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func testRegistry() *timeline.Registry {
	return timeline.NewRegistry([]timeline.Timeline{
		{
			ID: "t1",
			Events: []event.Event{
				{ID: "t1e1", Title: "Trailer Drop", Date: d("2024-11-15"), Hero: "Prabhas", TimelineID: "t1"},
				{ID: "t1e2", Title: "Song Launch", Date: d("2024-09-01"), Hero: "NTR", TimelineID: "t1"},
			},
		},
		{
			ID: "t2",
			Events: []event.Event{
				{ID: "t2e1", Title: "Classic Anniv", Date: d("2024-01-14"), Tags: []string{"Classic"}, TimelineID: "t2"},
			},
		},
	})
}

func TestMergeOrderAndMembership(t *testing.T) {
	user := []event.Event{
		{ID: "u1", Title: "My Note", Date: d("2024-08-25"), TimelineID: event.UserTimelineID},
	}
	reg := testRegistry()

	got := Merge(user, reg, []string{"t2", "t1"})

	// personal first, then timelines in registry order (t1 before t2
	// regardless of subscription order)
	wantIDs := []string{"u1", "t1e1", "t1e2", "t2e1"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d events, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestMergeExcludesUnsubscribed(t *testing.T) {
	reg := testRegistry()
	got := Merge(nil, reg, []string{"t1"})
	for _, e := range got {
		if e.TimelineID == "t2" {
			t.Errorf("event %s from unsubscribed timeline leaked into feed", e.ID)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 events from t1, got %d", len(got))
	}
}

func TestMergeUnknownSubscriptionIgnored(t *testing.T) {
	reg := testRegistry()
	got := Merge(nil, reg, []string{"ghost"})
	if len(got) != 0 {
		t.Errorf("unknown subscribed id should contribute nothing, got %d events", len(got))
	}
}

func TestMergeKeepsDuplicateIDs(t *testing.T) {
	// a user-added copy of an official event keeps its own record
	user := []event.Event{
		{ID: "t1e1", Title: "Trailer Drop (mine)", Date: d("2024-11-15"), TimelineID: event.UserTimelineID},
	}
	reg := testRegistry()
	got := Merge(user, reg, []string{"t1"})
	count := 0
	for _, e := range got {
		if e.ID == "t1e1" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("duplicate ids across sources must not be deduplicated, got %d", count)
	}
}

func TestFilterHeroAndTags(t *testing.T) {
	reg := testRegistry()
	all := Merge(nil, reg, []string{"t1", "t2"})

	byHero := Filter(all, "prabhas")
	if len(byHero) != 1 || byHero[0].ID != "t1e1" {
		t.Errorf("hero filter: expected [t1e1], got %v", ids(byHero))
	}

	byTag := Filter(all, "classic")
	if len(byTag) != 1 || byTag[0].ID != "t2e1" {
		t.Errorf("tag filter: expected [t2e1], got %v", ids(byTag))
	}

	// removing the filter restores the unfiltered output exactly
	restored := Filter(all, "")
	if len(restored) != len(all) {
		t.Errorf("empty filter must be a pass-through, got %d of %d", len(restored), len(all))
	}
}

func TestSubscribeThenUnsubscribe(t *testing.T) {
	user := []event.Event{
		{ID: "u1", Title: "Mine", Date: d("2024-08-25"), TimelineID: event.UserTimelineID},
	}
	reg := testRegistry()

	with := Visible(user, reg, []string{"t1"}, "")
	if len(with) != 3 {
		t.Fatalf("expected 3 events while subscribed, got %d", len(with))
	}

	without := Visible(user, reg, nil, "")
	if len(without) != 1 || without[0].ID != "u1" {
		t.Errorf("after unsubscribe only personal events remain, got %v", ids(without))
	}
}

func TestAgendaSortsAscending(t *testing.T) {
	reg := testRegistry()
	got := Agenda(Merge(nil, reg, []string{"t1", "t2"}))
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Errorf("agenda out of order at %d: %v after %v", i, got[i].Date, got[i-1].Date)
		}
	}
}

func TestMonthBuckets(t *testing.T) {
	events := []event.Event{
		{ID: "a", Date: d("2024-11-15")},
		{ID: "b", Date: d("2024-11-15")},
		{ID: "c", Date: d("2024-11-02")},
		{ID: "d", Date: d("2024-12-02")},
	}
	buckets := MonthBuckets(events, 2024, 11)
	if len(buckets[15]) != 2 {
		t.Errorf("expected 2 events on the 15th, got %d", len(buckets[15]))
	}
	if len(buckets[2]) != 1 {
		t.Errorf("expected 1 event on the 2nd, got %d", len(buckets[2]))
	}
	if _, ok := buckets[12]; ok {
		t.Error("december event leaked into november buckets")
	}
}

func ids(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
