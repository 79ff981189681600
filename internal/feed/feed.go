package feed

import (
	"sort"

	"tfi-timeline/internal/event"
	"tfi-timeline/internal/timeline"
)

// Merge produces the single event sequence every view renders: personal
// events first, then the events of each subscribed timeline in registry
// order. The result is deliberately not sorted by date; views that need an
// ordering apply their own (see Agenda, MonthBuckets).
//
// Subscribed ids missing from the registry contribute nothing. Duplicate
// event ids across sources are kept as-is: ownership differs by source.
func Merge(userEvents []event.Event, reg *timeline.Registry, subscribed []string) []event.Event {
	out := make([]event.Event, 0, len(userEvents))
	out = append(out, userEvents...)

	subs := make(map[string]bool, len(subscribed))
	for _, id := range subscribed {
		subs[id] = true
	}
	for _, tl := range reg.List() {
		if subs[tl.ID] {
			out = append(out, tl.Events...)
		}
	}
	return out
}

// Filter narrows events to those whose hero contains the filter string
// (case-insensitive) or whose tags contain an exact case-insensitive match.
// An empty filter is a pass-through.
func Filter(events []event.Event, filter string) []event.Event {
	if filter == "" {
		return events
	}
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.MatchesFilter(filter) {
			out = append(out, e)
		}
	}
	return out
}

// Visible is the full pipeline: merge then filter.
func Visible(userEvents []event.Event, reg *timeline.Registry, subscribed []string, filter string) []event.Event {
	return Filter(Merge(userEvents, reg, subscribed), filter)
}

// Agenda returns a copy sorted ascending by date, the ordering the agenda
// view uses. The canonical sequence stays untouched.
func Agenda(events []event.Event) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// MonthBuckets groups events of the given year/month by day-of-month, the
// way the month grid renders them.
func MonthBuckets(events []event.Event, year int, month int) map[int][]event.Event {
	buckets := make(map[int][]event.Event)
	for _, e := range events {
		if e.Date.Year() == year && int(e.Date.Month()) == month {
			day := e.Date.Day()
			buckets[day] = append(buckets[day], e)
		}
	}
	return buckets
}
