package timeline

import (
	"encoding/json"
	"fmt"
	"os"

	"tfi-timeline/internal/event"
)

// Timeline is a curated, pre-authored bundle of events representing an
// official or fan channel a user may subscribe to. Timeline-owned events are
// read-only from the consuming user's perspective.
type Timeline struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Handle      string        `json:"handle"`
	Avatar      string        `json:"avatar,omitempty"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Events      []event.Event `json:"events"`
	Followers   int           `json:"followers"`
	Color       string        `json:"color,omitempty"`
	IsOfficial  bool          `json:"is_official,omitempty"`
}

// Registry holds the fixed set of timelines, populated once at process start.
// Order is preserved and defines the merge order of the feed.
type Registry struct {
	timelines []Timeline
	byID      map[string]int
}

func NewRegistry(timelines []Timeline) *Registry {
	r := &Registry{timelines: timelines, byID: make(map[string]int, len(timelines))}
	for i, tl := range timelines {
		r.byID[tl.ID] = i
	}
	return r
}

// LoadRegistry reads timelines from a JSON file. The file holds a plain array
// of Timeline objects.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timelines file: %w", err)
	}
	var timelines []Timeline
	if err := json.Unmarshal(data, &timelines); err != nil {
		return nil, fmt.Errorf("parse timelines file: %w", err)
	}
	return NewRegistry(timelines), nil
}

// Get returns the timeline with the given id. A miss is not an error; the
// feed silently skips subscribed ids that are absent from the registry.
func (r *Registry) Get(id string) (Timeline, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Timeline{}, false
	}
	return r.timelines[i], true
}

// List returns all timelines in registry order.
func (r *Registry) List() []Timeline {
	out := make([]Timeline, len(r.timelines))
	copy(out, r.timelines)
	return out
}
