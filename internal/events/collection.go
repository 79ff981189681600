package events

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tfi-timeline/internal/event"
)

// Repository abstracts persistence of the user's personal event collection.
// The collection is the sole mutation point for user events, so a
// write-through here is all the durability the app gets.
type Repository interface {
	LoadAll() ([]event.Event, error)
	SaveAll(events []event.Event) error
}

// Collection owns the user's personal events. All mutation goes through
// Save/Delete; reads get copies.
type Collection struct {
	mu     sync.RWMutex
	repo   Repository
	events []event.Event
}

// NewWithRepo builds a Collection preloaded from repo (when non-nil), seeded
// with initial events for ids not already present.
func NewWithRepo(repo Repository, initial []event.Event) *Collection {
	c := &Collection{repo: repo}
	if repo != nil {
		if evs, err := repo.LoadAll(); err == nil {
			c.events = evs
		}
	}
	if len(c.events) == 0 {
		c.events = append(c.events, initial...)
	}
	return c
}

// Save merges an incoming event into the collection.
//
// An event whose TimelineID is not "user" (a timeline copy or a fresh AI
// proposal) is treated as a copy: a new id is minted, ownership is forced to
// "user" and it is appended. An event already owned by the user is an upsert
// by id, replacing in place to preserve collection order.
func (c *Collection) Save(e event.Event) (event.Event, error) {
	if e.Title == "" {
		return event.Event{}, fmt.Errorf("event title is required")
	}
	if e.Date.IsZero() {
		return event.Event{}, fmt.Errorf("event date is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e.TimelineID != event.UserTimelineID {
		e.ID = uuid.NewString()
		e.TimelineID = event.UserTimelineID
		c.events = append(c.events, e)
		c.persist()
		return e, nil
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	for i := range c.events {
		if c.events[i].ID == e.ID {
			c.events[i] = e
			c.persist()
			return e, nil
		}
	}
	c.events = append(c.events, e)
	c.persist()
	return e, nil
}

// Delete removes an event by id. Timeline-owned events never live here, so
// only personal events can be deleted.
func (c *Collection) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.events {
		if c.events[i].ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// Get returns the event with the given id.
func (c *Collection) Get(id string) (event.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return event.Event{}, false
}

// List returns the personal events in collection order.
func (c *Collection) List() []event.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]event.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len reports the collection size.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

func (c *Collection) persist() {
	if c.repo == nil {
		return
	}
	evs := make([]event.Event, len(c.events))
	copy(evs, c.events)
	_ = c.repo.SaveAll(evs)
}
