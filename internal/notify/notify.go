package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tfi-timeline/internal/event"
)

type Type string

const (
	TypeAlert    Type = "ALERT"
	TypeReminder Type = "REMINDER"
	TypeSocial   Type = "SOCIAL"
	TypeSystem   Type = "SYSTEM"
)

type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       Type      `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
	ActionLink string    `json:"action_link,omitempty"`
	EventID    string    `json:"event_id,omitempty"`
}

// Center holds the in-memory notification list, newest first.
type Center struct {
	mu            sync.RWMutex
	notifications []Notification
	remindedIDs   map[string]bool
}

func NewCenter() *Center {
	return &Center{remindedIDs: make(map[string]bool)}
}

// Push appends a notification and returns it with identity assigned.
func (c *Center) Push(n Notification) Notification {
	n.ID = uuid.NewString()
	n.Timestamp = time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append([]Notification{n}, c.notifications...)
	return n
}

// List returns all notifications, newest first.
func (c *Center) List() []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// MarkRead flags a notification as read.
func (c *Center) MarkRead(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].IsRead = true
			return true
		}
	}
	return false
}

// UnreadCount reports how many notifications are unread.
func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, it := range c.notifications {
		if !it.IsRead {
			n++
		}
	}
	return n
}

// ScanReminders pushes a REMINDER for every event whose reminder lead has
// come due at "now". Each event reminds at most once.
func (c *Center) ScanReminders(events []event.Event, now time.Time) []Notification {
	var fired []Notification
	for _, e := range events {
		lead, ok := e.Reminder.Lead()
		if !ok {
			continue
		}
		due := e.Date.Add(-lead)
		if now.Before(due) || now.After(e.Date.Add(24*time.Hour)) {
			continue
		}

		c.mu.Lock()
		if c.remindedIDs[e.ID] {
			c.mu.Unlock()
			continue
		}
		c.remindedIDs[e.ID] = true
		c.mu.Unlock()

		n := c.Push(Notification{
			Title:   "Reminder: " + e.Title,
			Message: fmt.Sprintf("%s is coming up on %s", e.Title, e.Date.Format("Jan 2, 2006")),
			Type:    TypeReminder,
			EventID: e.ID,
		})
		fired = append(fired, n)
	}
	return fired
}
