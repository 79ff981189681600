package community

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Thread is a forum discussion entry.
type Thread struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Replies    int       `json:"replies"`
	Views      int       `json:"views"`
	LastActive time.Time `json:"last_active"`
	Tags       []string  `json:"tags"`
	IsTrending bool      `json:"is_trending,omitempty"`
}

// Hub owns the forum threads, newest activity first.
type Hub struct {
	mu      sync.RWMutex
	threads []Thread
}

func NewHub() *Hub {
	return &Hub{threads: seedThreads()}
}

func seedThreads() []Thread {
	now := time.Now()
	return []Thread{
		{ID: uuid.NewString(), Title: "Pushpa 2 trailer breakdown - frame by frame", Author: "BunnyVas_Fan", Replies: 342, Views: 12050, LastActive: now.Add(-2 * time.Hour), Tags: []string{"Allu Arjun", "Trailer"}, IsTrending: true},
		{ID: uuid.NewString(), Title: "Best pre-climax elevation of the decade?", Author: "TFI_Update", Replies: 128, Views: 5400, LastActive: now.Add(-5 * time.Hour), Tags: []string{"Discussion"}},
		{ID: uuid.NewString(), Title: "Classics re-release wishlist", Author: "retro_telugu", Replies: 56, Views: 2100, LastActive: now.Add(-24 * time.Hour), Tags: []string{"Classic"}},
	}
}

// List returns all threads.
func (h *Hub) List() []Thread {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Thread, len(h.threads))
	copy(out, h.threads)
	return out
}

// Create starts a new thread.
func (h *Hub) Create(title, author string, tags []string) (Thread, error) {
	if title == "" {
		return Thread{}, fmt.Errorf("thread title is required")
	}
	if author == "" {
		author = "anonymous"
	}
	t := Thread{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     author,
		Tags:       tags,
		LastActive: time.Now(),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.threads = append([]Thread{t}, h.threads...)
	return t, nil
}

// Reply bumps the reply counter and activity time.
func (h *Hub) Reply(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.threads {
		if h.threads[i].ID == id {
			h.threads[i].Replies++
			h.threads[i].LastActive = time.Now()
			return true
		}
	}
	return false
}

// View bumps the view counter.
func (h *Hub) View(id string) (Thread, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.threads {
		if h.threads[i].ID == id {
			h.threads[i].Views++
			return h.threads[i], true
		}
	}
	return Thread{}, false
}
