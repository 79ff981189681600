package subscription

import "sync"

// Repository abstracts persistence of the subscribed timeline id set.
type Repository interface {
	LoadAll() ([]string, error)
	SaveAll(ids []string) error
}

// Service owns the user's subscription set. The set only records membership;
// timeline content stays in the registry.
type Service struct {
	mu    sync.RWMutex
	repo  Repository
	ids   map[string]bool
	order []string
}

// NewWithRepo builds a Service preloaded from repo (when non-nil), then
// merges the initial ids without duplicating.
func NewWithRepo(repo Repository, initial []string) *Service {
	s := &Service{repo: repo, ids: make(map[string]bool)}
	if repo != nil {
		if ids, err := repo.LoadAll(); err == nil {
			for _, id := range ids {
				s.add(id)
			}
		}
	}
	for _, id := range initial {
		s.add(id)
	}
	return s
}

func (s *Service) add(id string) {
	if id == "" || s.ids[id] {
		return
	}
	s.ids[id] = true
	s.order = append(s.order, id)
}

// IsSubscribed reports membership of a timeline id.
func (s *Service) IsSubscribed(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[id]
}

// Toggle flips the subscription for id and returns the new state.
func (s *Service) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[id] {
		delete(s.ids, id)
		out := s.order[:0]
		for _, v := range s.order {
			if v != id {
				out = append(out, v)
			}
		}
		s.order = out
		s.persist()
		return false
	}
	s.add(id)
	s.persist()
	return true
}

// List returns subscribed ids in subscription order.
func (s *Service) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Service) persist() {
	if s.repo == nil {
		return
	}
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	_ = s.repo.SaveAll(ids)
}
