package prefs

import (
	"fmt"
	"sync"
)

type Language string

const (
	LanguageEnglish Language = "EN"
	LanguageTelugu  Language = "TE"
)

// Preferences captures the onboarding answers. Completion gates access to
// the rest of the application.
type Preferences struct {
	FavoriteHeroes         []string `json:"favorite_heroes"`
	Interests              []string `json:"interests"`
	HasCompletedOnboarding bool     `json:"has_completed_onboarding"`
	Language               Language `json:"language,omitempty"`
}

// Service owns the user's preferences. Set once at onboarding completion,
// read-only afterwards except explicit settings edits.
type Service struct {
	mu    sync.RWMutex
	prefs *Preferences
}

func NewService() *Service {
	return &Service{}
}

// Complete stores the onboarding answers and marks onboarding done.
func (s *Service) Complete(p Preferences) error {
	if len(p.FavoriteHeroes) == 0 && len(p.Interests) == 0 {
		return fmt.Errorf("pick at least one hero or interest")
	}
	if p.Language == "" {
		p.Language = LanguageEnglish
	}
	p.HasCompletedOnboarding = true
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = &p
	return nil
}

// Get returns a copy of the preferences, or nil before onboarding.
func (s *Service) Get() *Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.prefs == nil {
		return nil
	}
	out := *s.prefs
	return &out
}

// IsOnboarded reports whether onboarding finished.
func (s *Service) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs != nil && s.prefs.HasCompletedOnboarding
}

// SetLanguage switches the display language after onboarding.
func (s *Service) SetLanguage(lang Language) error {
	if lang != LanguageEnglish && lang != LanguageTelugu {
		return fmt.Errorf("unknown language: %s", lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prefs == nil {
		return fmt.Errorf("onboarding not completed")
	}
	s.prefs.Language = lang
	return nil
}
