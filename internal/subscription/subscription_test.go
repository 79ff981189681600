package subscription

import (
	"path/filepath"
	"testing"
)

func TestToggle(t *testing.T) {
	s := NewWithRepo(nil, []string{"official_channels"})

	if !s.IsSubscribed("official_channels") {
		t.Error("initial id should be subscribed")
	}
	if s.IsSubscribed("prabhas_core") {
		t.Error("unknown id should not be subscribed")
	}

	if on := s.Toggle("prabhas_core"); !on {
		t.Error("first toggle should subscribe")
	}
	if on := s.Toggle("prabhas_core"); on {
		t.Error("second toggle should unsubscribe")
	}
	if s.IsSubscribed("prabhas_core") {
		t.Error("id should be gone after toggle off")
	}
	if !s.IsSubscribed("official_channels") {
		t.Error("other subscriptions must be unaffected")
	}
}

func TestOrderPreserved(t *testing.T) {
	s := NewWithRepo(nil, nil)
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("c")
	s.Toggle("b")

	got := s.List()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("expected [a c], got %v", got)
	}
}

func TestFileRepoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")
	repo, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}

	s := NewWithRepo(repo, nil)
	s.Toggle("t1")
	s.Toggle("t2")

	// fresh service reads what the first persisted
	s2 := NewWithRepo(repo, nil)
	got := s2.List()
	if len(got) != 2 || got[0] != "t1" || got[1] != "t2" {
		t.Errorf("expected [t1 t2] after reload, got %v", got)
	}
}

func TestFileRepoEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")
	repo, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	ids, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no ids from empty file, got %v", ids)
	}
}
