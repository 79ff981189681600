package gamification

import "testing"

func TestAwardAccumulates(t *testing.T) {
	l := NewLedger()
	l.Award(XPEventSaved)
	l.Award(XPProposalAccepted)
	if l.XP() != 35 {
		t.Errorf("expected 35 XP, got %d", l.XP())
	}
}

func TestAwardIgnoresNonPositive(t *testing.T) {
	l := NewLedger()
	if got := l.Award(0); got != nil {
		t.Errorf("zero award must not unlock anything, got %v", got)
	}
	l.Award(-5)
	if l.XP() != 0 {
		t.Errorf("negative award must not change XP, got %d", l.XP())
	}
}

func TestAchievementUnlocks(t *testing.T) {
	l := NewLedger()

	unlocked := l.Award(XPEventSaved)
	if len(unlocked) != 1 || unlocked[0].ID != "first_blood" {
		t.Errorf("expected first_blood unlock, got %v", unlocked)
	}

	// same achievement never unlocks twice
	if again := l.Award(XPEventSaved); len(again) != 0 {
		t.Errorf("expected no new unlocks, got %v", again)
	}

	unlocked = l.Award(100)
	if len(unlocked) != 1 || unlocked[0].ID != "diary_regular" {
		t.Errorf("expected diary_regular at 100 XP, got %v", unlocked)
	}
}

func TestLevel(t *testing.T) {
	l := NewLedger()
	if l.Level() != 1 {
		t.Errorf("fresh ledger should be level 1, got %d", l.Level())
	}
	l.Award(250)
	if l.Level() != 3 {
		t.Errorf("250 XP should be level 3, got %d", l.Level())
	}
}
