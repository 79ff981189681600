package gamification

import "sync"

// XP awards per action.
const (
	XPEventSaved       = 10
	XPProposalAccepted = 25
	XPTriviaCorrect    = 50
	XPTriviaWrong      = 5
	XPThreadStarted    = 15
)

// Achievement unlocks at a fixed XP threshold.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XP          int    `json:"xp"` // threshold
	IsUnlocked  bool   `json:"is_unlocked"`
}

var achievementSeed = []Achievement{
	{ID: "first_blood", Title: "First Day First Show", Description: "Earn your first XP.", Icon: "🎬", XP: 1},
	{ID: "diary_regular", Title: "Diary Regular", Description: "Reach 100 XP.", Icon: "📔", XP: 100},
	{ID: "trivia_master", Title: "Trivia Master", Description: "Reach 250 XP.", Icon: "🧠", XP: 250},
	{ID: "mass_maharaja", Title: "Mass Maharaja", Description: "Reach 1000 XP.", Icon: "👑", XP: 1000},
}

// Ledger tracks the user's XP total and unlocked achievements.
type Ledger struct {
	mu           sync.RWMutex
	xp           int
	achievements []Achievement
}

func NewLedger() *Ledger {
	l := &Ledger{}
	l.achievements = make([]Achievement, len(achievementSeed))
	copy(l.achievements, achievementSeed)
	return l
}

// Award adds XP and unlocks any achievements whose threshold is now met.
// It returns the achievements newly unlocked by this award.
func (l *Ledger) Award(points int) []Achievement {
	if points <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.xp += points
	var unlocked []Achievement
	for i := range l.achievements {
		if !l.achievements[i].IsUnlocked && l.xp >= l.achievements[i].XP {
			l.achievements[i].IsUnlocked = true
			unlocked = append(unlocked, l.achievements[i])
		}
	}
	return unlocked
}

// XP returns the current total.
func (l *Ledger) XP() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.xp
}

// Level derives the fan level from total XP: one level per 100 XP,
// starting at 1.
func (l *Ledger) Level() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.xp/100 + 1
}

// Achievements returns the achievement list with unlock states.
func (l *Ledger) Achievements() []Achievement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Achievement, len(l.achievements))
	copy(out, l.achievements)
	return out
}
