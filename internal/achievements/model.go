package achievements

import "time"

// Achievement types, unlocked at most once per user.
const (
	TypeGlobeTrotter  = "globe-trotter"  // first completed session
	TypeStreakMaster  = "streak-master"  // completed session with a 10+ streak
	TypePerfectGame   = "perfect-game"   // completed session, 5+ questions, all correct
	TypeWorldExplorer = "world-explorer" // completed sessions across 3+ regions
)

// Achievement records one unlock.
type Achievement struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Type       string    `json:"type"`
	UnlockedAt time.Time `json:"unlockedAt"`
}
