package users

import "time"

// User is a player profile. Profiles exist to give leaderboard entries a
// display name; play history works without one.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
