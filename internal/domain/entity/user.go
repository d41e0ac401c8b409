package entity

import (
	"time"
)

// Badges holds the three achievement counters. Points are always derived
// from these, never stored.
type Badges struct {
	Gold   int `json:"gold" firestore:"gold"`
	Silver int `json:"silver" firestore:"silver"`
	Bronze int `json:"bronze" firestore:"bronze"`
}

// Points computes the ranking score: gold*100 + silver*10 + bronze.
func (b Badges) Points() int {
	return b.Gold*100 + b.Silver*10 + b.Bronze
}

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Username  string    `json:"username" firestore:"username"`
	Email     string    `json:"email" firestore:"email"`
	PhotoURL  string    `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Badges    Badges    `json:"badges" firestore:"badges"`
	Missions  []string  `json:"missions" firestore:"missions"`
	LastLogin time.Time `json:"last_login" firestore:"lastLogin"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasMission reports whether the mission id is in the user's joined set.
func (u *User) HasMission(missionID string) bool {
	for _, id := range u.Missions {
		if id == missionID {
			return true
		}
	}
	return false
}

// SameCalendarDay compares local date components, not elapsed time. A
// check-in at 23:59 is eligible again at 00:00.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// LeaderboardEntry is a user projected for ranking, with derived points.
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	PhotoURL string `json:"photo_url,omitempty"`
	Badges   Badges `json:"badges"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
}
