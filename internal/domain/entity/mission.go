package entity

import (
	"time"
)

// Quest is one actionable step inside a mission template. Completed is kept
// as 0/1 to match the stored document format.
type Quest struct {
	ID        string `json:"id" firestore:"id"`
	QuestName string `json:"questName" firestore:"questName"`
	Completed int    `json:"completed" firestore:"completed"`
	Order     int    `json:"order,omitempty" firestore:"order,omitempty"`
}

// MissionCreator is a denormalized author snapshot, not a live reference.
type MissionCreator struct {
	UserID   string `json:"userId" firestore:"userId"`
	Username string `json:"username" firestore:"username"`
	Email    string `json:"email" firestore:"email"`
}

// Mission is a user-authored learning goal. The quests map is the template;
// per-user completion state lives on Enrollment, never here. The template is
// immutable after creation.
type Mission struct {
	ID          string           `json:"id" firestore:"id"`
	Title       string           `json:"title" firestore:"title"`
	Description string           `json:"description" firestore:"description"`
	Emoji       string           `json:"emoji" firestore:"emoji"`
	IsPrivate   bool             `json:"isPrivate" firestore:"isPrivate"`
	CreatedBy   MissionCreator   `json:"createdBy" firestore:"createdBy"`
	Quests      map[string]Quest `json:"quests" firestore:"quests"`
	CreatedAt   time.Time        `json:"createdAt" firestore:"createdAt"`
}

const (
	MinQuests = 3
	MaxQuests = 5
)
