package entity

import (
	"time"
)

// Comment is a discussion entry on a mission. Author fields are a snapshot
// taken at post time; comments are never edited or deleted in-app.
type Comment struct {
	ID        string    `json:"id" firestore:"id"`
	MissionID string    `json:"missionId" firestore:"missionId"`
	Text      string    `json:"text" firestore:"text"`
	UserID    string    `json:"userId" firestore:"userId"`
	UserName  string    `json:"userName" firestore:"userName"`
	UserPhoto string    `json:"userPhoto,omitempty" firestore:"userPhoto,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
