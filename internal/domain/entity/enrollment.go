package entity

import (
	"time"
)

// Enrollment is a user's independent progress copy for one mission. The
// template quests are duplicated here with completion reset, so progress is
// tracked per user without touching the mission document.
type Enrollment struct {
	ID           string           `json:"id" firestore:"id"`
	UserID       string           `json:"userId" firestore:"userId"`
	MissionID    string           `json:"missionId" firestore:"missionId"`
	MissionTitle string           `json:"missionTitle" firestore:"missionTitle"`
	Emoji        string           `json:"emoji" firestore:"emoji"`
	Quests       map[string]Quest `json:"quests" firestore:"quests"`
	StartedAt    time.Time        `json:"startedAt" firestore:"startedAt"`
	UpdatedAt    time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

// EnrollmentID builds the deterministic document key for a user/mission pair.
func EnrollmentID(userID, missionID string) string {
	return userID + "_" + missionID
}

// NewEnrollment copies a mission's quest template with all completion reset.
func NewEnrollment(userID string, mission *Mission) *Enrollment {
	quests := make(map[string]Quest, len(mission.Quests))
	for key, quest := range mission.Quests {
		quest.Completed = 0
		quests[key] = quest
	}

	return &Enrollment{
		ID:           EnrollmentID(userID, mission.ID),
		UserID:       userID,
		MissionID:    mission.ID,
		MissionTitle: mission.Title,
		Emoji:        mission.Emoji,
		Quests:       quests,
	}
}

// AllComplete reports whether every quest in the copy is done.
func (e *Enrollment) AllComplete() bool {
	if len(e.Quests) == 0 {
		return false
	}
	for _, quest := range e.Quests {
		if quest.Completed != 1 {
			return false
		}
	}
	return true
}
