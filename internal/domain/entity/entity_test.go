package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBadgesPoints(t *testing.T) {
	assert.Equal(t, 0, Badges{}.Points())
	assert.Equal(t, 1, Badges{Bronze: 1}.Points())
	assert.Equal(t, 10, Badges{Silver: 1}.Points())
	assert.Equal(t, 100, Badges{Gold: 1}.Points())
	assert.Equal(t, 234, Badges{Gold: 2, Silver: 3, Bronze: 4}.Points())
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 5, 0, 0, time.Local)
	night := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2025, 3, 11, 0, 1, 0, 0, time.Local)

	assert.True(t, SameCalendarDay(morning, night))
	// 23:59 to 00:01 is two minutes apart but a different day
	assert.False(t, SameCalendarDay(night, nextDay))
}

func TestNewEnrollmentResetsProgress(t *testing.T) {
	mission := &Mission{
		ID:    "m1",
		Title: "Learn Go",
		Emoji: "🎯",
		Quests: map[string]Quest{
			"Q1": {ID: "q1", QuestName: "a", Completed: 1},
			"Q2": {ID: "q2", QuestName: "b", Completed: 0},
		},
	}

	enrollment := NewEnrollment("alice", mission)

	assert.Equal(t, "alice_m1", enrollment.ID)
	assert.Equal(t, "Learn Go", enrollment.MissionTitle)
	for key, quest := range enrollment.Quests {
		assert.Equal(t, 0, quest.Completed, "quest %s", key)
	}

	// The copy is independent of the template
	q := enrollment.Quests["Q1"]
	q.Completed = 1
	enrollment.Quests["Q1"] = q
	assert.Equal(t, 1, mission.Quests["Q1"].Completed)
}

func TestAllComplete(t *testing.T) {
	e := &Enrollment{Quests: map[string]Quest{}}
	assert.False(t, e.AllComplete(), "empty quest set is never complete")

	e.Quests["Q1"] = Quest{Completed: 1}
	e.Quests["Q2"] = Quest{Completed: 0}
	assert.False(t, e.AllComplete())

	e.Quests["Q2"] = Quest{Completed: 1}
	assert.True(t, e.AllComplete())
}

func TestHasMission(t *testing.T) {
	u := &User{Missions: []string{"m1", "m2"}}
	assert.True(t, u.HasMission("m1"))
	assert.False(t, u.HasMission("m3"))
}
