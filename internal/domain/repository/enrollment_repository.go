package repository

import (
	"context"

	"dorakingdom/internal/domain/entity"
)

type EnrollmentRepository interface {
	// Create stores the enrollment and appends the mission id to the user's
	// missions array in one transaction. Returns CONFLICT if the user is
	// already enrolled, so a repeat call can never reset existing progress.
	Create(ctx context.Context, enrollment *entity.Enrollment) error

	GetByUserAndMission(ctx context.Context, userID, missionID string) (*entity.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Enrollment, error)

	// ToggleQuest flips one quest's completed flag transactionally and
	// reports the new state plus whether the flip finished the mission.
	// Callers award badges based on the reported transition, so a flip is
	// observed exactly once even under rapid repeat calls.
	ToggleQuest(ctx context.Context, userID, missionID, questKey string) (newState int, allComplete bool, err error)
}
