package repository

import (
	"context"

	"dorakingdom/internal/domain/entity"
)

type MissionRepository interface {
	// Create writes the mission document, appends its id to the author's
	// missions array with a silver badge award, and stores the author's
	// enrollment — all in one transaction.
	Create(ctx context.Context, mission *entity.Mission, authorEnrollment *entity.Enrollment) error

	GetByID(ctx context.Context, id string) (*entity.Mission, error)

	// List returns public missions plus the viewer's own private ones.
	// viewerID may be empty for anonymous listings.
	List(ctx context.Context, viewerID string, limit, offset int) ([]*entity.Mission, int64, error)
}
