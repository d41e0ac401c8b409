package repository

import (
	"context"

	"dorakingdom/internal/domain/entity"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByMission(ctx context.Context, missionID string, limit, offset int) ([]*entity.Comment, int64, error)
}
