package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/domain/repository"
	"dorakingdom/pkg/errors"
)

type CommentUseCase struct {
	commentRepo repository.CommentRepository
	missionRepo repository.MissionRepository
	userRepo    repository.UserRepository
}

func NewCommentUseCase(
	commentRepo repository.CommentRepository,
	missionRepo repository.MissionRepository,
	userRepo repository.UserRepository,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		missionRepo: missionRepo,
		userRepo:    userRepo,
	}
}

func (uc *CommentUseCase) PostComment(ctx context.Context, userID, missionID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Comment text must not be empty", nil)
	}

	if _, err := uc.missionRepo.GetByID(ctx, missionID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:        uuid.New().String(),
		MissionID: missionID,
		Text:      text,
		UserID:    user.ID,
		UserName:  user.Username,
		UserPhoto: user.PhotoURL,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (uc *CommentUseCase) ListComments(ctx context.Context, missionID string, limit, offset int) ([]*entity.Comment, int64, error) {
	return uc.commentRepo.ListByMission(ctx, missionID, limit, offset)
}
