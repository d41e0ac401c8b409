package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/pkg/errors"
)

func newCommentFixture(t *testing.T) (*CommentUseCase, *entity.Mission) {
	t.Helper()

	userRepo := newFakeUserRepo(&entity.User{ID: "alice", Username: "Alice", PhotoURL: "pic"})
	enrollmentRepo := newFakeEnrollmentRepo()
	mission := &entity.Mission{ID: "m1", Title: "Learn Go", CreatedBy: entity.MissionCreator{UserID: "alice"}}
	missionRepo := newFakeMissionRepo(enrollmentRepo, userRepo, mission)

	return NewCommentUseCase(&fakeCommentRepo{}, missionRepo, userRepo), mission
}

func TestPostComment(t *testing.T) {
	uc, mission := newCommentFixture(t)

	comment, err := uc.PostComment(context.Background(), "alice", mission.ID, "  Nice mission!  ")
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "Nice mission!", comment.Text)
	assert.Equal(t, "Alice", comment.UserName)
	assert.Equal(t, "pic", comment.UserPhoto)

	comments, total, err := uc.ListComments(context.Background(), mission.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, comments, 1)
}

func TestPostCommentValidation(t *testing.T) {
	uc, mission := newCommentFixture(t)
	ctx := context.Background()

	_, err := uc.PostComment(ctx, "alice", mission.ID, "   ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.PostComment(ctx, "alice", "no-such-mission", "hello")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
