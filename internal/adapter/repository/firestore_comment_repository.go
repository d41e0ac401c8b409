package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/domain/repository"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/logger"
)

type firestoreCommentRepository struct {
	client *firestore.Client
}

func NewFirestoreCommentRepository(client *firestore.Client) repository.CommentRepository {
	return &firestoreCommentRepository{
		client: client,
	}
}

func (r *firestoreCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	comment.CreatedAt = time.Now()

	_, err := r.client.Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}

	return nil
}

func (r *firestoreCommentRepository) ListByMission(ctx context.Context, missionID string, limit, offset int) ([]*entity.Comment, int64, error) {
	query := r.client.Collection("comments").Where("missionId", "==", missionID).OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch comments", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var comments []*entity.Comment
	for i := start; i < end; i++ {
		var comment entity.Comment
		if err := allDocs[i].DataTo(&comment); err != nil {
			logger.Warn("Skipping undecodable comment %s: %v", allDocs[i].Ref.ID, err)
			continue
		}
		comments = append(comments, &comment)
	}

	return comments, total, nil
}
