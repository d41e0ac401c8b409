package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/domain/repository"
	"dorakingdom/pkg/errors"
)

type firestoreMissionRepository struct {
	client *firestore.Client
}

func NewFirestoreMissionRepository(client *firestore.Client) repository.MissionRepository {
	return &firestoreMissionRepository{
		client: client,
	}
}

func (r *firestoreMissionRepository) Create(ctx context.Context, mission *entity.Mission, authorEnrollment *entity.Enrollment) error {
	now := time.Now()
	mission.CreatedAt = now
	authorEnrollment.StartedAt = now
	authorEnrollment.UpdatedAt = now

	missionRef := r.client.Collection("missions").Doc(mission.ID)
	userRef := r.client.Collection("users").Doc(mission.CreatedBy.UserID)
	enrollmentRef := r.client.Collection("enrollments").Doc(authorEnrollment.ID)

	// All three writes commit together or not at all
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(userRef); err != nil {
			return err
		}

		if err := tx.Set(missionRef, mission); err != nil {
			return err
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "missions", Value: firestore.ArrayUnion(mission.ID)},
			{Path: "badges.silver", Value: firestore.Increment(1)},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}

		return tx.Set(enrollmentRef, authorEnrollment)
	})

	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to create mission", err)
	}

	return nil
}

func (r *firestoreMissionRepository) GetByID(ctx context.Context, id string) (*entity.Mission, error) {
	doc, err := r.client.Collection("missions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Mission", err)
		}
		return nil, errors.Internal("Failed to get mission", err)
	}

	var mission entity.Mission
	if err := doc.DataTo(&mission); err != nil {
		return nil, errors.Internal("Failed to parse mission data", err)
	}
	if mission.ID == "" {
		mission.ID = doc.Ref.ID
	}

	return &mission, nil
}

func (r *firestoreMissionRepository) List(ctx context.Context, viewerID string, limit, offset int) ([]*entity.Mission, int64, error) {
	query := r.client.Collection("missions").Where("isPrivate", "==", false).OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch missions", err)
	}

	missions := make([]*entity.Mission, 0, len(allDocs))
	seen := make(map[string]bool, len(allDocs))
	for _, doc := range allDocs {
		mission, err := decodeMission(doc)
		if err != nil {
			return nil, 0, err
		}
		missions = append(missions, mission)
		seen[mission.ID] = true
	}

	// The viewer also sees their own private missions
	if viewerID != "" {
		ownDocs, err := r.client.Collection("missions").
			Where("isPrivate", "==", true).
			Where("createdBy.userId", "==", viewerID).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, 0, errors.Internal("Failed to fetch private missions", err)
		}

		for _, doc := range ownDocs {
			mission, err := decodeMission(doc)
			if err != nil {
				return nil, 0, err
			}
			if !seen[mission.ID] {
				missions = append(missions, mission)
			}
		}
	}

	total := int64(len(missions))

	// Paginate in memory; mission counts are small
	start := offset
	if start > len(missions) {
		start = len(missions)
	}
	end := len(missions)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return missions[start:end], total, nil
}

func decodeMission(doc *firestore.DocumentSnapshot) (*entity.Mission, error) {
	var mission entity.Mission
	if err := doc.DataTo(&mission); err != nil {
		return nil, errors.Internal("Failed to parse mission data", err)
	}
	if mission.ID == "" {
		mission.ID = doc.Ref.ID
	}
	return &mission, nil
}
