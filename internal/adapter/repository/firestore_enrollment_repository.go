package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/domain/repository"
	"dorakingdom/pkg/errors"
)

type firestoreEnrollmentRepository struct {
	client *firestore.Client
}

func NewFirestoreEnrollmentRepository(client *firestore.Client) repository.EnrollmentRepository {
	return &firestoreEnrollmentRepository{
		client: client,
	}
}

func (r *firestoreEnrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	now := time.Now()
	enrollment.StartedAt = now
	enrollment.UpdatedAt = now

	enrollmentRef := r.client.Collection("enrollments").Doc(enrollment.ID)
	userRef := r.client.Collection("users").Doc(enrollment.UserID)

	alreadyEnrolled := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Get(enrollmentRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil && existing.Exists() {
			// Enrolling twice must never reset progress
			alreadyEnrolled = true
			return nil
		}

		if err := tx.Set(enrollmentRef, enrollment); err != nil {
			return err
		}

		return tx.Update(userRef, []firestore.Update{
			{Path: "missions", Value: firestore.ArrayUnion(enrollment.MissionID)},
			{Path: "updatedAt", Value: now},
		})
	})

	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to create enrollment", err)
	}

	if alreadyEnrolled {
		return errors.Conflict("Already enrolled in this mission")
	}

	return nil
}

func (r *firestoreEnrollmentRepository) GetByUserAndMission(ctx context.Context, userID, missionID string) (*entity.Enrollment, error) {
	doc, err := r.client.Collection("enrollments").Doc(entity.EnrollmentID(userID, missionID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Enrollment", err)
		}
		return nil, errors.Internal("Failed to get enrollment", err)
	}

	var enrollment entity.Enrollment
	if err := doc.DataTo(&enrollment); err != nil {
		return nil, errors.Internal("Failed to parse enrollment data", err)
	}

	return &enrollment, nil
}

func (r *firestoreEnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Enrollment, error) {
	iter := r.client.Collection("enrollments").Where("userId", "==", userID).OrderBy("startedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var enrollments []*entity.Enrollment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate enrollments", err)
		}

		var enrollment entity.Enrollment
		if err := doc.DataTo(&enrollment); err != nil {
			return nil, errors.Internal("Failed to parse enrollment data", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	return enrollments, nil
}

func (r *firestoreEnrollmentRepository) ToggleQuest(ctx context.Context, userID, missionID, questKey string) (int, bool, error) {
	docRef := r.client.Collection("enrollments").Doc(entity.EnrollmentID(userID, missionID))

	var newState int
	var allComplete bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var enrollment entity.Enrollment
		if err := doc.DataTo(&enrollment); err != nil {
			return err
		}

		quest, ok := enrollment.Quests[questKey]
		if !ok {
			return errors.NotFound("Quest", nil)
		}

		if quest.Completed == 1 {
			quest.Completed = 0
		} else {
			quest.Completed = 1
		}
		enrollment.Quests[questKey] = quest

		newState = quest.Completed
		allComplete = enrollment.AllComplete()

		return tx.Update(docRef, []firestore.Update{
			{Path: "quests." + questKey + ".completed", Value: newState},
			{Path: "updatedAt", Value: time.Now()},
		})
	})

	if err != nil {
		// Quest-not-found comes out of the transaction already wrapped
		if errors.Is(err, "NOT_FOUND") {
			return 0, false, err
		}
		if status.Code(err) == codes.NotFound {
			return 0, false, errors.NotFound("Enrollment", err)
		}
		return 0, false, errors.Internal("Failed to toggle quest", err)
	}

	return newState, allComplete, nil
}
