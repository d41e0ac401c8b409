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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
	}

	// Only refresh identity snapshot fields that were actually provided
	if user.Username != "" {
		updateData["username"] = user.Username
	}
	if user.PhotoURL != "" {
		updateData["photoURL"] = user.PhotoURL
	}
	if user.Email != "" {
		updateData["email"] = user.Email
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, updateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	iter := r.client.Collection("users").Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		if user.ID == "" {
			user.ID = doc.Ref.ID
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *firestoreUserRepository) IncrementBadges(ctx context.Context, userID string, delta entity.Badges) error {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}

	if delta.Gold != 0 {
		updates = append(updates, firestore.Update{Path: "badges.gold", Value: firestore.Increment(delta.Gold)})
	}
	if delta.Silver != 0 {
		updates = append(updates, firestore.Update{Path: "badges.silver", Value: firestore.Increment(delta.Silver)})
	}
	if delta.Bronze != 0 {
		updates = append(updates, firestore.Update{Path: "badges.bronze", Value: firestore.Increment(delta.Bronze)})
	}

	_, err := r.client.Collection("users").Doc(userID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update badges", err)
	}

	return nil
}

func (r *firestoreUserRepository) CheckIn(ctx context.Context, userID string, now time.Time) (bool, *entity.User, error) {
	docRef := r.client.Collection("users").Doc(userID)

	var awarded bool
	var user entity.User

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		if err := doc.DataTo(&user); err != nil {
			return err
		}

		if !user.LastLogin.IsZero() && entity.SameCalendarDay(user.LastLogin, now) {
			awarded = false
			return nil
		}

		awarded = true
		user.Badges.Bronze++
		user.LastLogin = now
		user.UpdatedAt = now

		return tx.Update(docRef, []firestore.Update{
			{Path: "badges.bronze", Value: user.Badges.Bronze},
			{Path: "lastLogin", Value: now},
			{Path: "updatedAt", Value: now},
		})
	})

	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil, errors.NotFound("User", err)
		}
		return false, nil, errors.Internal("Failed to process check-in", err)
	}

	return awarded, &user, nil
}
