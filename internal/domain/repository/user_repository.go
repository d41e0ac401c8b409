package repository

import (
	"context"
	"time"

	"dorakingdom/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)

	// IncrementBadges applies an atomic counter delta to the badge fields.
	IncrementBadges(ctx context.Context, userID string, delta entity.Badges) error

	// CheckIn awards the once-per-calendar-day bonus. The eligibility check
	// and the write happen in a single transaction; awarded is false when the
	// stored lastLogin already falls on now's calendar date. The returned
	// user reflects the state after the call.
	CheckIn(ctx context.Context, userID string, now time.Time) (awarded bool, user *entity.User, err error)
}
