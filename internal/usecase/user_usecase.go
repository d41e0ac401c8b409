package usecase

import (
	"context"
	"sort"
	"time"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/domain/repository"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/logger"
)

type UserUseCase struct {
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	identity       IdentityProvider
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
	identity IdentityProvider,
) *UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		identity:       identity,
	}
}

// SyncUser creates the user document on first sign-in, or refreshes the
// identity snapshot on later calls. Idempotent.
func (uc *UserUseCase) SyncUser(ctx context.Context, uid string) (*entity.User, error) {
	snapshot, err := uc.identity.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to fetch identity profile", err)
	}

	existing, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		existing.Username = snapshot.DisplayName
		existing.PhotoURL = snapshot.PhotoURL
		existing.Email = snapshot.Email
		if err := uc.userRepo.Update(ctx, existing); err != nil {
			logger.Warn("Failed to refresh user snapshot for %s: %v", uid, err)
		}
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		ID:       uid,
		Username: snapshot.DisplayName,
		Email:    snapshot.Email,
		PhotoURL: snapshot.PhotoURL,
		Badges:   entity.Badges{},
		Missions: []string{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created user document for %s", uid)
	return user, nil
}

type ProfileResponse struct {
	User        *entity.User         `json:"user"`
	Points      int                  `json:"points"`
	Enrollments []*entity.Enrollment `json:"enrollments"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	enrollments, err := uc.enrollmentRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		User:        user,
		Points:      user.Badges.Points(),
		Enrollments: enrollments,
	}, nil
}

type CheckInResult struct {
	Awarded bool `json:"awarded"`
	Points  int  `json:"points"`
}

// DailyCheckIn awards the once-per-calendar-day bonus. The eligibility
// comparison and write are a single transactional unit in the repository,
// so concurrent calls on the same day award at most once.
func (uc *UserUseCase) DailyCheckIn(ctx context.Context, uid string) (*CheckInResult, error) {
	awarded, user, err := uc.userRepo.CheckIn(ctx, uid, time.Now())
	if err != nil {
		return nil, err
	}

	if awarded {
		logger.Info("Daily check-in awarded to %s", uid)
	}

	return &CheckInResult{
		Awarded: awarded,
		Points:  user.Badges.Points(),
	}, nil
}

// Leaderboard ranks all users by derived points descending. Ties break by
// ascending user id so the ordering is deterministic.
func (uc *UserUseCase) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, entity.LeaderboardEntry{
			UserID:   user.ID,
			Username: user.Username,
			PhotoURL: user.PhotoURL,
			Badges:   user.Badges,
			Points:   user.Badges.Points(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
