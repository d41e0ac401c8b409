package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/domain/repository"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/logger"
)

const defaultEmoji = "🎯"

type MissionUseCase struct {
	missionRepo     repository.MissionRepository
	enrollmentRepo  repository.EnrollmentRepository
	userRepo        repository.UserRepository
	weeklyMissionID string
}

func NewMissionUseCase(
	missionRepo repository.MissionRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	weeklyMissionID string,
) *MissionUseCase {
	return &MissionUseCase{
		missionRepo:     missionRepo,
		enrollmentRepo:  enrollmentRepo,
		userRepo:        userRepo,
		weeklyMissionID: weeklyMissionID,
	}
}

type CreateMissionInput struct {
	Title       string
	Description string
	Emoji       string
	IsPrivate   bool
	Quests      []string
}

func (uc *MissionUseCase) CreateMission(ctx context.Context, authorID string, input CreateMissionInput) (*entity.Mission, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}
	if description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}
	if len(input.Quests) < entity.MinQuests || len(input.Quests) > entity.MaxQuests {
		return nil, errors.BadRequest(
			fmt.Sprintf("A mission needs %d to %d quests", entity.MinQuests, entity.MaxQuests), nil)
	}
	for _, name := range input.Quests {
		if strings.TrimSpace(name) == "" {
			return nil, errors.BadRequest("Quest names must not be empty", nil)
		}
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	emoji := input.Emoji
	if emoji == "" {
		emoji = defaultEmoji
	}

	quests := make(map[string]entity.Quest, len(input.Quests))
	for i, name := range input.Quests {
		key := fmt.Sprintf("Q%d", i+1)
		quests[key] = entity.Quest{
			ID:        fmt.Sprintf("q%d", i+1),
			QuestName: strings.TrimSpace(name),
			Completed: 0,
			Order:     i + 1,
		}
	}

	mission := &entity.Mission{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Emoji:       emoji,
		IsPrivate:   input.IsPrivate,
		CreatedBy: entity.MissionCreator{
			UserID:   author.ID,
			Username: author.Username,
			Email:    author.Email,
		},
		Quests: quests,
	}

	// Mission doc, author's missions array, silver badge and the author's
	// own enrollment commit as one unit
	enrollment := entity.NewEnrollment(authorID, mission)
	if err := uc.missionRepo.Create(ctx, mission, enrollment); err != nil {
		return nil, err
	}

	logger.Info("Mission %s created by %s", mission.ID, authorID)
	return mission, nil
}

func (uc *MissionUseCase) GetMission(ctx context.Context, viewerID, missionID string) (*entity.Mission, error) {
	mission, err := uc.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		return nil, err
	}

	// Private missions are only visible to their author
	if mission.IsPrivate && mission.CreatedBy.UserID != viewerID {
		return nil, errors.NotFound("Mission", nil)
	}

	return mission, nil
}

func (uc *MissionUseCase) ListMissions(ctx context.Context, viewerID string, limit, offset int) ([]*entity.Mission, int64, error) {
	return uc.missionRepo.List(ctx, viewerID, limit, offset)
}

// GetWeeklyMission returns the configured weekly challenge.
func (uc *MissionUseCase) GetWeeklyMission(ctx context.Context) (*entity.Mission, error) {
	if uc.weeklyMissionID == "" {
		return nil, errors.NotFound("Weekly challenge", nil)
	}
	return uc.missionRepo.GetByID(ctx, uc.weeklyMissionID)
}

func (uc *MissionUseCase) Enroll(ctx context.Context, userID, missionID string) (*entity.Enrollment, error) {
	mission, err := uc.GetMission(ctx, userID, missionID)
	if err != nil {
		return nil, err
	}

	enrollment := entity.NewEnrollment(userID, mission)
	if err := uc.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	logger.Info("User %s enrolled in mission %s", userID, missionID)
	return enrollment, nil
}

func (uc *MissionUseCase) GetProgress(ctx context.Context, userID, missionID string) (*entity.Enrollment, error) {
	return uc.enrollmentRepo.GetByUserAndMission(ctx, userID, missionID)
}

type ToggleQuestResult struct {
	Completed   int           `json:"completed"`
	AllComplete bool          `json:"allComplete"`
	Awarded     entity.Badges `json:"awarded"`
}

// ToggleQuest flips a quest's completion in the caller's progress copy.
// Badges move only on the incomplete-to-complete transition: a regular
// mission quest earns two bronze, a weekly challenge quest earns one bronze
// plus one gold when it finishes the whole challenge. Toggling off never
// takes badges back.
func (uc *MissionUseCase) ToggleQuest(ctx context.Context, userID, missionID, questKey string) (*ToggleQuestResult, error) {
	if _, err := uc.missionRepo.GetByID(ctx, missionID); err != nil {
		return nil, err
	}

	newState, allComplete, err := uc.enrollmentRepo.ToggleQuest(ctx, userID, missionID, questKey)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			// A bad quest key and a missing enrollment both surface as
			// NOT_FOUND from the repo; only the latter means not enrolled
			if _, getErr := uc.enrollmentRepo.GetByUserAndMission(ctx, userID, missionID); getErr != nil {
				return nil, errors.New("NOT_ENROLLED", "You are not enrolled in this mission", http.StatusForbidden, err)
			}
			return nil, errors.NotFound("Quest", err)
		}
		return nil, err
	}

	result := &ToggleQuestResult{
		Completed:   newState,
		AllComplete: allComplete,
	}

	if newState == 1 {
		if missionID == uc.weeklyMissionID {
			result.Awarded.Bronze = 1
			if allComplete {
				result.Awarded.Gold = 1
			}
		} else {
			result.Awarded.Bronze = 2
		}

		if err := uc.userRepo.IncrementBadges(ctx, userID, result.Awarded); err != nil {
			return nil, err
		}
	}

	return result, nil
}
