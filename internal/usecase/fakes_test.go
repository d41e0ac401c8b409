package usecase

import (
	"context"
	"time"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/internal/infrastructure/firebase"
	"dorakingdom/pkg/errors"
)

// In-memory repository fakes mirroring the Firestore adapters' transactional
// contracts closely enough for use case tests.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) IncrementBadges(ctx context.Context, userID string, delta entity.Badges) error {
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Badges.Gold += delta.Gold
	user.Badges.Silver += delta.Silver
	user.Badges.Bronze += delta.Bronze
	return nil
}

func (r *fakeUserRepo) CheckIn(ctx context.Context, userID string, now time.Time) (bool, *entity.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return false, nil, errors.NotFound("User", nil)
	}
	if !user.LastLogin.IsZero() && entity.SameCalendarDay(user.LastLogin, now) {
		return false, user, nil
	}
	user.Badges.Bronze++
	user.LastLogin = now
	return true, user, nil
}

type fakeMissionRepo struct {
	missions    map[string]*entity.Mission
	enrollments *fakeEnrollmentRepo
	users       *fakeUserRepo
}

func newFakeMissionRepo(enrollments *fakeEnrollmentRepo, users *fakeUserRepo, missions ...*entity.Mission) *fakeMissionRepo {
	repo := &fakeMissionRepo{
		missions:    make(map[string]*entity.Mission),
		enrollments: enrollments,
		users:       users,
	}
	for _, m := range missions {
		repo.missions[m.ID] = m
	}
	return repo
}

func (r *fakeMissionRepo) Create(ctx context.Context, mission *entity.Mission, authorEnrollment *entity.Enrollment) error {
	author, ok := r.users.users[mission.CreatedBy.UserID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	r.missions[mission.ID] = mission
	author.Missions = append(author.Missions, mission.ID)
	author.Badges.Silver++
	r.enrollments.enrollments[authorEnrollment.ID] = authorEnrollment
	return nil
}

func (r *fakeMissionRepo) GetByID(ctx context.Context, id string) (*entity.Mission, error) {
	mission, ok := r.missions[id]
	if !ok {
		return nil, errors.NotFound("Mission", nil)
	}
	return mission, nil
}

func (r *fakeMissionRepo) List(ctx context.Context, viewerID string, limit, offset int) ([]*entity.Mission, int64, error) {
	var visible []*entity.Mission
	for _, m := range r.missions {
		if !m.IsPrivate || m.CreatedBy.UserID == viewerID {
			visible = append(visible, m)
		}
	}
	return visible, int64(len(visible)), nil
}

type fakeEnrollmentRepo struct {
	enrollments map[string]*entity.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[string]*entity.Enrollment)}
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	if _, ok := r.enrollments[enrollment.ID]; ok {
		return errors.Conflict("Already enrolled in this mission")
	}
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) GetByUserAndMission(ctx context.Context, userID, missionID string) (*entity.Enrollment, error) {
	enrollment, ok := r.enrollments[entity.EnrollmentID(userID, missionID)]
	if !ok {
		return nil, errors.NotFound("Enrollment", nil)
	}
	return enrollment, nil
}

func (r *fakeEnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Enrollment, error) {
	var result []*entity.Enrollment
	for _, e := range r.enrollments {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEnrollmentRepo) ToggleQuest(ctx context.Context, userID, missionID, questKey string) (int, bool, error) {
	enrollment, ok := r.enrollments[entity.EnrollmentID(userID, missionID)]
	if !ok {
		return 0, false, errors.NotFound("Enrollment", nil)
	}
	quest, ok := enrollment.Quests[questKey]
	if !ok {
		return 0, false, errors.NotFound("Quest", nil)
	}
	if quest.Completed == 1 {
		quest.Completed = 0
	} else {
		quest.Completed = 1
	}
	enrollment.Quests[questKey] = quest
	return quest.Completed, enrollment.AllComplete(), nil
}

type fakeCommentRepo struct {
	comments []*entity.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) ListByMission(ctx context.Context, missionID string, limit, offset int) ([]*entity.Comment, int64, error) {
	var result []*entity.Comment
	for _, c := range r.comments {
		if c.MissionID == missionID {
			result = append(result, c)
		}
	}
	return result, int64(len(result)), nil
}

type fakeIdentity struct {
	snapshots map[string]*firebase.IdentitySnapshot
}

func (f *fakeIdentity) GetUser(ctx context.Context, uid string) (*firebase.IdentitySnapshot, error) {
	snapshot, ok := f.snapshots[uid]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return snapshot, nil
}

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
