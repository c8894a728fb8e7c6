package service

import (
	"context"
	"testing"

	"huddle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repository stubs with overridable function fields, shared by the service
// tests in this package.

type userRepoStub struct {
	getByIDFn           func(ctx context.Context, id uint) (*models.User, error)
	findByCredentialsFn func(ctx context.Context, username, password string) (*models.User, error)
	createFn            func(ctx context.Context, user *models.User) error
	updateFn            func(ctx context.Context, user *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	return s.findByCredentialsFn(ctx, username, password)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		findByCredentialsFn: func(_ context.Context, _, _ string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
	}
}

type groupRepoStub struct {
	getByIDFn      func(ctx context.Context, id uint) (*models.Group, error)
	createFn       func(ctx context.Context, group *models.Group) error
	deleteFn       func(ctx context.Context, id uint) error
	listFn         func(ctx context.Context) ([]models.Group, error)
	addMemberFn    func(ctx context.Context, member *models.GroupMember) error
	memberExistsFn func(ctx context.Context, groupID, userID uint) (bool, error)
}

func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}

func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *groupRepoStub) List(ctx context.Context) ([]models.Group, error) {
	return s.listFn(ctx)
}

func (s *groupRepoStub) AddMember(ctx context.Context, member *models.GroupMember) error {
	return s.addMemberFn(ctx, member)
}

func (s *groupRepoStub) MemberExists(ctx context.Context, groupID, userID uint) (bool, error) {
	return s.memberExistsFn(ctx, groupID, userID)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Group, error) {
			return &models.Group{ID: id}, nil
		},
		createFn: func(_ context.Context, _ *models.Group) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		listFn:   func(_ context.Context) ([]models.Group, error) { return nil, nil },
		addMemberFn: func(_ context.Context, _ *models.GroupMember) error {
			return nil
		},
		memberExistsFn: func(_ context.Context, _, _ uint) (bool, error) {
			return false, nil
		},
	}
}

type messageRepoStub struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.Message, error)
	createFn     func(ctx context.Context, message *models.Message) error
	addLikeFn    func(ctx context.Context, like *models.Like) error
	likeExistsFn func(ctx context.Context, messageID, userID uint) (bool, error)
}

func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}

func (s *messageRepoStub) AddLike(ctx context.Context, like *models.Like) error {
	return s.addLikeFn(ctx, like)
}

func (s *messageRepoStub) LikeExists(ctx context.Context, messageID, userID uint) (bool, error) {
	return s.likeExistsFn(ctx, messageID, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Message, error) {
			return &models.Message{ID: id}, nil
		},
		createFn:  func(_ context.Context, _ *models.Message) error { return nil },
		addLikeFn: func(_ context.Context, _ *models.Like) error { return nil },
		likeExistsFn: func(_ context.Context, _, _ uint) (bool, error) {
			return false, nil
		},
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}
