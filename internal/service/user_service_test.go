package service

import (
	"context"
	"testing"

	"huddle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("exact match succeeds", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.findByCredentialsFn = func(_ context.Context, username, password string) (*models.User, error) {
			if username == "alice" && password == "pw1" {
				return &models.User{ID: 1, Username: "alice"}, nil
			}
			return nil, nil
		}
		svc := NewUserService(repo)

		require.NoError(t, svc.Authenticate(context.Background(), "alice", "pw1"))
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		svc := NewUserService(repo)

		errWrongPw := svc.Authenticate(context.Background(), "alice", "nope")
		errUnknown := svc.Authenticate(context.Background(), "nobody", "pw1")

		assertCode(t, errWrongPw, models.CodeInvalidCredentials)
		assertCode(t, errUnknown, models.CodeInvalidCredentials)
		assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
	})
}

func TestUserService_CreateUser_NoValidation(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, u *models.User) error {
		created = u
		u.ID = 5
		return nil
	}
	svc := NewUserService(repo)

	// Empty fields are accepted; the insert is unconditional.
	user, err := svc.CreateUser(context.Background(), "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, user.ID)
	require.NotNil(t, created)
	assert.Empty(t, created.Username)
	assert.Empty(t, created.Password)
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("overwrites both fields", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "old", Password: "oldpw"}, nil
		}
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		user, err := svc.UpdateUser(context.Background(), 1, "new", "newpw")
		require.NoError(t, err)
		assert.Equal(t, "new", user.Username)
		assert.Equal(t, "newpw", user.Password)
		require.NotNil(t, saved)
		assert.Equal(t, "new", saved.Username)
	})

	t.Run("empty fields are written as empty", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "old", Password: "oldpw"}, nil
		}
		svc := NewUserService(repo)

		user, err := svc.UpdateUser(context.Background(), 1, "", "")
		require.NoError(t, err)
		assert.Empty(t, user.Username)
		assert.Empty(t, user.Password)
	})

	t.Run("missing user fails without a write", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		updated := false
		repo.updateFn = func(_ context.Context, _ *models.User) error {
			updated = true
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateUser(context.Background(), 42, "new", "newpw")
		assertCode(t, err, models.CodeNotFound)
		assert.False(t, updated)
	})
}
