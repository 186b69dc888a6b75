package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
	"tokoaing-store/internal/store"
)

func TestCreateUser_Defaults(t *testing.T) {
	env := newTestEnv(t)
	svc := NewIdentityService(env.userRepo, env.notifier)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "uid-1", "one@example.com", "one")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "user", user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, 0, user.MysteryBoxAttempts)
	assert.False(t, user.LastLogin.IsZero())

	got, err := svc.GetUser(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Nickname)
}

func TestGetUser_Missing(t *testing.T) {
	env := newTestEnv(t)
	svc := NewIdentityService(env.userRepo, env.notifier)

	_, err := svc.GetUser(context.Background(), "ghost")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestListenToUsers_SeesAdminEdits(t *testing.T) {
	env := newTestEnv(t)
	svc := NewIdentityService(env.userRepo, env.notifier)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "uid-1", "one@example.com", "one")
	require.NoError(t, err)

	var last []*model.User
	unsubscribe, err := svc.ListenToUsers(ctx, func(users []*model.User) {
		last = users
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.Len(t, last, 1)

	nickname := "renamed"
	require.NoError(t, svc.UpdateUser(ctx, "uid-1", &dto.UpdateUserRequest{Nickname: &nickname}))
	require.Len(t, last, 1)
	assert.Equal(t, "renamed", last[0].Nickname)

	require.NoError(t, svc.DeleteUser(ctx, "uid-1"))
	assert.Empty(t, last)
}
