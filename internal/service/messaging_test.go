package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokoaing-store/internal/model"
)

func TestSendGlobalMessage_FansOutToRegularUsers(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMessagingService(env.messageRepo, env.userRepo, env.notifier)
	ctx := context.Background()

	seedUser(t, env, "u1")
	seedUser(t, env, "u2")

	require.NoError(t, svc.SendGlobalMessage(ctx, "new drop tonight"))

	for _, uid := range []string{"u1", "u2"} {
		messages, err := svc.ListUserMessages(ctx, uid)
		require.NoError(t, err)
		require.Len(t, messages, 1, "user %s", uid)
		assert.True(t, strings.HasPrefix(messages[0].Text, "[PENGUMUMAN] "))
		assert.Contains(t, messages[0].Text, "new drop tonight")
		assert.False(t, messages[0].IsRead)
	}
}

func TestSendGlobalMessage_NoUsersIsNoop(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMessagingService(env.messageRepo, env.userRepo, env.notifier)

	assert.NoError(t, svc.SendGlobalMessage(context.Background(), "hello"))
}

func TestMarkMessageAsRead(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMessagingService(env.messageRepo, env.userRepo, env.notifier)
	ctx := context.Background()

	seedUser(t, env, "u1")
	require.NoError(t, svc.SendPrivateMessage(ctx, "u1", "your order shipped"))

	messages, err := svc.ListUserMessages(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, messages, 1)

	require.NoError(t, svc.MarkMessageAsRead(ctx, messages[0].ID))

	messages, err = svc.ListUserMessages(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, messages[0].IsRead)
}

func TestListenToUserMessages_OnlyRecipientSees(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMessagingService(env.messageRepo, env.userRepo, env.notifier)
	ctx := context.Background()

	seedUser(t, env, "u1")
	seedUser(t, env, "u2")

	var last []*model.PrivateMessage
	unsubscribe, err := svc.ListenToUserMessages(ctx, "u1", func(messages []*model.PrivateMessage) {
		last = messages
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, svc.SendPrivateMessage(ctx, "u2", "not for u1"))
	assert.Empty(t, last)

	require.NoError(t, svc.SendPrivateMessage(ctx, "u1", "for u1"))
	require.Len(t, last, 1)
	assert.Equal(t, "for u1", last[0].Text)
}
