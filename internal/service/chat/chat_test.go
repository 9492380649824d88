package chat

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/internal/storage/memory"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*ChatService, *memory.UserStore, *scheduler.Fake) {
	t.Helper()
	users := memory.NewUserStore()
	fake := scheduler.NewFake(time.Date(2024, time.January, 20, 10, 30, 0, 0, time.UTC))
	svc := NewChatService(logger.New("local"), fake, users, memory.NewMessageStore())
	return svc, users, fake
}

func seedUser(t *testing.T, users *memory.UserStore, name string) uuid.UUID {
	t.Helper()
	user, err := users.CreateUser(context.Background(), models.User{
		Name:  name,
		Email: name + "@example.com",
	})
	require.NoError(t, err)
	return user.ID
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	msg, err := svc.SendMessage(ctx, alice, bob, "hey", models.MessageTypeText, "", 0)
	require.NoError(t, err)
	assert.Equal(t, alice, msg.SenderID)
	assert.Equal(t, bob, msg.ReceiverID)
	assert.Equal(t, "hey", msg.Content)
	assert.NotEqual(t, uuid.Nil, msg.ID)
}

func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	_, err := svc.SendMessage(ctx, alice, bob, "x", "sticker", "", 0)
	assert.Error(t, err)

	_, err = svc.SendMessage(ctx, alice, bob, "", models.MessageTypeVoice, "", 12)
	assert.ErrorIs(t, err, app_errors.ErrVoiceURLMissing)

	_, err = svc.SendMessage(ctx, alice, uuid.New(), "hey", models.MessageTypeText, "", 0)
	assert.ErrorIs(t, err, app_errors.ErrUserNotFound)
}

func TestThreadFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	svc, users, fake := newService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")
	carol := seedUser(t, users, "carol")

	_, err := svc.SendMessage(ctx, alice, bob, "first", models.MessageTypeText, "", 0)
	require.NoError(t, err)
	fake.Advance(time.Minute)
	_, err = svc.SendMessage(ctx, bob, alice, "second", models.MessageTypeText, "", 0)
	require.NoError(t, err)
	fake.Advance(time.Minute)
	_, err = svc.SendMessage(ctx, alice, carol, "other thread", models.MessageTypeText, "", 0)
	require.NoError(t, err)
	fake.Advance(time.Minute)
	_, err = svc.SendMessage(ctx, alice, bob, "third", models.MessageTypeText, "", 0)
	require.NoError(t, err)

	thread, err := svc.Thread(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "first", thread[0].Content)
	assert.Equal(t, "second", thread[1].Content)
	assert.Equal(t, "third", thread[2].Content)

	// The thread reads the same from either side.
	mirror, err := svc.Thread(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, thread, mirror)
}

func TestThreadUnknownPeer(t *testing.T) {
	svc, users, _ := newService(t)
	alice := seedUser(t, users, "alice")

	_, err := svc.Thread(context.Background(), alice, uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrUserNotFound)
}

func TestEchoResponderReplies(t *testing.T) {
	ctx := context.Background()
	svc, users, fake := newService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	responder := NewEchoResponder(logger.New("local"), fake, time.Second, svc)
	svc.SetMessageHook(responder.MessageSent)

	_, err := svc.SendMessage(ctx, alice, bob, "hello", models.MessageTypeText, "", 0)
	require.NoError(t, err)

	// Nothing arrives before the delay elapses.
	thread, err := svc.Thread(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, thread, 1)

	fake.Advance(time.Second)

	thread, err = svc.Thread(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	reply := thread[1]
	assert.Equal(t, bob, reply.SenderID)
	assert.Equal(t, alice, reply.ReceiverID)
	assert.Equal(t, "Thanks for your message!", reply.Content)
	assert.Equal(t, models.MessageTypeText, reply.Type)
}

func TestEchoResponderVoiceReply(t *testing.T) {
	ctx := context.Background()
	svc, users, fake := newService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	responder := NewEchoResponder(logger.New("local"), fake, time.Second, svc)
	svc.SetMessageHook(responder.MessageSent)

	_, err := svc.SendMessage(ctx, alice, bob, "", models.MessageTypeVoice, "blob:voice-note", 7)
	require.NoError(t, err)

	fake.Advance(time.Second)

	thread, err := svc.Thread(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "Thanks for the voice message!", thread[1].Content)
	// The reply itself is plain text.
	assert.Equal(t, models.MessageTypeText, thread[1].Type)
}

func TestEchoResponderDoesNotLoop(t *testing.T) {
	ctx := context.Background()
	svc, users, fake := newService(t)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	responder := NewEchoResponder(logger.New("local"), fake, time.Second, svc)
	svc.SetMessageHook(responder.MessageSent)

	_, err := svc.SendMessage(ctx, alice, bob, "hello", models.MessageTypeText, "", 0)
	require.NoError(t, err)

	// Advance far past the delay: the reply must not trigger a reply.
	fake.Advance(time.Hour)

	thread, err := svc.Thread(ctx, alice, bob)
	require.NoError(t, err)
	assert.Len(t, thread, 2)
}
