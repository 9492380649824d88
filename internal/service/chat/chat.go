package chat

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type userRepo interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type messageRepo interface {
	Append(ctx context.Context, msg models.Message) error
	Between(ctx context.Context, a, b uuid.UUID) ([]models.Message, error)
}

// ChatService owns the session message log. An optional hook observes
// every learner-sent message; the auto-responder plugs in there, the
// service itself has no knowledge of it.
type ChatService struct {
	log         logger.Log
	sched       scheduler.Scheduler
	userRepo    userRepo
	messageRepo messageRepo
	onMessage   func(models.Message)
}

func NewChatService(l logger.Log, sched scheduler.Scheduler, users userRepo, messages messageRepo) *ChatService {
	return &ChatService{
		log:         l,
		sched:       sched,
		userRepo:    users,
		messageRepo: messages,
	}
}

// SetMessageHook registers the observer for sent messages. Call before
// serving traffic; replies appended by the observer do not re-trigger
// it.
func (s *ChatService) SetMessageHook(hook func(models.Message)) {
	s.onMessage = hook
}

func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, content, msgType, voiceURL string, duration int) (*models.Message, error) {
	if msgType != models.MessageTypeText && msgType != models.MessageTypeVoice {
		return nil, fmt.Errorf("unsupported message type %q", msgType)
	}
	if msgType == models.MessageTypeVoice && voiceURL == "" {
		return nil, app_errors.ErrVoiceURLMissing
	}

	if _, err := s.userRepo.UserByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg, err := s.append(ctx, senderID, receiverID, content, msgType, voiceURL, duration)
	if err != nil {
		return nil, err
	}

	if s.onMessage != nil {
		s.onMessage(*msg)
	}
	return msg, nil
}

// Thread returns the conversation between the two users in
// chronological order. Reading never mutates the log.
func (s *ChatService) Thread(ctx context.Context, userID, peerID uuid.UUID) ([]models.Message, error) {
	if _, err := s.userRepo.UserByID(ctx, peerID); err != nil {
		return nil, err
	}
	return s.messageRepo.Between(ctx, userID, peerID)
}

func (s *ChatService) append(ctx context.Context, senderID, receiverID uuid.UUID, content, msgType, voiceURL string, duration int) (*models.Message, error) {
	msg := models.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Type:       msgType,
		Timestamp:  s.sched.Now(),
		VoiceURL:   voiceURL,
		Duration:   duration,
	}
	if err := s.messageRepo.Append(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
