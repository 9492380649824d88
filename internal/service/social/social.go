package social

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"context"
	"time"

	"github.com/google/uuid"
)

type userRepo interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type socialRepo interface {
	CreateRequest(ctx context.Context, req models.FriendRequest) (*models.FriendRequest, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*models.FriendRequest, error)
	SetRequestStatus(ctx context.Context, id uuid.UUID, status string) error
	PendingBetween(ctx context.Context, a, b uuid.UUID) (bool, error)
	PendingForReceiver(ctx context.Context, userID uuid.UUID) ([]models.FriendRequest, error)
	AddFriendship(ctx context.Context, a, b uuid.UUID) error
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type SocialService struct {
	log        logger.Log
	userRepo   userRepo
	socialRepo socialRepo
}

func NewSocialService(l logger.Log, users userRepo, social socialRepo) *SocialService {
	return &SocialService{
		log:        l,
		userRepo:   users,
		socialRepo: social,
	}
}

// SendRequest creates a pending friend request. Duplicate policy: a
// pending request between the pair (either direction) or an existing
// friendship rejects the new request.
func (s *SocialService) SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*models.FriendRequest, error) {
	if senderID == receiverID {
		return nil, app_errors.ErrSelfRequest
	}

	sender, err := s.userRepo.UserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.UserByID(ctx, receiverID); err != nil {
		return nil, err
	}

	friends, err := s.socialRepo.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, app_errors.ErrAlreadyFriends
	}

	pending, err := s.socialRepo.PendingBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, app_errors.ErrDuplicateRequest
	}

	return s.socialRepo.CreateRequest(ctx, models.FriendRequest{
		SenderID:     senderID,
		ReceiverID:   receiverID,
		SenderName:   sender.Name,
		SenderAvatar: sender.Avatar,
		Status:       models.RequestPending,
		CreatedAt:    time.Now(),
	})
}

// AcceptRequest resolves a pending request and adds the symmetric
// friendship edge. Only the receiver may accept.
func (s *SocialService) AcceptRequest(ctx context.Context, userID, requestID uuid.UUID) error {
	req, err := s.pendingRequest(ctx, userID, requestID)
	if err != nil {
		return err
	}

	if err := s.socialRepo.SetRequestStatus(ctx, requestID, models.RequestAccepted); err != nil {
		return err
	}
	return s.socialRepo.AddFriendship(ctx, req.SenderID, req.ReceiverID)
}

// RejectRequest resolves a pending request without creating a
// friendship. Only the receiver may reject.
func (s *SocialService) RejectRequest(ctx context.Context, userID, requestID uuid.UUID) error {
	if _, err := s.pendingRequest(ctx, userID, requestID); err != nil {
		return err
	}
	return s.socialRepo.SetRequestStatus(ctx, requestID, models.RequestRejected)
}

func (s *SocialService) ListFriends(ctx context.Context, userID uuid.UUID) ([]models.Profile, error) {
	ids, err := s.socialRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends := make([]models.Profile, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.UserByID(ctx, id)
		if err != nil {
			s.log.ErrorErr("friend edge points at missing user", err, "user_id", id)
			continue
		}
		friends = append(friends, user.Profile())
	}
	return friends, nil
}

func (s *SocialService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]models.FriendRequest, error) {
	return s.socialRepo.PendingForReceiver(ctx, userID)
}

func (s *SocialService) pendingRequest(ctx context.Context, userID, requestID uuid.UUID) (*models.FriendRequest, error) {
	req, err := s.socialRepo.RequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != userID {
		return nil, app_errors.ErrRequestNotFound
	}
	if req.Resolved() {
		return nil, app_errors.ErrRequestResolved
	}
	return req, nil
}
