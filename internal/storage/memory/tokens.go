package memory

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type tokenKey struct {
	userID uuid.UUID
	hash   string
}

// TokenStore holds active refresh tokens, keyed by owner and token
// hash so the raw token never sits in memory.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[tokenKey]models.RefreshToken
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[tokenKey]models.RefreshToken)}
}

func (s *TokenStore) Create(ctx context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error) {
	expires, err := token.Claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}

	record := models.RefreshToken{
		UserID:      userID,
		HashedToken: hashToken(token.Raw),
		CreatedAt:   time.Now(),
		ExpiresAt:   expires.Time,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenKey{userID: userID, hash: record.HashedToken}] = record
	return &record, nil
}

func (s *TokenStore) ByPrimaryKey(ctx context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tokens[tokenKey{userID: userID, hash: hashToken(token.Raw)}]
	if !ok {
		return nil, app_errors.ErrTokenNotFound
	}
	return &record, nil
}

func (s *TokenStore) DeleteUserTokens(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.tokens {
		if key.userID == userID {
			delete(s.tokens, key)
		}
	}
	return nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
