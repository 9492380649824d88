package auth

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userRepo interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error
}

type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error)
	ByPrimaryKey(ctx context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error)
	DeleteUserTokens(ctx context.Context, userID uuid.UUID) error
}

type AuthService struct {
	log        logger.Log
	jwtManager *JWTManager
	userRepo   userRepo
	tokenRepo  tokenRepo
}

func NewAuthService(l logger.Log, manager *JWTManager, uRepo userRepo, tRepo tokenRepo) *AuthService {
	return &AuthService{
		log:        l,
		jwtManager: manager,
		userRepo:   uRepo,
		tokenRepo:  tRepo,
	}
}

// RegisterUser creates a learner account. Social sign-in goes through
// the same path with a provider-supplied email.
func (u *AuthService) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	if len(user.Password) > 64 || len(user.Password) < 6 {
		return nil, app_errors.ErrIncorrectPassword
	}

	hashed, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	user.JoinDate = time.Now()
	user.IsOnline = true
	if len(user.Roles) == 0 {
		user.Roles = []string{models.LearnerRole}
	}

	created, err := u.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *AuthService) LoginUser(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	user, err := u.userRepo.UserByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}

	if !checkPasswordHash(password, user.Password) {
		return "", "", app_errors.ErrIncorrectPassword
	}

	tokenPair, err := u.jwtManager.GenerateTokenPair(user.ID, user.Roles)
	if err != nil {
		return "", "", err
	}

	if err = u.tokenRepo.DeleteUserTokens(ctx, user.ID); err != nil {
		return "", "", err
	}
	if _, err = u.tokenRepo.Create(ctx, user.ID, tokenPair.RefreshToken); err != nil {
		return "", "", err
	}

	if err := u.userRepo.SetOnline(ctx, user.ID, true); err != nil {
		u.log.ErrorErr("failed to mark user online", err)
	}

	return tokenPair.AccessToken.Raw, tokenPair.RefreshToken.Raw, nil
}

func (u *AuthService) RefreshTokens(ctx context.Context, token string) (*models.TokenPair, error) {
	curToken, err := u.jwtManager.Parse(token)
	if err != nil {
		return nil, err
	}
	userIDStr, err := curToken.Claims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, err
	}
	tokenRecord, err := u.tokenRepo.ByPrimaryKey(ctx, userID, curToken)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tokenRecord.ExpiresAt.Before(time.Now()) {
		return nil, app_errors.ErrTokenExpired
	}
	tokenPair, err := u.jwtManager.GenerateTokenPair(user.ID, user.Roles)
	if err != nil {
		return nil, err
	}
	if err := u.tokenRepo.DeleteUserTokens(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := u.tokenRepo.Create(ctx, user.ID, tokenPair.RefreshToken); err != nil {
		return nil, err
	}
	return tokenPair, nil
}

func (u *AuthService) ParseToken(ctx context.Context, token string) (*jwt.Token, error) {
	return u.jwtManager.Parse(token)
}

func (u *AuthService) IsAccessToken(ctx context.Context, token *jwt.Token) bool {
	return u.jwtManager.TokenType(token, AccessTokenType)
}

func (u *AuthService) AccessClaims(ctx context.Context, token string) (userID uuid.UUID, roles []string, err error) {
	claims, err := u.jwtManager.AccessClaims(token)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return claims.UserID, claims.Roles, nil
}

func (u *AuthService) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.UserByID(ctx, id)
}

// Directory lists every user except the requester, for the chat and
// friends panels.
func (u *AuthService) Directory(ctx context.Context, requesterID uuid.UUID) ([]models.Profile, error) {
	users, err := u.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]models.Profile, 0, len(users))
	for _, user := range users {
		if user.ID == requesterID {
			continue
		}
		profiles = append(profiles, user.Profile())
	}
	return profiles, nil
}

func (u *AuthService) SetPresence(ctx context.Context, userID uuid.UUID, online bool) error {
	return u.userRepo.SetOnline(ctx, userID, online)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
