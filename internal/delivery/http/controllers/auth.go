package controllers

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	RefreshTokens(ctx context.Context, token string) (*models.TokenPair, error)
	ParseToken(ctx context.Context, token string) (*jwt.Token, error)
	IsAccessToken(ctx context.Context, token *jwt.Token) bool
	AccessClaims(ctx context.Context, token string) (userID uuid.UUID, roles []string, err error)
	User(ctx context.Context, id uuid.UUID) (*models.User, error)
	Directory(ctx context.Context, requesterID uuid.UUID) ([]models.Profile, error)
	SetPresence(ctx context.Context, userID uuid.UUID, online bool) error
}

type AuthHandler struct {
	AuthService AuthService
	log         logger.Log
}

func NewAuthHandler(l logger.Log, auth AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: auth,
		log:         l,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Avatar   string `json:"avatar"`
	Provider string `json:"provider"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Avatar:   input.Avatar,
		Provider: input.Provider,
	}

	_, err := h.AuthService.RegisterUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserExists) || errors.Is(err, app_errors.ErrIncorrectPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error handling register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration success"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, refreshToken, err := h.AuthService.LoginUser(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) || errors.Is(err, app_errors.ErrIncorrectPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error handling login user", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

type tokenRefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var input tokenRefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokenPair, err := h.AuthService.RefreshTokens(c.Request.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) || errors.Is(err, app_errors.ErrTokenExpired) || errors.Is(err, app_errors.ErrTokenNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken:  tokenPair.AccessToken.Raw,
		RefreshToken: tokenPair.RefreshToken.Raw,
	})
}

type meResponse struct {
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar,omitempty"`
	JoinDate string   `json:"join_date"`
	Roles    []string `json:"roles"`
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := clientID(c)
	if !ok {
		return
	}

	user, err := h.AuthService.User(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error retrieving user", err)
		return
	}

	c.JSON(http.StatusOK, meResponse{
		UserID:   user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		JoinDate: user.JoinDate.Format("2006-01-02"),
		Roles:    user.Roles,
	})
}

func (h *AuthHandler) Directory(c *gin.Context) {
	userID, ok := clientID(c)
	if !ok {
		return
	}

	profiles, err := h.AuthService.Directory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": profiles})
}

type presenceRequest struct {
	Online *bool `json:"online" binding:"required"`
}

func (h *AuthHandler) SetPresence(c *gin.Context) {
	var input presenceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := clientID(c)
	if !ok {
		return
	}

	if err := h.AuthService.SetPresence(c.Request.Context(), userID, *input.Online); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"online": *input.Online})
}
