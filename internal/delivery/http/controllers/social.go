package controllers

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SocialService interface {
	SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*models.FriendRequest, error)
	AcceptRequest(ctx context.Context, userID, requestID uuid.UUID) error
	RejectRequest(ctx context.Context, userID, requestID uuid.UUID) error
	ListFriends(ctx context.Context, userID uuid.UUID) ([]models.Profile, error)
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]models.FriendRequest, error)
}

type SocialHandler struct {
	log     logger.Log
	service SocialService
}

func NewSocialHandler(log logger.Log, service SocialService) *SocialHandler {
	return &SocialHandler{log, service}
}

func (h *SocialHandler) ListFriends(c *gin.Context) {
	userID, ok := clientID(c)
	if !ok {
		return
	}

	friends, err := h.service.ListFriends(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

func (h *SocialHandler) ListRequests(c *gin.Context) {
	userID, ok := clientID(c)
	if !ok {
		return
	}

	requests, err := h.service.ListPendingRequests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type sendRequestRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" binding:"required"`
}

func (h *SocialHandler) SendRequest(c *gin.Context) {
	var input sendRequestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := clientID(c)
	if !ok {
		return
	}

	req, err := h.service.SendRequest(c.Request.Context(), userID, input.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrSelfRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrDuplicateRequest) || errors.Is(err, app_errors.ErrAlreadyFriends):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			h.log.ErrorErr("error sending friend request", err)
		}
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *SocialHandler) AcceptRequest(c *gin.Context) {
	h.resolveRequest(c, h.service.AcceptRequest, "request accepted")
}

func (h *SocialHandler) RejectRequest(c *gin.Context) {
	h.resolveRequest(c, h.service.RejectRequest, "request rejected")
}

func (h *SocialHandler) resolveRequest(c *gin.Context, resolve func(ctx context.Context, userID, requestID uuid.UUID) error, message string) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request_id"})
		return
	}
	userID, ok := clientID(c)
	if !ok {
		return
	}

	if err := resolve(c.Request.Context(), userID, requestID); err != nil {
		switch {
		case errors.Is(err, app_errors.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrRequestResolved):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			h.log.ErrorErr("error resolving friend request", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": message})
}
