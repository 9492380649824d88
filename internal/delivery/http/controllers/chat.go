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

type ChatService interface {
	SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, content, msgType, voiceURL string, duration int) (*models.Message, error)
	Thread(ctx context.Context, userID, peerID uuid.UUID) ([]models.Message, error)
}

type ChatHandler struct {
	log     logger.Log
	service ChatService
}

func NewChatHandler(log logger.Log, service ChatService) *ChatHandler {
	return &ChatHandler{log, service}
}

func (h *ChatHandler) Thread(c *gin.Context) {
	peerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	userID, ok := clientID(c)
	if !ok {
		return
	}

	messages, err := h.service.Thread(c.Request.Context(), userID, peerID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error loading chat thread", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type sendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" binding:"required"`
	Content    string    `json:"content"`
	Type       string    `json:"type" binding:"required"`
	VoiceURL   string    `json:"voice_url"`
	Duration   int       `json:"duration"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	var input sendMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := clientID(c)
	if !ok {
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), userID, input.ReceiverID, input.Content, input.Type, input.VoiceURL, input.Duration)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrVoiceURLMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, msg)
}
