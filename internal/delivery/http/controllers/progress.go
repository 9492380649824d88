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

type ProgressService interface {
	SelectQuizAnswer(ctx context.Context, userID, pathID, moduleID, questionID uuid.UUID, option int) error
	SubmitQuiz(ctx context.Context, userID, pathID, moduleID uuid.UUID) (float64, error)
	CompleteModule(ctx context.Context, userID, pathID, moduleID uuid.UUID) error
	Progress(ctx context.Context, userID, pathID uuid.UUID) (models.PathProgress, error)
	ModuleStates(ctx context.Context, userID, pathID uuid.UUID) ([]models.ModuleProgress, error)
}

type ProgressHandler struct {
	log     logger.Log
	service ProgressService
}

func NewProgressHandler(log logger.Log, service ProgressService) *ProgressHandler {
	return &ProgressHandler{log, service}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	pathID, userID, ok := h.pathAndUser(c)
	if !ok {
		return
	}

	summary, err := h.service.Progress(c.Request.Context(), userID, pathID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	states, err := h.service.ModuleStates(c.Request.Context(), userID, pathID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress": summary,
		"modules":  states,
	})
}

func (h *ProgressHandler) CompleteModule(c *gin.Context) {
	pathID, userID, ok := h.pathAndUser(c)
	if !ok {
		return
	}
	moduleID, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	if err := h.service.CompleteModule(c.Request.Context(), userID, pathID, moduleID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "module completed"})
}

type selectAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Option     *int      `json:"option" binding:"required"`
}

func (h *ProgressHandler) SelectAnswer(c *gin.Context) {
	pathID, userID, ok := h.pathAndUser(c)
	if !ok {
		return
	}
	moduleID, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	var input selectAnswerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SelectQuizAnswer(c.Request.Context(), userID, pathID, moduleID, input.QuestionID, *input.Option); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "answer recorded"})
}

func (h *ProgressHandler) SubmitQuiz(c *gin.Context) {
	pathID, userID, ok := h.pathAndUser(c)
	if !ok {
		return
	}
	moduleID, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	score, err := h.service.SubmitQuiz(c.Request.Context(), userID, pathID, moduleID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}

func (h *ProgressHandler) pathAndUser(c *gin.Context) (pathID, userID uuid.UUID, ok bool) {
	pathID, err := uuid.Parse(c.Param("path_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path_id"})
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok = clientID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return pathID, userID, true
}

func (h *ProgressHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app_errors.ErrPathNotFound) || errors.Is(err, app_errors.ErrModuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrIncompleteAnswers) ||
		errors.Is(err, app_errors.ErrInvalidOption) ||
		errors.Is(err, app_errors.ErrUnknownQuestion) ||
		errors.Is(err, app_errors.ErrNotQuizModule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrModuleCompleted) || errors.Is(err, app_errors.ErrQuizRequired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("progress operation failed", err)
	}
}
