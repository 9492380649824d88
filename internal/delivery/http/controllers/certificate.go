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

type CertificateService interface {
	Issue(ctx context.Context, userID, pathID uuid.UUID) (*models.Certificate, error)
	Certificates(ctx context.Context, userID uuid.UUID) ([]models.Certificate, error)
	RenderPNG(ctx context.Context, userID, certID uuid.UUID) ([]byte, error)
}

type CertificateHandler struct {
	log     logger.Log
	service CertificateService
}

func NewCertificateHandler(log logger.Log, service CertificateService) *CertificateHandler {
	return &CertificateHandler{log, service}
}

func (h *CertificateHandler) Issue(c *gin.Context) {
	pathID, err := uuid.Parse(c.Param("path_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path_id"})
		return
	}
	userID, ok := clientID(c)
	if !ok {
		return
	}

	cert, err := h.service.Issue(c.Request.Context(), userID, pathID)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrPathNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrNotEligible):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			h.log.ErrorErr("error issuing certificate", err)
		}
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificateHandler) List(c *gin.Context) {
	userID, ok := clientID(c)
	if !ok {
		return
	}

	certs, err := h.service.Certificates(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *CertificateHandler) Image(c *gin.Context) {
	certID, err := uuid.Parse(c.Param("certificate_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certificate_id"})
		return
	}
	userID, ok := clientID(c)
	if !ok {
		return
	}

	png, err := h.service.RenderPNG(c.Request.Context(), userID, certID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error rendering certificate", err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
