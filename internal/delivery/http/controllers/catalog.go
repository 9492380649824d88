package controllers

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/internal/service/catalog"
	"PathForge/pkg/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogService interface {
	ListPaths(ctx context.Context, filter catalog.Filter) ([]models.LearningPath, error)
	PathByID(ctx context.Context, id uuid.UUID) (*models.LearningPath, error)
}

type GeneratorService interface {
	Generate(ctx context.Context, userID uuid.UUID, query string) (*models.PathGeneration, error)
	Generation(ctx context.Context, id uuid.UUID) (*models.PathGeneration, *models.LearningPath, error)
}

type CatalogHandler struct {
	log       logger.Log
	catalog   CatalogService
	generator GeneratorService
}

func NewCatalogHandler(l logger.Log, catalogService CatalogService, generatorService GeneratorService) *CatalogHandler {
	return &CatalogHandler{
		log:       l,
		catalog:   catalogService,
		generator: generatorService,
	}
}

func (h *CatalogHandler) ListPaths(c *gin.Context) {
	filter := catalog.Filter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Query:    c.Query("q"),
	}

	paths, err := h.catalog.ListPaths(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"paths": paths})
}

func (h *CatalogHandler) PathByID(c *gin.Context) {
	pathID, err := uuid.Parse(c.Param("path_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path_id"})
		return
	}

	path, err := h.catalog.PathByID(c.Request.Context(), pathID)
	if err != nil {
		if errors.Is(err, app_errors.ErrPathNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, path)
}

type generateRequest struct {
	Query string `json:"query" binding:"required"`
}

func (h *CatalogHandler) GeneratePath(c *gin.Context) {
	var input generateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := clientID(c)
	if !ok {
		return
	}

	gen, err := h.generator.Generate(c.Request.Context(), userID, input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error starting path generation", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"generation_id": gen.ID, "status": gen.Status})
}

func (h *CatalogHandler) Generation(c *gin.Context) {
	genID, err := uuid.Parse(c.Param("generation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid generation_id"})
		return
	}

	gen, path, err := h.generator.Generation(c.Request.Context(), genID)
	if err != nil {
		if errors.Is(err, app_errors.ErrGenerationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"generation_id": gen.ID, "status": gen.Status}
	if path != nil {
		resp["path"] = path
	}
	c.JSON(http.StatusOK, resp)
}
