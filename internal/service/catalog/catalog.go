package catalog

import (
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"context"
	"strings"

	"github.com/google/uuid"
)

type pathRepo interface {
	AddPath(ctx context.Context, path models.LearningPath) (*models.LearningPath, error)
	PathByID(ctx context.Context, id uuid.UUID) (*models.LearningPath, error)
	ListPaths(ctx context.Context) ([]models.LearningPath, error)
}

// Filter narrows the catalog listing. Empty fields match everything.
type Filter struct {
	Category string
	Level    string
	Query    string
}

type CatalogService struct {
	log      logger.Log
	pathRepo pathRepo
}

func NewCatalogService(l logger.Log, paths pathRepo) *CatalogService {
	return &CatalogService{
		log:      l,
		pathRepo: paths,
	}
}

func (s *CatalogService) PathByID(ctx context.Context, id uuid.UUID) (*models.LearningPath, error) {
	return s.pathRepo.PathByID(ctx, id)
}

func (s *CatalogService) ListPaths(ctx context.Context, filter Filter) ([]models.LearningPath, error) {
	paths, err := s.pathRepo.ListPaths(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.LearningPath, 0, len(paths))
	for _, path := range paths {
		if matches(path, filter) {
			result = append(result, path)
		}
	}
	return result, nil
}

func matches(path models.LearningPath, f Filter) bool {
	if f.Category != "" && !strings.EqualFold(path.Category, f.Category) {
		return false
	}
	if f.Level != "" && !strings.EqualFold(path.Level, f.Level) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(path.Title), q) &&
			!strings.Contains(strings.ToLower(path.Description), q) {
			return false
		}
	}
	return true
}
