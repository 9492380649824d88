package catalog

import (
	"PathForge/internal/models"
	"PathForge/internal/storage/memory"
	"PathForge/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*CatalogService, *memory.CatalogStore) {
	t.Helper()
	store := memory.NewCatalogStore()
	return NewCatalogService(logger.New("local"), store), store
}

func TestListPathsFilter(t *testing.T) {
	ctx := context.Background()
	svc, store := newCatalog(t)

	seed := []models.LearningPath{
		{Title: "Full Stack Development", Description: "Web from front to back", Category: "Programming", Level: models.LevelIntermediate},
		{Title: "AI with Python", Description: "Neural networks in practice", Category: "AI & ML", Level: models.LevelAdvanced},
		{Title: "Cybersecurity Fundamentals", Description: "Defense basics", Category: "Security", Level: models.LevelBeginner},
	}
	for _, p := range seed {
		_, err := store.AddPath(ctx, p)
		require.NoError(t, err)
	}

	all, err := svc.ListPaths(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := svc.ListPaths(ctx, Filter{Category: "ai & ml"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "AI with Python", byCategory[0].Title)

	byLevel, err := svc.ListPaths(ctx, Filter{Level: "beginner"})
	require.NoError(t, err)
	require.Len(t, byLevel, 1)
	assert.Equal(t, "Cybersecurity Fundamentals", byLevel[0].Title)

	byQuery, err := svc.ListPaths(ctx, Filter{Query: "neural"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "AI with Python", byQuery[0].Title)

	none, err := svc.ListPaths(ctx, Filter{Category: "Security", Query: "python"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListPathsKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc, store := newCatalog(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := store.AddPath(ctx, models.LearningPath{Title: title})
		require.NoError(t, err)
	}

	paths, err := svc.ListPaths(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, "first", paths[0].Title)
	assert.Equal(t, "third", paths[2].Title)
}
