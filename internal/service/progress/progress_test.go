package progress

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/internal/storage/memory"
	"PathForge/pkg/logger"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*ProgressService, *memory.CatalogStore) {
	t.Helper()
	catalog := memory.NewCatalogStore()
	return NewProgressService(logger.New("local"), catalog, memory.NewProgressStore()), catalog
}

func seedPath(t *testing.T, catalog *memory.CatalogStore, modules ...models.Module) *models.LearningPath {
	t.Helper()
	path, err := catalog.AddPath(context.Background(), models.LearningPath{
		Title:   "Test Path",
		Level:   models.LevelBeginner,
		Modules: modules,
	})
	require.NoError(t, err)
	return path
}

func videoModule(title string) models.Module {
	return models.Module{ID: uuid.New(), Title: title, Type: models.ModuleTypeVideo}
}

func quizModule(questions ...models.Question) models.Module {
	return models.Module{
		ID:    uuid.New(),
		Title: "Quiz",
		Type:  models.ModuleTypeQuiz,
		Quiz:  &models.Quiz{ID: uuid.New(), Questions: questions},
	}
}

func question(correct int) models.Question {
	return models.Question{
		ID:            uuid.New(),
		Question:      "pick one",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: correct,
	}
}

func TestCompleteModule(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	path := seedPath(t, catalog, videoModule("Intro"), videoModule("Deep Dive"))
	userID := uuid.New()

	require.NoError(t, svc.CompleteModule(ctx, userID, path.ID, path.Modules[0].ID))

	summary, err := svc.Progress(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, 2, summary.TotalCount)
	assert.InDelta(t, 50.0, summary.Percentage, 0.001)
}

func TestCompleteModuleIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	path := seedPath(t, catalog, videoModule("Intro"))
	userID := uuid.New()

	require.NoError(t, svc.CompleteModule(ctx, userID, path.ID, path.Modules[0].ID))
	require.NoError(t, svc.CompleteModule(ctx, userID, path.ID, path.Modules[0].ID))

	summary, err := svc.Progress(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.InDelta(t, 100.0, summary.Percentage, 0.001)
}

func TestCompleteModuleRejectsQuiz(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	path := seedPath(t, catalog, quizModule(question(0)))

	err := svc.CompleteModule(ctx, uuid.New(), path.ID, path.Modules[0].ID)
	assert.ErrorIs(t, err, app_errors.ErrQuizRequired)
}

func TestCompleteModuleUnknownIDs(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	path := seedPath(t, catalog, videoModule("Intro"))

	err := svc.CompleteModule(ctx, uuid.New(), uuid.New(), path.Modules[0].ID)
	assert.ErrorIs(t, err, app_errors.ErrPathNotFound)

	err = svc.CompleteModule(ctx, uuid.New(), path.ID, uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrModuleNotFound)
}

func TestProgressIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	path := seedPath(t, catalog, videoModule("Intro"))
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, svc.CompleteModule(ctx, alice, path.ID, path.Modules[0].ID))

	summary, err := svc.Progress(ctx, bob, path.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CompletedCount)
}

func TestProgressEmptyPath(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	path := seedPath(t, catalog)

	summary, err := svc.Progress(ctx, uuid.New(), path.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCount)
	assert.Zero(t, summary.Percentage)

	eligible, err := svc.EligibleForCertificate(ctx, uuid.New(), path.ID)
	require.NoError(t, err)
	assert.False(t, eligible, "a path with no modules never completes")
}

func TestSelectQuizAnswer(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q := question(2)
	path := seedPath(t, catalog, quizModule(q))
	moduleID := path.Modules[0].ID
	userID := uuid.New()

	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q.ID, 1))
	// Re-selecting overwrites the earlier choice.
	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q.ID, 2))

	score, err := svc.SubmitQuiz(ctx, userID, path.ID, moduleID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 0.001)
}

func TestSelectQuizAnswerValidation(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q := question(0)
	video := videoModule("Intro")
	path := seedPath(t, catalog, video, quizModule(q))
	moduleID := path.Modules[1].ID
	userID := uuid.New()

	assert.ErrorIs(t, svc.SelectQuizAnswer(ctx, userID, path.ID, video.ID, q.ID, 0), app_errors.ErrNotQuizModule)
	assert.ErrorIs(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, uuid.New(), 0), app_errors.ErrUnknownQuestion)
	assert.ErrorIs(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q.ID, -1), app_errors.ErrInvalidOption)
	assert.ErrorIs(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q.ID, len(q.Options)), app_errors.ErrInvalidOption)
}

func TestSubmitQuizScoresAnswers(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q1, q2 := question(0), question(3)
	path := seedPath(t, catalog, quizModule(q1, q2))
	moduleID := path.Modules[0].ID
	userID := uuid.New()

	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q1.ID, 0))
	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q2.ID, 1))

	score, err := svc.SubmitQuiz(ctx, userID, path.ID, moduleID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, score, 0.001)

	states, err := svc.ModuleStates(ctx, userID, path.ID)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.True(t, states[0].Completed)
	assert.True(t, states[0].Submitted)
}

func TestSubmitQuizIncompleteAnswers(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q1, q2 := question(0), question(1)
	path := seedPath(t, catalog, quizModule(q1, q2))
	moduleID := path.Modules[0].ID
	userID := uuid.New()

	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q1.ID, 0))

	_, err := svc.SubmitQuiz(ctx, userID, path.ID, moduleID)
	assert.ErrorIs(t, err, app_errors.ErrIncompleteAnswers)

	// A failed submission leaves the module open.
	states, err := svc.ModuleStates(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.False(t, states[0].Submitted)
}

func TestSubmitQuizIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q := question(1)
	path := seedPath(t, catalog, quizModule(q))
	moduleID := path.Modules[0].ID
	userID := uuid.New()

	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q.ID, 1))
	_, err := svc.SubmitQuiz(ctx, userID, path.ID, moduleID)
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(ctx, userID, path.ID, moduleID)
	assert.ErrorIs(t, err, app_errors.ErrModuleCompleted)

	err = svc.SelectQuizAnswer(ctx, userID, path.ID, moduleID, q.ID, 0)
	assert.ErrorIs(t, err, app_errors.ErrModuleCompleted)
}

func TestEligibleForCertificate(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q := question(0)
	path := seedPath(t, catalog, videoModule("Intro"), quizModule(q))
	userID := uuid.New()

	eligible, err := svc.EligibleForCertificate(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.False(t, eligible)

	require.NoError(t, svc.CompleteModule(ctx, userID, path.ID, path.Modules[0].ID))
	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, path.Modules[1].ID, q.ID, 0))
	_, err = svc.SubmitQuiz(ctx, userID, path.ID, path.Modules[1].ID)
	require.NoError(t, err)

	eligible, err = svc.EligibleForCertificate(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestQuizScoresInCatalogOrder(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newService(t)
	q1, q2 := question(0), question(0)
	path := seedPath(t, catalog, quizModule(q1), videoModule("Middle"), quizModule(q2))
	userID := uuid.New()

	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, path.Modules[2].ID, q2.ID, 1))
	_, err := svc.SubmitQuiz(ctx, userID, path.ID, path.Modules[2].ID)
	require.NoError(t, err)

	require.NoError(t, svc.SelectQuizAnswer(ctx, userID, path.ID, path.Modules[0].ID, q1.ID, 0))
	_, err = svc.SubmitQuiz(ctx, userID, path.ID, path.Modules[0].ID)
	require.NoError(t, err)

	scores, err := svc.QuizScores(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 0}, scores)
}
