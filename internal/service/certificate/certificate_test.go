package certificate

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/internal/service/progress"
	"PathForge/internal/storage/memory"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *CertificateService
	progress *progress.ProgressService
	stores   *memory.Stores
	clock    *scheduler.Fake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New("local")
	stores := memory.NewStores()
	clock := scheduler.NewFake(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))

	progressSvc := progress.NewProgressService(log, stores.Catalog, stores.Progress)
	renderer, err := NewRenderer("")
	require.NoError(t, err)

	svc := NewCertificateService(log, clock, progressSvc, stores.Catalog, stores.Users, stores.Certificates, renderer)
	return &fixture{svc: svc, progress: progressSvc, stores: stores, clock: clock}
}

func (f *fixture) seedUser(t *testing.T, name string) uuid.UUID {
	t.Helper()
	user, err := f.stores.Users.CreateUser(context.Background(), models.User{
		Name:  name,
		Email: name + "@example.com",
	})
	require.NoError(t, err)
	return user.ID
}

func (f *fixture) seedPath(t *testing.T, modules ...models.Module) *models.LearningPath {
	t.Helper()
	path, err := f.stores.Catalog.AddPath(context.Background(), models.LearningPath{
		Title:   "Go Foundations",
		Modules: modules,
	})
	require.NoError(t, err)
	return path
}

func videoModule() models.Module {
	return models.Module{ID: uuid.New(), Title: "Watch", Type: models.ModuleTypeVideo}
}

func quizModule(q models.Question) models.Module {
	return models.Module{
		ID:   uuid.New(),
		Type: models.ModuleTypeQuiz,
		Quiz: &models.Quiz{ID: uuid.New(), Questions: []models.Question{q}},
	}
}

func question() models.Question {
	return models.Question{
		ID:            uuid.New(),
		Question:      "pick",
		Options:       []string{"a", "b"},
		CorrectAnswer: 0,
	}
}

func (f *fixture) completeVideos(t *testing.T, userID uuid.UUID, path *models.LearningPath) {
	t.Helper()
	for _, m := range path.Modules {
		if m.Type != models.ModuleTypeQuiz {
			require.NoError(t, f.progress.CompleteModule(context.Background(), userID, path.ID, m.ID))
		}
	}
}

func TestIssueRequiresCompletion(t *testing.T) {
	f := newFixture(t)
	userID := f.seedUser(t, "alice")
	path := f.seedPath(t, videoModule(), videoModule())

	_, err := f.svc.Issue(context.Background(), userID, path.ID)
	assert.ErrorIs(t, err, app_errors.ErrNotEligible)
}

func TestIssueDefaultGrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := f.seedUser(t, "alice")
	path := f.seedPath(t, videoModule(), videoModule())
	f.completeVideos(t, userID, path)

	cert, err := f.svc.Issue(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultGrade, cert.Grade)
	assert.Equal(t, "Go Foundations", cert.PathTitle)
	assert.Equal(t, f.clock.Now(), cert.CompletionDate)
}

func TestIssueAveragesQuizScores(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := f.seedUser(t, "alice")
	q1, q2 := question(), question()
	path := f.seedPath(t, quizModule(q1), quizModule(q2))

	// One quiz right, one wrong: (100 + 0) / 2 rounds to 50.
	require.NoError(t, f.progress.SelectQuizAnswer(ctx, userID, path.ID, path.Modules[0].ID, q1.ID, 0))
	_, err := f.progress.SubmitQuiz(ctx, userID, path.ID, path.Modules[0].ID)
	require.NoError(t, err)
	require.NoError(t, f.progress.SelectQuizAnswer(ctx, userID, path.ID, path.Modules[1].ID, q2.ID, 1))
	_, err = f.progress.SubmitQuiz(ctx, userID, path.ID, path.Modules[1].ID)
	require.NoError(t, err)

	cert, err := f.svc.Issue(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, cert.Grade)
}

func TestIssueIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := f.seedUser(t, "alice")
	path := f.seedPath(t, videoModule())
	f.completeVideos(t, userID, path)

	first, err := f.svc.Issue(ctx, userID, path.ID)
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	second, err := f.svc.Issue(ctx, userID, path.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CompletionDate, second.CompletionDate)

	certs, err := f.svc.Certificates(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestIssueUnknownPath(t *testing.T) {
	f := newFixture(t)
	userID := f.seedUser(t, "alice")

	_, err := f.svc.Issue(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, app_errors.ErrPathNotFound)
}

func TestRenderPNG(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	userID := f.seedUser(t, "alice")
	path := f.seedPath(t, videoModule())
	f.completeVideos(t, userID, path)

	cert, err := f.svc.Issue(ctx, userID, path.ID)
	require.NoError(t, err)

	data, err := f.svc.RenderPNG(ctx, userID, cert.ID)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 850, img.Bounds().Dy())
}

func TestRenderPNGOwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.seedUser(t, "alice")
	other := f.seedUser(t, "bob")
	path := f.seedPath(t, videoModule())
	f.completeVideos(t, owner, path)

	cert, err := f.svc.Issue(ctx, owner, path.ID)
	require.NoError(t, err)

	_, err = f.svc.RenderPNG(ctx, other, cert.ID)
	assert.ErrorIs(t, err, app_errors.ErrCertificateNotFound)
}

func TestGrade(t *testing.T) {
	assert.Equal(t, DefaultGrade, grade(nil))
	assert.Equal(t, 100, grade([]float64{100}))
	assert.Equal(t, 67, grade([]float64{100, 100, 0}))
	assert.Equal(t, 83, grade([]float64{100, 66.67}))
}
