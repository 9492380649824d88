package progress

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"context"
	"time"

	"github.com/google/uuid"
)

type pathRepo interface {
	PathByID(ctx context.Context, id uuid.UUID) (*models.LearningPath, error)
}

type progressRepo interface {
	ModuleProgress(ctx context.Context, userID, moduleID uuid.UUID) (models.ModuleProgress, bool, error)
	SaveModuleProgress(ctx context.Context, mp models.ModuleProgress) error
	PathModuleProgress(ctx context.Context, userID, pathID uuid.UUID) ([]models.ModuleProgress, error)
	RecordAnswer(ctx context.Context, userID, moduleID, questionID uuid.UUID, option int) error
	Answers(ctx context.Context, userID, moduleID uuid.UUID) (map[uuid.UUID]int, error)
}

// ProgressService tracks per-learner module completion and quiz state
// against the immutable catalog.
type ProgressService struct {
	log          logger.Log
	pathRepo     pathRepo
	progressRepo progressRepo
}

func NewProgressService(l logger.Log, paths pathRepo, progress progressRepo) *ProgressService {
	return &ProgressService{
		log:          l,
		pathRepo:     paths,
		progressRepo: progress,
	}
}

// SelectQuizAnswer records the learner's choice for one question,
// overwriting any earlier choice. Answers are frozen once the quiz is
// submitted.
func (s *ProgressService) SelectQuizAnswer(ctx context.Context, userID, pathID, moduleID, questionID uuid.UUID, option int) error {
	module, err := s.quizModule(ctx, pathID, moduleID)
	if err != nil {
		return err
	}

	question, ok := questionByID(module.Quiz, questionID)
	if !ok {
		return app_errors.ErrUnknownQuestion
	}
	if option < 0 || option >= len(question.Options) {
		return app_errors.ErrInvalidOption
	}

	mp, exists, err := s.progressRepo.ModuleProgress(ctx, userID, moduleID)
	if err != nil {
		return err
	}
	if exists && mp.Submitted {
		return app_errors.ErrModuleCompleted
	}

	return s.progressRepo.RecordAnswer(ctx, userID, moduleID, questionID, option)
}

// SubmitQuiz scores the recorded answers and marks the module
// completed. Submission is terminal: there is no retake.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID, pathID, moduleID uuid.UUID) (float64, error) {
	module, err := s.quizModule(ctx, pathID, moduleID)
	if err != nil {
		return 0, err
	}

	mp, exists, err := s.progressRepo.ModuleProgress(ctx, userID, moduleID)
	if err != nil {
		return 0, err
	}
	if exists && mp.Submitted {
		return 0, app_errors.ErrModuleCompleted
	}

	answers, err := s.progressRepo.Answers(ctx, userID, moduleID)
	if err != nil {
		return 0, err
	}

	correct := 0
	for _, question := range module.Quiz.Questions {
		option, answered := answers[question.ID]
		if !answered {
			return 0, app_errors.ErrIncompleteAnswers
		}
		if option == question.CorrectAnswer {
			correct++
		}
	}

	score := 0.0
	if total := len(module.Quiz.Questions); total > 0 {
		score = float64(correct) / float64(total) * 100
	}

	err = s.progressRepo.SaveModuleProgress(ctx, models.ModuleProgress{
		UserID:    userID,
		PathID:    pathID,
		ModuleID:  moduleID,
		Completed: true,
		Submitted: true,
		Score:     score,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}

// CompleteModule marks a video or reading module done. Completing an
// already-completed module is a no-op; quiz modules must be submitted.
func (s *ProgressService) CompleteModule(ctx context.Context, userID, pathID, moduleID uuid.UUID) error {
	path, err := s.pathRepo.PathByID(ctx, pathID)
	if err != nil {
		return err
	}
	module, ok := path.ModuleByID(moduleID)
	if !ok {
		return app_errors.ErrModuleNotFound
	}
	if module.Type == models.ModuleTypeQuiz {
		return app_errors.ErrQuizRequired
	}

	mp, exists, err := s.progressRepo.ModuleProgress(ctx, userID, moduleID)
	if err != nil {
		return err
	}
	if exists && mp.Completed {
		return nil
	}

	return s.progressRepo.SaveModuleProgress(ctx, models.ModuleProgress{
		UserID:    userID,
		PathID:    pathID,
		ModuleID:  moduleID,
		Completed: true,
		UpdatedAt: time.Now(),
	})
}

// Progress computes the completion summary for one learner and path.
// An empty path reports zero percent.
func (s *ProgressService) Progress(ctx context.Context, userID, pathID uuid.UUID) (models.PathProgress, error) {
	path, err := s.pathRepo.PathByID(ctx, pathID)
	if err != nil {
		return models.PathProgress{}, err
	}

	completed, err := s.completedCount(ctx, userID, path)
	if err != nil {
		return models.PathProgress{}, err
	}

	summary := models.PathProgress{
		PathID:         pathID,
		CompletedCount: completed,
		TotalCount:     len(path.Modules),
	}
	if summary.TotalCount > 0 {
		summary.Percentage = float64(summary.CompletedCount) / float64(summary.TotalCount) * 100
	}
	return summary, nil
}

// ModuleStates returns per-module progress in catalog order, with
// zero-value entries for modules the learner has not touched.
func (s *ProgressService) ModuleStates(ctx context.Context, userID, pathID uuid.UUID) ([]models.ModuleProgress, error) {
	path, err := s.pathRepo.PathByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	states := make([]models.ModuleProgress, 0, len(path.Modules))
	for _, module := range path.Modules {
		mp, exists, err := s.progressRepo.ModuleProgress(ctx, userID, module.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			mp = models.ModuleProgress{UserID: userID, PathID: pathID, ModuleID: module.ID}
		}
		states = append(states, mp)
	}
	return states, nil
}

func (s *ProgressService) EligibleForCertificate(ctx context.Context, userID, pathID uuid.UUID) (bool, error) {
	summary, err := s.Progress(ctx, userID, pathID)
	if err != nil {
		return false, err
	}
	return summary.TotalCount > 0 && summary.CompletedCount == summary.TotalCount, nil
}

// QuizScores returns the submitted score of every quiz module in the
// path, in catalog order.
func (s *ProgressService) QuizScores(ctx context.Context, userID, pathID uuid.UUID) ([]float64, error) {
	path, err := s.pathRepo.PathByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	var scores []float64
	for _, module := range path.Modules {
		if module.Type != models.ModuleTypeQuiz {
			continue
		}
		mp, exists, err := s.progressRepo.ModuleProgress(ctx, userID, module.ID)
		if err != nil {
			return nil, err
		}
		if exists && mp.Submitted {
			scores = append(scores, mp.Score)
		}
	}
	return scores, nil
}

func (s *ProgressService) completedCount(ctx context.Context, userID uuid.UUID, path *models.LearningPath) (int, error) {
	records, err := s.progressRepo.PathModuleProgress(ctx, userID, path.ID)
	if err != nil {
		return 0, err
	}

	completed := make(map[uuid.UUID]bool, len(records))
	for _, mp := range records {
		if mp.Completed {
			completed[mp.ModuleID] = true
		}
	}

	// Count against the catalog so stray records never inflate the
	// percentage.
	count := 0
	for _, module := range path.Modules {
		if completed[module.ID] {
			count++
		}
	}
	return count, nil
}

func (s *ProgressService) quizModule(ctx context.Context, pathID, moduleID uuid.UUID) (models.Module, error) {
	path, err := s.pathRepo.PathByID(ctx, pathID)
	if err != nil {
		return models.Module{}, err
	}
	module, ok := path.ModuleByID(moduleID)
	if !ok {
		return models.Module{}, app_errors.ErrModuleNotFound
	}
	if module.Type != models.ModuleTypeQuiz || module.Quiz == nil {
		return models.Module{}, app_errors.ErrNotQuizModule
	}
	return module, nil
}

func questionByID(quiz *models.Quiz, questionID uuid.UUID) (models.Question, bool) {
	for _, q := range quiz.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return models.Question{}, false
}
