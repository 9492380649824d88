package catalog

import (
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type generationRepo interface {
	CreateGeneration(ctx context.Context, gen models.PathGeneration) (*models.PathGeneration, error)
	GenerationByID(ctx context.Context, id uuid.UUID) (*models.PathGeneration, error)
	MarkReady(ctx context.Context, id, pathID uuid.UUID) error
}

// GeneratorService fakes AI path generation: a request is answered by
// a templated path materialized after a fixed delay. The delay task
// always fires; there is no cancellation.
type GeneratorService struct {
	log     logger.Log
	sched   scheduler.Scheduler
	delay   time.Duration
	paths   pathRepo
	genRepo generationRepo
}

func NewGeneratorService(l logger.Log, sched scheduler.Scheduler, delay time.Duration, paths pathRepo, gens generationRepo) *GeneratorService {
	return &GeneratorService{
		log:     l,
		sched:   sched,
		delay:   delay,
		paths:   paths,
		genRepo: gens,
	}
}

func (s *GeneratorService) Generate(ctx context.Context, userID uuid.UUID, query string) (*models.PathGeneration, error) {
	gen, err := s.genRepo.CreateGeneration(ctx, models.PathGeneration{
		Query:       query,
		RequestedBy: userID,
		Status:      models.GenerationPending,
		CreatedAt:   s.sched.Now(),
	})
	if err != nil {
		return nil, err
	}

	genID := gen.ID
	s.sched.Schedule(s.delay, func() {
		path, err := s.paths.AddPath(context.Background(), templatePath(query))
		if err != nil {
			s.log.ErrorErr("failed to register generated path", err, "generation_id", genID)
			return
		}
		if err := s.genRepo.MarkReady(context.Background(), genID, path.ID); err != nil {
			s.log.ErrorErr("failed to mark generation ready", err, "generation_id", genID)
		}
	})

	return gen, nil
}

func (s *GeneratorService) Generation(ctx context.Context, id uuid.UUID) (*models.PathGeneration, *models.LearningPath, error) {
	gen, err := s.genRepo.GenerationByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if gen.PathID == nil {
		return gen, nil, nil
	}
	path, err := s.paths.PathByID(ctx, *gen.PathID)
	if err != nil {
		return nil, nil, err
	}
	return gen, path, nil
}

func templatePath(query string) models.LearningPath {
	return models.LearningPath{
		Title:       "Personalized: " + query,
		Description: fmt.Sprintf("A custom learning path generated specifically for %q. This comprehensive course covers all essential topics and practical applications.", query),
		Duration:    "8-12 weeks",
		Level:       models.LevelIntermediate,
		Rating:      5.0,
		Category:    "AI Generated",
		Image:       "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=400",
		Modules: []models.Module{
			{
				ID:          uuid.New(),
				Title:       "Fundamentals",
				Description: "Core concepts and foundations",
				Duration:    "2 weeks",
				Type:        models.ModuleTypeVideo,
			},
			{
				ID:          uuid.New(),
				Title:       "Practical Applications",
				Description: "Hands-on projects and exercises",
				Duration:    "3 weeks",
				Type:        models.ModuleTypeReading,
			},
			{
				ID:          uuid.New(),
				Title:       "Advanced Topics",
				Description: "Deep dive into specialized areas",
				Duration:    "2 weeks",
				Type:        models.ModuleTypeQuiz,
				Quiz: &models.Quiz{
					ID: uuid.New(),
					Questions: []models.Question{
						{
							ID:            uuid.New(),
							Question:      "What is the most important aspect of this learning path?",
							Options:       []string{"Theory", "Practice", "Both theory and practice", "Testing"},
							CorrectAnswer: 2,
							Explanation:   "A balanced approach combining theory and practice yields the best learning outcomes.",
						},
					},
				},
			},
		},
	}
}
