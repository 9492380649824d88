package certificate

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
)

// DefaultGrade is the grade written on certificates for paths that
// contain no quiz modules.
const DefaultGrade = 95

type progressEngine interface {
	EligibleForCertificate(ctx context.Context, userID, pathID uuid.UUID) (bool, error)
	QuizScores(ctx context.Context, userID, pathID uuid.UUID) ([]float64, error)
}

type pathRepo interface {
	PathByID(ctx context.Context, id uuid.UUID) (*models.LearningPath, error)
}

type userRepo interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type certRepo interface {
	SaveCertificate(ctx context.Context, cert models.Certificate) error
	CertificateByID(ctx context.Context, id uuid.UUID) (*models.Certificate, error)
	CertificateForPath(ctx context.Context, userID, pathID uuid.UUID) (*models.Certificate, error)
	CertificatesByUser(ctx context.Context, userID uuid.UUID) ([]models.Certificate, error)
}

type CertificateService struct {
	log      logger.Log
	sched    scheduler.Scheduler
	progress progressEngine
	pathRepo pathRepo
	userRepo userRepo
	certRepo certRepo
	renderer *Renderer
}

func NewCertificateService(l logger.Log, sched scheduler.Scheduler, progress progressEngine, paths pathRepo, users userRepo, certs certRepo, renderer *Renderer) *CertificateService {
	return &CertificateService{
		log:      l,
		sched:    sched,
		progress: progress,
		pathRepo: paths,
		userRepo: users,
		certRepo: certs,
		renderer: renderer,
	}
}

// Issue creates the certificate for a completed path. Issuing twice
// for the same path returns the original record.
func (s *CertificateService) Issue(ctx context.Context, userID, pathID uuid.UUID) (*models.Certificate, error) {
	if existing, err := s.certRepo.CertificateForPath(ctx, userID, pathID); err == nil {
		return existing, nil
	} else if !errors.Is(err, app_errors.ErrCertificateNotFound) {
		return nil, err
	}

	path, err := s.pathRepo.PathByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	eligible, err := s.progress.EligibleForCertificate(ctx, userID, pathID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, app_errors.ErrNotEligible
	}

	scores, err := s.progress.QuizScores(ctx, userID, pathID)
	if err != nil {
		return nil, err
	}

	cert := models.Certificate{
		ID:             uuid.New(),
		UserID:         userID,
		PathID:         pathID,
		PathTitle:      path.Title,
		CompletionDate: s.sched.Now(),
		Grade:          grade(scores),
	}
	if err := s.certRepo.SaveCertificate(ctx, cert); err != nil {
		return nil, err
	}

	s.log.Info("certificate issued", "user_id", userID, "path_id", pathID, "grade", cert.Grade)
	return &cert, nil
}

func (s *CertificateService) Certificates(ctx context.Context, userID uuid.UUID) ([]models.Certificate, error) {
	return s.certRepo.CertificatesByUser(ctx, userID)
}

// RenderPNG produces the shareable certificate image. Only the owner
// can export it.
func (s *CertificateService) RenderPNG(ctx context.Context, userID, certID uuid.UUID) ([]byte, error) {
	cert, err := s.certRepo.CertificateByID(ctx, certID)
	if err != nil {
		return nil, err
	}
	if cert.UserID != userID {
		return nil, app_errors.ErrCertificateNotFound
	}

	user, err := s.userRepo.UserByID(ctx, cert.UserID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(*cert, user.Name)
}

func grade(scores []float64) int {
	if len(scores) == 0 {
		return DefaultGrade
	}
	sum := 0.0
	for _, score := range scores {
		sum += score
	}
	return int(math.Round(sum / float64(len(scores))))
}
