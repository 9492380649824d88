package memory

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

type certKey struct {
	userID uuid.UUID
	pathID uuid.UUID
}

type CertificateStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]models.Certificate
	byPath map[certKey]uuid.UUID
	order  []uuid.UUID
}

func NewCertificateStore() *CertificateStore {
	return &CertificateStore{
		byID:   make(map[uuid.UUID]models.Certificate),
		byPath: make(map[certKey]uuid.UUID),
	}
}

func (s *CertificateStore) SaveCertificate(ctx context.Context, cert models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[cert.ID] = cert
	s.byPath[certKey{userID: cert.UserID, pathID: cert.PathID}] = cert.ID
	s.order = append(s.order, cert.ID)
	return nil
}

func (s *CertificateStore) CertificateByID(ctx context.Context, id uuid.UUID) (*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cert, ok := s.byID[id]
	if !ok {
		return nil, app_errors.ErrCertificateNotFound
	}
	return &cert, nil
}

func (s *CertificateStore) CertificateForPath(ctx context.Context, userID, pathID uuid.UUID) (*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPath[certKey{userID: userID, pathID: pathID}]
	if !ok {
		return nil, app_errors.ErrCertificateNotFound
	}
	cert := s.byID[id]
	return &cert, nil
}

func (s *CertificateStore) CertificatesByUser(ctx context.Context, userID uuid.UUID) ([]models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var certs []models.Certificate
	for _, id := range s.order {
		if cert := s.byID[id]; cert.UserID == userID {
			certs = append(certs, cert)
		}
	}
	return certs, nil
}
