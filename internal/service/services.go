package service

import (
	"PathForge/internal/service/auth"
	"PathForge/internal/service/catalog"
	"PathForge/internal/service/certificate"
	"PathForge/internal/service/chat"
	"PathForge/internal/service/progress"
	"PathForge/internal/service/social"
)

type Collection struct {
	AuthService        *auth.AuthService
	CatalogService     *catalog.CatalogService
	GeneratorService   *catalog.GeneratorService
	ProgressService    *progress.ProgressService
	CertificateService *certificate.CertificateService
	SocialService      *social.SocialService
	ChatService        *chat.ChatService
}
