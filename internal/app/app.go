package app

import (
	"PathForge/internal/app/server"
	"PathForge/internal/config"
	"PathForge/internal/delivery/http"
	"PathForge/internal/service"
	"PathForge/internal/service/auth"
	"PathForge/internal/service/catalog"
	"PathForge/internal/service/certificate"
	"PathForge/internal/service/chat"
	"PathForge/internal/service/progress"
	"PathForge/internal/service/social"
	"PathForge/internal/storage/memory"
	"PathForge/pkg/logger"
	"PathForge/pkg/scheduler"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	stores := memory.NewStores()
	if cfg.Demo.Seed {
		if err := stores.SeedDemo(context.Background(), cfg.Demo.Password); err != nil {
			log.FatalErr("error seeding demo data", err)
		}
		log.Info("demo data seeded")
	}

	sched := scheduler.New()

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, "//", cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := auth.NewAuthService(log, jwtManager, stores.Users, stores.Tokens)
	catalogService := catalog.NewCatalogService(log, stores.Catalog)
	generatorService := catalog.NewGeneratorService(log, sched, cfg.Generator.Delay, stores.Catalog, stores.Generations)
	progressService := progress.NewProgressService(log, stores.Catalog, stores.Progress)

	renderer, err := certificate.NewRenderer(cfg.Cert.FontPath)
	if err != nil {
		log.FatalErr("error loading certificate fonts", err)
	}
	certificateService := certificate.NewCertificateService(log, sched, progressService, stores.Catalog, stores.Users, stores.Certificates, renderer)

	socialService := social.NewSocialService(log, stores.Users, stores.Social)

	chatService := chat.NewChatService(log, sched, stores.Users, stores.Messages)
	if cfg.Chat.AutoReply {
		responder := chat.NewEchoResponder(log, sched, cfg.Chat.ReplyDelay, chatService)
		chatService.SetMessageHook(responder.MessageSent)
	}

	u := service.Collection{
		AuthService:        authService,
		CatalogService:     catalogService,
		GeneratorService:   generatorService,
		ProgressService:    progressService,
		CertificateService: certificateService,
		SocialService:      socialService,
		ChatService:        chatService,
	}

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
