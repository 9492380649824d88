package http

import (
	"PathForge/internal/delivery/http/controllers"
	"PathForge/internal/models"
	"PathForge/internal/service"
	"PathForge/pkg/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	authController := controllers.NewAuthHandler(l, u.AuthService)
	catalogController := controllers.NewCatalogHandler(l, u.CatalogService, u.GeneratorService)
	progressController := controllers.NewProgressHandler(l, u.ProgressService)
	certificateController := controllers.NewCertificateHandler(l, u.CertificateService)
	socialController := controllers.NewSocialHandler(l, u.SocialService)
	chatController := controllers.NewChatHandler(l, u.ChatService)

	v1 := r.Group("/v1", controllers.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		v1.GET("/me", authController.AuthMiddleware, authController.Me)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/refresh", authController.Refresh)
		}

		paths := v1.Group("/paths")
		{
			paths.GET("", catalogController.ListPaths)
			paths.GET("/:path_id", catalogController.PathByID)

			learner := paths.Group("", authController.AuthMiddleware, controllers.RoleMiddleware(models.LearnerRole))
			{
				learner.POST("/generate", catalogController.GeneratePath)
				learner.GET("/generate/:generation_id", catalogController.Generation)

				learner.GET("/:path_id/progress", progressController.GetProgress)
				learner.POST("/:path_id/modules/:module_id/complete", progressController.CompleteModule)
				learner.POST("/:path_id/modules/:module_id/quiz/answer", progressController.SelectAnswer)
				learner.POST("/:path_id/modules/:module_id/quiz/submit", progressController.SubmitQuiz)

				learner.POST("/:path_id/certificate", certificateController.Issue)
			}
		}

		client := v1.Group("", authController.AuthMiddleware, controllers.RoleMiddleware(models.LearnerRole))
		{
			client.GET("/certificates", certificateController.List)
			client.GET("/certificates/:certificate_id/image", certificateController.Image)

			client.GET("/users", authController.Directory)
			client.PATCH("/users/presence", authController.SetPresence)

			client.GET("/friends", socialController.ListFriends)
			client.GET("/friends/requests", socialController.ListRequests)
			client.POST("/friends/requests", socialController.SendRequest)
			client.PATCH("/friends/requests/:request_id/accept", socialController.AcceptRequest)
			client.PATCH("/friends/requests/:request_id/reject", socialController.RejectRequest)

			client.GET("/chat/threads/:user_id", chatController.Thread)
			client.POST("/chat/messages", chatController.Send)
		}
	}
	return r
}
