package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trannb/jobtrackr/adapters/event"
	httpAdapter "github.com/trannb/jobtrackr/adapters/http"
	"github.com/trannb/jobtrackr/adapters/media_storage"
	"github.com/trannb/jobtrackr/adapters/persistence"
	appUC "github.com/trannb/jobtrackr/internal/application/usecase/application"
	auditUC "github.com/trannb/jobtrackr/internal/application/usecase/audit"
	authUC "github.com/trannb/jobtrackr/internal/application/usecase/auth"
	profileUC "github.com/trannb/jobtrackr/internal/application/usecase/profile"
	statsUC "github.com/trannb/jobtrackr/internal/application/usecase/stats"
	"github.com/trannb/jobtrackr/internal/config"
	"github.com/trannb/jobtrackr/internal/notify"
	"github.com/trannb/jobtrackr/pkg/auth"
	"github.com/trannb/jobtrackr/pkg/logger"
	"github.com/trannb/jobtrackr/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start JobTrackr API Server...")

	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "jobtrackr-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer tracerProvider.Shutdown(context.Background())

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	applicationRepo := persistence.NewPostgresApplicationRepo(dbPool, appLogger)
	auditRepo := persistence.NewPostgresAuditRepo(dbPool, appLogger)
	resetTokenStore := persistence.NewResetTokenStore(redisClient, cfg.Auth.ResetTokenTTL, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}
	notifier := notify.NewService(notify.DefaultHideDelay)
	defer notifier.Close()

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, profileRepo, jwtSvc, kafkaClient, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	forgotPasswordUseCase := authUC.NewForgotPasswordUseCase(userRepo, resetTokenStore, kafkaClient, appLogger)
	resetPasswordUseCase := authUC.NewResetPasswordUseCase(userRepo, resetTokenStore, appLogger)

	createUseCase := appUC.NewCreateApplicationUseCase(applicationRepo, kafkaClient, appLogger)
	listUseCase := appUC.NewListApplicationsUseCase(applicationRepo, appLogger)
	updateUseCase := appUC.NewUpdateApplicationUseCase(applicationRepo, kafkaClient, appLogger)
	deleteUseCase := appUC.NewDeleteApplicationUseCase(applicationRepo, uploader, kafkaClient, appLogger)
	uploadUseCase := appUC.NewUploadDocumentUseCase(applicationRepo, uploader, appLogger)
	exportCSVUseCase := appUC.NewExportCSVUseCase(applicationRepo, appLogger)

	profileUseCase := profileUC.NewProfileUseCase(profileRepo, uploader, appLogger)
	statsUseCase := statsUC.NewStatsUseCase(applicationRepo, appLogger)
	auditListUseCase := auditUC.NewListEntriesUseCase(auditRepo, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, forgotPasswordUseCase, resetPasswordUseCase, userRepo)
	applicationHandler := httpAdapter.NewApplicationHandler(
		createUseCase,
		listUseCase,
		updateUseCase,
		deleteUseCase,
		uploadUseCase,
		exportCSVUseCase,
		notifier,
	)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, notifier)
	statsHandler := httpAdapter.NewStatsHandler(statsUseCase)
	auditHandler := httpAdapter.NewAuditHandler(auditListUseCase)
	noticeHandler := httpAdapter.NewNoticeHandler(notifier)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.App.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
			authRoutes.POST("/reset-password", authHandler.ResetPassword)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/me", authHandler.Me)

			applications := private.Group("/applications")
			{
				applications.GET("", applicationHandler.List)
				applications.POST("", applicationHandler.Create)
				applications.PUT("/:id", applicationHandler.Update)
				applications.DELETE("/:id", applicationHandler.Delete)
				applications.POST("/:id/documents", applicationHandler.UploadDocument)
				applications.GET("/export", applicationHandler.ExportCSV)
			}

			profileRoutes := private.Group("/profile")
			{
				profileRoutes.GET("", profileHandler.Get)
				profileRoutes.PUT("", profileHandler.Save)
				profileRoutes.POST("/picture", profileHandler.UploadPicture)
			}

			stats := private.Group("/stats")
			{
				stats.GET("/summary", statsHandler.Summary)
				stats.GET("/timeline", statsHandler.Timeline)
				stats.GET("/status-by-type", statsHandler.StatusByType)
			}

			private.GET("/audit", auditHandler.List)
			private.GET("/notice", noticeHandler.Current)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
