package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"skillcheck/config"
	"skillcheck/database"
	_ "skillcheck/docs" // Swagger docs - auto-generated
	adminctrl "skillcheck/internal/controller/admin"
	userctrl "skillcheck/internal/controller/user"
	"skillcheck/internal/logger"
	"skillcheck/internal/model"
	"skillcheck/internal/repository"
	"skillcheck/internal/service"
)

// @title Skill Assessment API
// @version 1.0
// @description Skill-assessment delivery and grading engine: composes timed multi-section tests from a question bank, grades single batch submissions and returns a score with proficiency label, feedback and study recommendations.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewRand,              // Seeded source for question selection
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewSessionRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewComposerService,
			service.NewClassifierService,
			service.NewFeedbackService,
			service.NewGeminiCodingEvaluator,
			service.NewAssessmentService,
			service.NewGraderService,
			service.NewQuestionBankService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAssessmentController,
			adminctrl.NewQuestionBankController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(database.SeedQuestionBank),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewRand provides the selection source the composer draws with. Seeded from
// the clock at startup; tests construct their own with a fixed seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	assessmentCtrl *userctrl.AssessmentController,
	bankCtrl *adminctrl.QuestionBankController,
) {
	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Skill Assessment"})
		})

		assessments := apiGroup.Group("/assessments")
		assessments.POST("", assessmentCtrl.GenerateAssessment)
		assessments.POST("/:assessment_id/submissions", assessmentCtrl.SubmitAssessment)
		assessments.GET("/:assessment_id/result", assessmentCtrl.GetResult)
	}

	adminGroup := router.Group("/api/v1/admin")
	{
		questions := adminGroup.Group("/questions")
		questions.POST("", bankCtrl.CreateQuestion)
		questions.GET("", bankCtrl.ListQuestions)
		questions.DELETE("/:id", bankCtrl.DeleteQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Skill Assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.AssessmentSession{},
		&model.AssessmentResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
