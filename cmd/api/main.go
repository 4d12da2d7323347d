// @title UMatter API
// @version 1.0
// @description Wellness self-assessment API: trauma scoring, recovery plans, mood tracking and support content.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"umatter/internal/adapter"
	"umatter/internal/assessment"
	"umatter/internal/cache"
	"umatter/internal/config"
	"umatter/internal/database"
	"umatter/internal/handler"
	"umatter/internal/logger"
	"umatter/internal/middleware"
	"umatter/internal/repository"
	"umatter/internal/service"

	_ "umatter/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// The trauma model is a hard startup dependency: without it there is
	// no evaluation, so a missing or malformed artifact is fatal.
	model, err := assessment.LoadModel(cfg.Assessment.ModelPath)
	if err != nil {
		appLogger.Fatal("Failed to load trauma model", zap.Error(err), zap.String("path", cfg.Assessment.ModelPath))
	}
	appLogger.Info("Trauma model loaded", zap.Int("classes", len(model.Classes())))

	bundled, err := assessment.BundledCatalog()
	if err != nil {
		appLogger.Fatal("Failed to load bundled question catalog", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	resultRepository := repository.NewResultDatabaseAdapter(db)
	moodRepository := repository.NewMoodDatabaseAdapter(db)
	recoveryRepository := repository.NewRecoveryDatabaseAdapter(db)
	contentRepository := repository.NewContentDatabaseAdapter(db)

	// Initialize services
	questionService := service.NewQuestionService(questionRepository, cacheAdapter, bundled, cfg.Assessment.QuestionTTL)
	resultCacheService := service.NewResultCacheService(cacheAdapter, cfg.Assessment.ResultTTL)
	assessmentService := service.NewAssessmentService(questionService, model, resultRepository, resultCacheService)
	moodService := service.NewMoodService(moodRepository)
	recoveryService := service.NewRecoveryService(recoveryRepository, resultRepository)
	contentService := service.NewContentService(contentRepository, cacheAdapter, cfg.Assessment.SchemeTTL)

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(questionService, assessmentService)
	wellnessHandler := handler.NewWellnessHandler(moodService, recoveryService, contentService)
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Assessment routes
	apiGroup.Get("/questions", assessmentHandler.GetQuestions)
	apiGroup.Get("/questions/all", assessmentHandler.GetAllQuestions)
	apiGroup.Post("/evaluate", assessmentHandler.Evaluate)
	apiGroup.Get("/results/:id", assessmentHandler.GetResult)

	// Mood and alert routes
	apiGroup.Post("/mood", wellnessHandler.LogMood)
	apiGroup.Get("/mood/:user_id", validationMiddleware.ValidateDays(), wellnessHandler.GetMoodHistory)
	apiGroup.Get("/alerts/:user_id", wellnessHandler.GetAlerts)

	// Recovery routes
	apiGroup.Get("/recovery/plan/:user_id", wellnessHandler.GetRecoveryPlan)
	apiGroup.Post("/recovery/progress", wellnessHandler.UpdateProgress)

	// Content routes
	apiGroup.Get("/schemes", wellnessHandler.GetSchemes)
	apiGroup.Get("/heritage/:category", validationMiddleware.ValidateCategory(), wellnessHandler.GetHeritageContent)
	apiGroup.Get("/modern/:category", validationMiddleware.ValidateCategory(), wellnessHandler.GetModernContent)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		appLogger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
