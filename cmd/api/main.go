package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/candidate-screening/docs"
	"github.com/johnquangdev/candidate-screening/internal/adapter/handler"
	"github.com/johnquangdev/candidate-screening/internal/adapter/repository"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	"github.com/johnquangdev/candidate-screening/internal/infrastructure/cache"
	"github.com/johnquangdev/candidate-screening/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/candidate-screening/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/candidate-screening/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/candidate-screening/internal/usecase/ai"
	"github.com/johnquangdev/candidate-screening/internal/usecase/candidate"
	"github.com/johnquangdev/candidate-screening/internal/usecase/draft"
	"github.com/johnquangdev/candidate-screening/pkg/config"
	"github.com/johnquangdev/candidate-screening/pkg/jwt"
	pkglogger "github.com/johnquangdev/candidate-screening/pkg/logger"
	pkgvalidator "github.com/johnquangdev/candidate-screening/pkg/validator"
)

// @title           Candidate Screening API
// @version         1.0
// @description     Intake, AI scoring and review dashboard API for entry-level sales hiring

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// Seven recordings plus the form fields
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxAudioBytes*entities.QuestionCount/(1<<20)+1)))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		log.Println("🔄 Applying migrations on startup...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run scripts/migrate to manage the schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}
	checks := map[string]handler.HealthCheck{
		"database": sqlDB.PingContext,
	}

	// Initialize object storage
	log.Println("🪣 Connecting to object storage...")
	audioStorage, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	checks["storage"] = audioStorage.Ping

	// Initialize draft store
	var draftRepo repositories.DraftRepository
	switch cfg.Draft.Store {
	case config.DraftStoreRedis:
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		draftRepo = repository.NewDraftRepository(redisClient)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	default:
		log.Println("⚠️  Drafts kept in memory; they are lost on restart")
		memoryStore := cache.NewMemoryDraftStore()
		defer memoryStore.Close()
		draftRepo = memoryStore
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	candidateRepo := repository.NewCandidateRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	generator, err := newGenerator(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s client: %v", cfg.LLM.Provider, err)
	}
	transcriber, err := newTranscriber(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s client: %v", cfg.Transcription.Provider, err)
	}
	logger.Info("AI providers ready",
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", generator.Model()),
		zap.String("transcription_provider", cfg.Transcription.Provider),
	)

	// Initialize services
	scoringService := aiuse.NewScoringService(candidateRepo, analysisRepo, generator, logger)
	dispatcher := aiuse.NewDispatcher(scoringService, cfg.Scoring.Workers, cfg.Scoring.Timeout, logger)
	toneService := aiuse.NewToneService(candidateRepo, analysisRepo, audioStorage, transcriber, generator, logger)
	transcriptionService := aiuse.NewTranscriptionService(transcriber, logger)
	candidateService := candidate.NewCandidateService(candidateRepo, audioStorage, draftRepo, dispatcher, logger)
	draftService := draft.NewDraftService(draftRepo, cfg.Draft.TTL, logger)

	// Initialize admin authentication
	log.Println("🔑 Initializing admin authentication...")
	if cfg.Auth.Disabled {
		log.Println("⚠️  Admin authentication DISABLED (development only)")
	}
	jwtManager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	adminAuth := httpmw.NewAdminAuth(jwtManager, cfg.Auth.AdminRoles, cfg.Auth.Disabled, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		handler.NewCandidateHandler(candidateService, transcriptionService, cfg.Server.MaxAudioBytes, logger),
		handler.NewDraftHandler(draftService, logger),
		handler.NewAdminHandler(candidateService, scoringService, toneService, logger),
		adminAuth.Middleware(),
		checks,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	// Scoring runs that are still in flight get the rest of the budget
	if err := dispatcher.Stop(ctx); err != nil {
		logger.Warn("scoring dispatcher did not drain in time", zap.Error(err))
	}

	log.Println("✅ Server stopped gracefully")
}
