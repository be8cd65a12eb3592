package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wsabol/oracle-moderation/pkg/app/scan"
	"github.com/wsabol/oracle-moderation/pkg/cache"
	"github.com/wsabol/oracle-moderation/pkg/config"
	handlers "github.com/wsabol/oracle-moderation/pkg/handlers/http"
	"github.com/wsabol/oracle-moderation/pkg/infra/database"
	"github.com/wsabol/oracle-moderation/pkg/infra/jwt"
	infraLogger "github.com/wsabol/oracle-moderation/pkg/infra/logger"
	"github.com/wsabol/oracle-moderation/pkg/infra/repository"
	"github.com/wsabol/oracle-moderation/pkg/middleware"
	"github.com/wsabol/oracle-moderation/pkg/moderation"
	"github.com/wsabol/oracle-moderation/pkg/moderation/lexicon"
	"github.com/wsabol/oracle-moderation/pkg/server"
)

func main() {
	ctx := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger("moderation")

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := cache.NewCache(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheInstance.Close()

	// lexicon: compiled-in defaults merged with config overrides, shared
	// through redis across replicas
	staticLexicon := lexicon.NewStaticProvider(cfg.Moderation.Categories)
	lexiconProvider := lexicon.NewRedisProvider(cacheInstance, staticLexicon, logger)
	if err := lexiconProvider.Load(ctx); err != nil {
		logger.Fatalf("Failed to load lexicon: %v", err)
	}

	// core
	detector := moderation.NewDetector(lexiconProvider, logger)
	scorer := moderation.NewConfidenceScorer(detector, logger)

	// repositories
	violationRepository := repository.NewViolationRepository(db.DB)
	patternRepository := repository.NewPatternRepository(db.DB)

	patternDetector := moderation.NewPatternDetector(violationRepository, patternRepository, logger)
	scanner := scan.NewMessageScanner(
		detector,
		scorer,
		violationRepository,
		patternDetector,
		logger,
		cfg.Moderation.EnableConfidenceScoring,
	)

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	adminServer := server.NewAdminServer(server.AdminServerDI{
		Config: cfg,
		Logger: logger,
		MiddlewareTransport: middleware.Transport{
			AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager),
		},
		HandlerTransport: handlers.HandlerTransport{
			ScanMessageHandler:         handlers.NewScanMessageHandler(logger, scanner),
			ListReviewPatternsHandler:  handlers.NewListReviewPatternsHandler(logger, patternRepository),
			MarkPatternReviewedHandler: handlers.NewMarkPatternReviewedHandler(logger, patternRepository),
			ListViolationsHandler:      handlers.NewListViolationsHandler(logger, violationRepository),
			ReportFalsePositiveHandler: handlers.NewReportFalsePositiveHandler(logger, violationRepository),
		},
	})

	go func() {
		if err := adminServer.Run(); err != nil {
			logger.Fatalf("Server stopped: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	if err := adminServer.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down server cleanly")
	}
}
