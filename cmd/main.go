package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"gitlab.com/codeplatform.net/internal/adapter/crypto"
	"gitlab.com/codeplatform.net/internal/adapter/genai"
	"gitlab.com/codeplatform.net/internal/adapter/judge0"
	"gitlab.com/codeplatform.net/internal/adapter/logging"
	"gitlab.com/codeplatform.net/internal/adapter/metrics"
	"gitlab.com/codeplatform.net/internal/adapter/postgres/chatrepository"
	"gitlab.com/codeplatform.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codeplatform.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codeplatform.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codeplatform.net/internal/adapter/redis/oauthstate"
	"gitlab.com/codeplatform.net/internal/config"
	auth2 "gitlab.com/codeplatform.net/internal/core/services/auth"
	"gitlab.com/codeplatform.net/internal/core/services/chat"
	"gitlab.com/codeplatform.net/internal/core/services/evaluation"
	"gitlab.com/codeplatform.net/internal/core/services/problem"
	"gitlab.com/codeplatform.net/internal/core/services/submission"
	logger2 "gitlab.com/codeplatform.net/internal/global/logger"
	http2 "gitlab.com/codeplatform.net/internal/http"
)

const shutdownTimeout = 30 * time.Second

func main() {
	InitReader()

	sysCfg := config.NewSystemConfig()
	if sysCfg.DebugMode {
		logger2.Set(logging.NewZapLoggerWithLevel(zapcore.DebugLevel))
	}
	logger := logger2.Logger
	defer func() { _ = logger.Sync() }()

	if err := run(sysCfg, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("successfully shutdown server")
}

func run(sysCfg *config.AppConfig, logger *logging.ZapLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting coding platform service", "environment", sysCfg.Environment)

	db, err := setupDatabase(ctx, sysCfg.PostgresConfig)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(reg)

	// SECONDARY PORTS
	schema := sysCfg.PostgresConfig.Schema
	userPort := userrepository.New(db, logger, schema)
	problemRepo := problemrepository.NewProblemRepository(db, logger, schema)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger, schema)
	chatRepo := chatrepository.NewChatRepository(db, logger, schema)
	stateStore := oauthstate.NewStateRepository(redisClient, logger)
	judgeClient := judge0.NewClient(sysCfg.JudgeConfig, logger, judge0.WithMetrics(recorder))
	assistant, err := genai.NewGemini(ctx, sysCfg.GenAIConfig, logger)
	if err != nil {
		return err
	}

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	evaluationSvc := evaluation.NewEvaluationService(judgeClient, sysCfg.JudgeConfig.LanguageID, logger, recorder)
	submissionSvc := submission.NewSubmissionService(problemRepo, submissionRepo, evaluationSvc, logger)
	problemSvc := problem.NewProblemService(problemRepo)
	chatSvc := chat.NewChatService(chatRepo, assistant, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, stateStore, jwtProvider, logger, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider, logger)
	serviceProvider := http2.NewServiceProvider(submissionSvc, problemSvc, chatSvc, ggAuth, localAuth, jwtProvider)

	//server
	httpServer := http2.NewServer(sysCfg.ServerConfig, sysCfg.Environment, *serviceProvider, reg, logger)
	if err := httpServer.Init(); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(httpServer.Start)
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// setupDatabase opens the PostgreSQL pool and checks the connection
func setupDatabase(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// InitReader loads <env>.env when an environment name is given, otherwise an
// optional .env from the working directory.
func InitReader() {
	if len(os.Args) >= 2 {
		environment := os.Args[1]
		if err := godotenv.Load(environment + ".env"); err != nil {
			log.Fatalf("Error loading %s.env file", environment)
		}
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}
