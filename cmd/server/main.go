package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"aura-portal/internal/audit"
	"aura-portal/internal/config"
	"aura-portal/internal/httpapi"
	"aura-portal/internal/integrations/openai"
	"aura-portal/internal/integrations/paramstore"
	"aura-portal/internal/usecase"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	auditLogger, err := newAuditLogger(cfg.AuditLogPath)
	if err != nil {
		logger.Fatal("failed to create audit logger", zap.Error(err))
	}
	trail := audit.New(auditLogger)

	keys, err := newKeySource(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create key source", zap.Error(err))
	}

	llm, err := openai.NewClient(keys, openai.WithBaseURL(cfg.ProviderBaseURL))
	if err != nil {
		logger.Fatal("failed to create completion client", zap.Error(err))
	}

	chat, err := usecase.NewChatService(llm, trail, cfg.Model, cfg.MaxOutputTokens, cfg.Temperature, cfg.MaxMessageLen)
	if err != nil {
		logger.Fatal("failed to create chat service", zap.Error(err))
	}

	srv, err := httpapi.New(chat, logger, httpapi.Options{CORSOrigin: cfg.CORSOrigin})
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	go func() {
		logger.Info("starting portal backend",
			zap.String("addr", cfg.ListenAddr),
			zap.String("model", cfg.Model),
			zap.String("key_source", cfg.KeySource))
		if err := srv.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

// newAuditLogger writes JSON audit records to the configured file and stderr.
func newAuditLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path, "stderr"}
	return zcfg.Build()
}

func newKeySource(ctx context.Context, cfg *config.Config) (openai.KeySource, error) {
	if cfg.KeySource == config.KeySourceEnv {
		return openai.StaticKey(cfg.APIKey), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return nil, err
	}
	return paramstore.NewKeySource(ssmClient, cfg.ParamPrefix)
}
