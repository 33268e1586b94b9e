package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"aura-portal/handler"
	"aura-portal/internal/audit"
	"aura-portal/internal/integrations/openai"
	"aura-portal/internal/integrations/paramstore"
	"aura-portal/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	paramPrefix := mustEnv("PARAM_PREFIX")
	model := envString("PROVIDER_MODEL", "gpt-3.5-turbo")
	maxTokens := envInt("MAX_OUTPUT_TOKENS", 1000)
	maxMessageLen := envInt("MAX_MESSAGE_LENGTH", 2000)
	temperature := envFloat("TEMPERATURE", 0.7)

	// ---- AWS SDK config ----
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
	if err != nil {
		slog.Error("failed to create SSM client", "err", err)
		os.Exit(1)
	}
	keys, err := paramstore.NewKeySource(ssmClient, paramPrefix)
	if err != nil {
		slog.Error("failed to create key source", "err", err)
		os.Exit(1)
	}
	llm, err := openai.NewClient(keys)
	if err != nil {
		slog.Error("failed to create completion client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	// Audit records go to the function log stream; CloudWatch captures them.
	auditLogger, err := zap.NewProduction()
	if err != nil {
		slog.Error("failed to create audit logger", "err", err)
		os.Exit(1)
	}
	defer func() { _ = auditLogger.Sync() }()

	chat, err := usecase.NewChatService(llm, audit.New(auditLogger), model, maxTokens, temperature, maxMessageLen)
	if err != nil {
		slog.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(chat)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
