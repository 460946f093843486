package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/providers/embed"
	"github.com/sandevgo/trackmate/internal/providers/linear"
	"github.com/sandevgo/trackmate/internal/providers/llm"
	"github.com/sandevgo/trackmate/internal/service/assistant"
	"github.com/sandevgo/trackmate/internal/service/command"
	"github.com/sandevgo/trackmate/internal/service/memory"
	"github.com/sandevgo/trackmate/internal/service/pipeline"
	"github.com/sandevgo/trackmate/internal/storage/sqlite"
	"github.com/sandevgo/trackmate/internal/transport/cli"
	"github.com/sandevgo/trackmate/internal/transport/telegram"
	"github.com/sandevgo/trackmate/pkg/log"
	"github.com/sandevgo/trackmate/pkg/retry"
	"github.com/sandevgo/trackmate/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	memCfg := config.NewMemoryConfig(ctx)
	embCfg := config.NewEmbeddingConfig(ctx)
	linearCfg := config.NewLinearConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// 3. LLM Provider (chat + structured classification)
	provider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Embedder and fact store
	embedder := embed.NewOpenAIEmbedder(embCfg.BaseURL, embCfg.APIKey, embCfg.Model)
	facts := sqlite.NewFactsRepo(db, embedder)

	// 5. Issue tracker
	ticketing := linear.NewClient(linearCfg)

	// 6. Memory gateway and pipeline
	gateway := memory.NewGateway(memCfg, provider, facts)
	registry := pipeline.NewRegistry(memCfg.WriteWorkers)
	retrier := retry.NewDefaultRetrier()

	router := pipeline.NewRouter(provider, retrier)
	handlers := pipeline.NewHandlers(provider, provider, ticketing, appCfg.HistoryTokenBudget)
	pipe := pipeline.NewPipeline(gateway, router, registry, handlers, retrier)

	// 7. Assistant with slash commands
	cmdRouter := command.New(command.NewCommands(facts, ticketing))
	asst := assistant.New(pipe, cmdRouter)

	// Let in-flight memory writes finish before the DB closes;
	// shutdown runs in append order.
	services = append(services, srv.NewCleanup(func() error {
		asst.Drain()
		return nil
	}))
	services = append(services, srv.NewCleanup(db.Close))

	// 8. Transports
	transports, err := initTransports(ctx, appCfg, asst)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initTransports(ctx context.Context, cfg *config.AppConfig, asst *assistant.Assistant) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, asst)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// Terminal chat
	if cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(asst, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
