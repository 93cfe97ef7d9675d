package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/terminal-jeopardy/internal/config"
	"github.com/aliskhannn/terminal-jeopardy/internal/delivery/console"
	"github.com/aliskhannn/terminal-jeopardy/internal/infra/gemini"
	"github.com/aliskhannn/terminal-jeopardy/internal/infra/ollama"
	"github.com/aliskhannn/terminal-jeopardy/internal/infra/postgres"
	"github.com/aliskhannn/terminal-jeopardy/internal/infra/postgres/repository"
	"github.com/aliskhannn/terminal-jeopardy/internal/infra/sqlite"
	"github.com/aliskhannn/terminal-jeopardy/internal/logger"
	"github.com/aliskhannn/terminal-jeopardy/internal/service"
	"github.com/aliskhannn/terminal-jeopardy/internal/storage"
)

func main() {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx := context.Background()

	generator, closeGenerator, err := newGenerator(ctx, cfg)
	if err != nil {
		lg.Fatal("failed to create question generator", zap.Error(err))
	}
	defer closeGenerator()

	resultRepo, closeResults, err := newResultRepository(ctx, cfg)
	if err != nil {
		lg.Fatal("failed to open result store",
			zap.String("backend", cfg.Results.Backend),
			zap.Error(err),
		)
	}
	defer closeResults()

	// Initialize services.
	questionService := service.NewQuestionService(generator, lg)
	boardService := service.NewBoardService(questionService, service.BoardConfig{
		Topics: cfg.Board.Topics,
		Points: cfg.Board.Points,
		Delay:  cfg.Generator.Delay,
	}, lg)
	gameService := service.NewGameService(boardService, resultRepo, lg)

	handler := console.NewHandler(gameService, os.Stdin, os.Stdout, lg, console.Config{
		Generator:   fmt.Sprintf("%s (%s)", cfg.Generator.Provider, cfg.Generator.Model),
		RevealPause: cfg.Game.RevealPause,
		BestScores:  cfg.Game.BestScores,
	})
	if err := handler.Run(ctx); err != nil {
		lg.Error("game stopped", zap.Error(err))
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (service.Generator, func(), error) {
	switch cfg.Generator.Provider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.Generator.APIKey, cfg.Generator.Model)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	default:
		client := ollama.NewClient(cfg.Generator.URL, cfg.Generator.Model, cfg.Generator.Timeout)
		return client, func() {}, nil
	}
}

func newResultRepository(ctx context.Context, cfg *config.Config) (service.ResultRepository, func(), error) {
	switch cfg.Results.Backend {
	case config.BackendPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}

		return repository.NewResultRepository(pool, postgres.NewTransactor(pool)), pool.Close, nil

	case config.BackendSQLite:
		repo, err := sqlite.NewResultRepository(cfg.Results.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		return storage.NewResultStorage(), func() {}, nil
	}
}
