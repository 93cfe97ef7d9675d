package service

import (
	"context"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ResultRepository stores finished games.
type ResultRepository interface {
	Save(ctx context.Context, result *entities.GameResult) error
	Top(ctx context.Context, limit int) ([]*entities.GameResult, error)
}
