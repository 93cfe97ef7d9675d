package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
	"github.com/aliskhannn/terminal-jeopardy/internal/infra/postgres"
)

var turnColumns = []string{
	"result_id", "turn_order", "topic", "points", "question",
	"correct_answer", "player_answer", "is_correct", "answered_at",
}

// ResultRepository provides access to finished games in the database.
type ResultRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(db postgres.DBTX, transactor *postgres.Transactor) *ResultRepository {
	return &ResultRepository{
		db:         db,
		transactor: transactor,
	}
}

// Save inserts the result and its turns within a transaction.
func (r *ResultRepository) Save(ctx context.Context, result *entities.GameResult) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO game_results (
				id, score, correct, incorrect, answered,
				total_cells, completed, started_at, finished_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`

		_, err := tx.Exec(
			ctx,
			query,
			result.ID,
			result.Score,
			result.Correct,
			result.Incorrect,
			result.Answered,
			result.TotalCells,
			result.Completed,
			result.StartedAt,
			result.FinishedAt,
		)
		if err != nil {
			return fmt.Errorf("insert game result: %w", err)
		}

		if len(result.Turns) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(result.Turns))
		for i, t := range result.Turns {
			rows = append(rows, []any{
				result.ID, i + 1, t.Topic, t.Points, t.Question,
				t.CorrectAnswer, t.PlayerAnswer, t.IsCorrect, t.AnsweredAt,
			})
		}

		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"game_turns"}, turnColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy game turns: %w", err)
		}

		return nil
	})
}

// Top returns the best results ordered by score. Turns are not loaded.
func (r *ResultRepository) Top(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	query := `
		SELECT id, score, correct, incorrect, answered,
		       total_cells, completed, started_at, finished_at
		FROM game_results
		ORDER BY score DESC, finished_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query top results: %w", err)
	}
	defer rows.Close()

	var results []*entities.GameResult
	for rows.Next() {
		var res entities.GameResult
		if err := rows.Scan(
			&res.ID,
			&res.Score,
			&res.Correct,
			&res.Incorrect,
			&res.Answered,
			&res.TotalCells,
			&res.Completed,
			&res.StartedAt,
			&res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, &res)
	}

	return results, rows.Err()
}
