package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

// QuestionSource supplies a question for every board cell.
type QuestionSource interface {
	Question(ctx context.Context, topic string, points int) entities.QuestionPair
}

// BoardConfig describes the fixed shape of the board.
type BoardConfig struct {
	Topics []string
	Points []int
	Delay  time.Duration // pause between two generation calls
}

type BoardService struct {
	questions QuestionSource
	cfg       BoardConfig
	logger    *zap.Logger
}

func NewBoardService(questions QuestionSource, cfg BoardConfig, logger *zap.Logger) *BoardService {
	return &BoardService{
		questions: questions,
		cfg:       cfg,
		logger:    logger,
	}
}

// Initialize builds a board and fills every cell, one generation call per cell.
// onTopic, when set, is called before the questions of a topic are generated.
func (s *BoardService) Initialize(ctx context.Context, onTopic func(topic string)) *entities.Board {
	board := entities.NewBoard(s.cfg.Topics, s.cfg.Points)

	fallbacks := 0
	for _, topic := range board.Topics() {
		if onTopic != nil {
			onTopic(topic)
		}

		for _, points := range board.Points() {
			pair := s.questions.Question(ctx, topic, points)
			if pair.IsFallback() {
				fallbacks++
			}

			// Topics and points come from the board itself, so the cell always exists.
			_ = board.Fill(topic, points, pair)

			s.pause(ctx)
		}
	}

	s.logger.Info("board initialized",
		zap.Int("cells", board.Size()),
		zap.Int("fallbacks", fallbacks),
	)

	return board
}

func (s *BoardService) pause(ctx context.Context) {
	if s.cfg.Delay <= 0 {
		return
	}

	t := time.NewTimer(s.cfg.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
