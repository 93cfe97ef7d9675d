package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

var ErrUnknownTopic = errors.New("unknown topic")

// Verdict is the outcome of one answered cell.
type Verdict struct {
	Correct       bool
	Points        int
	CorrectAnswer string
	Score         int // score after the verdict was applied
}

type GameService struct {
	boardService *BoardService
	resultRepo   ResultRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewGameService(
	boardService *BoardService,
	resultRepo ResultRepository,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		boardService: boardService,
		resultRepo:   resultRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Start generates a new board and opens a session around it.
func (s *GameService) Start(ctx context.Context, onTopic func(topic string)) *entities.GameSession {
	board := s.boardService.Initialize(ctx, onTopic)
	session := entities.NewGameSession(board)

	s.logger.Info("game started", zap.String("session_id", session.ID))
	return session
}

// Answer judges the player's answer for the cell, updates the score and marks the cell answered.
func (s *GameService) Answer(
	session *entities.GameSession,
	topic string,
	points int,
	playerAnswer string,
) (*Verdict, error) {
	if !session.Board.HasTopic(topic) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	cell, err := session.Board.Cell(topic, points)
	if err != nil {
		return nil, fmt.Errorf("cell %s/%d: %w", topic, points, err)
	}
	if cell.Answered {
		return nil, fmt.Errorf("cell %s/%d: %w", topic, points, entities.ErrCellAnswered)
	}

	correct := IsCorrect(playerAnswer, cell.Answer)

	if err := session.Board.MarkAnswered(topic, points); err != nil {
		return nil, fmt.Errorf("mark answered: %w", err)
	}

	session.Record(entities.Turn{
		Topic:         topic,
		Points:        points,
		Question:      cell.Question,
		CorrectAnswer: cell.Answer,
		PlayerAnswer:  playerAnswer,
		IsCorrect:     correct,
		AnsweredAt:    s.now(),
	})

	s.logger.Debug("answer judged",
		zap.String("topic", topic),
		zap.Int("points", points),
		zap.Bool("correct", correct),
		zap.Int("score", session.Score),
	)

	return &Verdict{
		Correct:       correct,
		Points:        points,
		CorrectAnswer: cell.Answer,
		Score:         session.Score,
	}, nil
}

// Finish closes the session and stores its result.
// A storage failure is logged and does not affect the returned result.
func (s *GameService) Finish(ctx context.Context, session *entities.GameSession) *entities.GameResult {
	result := entities.NewGameResult(session, s.now())

	if s.resultRepo == nil {
		return result
	}

	if err := s.resultRepo.Save(ctx, result); err != nil {
		s.logger.Warn("failed to save game result",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}

	return result
}

// BestScores returns the highest recorded results.
func (s *GameService) BestScores(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	if s.resultRepo == nil || limit <= 0 {
		return nil, nil
	}

	results, err := s.resultRepo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get best scores: %w", err)
	}

	return results, nil
}
