package entities

import (
	"time"

	"github.com/google/uuid"
)

// GameSession represents one game from board generation until the player stops or the board is exhausted.
type GameSession struct {
	ID        string    // unique session ID
	Board     *Board    // question board
	Score     int       // running score, may go negative
	Turns     []Turn    // played turns in order
	StartedAt time.Time // timestamp when the game started
}

// NewGameSession creates a new session around the board with a zero score.
func NewGameSession(board *Board) *GameSession {
	return &GameSession{
		ID:        uuid.New().String(),
		Board:     board,
		Score:     0,
		StartedAt: time.Now(),
	}
}

// Turn is a single played board cell.
type Turn struct {
	Topic         string    // topic the player picked
	Points        int       // stakes of the cell
	Question      string    // question text shown to the player
	CorrectAnswer string    // stored answer of the cell
	PlayerAnswer  string    // answer typed by the player
	IsCorrect     bool      // verdict of the answer matcher
	AnsweredAt    time.Time // timestamp when the answer was submitted
}

// Delta returns the score change caused by the turn.
func (t Turn) Delta() int {
	if t.IsCorrect {
		return t.Points
	}
	return -t.Points
}

// Record appends the turn and applies its score change.
func (s *GameSession) Record(turn Turn) {
	s.Turns = append(s.Turns, turn)
	s.Score += turn.Delta()
}

// CorrectCount returns the number of correctly answered turns.
func (s *GameSession) CorrectCount() int {
	n := 0
	for _, t := range s.Turns {
		if t.IsCorrect {
			n++
		}
	}
	return n
}
