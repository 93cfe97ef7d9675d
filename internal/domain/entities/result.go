package entities

import "time"

// GameResult is the summary of a finished game.
type GameResult struct {
	ID         string    // session ID
	Score      int       // final score
	Correct    int       // number of correct answers
	Incorrect  int       // number of incorrect answers
	Answered   int       // cells played
	TotalCells int       // cells on the board
	Completed  bool      // whether the whole board was played
	StartedAt  time.Time // timestamp when the game started
	FinishedAt time.Time // timestamp when the game ended
	Turns      []Turn    // played turns, may be empty when loaded as a summary
}

// NewGameResult builds the result of the session at the given time.
func NewGameResult(s *GameSession, finishedAt time.Time) *GameResult {
	correct := s.CorrectCount()

	return &GameResult{
		ID:         s.ID,
		Score:      s.Score,
		Correct:    correct,
		Incorrect:  len(s.Turns) - correct,
		Answered:   len(s.Turns),
		TotalCells: s.Board.Size(),
		Completed:  s.Board.IsComplete(),
		StartedAt:  s.StartedAt,
		FinishedAt: finishedAt,
		Turns:      append([]Turn(nil), s.Turns...),
	}
}
