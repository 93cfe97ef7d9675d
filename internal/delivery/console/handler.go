package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
	"github.com/aliskhannn/terminal-jeopardy/internal/service"
)

type GameService interface {
	Start(ctx context.Context, onTopic func(topic string)) *entities.GameSession
	Answer(session *entities.GameSession, topic string, points int, playerAnswer string) (*service.Verdict, error)
	Finish(ctx context.Context, session *entities.GameSession) *entities.GameResult
	BestScores(ctx context.Context, limit int) ([]*entities.GameResult, error)
}

// Config controls pacing and the end-of-game summary.
type Config struct {
	Generator   string        // generator name shown while the board is generated
	RevealPause time.Duration // pause after a judged answer, doubled for wrong answers
	BestScores  int           // number of best scores listed at the end
}

type Handler struct {
	game     GameService
	prompter *Prompter
	renderer *Renderer
	styles   *styles
	out      io.Writer
	logger   *zap.Logger
	cfg      Config
	sleep    func(time.Duration)
}

func NewHandler(
	game GameService,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	cfg Config,
) *Handler {
	st := newStyles(lipgloss.NewRenderer(out))

	return &Handler{
		game:     game,
		prompter: NewPrompter(in, out, st),
		renderer: NewRenderer(out, st),
		styles:   st,
		out:      out,
		logger:   logger,
		cfg:      cfg,
		sleep:    time.Sleep,
	}
}

// Run plays one full game: board generation, turns until the board is exhausted
// or the player stops, then the final score.
func (h *Handler) Run(ctx context.Context) error {
	h.renderer.Clear()
	h.println(h.styles.welcome.Render(msgWelcome))
	h.println(fmt.Sprintf(msgInitializing, h.cfg.Generator))

	session := h.game.Start(ctx, func(topic string) {
		h.println(fmt.Sprintf(msgGeneratingTopic, topic))
	})

	for {
		h.renderer.Board(session)

		if session.Board.IsComplete() {
			break
		}

		more, err := h.playTurn(session)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("play turn: %w", err)
		}
		if !more || err != nil {
			h.println("")
			h.println(h.styles.welcome.Render(msgThanks))
			break
		}
	}

	h.println("")
	h.println(fmt.Sprintf(msgGameOver, session.Score))

	result := h.game.Finish(ctx, session)
	h.logger.Info("game finished",
		zap.String("session_id", result.ID),
		zap.Int("score", result.Score),
		zap.Int("answered", result.Answered),
		zap.Bool("completed", result.Completed),
	)

	h.printBestScores(ctx)

	return nil
}

// playTurn returns false when the player chose to stop.
func (h *Handler) playTurn(session *entities.GameSession) (bool, error) {
	h.println("")
	more, err := h.prompter.Confirm(msgContinue, true)
	if err != nil || !more {
		return false, err
	}

	board := session.Board

	topic, err := h.prompter.Choose(msgChooseTopic, board.Topics())
	if err != nil {
		return false, err
	}

	available := board.AvailablePoints(topic)
	if len(available) == 0 {
		h.println(h.styles.error.Render(msgNoQuestionsLeft))
		return true, nil
	}

	choices := make([]string, 0, len(available))
	for _, p := range available {
		choices = append(choices, strconv.Itoa(p))
	}

	choice, err := h.prompter.Choose(msgChoosePoints, choices)
	if err != nil {
		return false, err
	}
	points, _ := strconv.Atoi(choice)

	cell, err := board.Cell(topic, points)
	if err != nil {
		return false, err
	}

	h.println("")
	h.println(h.styles.question.Render(fmt.Sprintf(msgQuestionHeader, topic, points)))
	h.println(cell.Question)
	h.println("")

	answer, err := h.prompter.Ask(msgYourAnswer)
	if err != nil {
		return false, err
	}

	verdict, err := h.game.Answer(session, topic, points, answer)
	if err != nil {
		return false, err
	}

	if verdict.Correct {
		h.println(h.styles.correct.Render(msgCorrect))
	} else {
		h.println(h.styles.error.Render(fmt.Sprintf(msgIncorrect, verdict.CorrectAnswer)))
		h.pause()
	}
	h.pause()

	return true, nil
}

func (h *Handler) printBestScores(ctx context.Context) {
	if h.cfg.BestScores <= 0 {
		return
	}

	results, err := h.game.BestScores(ctx, h.cfg.BestScores)
	if err != nil {
		h.logger.Warn("failed to load best scores", zap.Error(err))
		return
	}
	if len(results) == 0 {
		return
	}

	h.println("")
	h.println(msgBestScores)
	for i, r := range results {
		h.println(fmt.Sprintf(msgBestScoreLine,
			i+1, r.Score, r.Answered, r.TotalCells, r.FinishedAt.Local().Format("2006-01-02 15:04")))
	}
}

func (h *Handler) pause() {
	if h.cfg.RevealPause > 0 {
		h.sleep(h.cfg.RevealPause)
	}
}

func (h *Handler) println(s string) {
	fmt.Fprintln(h.out, s)
}
