package console

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

const clearScreen = "\033[H\033[2J"

// Renderer draws the board and the score.
type Renderer struct {
	out    io.Writer
	clear  bool
	styles *styles
}

func NewRenderer(out io.Writer, st *styles) *Renderer {
	return &Renderer{
		out:    out,
		clear:  isTerminal(out),
		styles: st,
	}
}

// Clear wipes the screen when the output is a terminal.
func (r *Renderer) Clear() {
	if r.clear {
		fmt.Fprint(r.out, clearScreen)
	}
}

// Board clears the screen and prints the board followed by the current score.
func (r *Renderer) Board(session *entities.GameSession) {
	r.Clear()
	fmt.Fprintln(r.out, r.boardTable(session.Board))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, msgCurrentScore+"\n", session.Score)
}

func (r *Renderer) boardTable(board *entities.Board) string {
	topics := board.Topics()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.border).
		Headers(topics...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.header
			}
			return r.styles.cell
		})

	for _, p := range board.Points() {
		cells := make([]string, 0, len(topics))
		for _, topic := range topics {
			cells = append(cells, r.cellLabel(board, topic, p))
		}
		t.Row(cells...)
	}

	grid := t.Render()
	title := r.styles.title.Width(lipgloss.Width(grid)).Render(msgBoardTitle)

	return lipgloss.JoinVertical(lipgloss.Left, title, grid)
}

func (r *Renderer) cellLabel(board *entities.Board, topic string, points int) string {
	cell, err := board.Cell(topic, points)
	if err != nil || cell.Answered {
		return r.styles.answered.Render(msgAnsweredCell)
	}
	return "$" + strconv.Itoa(points)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
