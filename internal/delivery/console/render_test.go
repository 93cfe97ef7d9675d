package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

func TestRendererBoard(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, newStyles(lipgloss.NewRenderer(&out)))

	board := entities.NewBoard([]string{"Science", "History"}, []int{100, 200})
	_ = board.MarkAnswered("History", 200)

	session := entities.NewGameSession(board)
	session.Score = -200

	r.Board(session)
	got := out.String()

	for _, want := range []string{"Jeopardy Board", "Science", "History", "$100", "$200", "----", "Current Score: $-200"} {
		if !strings.Contains(got, want) {
			t.Errorf("board output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "----") != 1 {
		t.Errorf("expected exactly one answered cell:\n%s", got)
	}
	if strings.Contains(got, clearScreen) {
		t.Error("screen cleared on a non-terminal writer")
	}
}

func TestRendererRowsFollowPointOrder(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, newStyles(lipgloss.NewRenderer(&out)))

	board := entities.NewBoard([]string{"Arts"}, []int{100, 200, 300})
	got := r.boardTable(board)

	i100 := strings.Index(got, "$100")
	i200 := strings.Index(got, "$200")
	i300 := strings.Index(got, "$300")
	if i100 < 0 || i100 > i200 || i200 > i300 {
		t.Fatalf("rows out of order:\n%s", got)
	}
}
