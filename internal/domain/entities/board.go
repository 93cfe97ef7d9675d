package entities

import (
	"errors"
	"sort"
)

var (
	ErrCellNotFound = errors.New("board cell not found")
	ErrCellAnswered = errors.New("board cell already answered")
)

// BoardCell is one question on the board.
type BoardCell struct {
	Question string
	Answer   string
	Answered bool
}

// Board is a fixed grid of topics and point values.
// Topics and points keep the order they were configured with, which is also the render order.
type Board struct {
	topics []string
	points []int
	cells  map[string]map[int]*BoardCell
}

// NewBoard creates a board with an empty cell for every topic and point value.
func NewBoard(topics []string, points []int) *Board {
	b := &Board{
		topics: append([]string(nil), topics...),
		points: append([]int(nil), points...),
		cells:  make(map[string]map[int]*BoardCell, len(topics)),
	}

	for _, topic := range b.topics {
		row := make(map[int]*BoardCell, len(b.points))
		for _, p := range b.points {
			row[p] = &BoardCell{}
		}
		b.cells[topic] = row
	}

	return b
}

// Topics returns the board topics in configured order.
func (b *Board) Topics() []string {
	return append([]string(nil), b.topics...)
}

// Points returns the board point values in configured order.
func (b *Board) Points() []int {
	return append([]int(nil), b.points...)
}

// HasTopic reports whether the topic is one of the board columns.
func (b *Board) HasTopic(topic string) bool {
	_, ok := b.cells[topic]
	return ok
}

// Size returns the number of cells on the board.
func (b *Board) Size() int {
	return len(b.topics) * len(b.points)
}

// Cell returns the cell for the topic and point value.
func (b *Board) Cell(topic string, points int) (*BoardCell, error) {
	row, ok := b.cells[topic]
	if !ok {
		return nil, ErrCellNotFound
	}

	cell, ok := row[points]
	if !ok {
		return nil, ErrCellNotFound
	}

	return cell, nil
}

// Fill stores a generated question in the cell.
func (b *Board) Fill(topic string, points int, pair QuestionPair) error {
	cell, err := b.Cell(topic, points)
	if err != nil {
		return err
	}

	cell.Question = pair.Question
	cell.Answer = pair.Answer
	return nil
}

// MarkAnswered flips the answered flag of the cell. A cell can only be answered once.
func (b *Board) MarkAnswered(topic string, points int) error {
	cell, err := b.Cell(topic, points)
	if err != nil {
		return err
	}

	if cell.Answered {
		return ErrCellAnswered
	}

	cell.Answered = true
	return nil
}

// AvailablePoints returns the unanswered point values of a topic in ascending order.
func (b *Board) AvailablePoints(topic string) []int {
	row, ok := b.cells[topic]
	if !ok {
		return nil
	}

	available := make([]int, 0, len(row))
	for p, cell := range row {
		if !cell.Answered {
			available = append(available, p)
		}
	}
	sort.Ints(available)

	return available
}

// AnsweredCount returns how many cells have been played.
func (b *Board) AnsweredCount() int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Answered {
				n++
			}
		}
	}
	return n
}

// IsComplete reports whether every cell has been answered.
func (b *Board) IsComplete() bool {
	return b.AnsweredCount() == b.Size()
}

// TotalPoints returns the sum of all cell values on the board.
func (b *Board) TotalPoints() int {
	sum := 0
	for _, p := range b.points {
		sum += p
	}
	return sum * len(b.topics)
}
