package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

var (
	ErrMalformedResponse = errors.New("malformed question response")
	ErrEmptyAnswer       = errors.New("question response has an empty answer")
)

var (
	questionLabels = []string{"question:", "q:"}
	answerLabels   = []string{"answer:", "a:"}
)

// QuestionService turns generated text into board questions.
type QuestionService struct {
	generator Generator
	logger    *zap.Logger
}

func NewQuestionService(generator Generator, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		generator: generator,
		logger:    logger,
	}
}

// Question returns a question for the topic and point value.
// It never fails: any generation or parsing error is logged and replaced by the fallback pair.
func (s *QuestionService) Question(ctx context.Context, topic string, points int) entities.QuestionPair {
	pair, err := s.generate(ctx, topic, points)
	if err != nil {
		s.logger.Warn("failed to generate question, using fallback",
			zap.String("topic", topic),
			zap.Int("points", points),
			zap.Error(err),
		)
		return FallbackQuestion(topic, points)
	}

	return pair
}

func (s *QuestionService) generate(ctx context.Context, topic string, points int) (entities.QuestionPair, error) {
	text, err := s.generator.Generate(ctx, buildQuestionPrompt(topic, points))
	if err != nil {
		return entities.QuestionPair{}, fmt.Errorf("generate: %w", err)
	}

	pair, err := ParseQuestion(text)
	if err != nil {
		return entities.QuestionPair{}, fmt.Errorf("parse: %w", err)
	}

	return pair, nil
}

// FallbackQuestion returns the deterministic pair used when generation fails.
func FallbackQuestion(topic string, points int) entities.QuestionPair {
	return entities.QuestionPair{
		Question: fmt.Sprintf("This %s question is worth $%d", topic, points),
		Answer:   entities.FallbackAnswer,
	}
}

// ParseQuestion reads the question from the first non-blank line and the answer from the second.
func ParseQuestion(text string) (entities.QuestionPair, error) {
	lines := make([]string, 0, 2)
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return entities.QuestionPair{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedResponse, len(lines))
	}

	question := stripLabel(lines[0], questionLabels)
	if question == "" {
		return entities.QuestionPair{}, fmt.Errorf("%w: empty question", ErrMalformedResponse)
	}

	answer := NormalizeAnswer(lines[1])
	if answer == "" {
		return entities.QuestionPair{}, ErrEmptyAnswer
	}

	return entities.QuestionPair{
		Question: question,
		Answer:   answer,
	}, nil
}

// NormalizeAnswer lowercases and trims the answer and removes a leading "answer:" or "a:" label.
func NormalizeAnswer(answer string) string {
	return stripLabel(strings.ToLower(strings.TrimSpace(answer)), answerLabels)
}

func stripLabel(s string, labels []string) string {
	lower := strings.ToLower(s)
	for _, label := range labels {
		if strings.HasPrefix(lower, label) {
			return strings.TrimSpace(s[len(label):])
		}
	}
	return s
}
