package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aliskhannn/terminal-jeopardy/internal/domain/entities"
)

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func TestQuestionServiceSuccess(t *testing.T) {
	gen := &stubGenerator{text: "What is the capital of France?\nParis"}
	s := NewQuestionService(gen, zaptest.NewLogger(t))

	pair := s.Question(context.Background(), "Geography", 100)

	if pair.Question != "What is the capital of France?" {
		t.Fatalf("question = %q", pair.Question)
	}
	if pair.Answer != "paris" {
		t.Fatalf("answer = %q, want %q", pair.Answer, "paris")
	}
	if pair.IsFallback() {
		t.Fatal("generated pair reported as fallback")
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "Geography trivia question worth 100 points") {
		t.Fatalf("prompt = %q", gen.prompts[0])
	}
}

func TestQuestionServiceFallback(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"generator error", &stubGenerator{err: errors.New("connection refused")}},
		{"single line", &stubGenerator{text: "What is the capital of France?"}},
		{"empty text", &stubGenerator{text: "   \n  "}},
		{"label only answer", &stubGenerator{text: "What is the capital of France?\nAnswer:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			s := NewQuestionService(tt.gen, zap.New(core))

			pair := s.Question(context.Background(), "Geography", 100)

			if pair.Answer != entities.FallbackAnswer {
				t.Fatalf("answer = %q, want %q", pair.Answer, entities.FallbackAnswer)
			}
			if !strings.Contains(pair.Question, "Geography") || !strings.Contains(pair.Question, "100") {
				t.Fatalf("fallback question %q lacks topic or points", pair.Question)
			}
			if logs.FilterMessage("failed to generate question, using fallback").Len() != 1 {
				t.Fatalf("expected one fallback warning, got %d log entries", logs.Len())
			}
			if len(tt.gen.prompts) != 1 {
				t.Fatalf("generator called %d times, want 1 (no retry)", len(tt.gen.prompts))
			}
		})
	}
}

func TestFallbackQuestion(t *testing.T) {
	pair := FallbackQuestion("Sports", 400)

	if pair.Question != "This Sports question is worth $400" {
		t.Fatalf("question = %q", pair.Question)
	}
	if !pair.IsFallback() {
		t.Fatal("fallback pair not recognised")
	}
}

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		question string
		answer   string
	}{
		{"plain", "What is the capital of France?\nParis", "What is the capital of France?", "paris"},
		{"answer label", "Who painted the Mona Lisa?\nAnswer: Leonardo da Vinci", "Who painted the Mona Lisa?", "leonardo da vinci"},
		{"short labels", "Q: Largest planet?\nA: Jupiter", "Largest planet?", "jupiter"},
		{"blank lines", "\n\nQuestion: Fastest land animal?\n\n  Cheetah  \n", "Fastest land animal?", "cheetah"},
		{"extra lines", "What is H2O?\nWater\nThis is an easy one.", "What is H2O?", "water"},
		{"crlf", "What is H2O?\r\nWater\r\n", "What is H2O?", "water"},
		{"label inside answer kept", "Which city hosts the Louvre?\nParis: the city of light", "Which city hosts the Louvre?", "paris: the city of light"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParseQuestion(tt.text)
			if err != nil {
				t.Fatalf("ParseQuestion error: %v", err)
			}
			if pair.Question != tt.question {
				t.Errorf("question = %q, want %q", pair.Question, tt.question)
			}
			if pair.Answer != tt.answer {
				t.Errorf("answer = %q, want %q", pair.Answer, tt.answer)
			}
		})
	}
}

func TestParseQuestionErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrMalformedResponse},
		{"one line", "Just a question?", ErrMalformedResponse},
		{"empty question label", "Question:\nParis", ErrMalformedResponse},
		{"empty answer", "What is the capital of France?\nA:", ErrEmptyAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQuestion(tt.text); !errors.Is(err, tt.want) {
				t.Fatalf("ParseQuestion(%q) error = %v, want %v", tt.text, err, tt.want)
			}
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paris", "paris"},
		{"  ANSWER:  Mount Everest ", "mount everest"},
		{"a: Jupiter", "jupiter"},
		{"Alpha Centauri", "alpha centauri"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizeAnswer(tc.in); got != tc.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
