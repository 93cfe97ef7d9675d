package entities

// FallbackAnswer is the sentinel answer stored when a question could not be generated.
const FallbackAnswer = "backup"

// QuestionPair is a generated trivia question together with its normalized answer.
type QuestionPair struct {
	Question string
	Answer   string // lowercase, trimmed, without "answer:"/"a:" labels
}

// IsFallback reports whether the pair carries the fallback sentinel answer.
func (p QuestionPair) IsFallback() bool {
	return p.Answer == FallbackAnswer
}
