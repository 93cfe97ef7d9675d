package service

import (
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// similarityThreshold is the ratio a typo-tolerant answer has to exceed.
	similarityThreshold = 0.8
	// minImportantWordLen filters out articles and prepositions.
	minImportantWordLen = 3
)

// IsCorrect reports whether the player's answer should be accepted for the correct answer.
// Strategies are tried in order: exact match, character similarity, then significant words.
func IsCorrect(playerAnswer, correctAnswer string) bool {
	player := strings.ToLower(strings.TrimSpace(playerAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))

	if player == correct {
		return true
	}

	if similarity(player, correct) > similarityThreshold {
		return true
	}

	return containsImportantWords(player, correct)
}

// similarity returns the SequenceMatcher ratio of the two strings compared character by character.
func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// containsImportantWords reports whether every word of correct longer than minImportantWordLen
// appears in player. The check is one-way and never fires when correct has no such words.
func containsImportantWords(player, correct string) bool {
	playerWords := wordSet(player)

	important := 0
	for w := range wordSet(correct) {
		if utf8.RuneCountInString(w) <= minImportantWordLen {
			continue
		}
		important++
		if _, ok := playerWords[w]; !ok {
			return false
		}
	}

	return important > 0
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
