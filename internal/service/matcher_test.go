package service

import "testing"

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		player  string
		correct string
		want    bool
	}{
		// exact
		{"paris", "paris", true},
		{"mount everest", "mount everest", true},

		// case
		{"Paris", "paris", true},
		{"PARIS", "paris", true},
		{"MOUNT EVEREST", "mount everest", true},

		// articles and extra words
		{"the eiffel tower", "eiffel tower", true},
		{"a red planet", "red planet", true},

		// similar answers
		{"mt everest", "mount everest", true},
		{"george washington", "president washington", false},

		// wrong answers
		{"completely wrong", "correct answer", false},
		{"mars", "venus", false},
		{"pacific ocean", "atlantic ocean", false},

		// partial answers
		{"new", "new york city", false},
		{"cat", "category", false},

		// whitespace
		{"  paris  ", "paris", true},
		{"mount   everest", "mount everest", true},
		{"paris", "  Paris\n", true},

		// typos
		{"mount everst", "mount everest", true},
		{"mount everust", "mount everest", true},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.player, tc.correct)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.player, tc.correct, got, tc.want)
		}
	}
}

func TestIsCorrectReflexive(t *testing.T) {
	for _, s := range []string{"a", "zeus", "the battle of hastings", "1066", "ørsted"} {
		if !IsCorrect(s, s) {
			t.Errorf("IsCorrect(%q, %q) = false, want true", s, s)
		}
	}
}

func TestIsCorrectShortWordAnswers(t *testing.T) {
	// No word of the correct answer is longer than three characters,
	// so only exact match and similarity can accept it.
	tests := []struct {
		player  string
		correct string
		want    bool
	}{
		{"the sun god ra", "sun god", false},
		{"sun god", "sun god", true},
		{"sun gods", "sun god", true},
		{"ra", "ra", true},
		{"re", "ra", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.player, tc.correct)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.player, tc.correct, got, tc.want)
		}
	}
}

func TestIsCorrectEmpty(t *testing.T) {
	tests := []struct {
		player  string
		correct string
		want    bool
	}{
		{"", "", true},
		{"   ", "", true},
		{"", "paris", false},
		{"paris", "", false},
	}

	for _, tc := range tests {
		got := IsCorrect(tc.player, tc.correct)
		if got != tc.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tc.player, tc.correct, got, tc.want)
		}
	}
}

func TestIsCorrectImportantWordsAreOneWay(t *testing.T) {
	if !IsCorrect("the statue of liberty in new york", "statue of liberty") {
		t.Error("superset answer with every important word rejected")
	}
	if IsCorrect("liberty", "statue of liberty") {
		t.Error("answer missing an important word accepted")
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abc", "xyz", 0},
		{"mount everst", "mount everest", 24.0 / 25.0},
	}

	for _, tc := range tests {
		got := similarity(tc.a, tc.b)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
