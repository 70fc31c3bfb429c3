package textkit

import "testing"

func TestWordCount(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 1},
		{"Let's schedule a call", 4},
		{"thanks so much, really appreciate it", 6},
		{"   ", 0},
		{"one-two three", 3},
		{"...", 0},
	}

	for _, tc := range cases {
		if got := WordCount(tc.input); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
