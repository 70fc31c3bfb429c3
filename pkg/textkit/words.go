package textkit

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// WordCount returns the number of word-like tokens in s, using Unicode
// word segmentation. Punctuation and whitespace tokens are not counted.
func WordCount(s string) int {
	count := 0

	tokens := words.FromString(s)
	for tokens.Next() {
		if isWordLike(tokens.Value()) {
			count++
		}
	}

	return count
}

func isWordLike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}

	return false
}
