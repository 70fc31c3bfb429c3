// Package textkit provides text normalization helpers shared across the
// pipeline.
package textkit

import (
	"regexp"
	"strings"
)

var (
	separatorPattern = regexp.MustCompile(`[\s\-]+`)
	boundaryPattern  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Snake converts an arbitrary header string to snake_case.
//
// Runs of whitespace and hyphens collapse to a single underscore, camelCase
// boundaries split, and the result is lowercased. The function is
// idempotent: an already-normalized string passes through unchanged.
//
//	Snake("First Name")      == "first_name"
//	Snake("CONVERSATION ID") == "conversation_id"
//	Snake("Date-Sent")       == "date_sent"
func Snake(name string) string {
	name = separatorPattern.ReplaceAllString(name, "_")
	name = boundaryPattern.ReplaceAllString(name, "${1}_${2}")

	return strings.ToLower(name)
}
