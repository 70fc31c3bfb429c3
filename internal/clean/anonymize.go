// Package clean implements the cleaning and standardization stages for raw
// networking exports.
package clean

import (
	"crypto/sha256"
	"encoding/hex"
)

// DefaultHashLength is the hex-prefix length used when none is configured.
const DefaultHashLength = 8

// Anonymizer replaces sensitive text values with one-way hash tokens.
//
// Tokens are hex prefixes of the SHA-256 digest, so the same input always
// yields the same token and anonymized identities stay correlatable across
// datasets. The default 8-character prefix carries 32 bits, which makes
// birthday collisions plausible past roughly 65k distinct values; raise the
// length for larger exports.
type Anonymizer struct {
	hashLength int
}

// NewAnonymizer creates an anonymizer producing tokens of the given length.
// Lengths outside 1..64 fall back to the default.
func NewAnonymizer(hashLength int) *Anonymizer {
	if hashLength < 1 || hashLength > 64 {
		hashLength = DefaultHashLength
	}

	return &Anonymizer{hashLength: hashLength}
}

// Token returns the anonymized token for text. Empty input passes through
// unchanged: anonymization is a no-op on absent data.
func (a *Anonymizer) Token(text string) string {
	if text == "" {
		return text
	}

	sum := sha256.Sum256([]byte(text))

	return hex.EncodeToString(sum[:])[:a.hashLength]
}

// Column anonymizes every value in a column.
func (a *Anonymizer) Column(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = a.Token(v)
	}

	return out
}
