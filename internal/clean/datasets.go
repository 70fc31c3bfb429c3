package clean

import (
	"fmt"
	"strings"

	"netreach/internal/logger"
	"netreach/internal/tabular"
)

// Policy is the column-classification rule set for one dataset type.
// Columns are classified by case-insensitive substring matching of role
// tokens against the raw headers; only the token lists differ between
// datasets.
type Policy struct {
	// Source is the provenance tag written to source_table.
	Source string
	// DatetimeTokens mark columns to coerce to timestamps.
	DatetimeTokens []string
	// SensitiveTokens mark PII columns to anonymize.
	SensitiveTokens []string
	// ContentTokens mark free-text message columns. Content columns are
	// excluded from the sensitive set so outcome extraction sees the
	// plaintext first.
	ContentTokens []string
	// ExtractOutcomes derives outcome flag columns from the content
	// column before it is anonymized.
	ExtractOutcomes bool
}

// Policies maps dataset names to their classification policies.
var Policies = map[string]Policy{
	"invitations": {
		Source:          "invitations",
		DatetimeTokens:  []string{"date", "sent", "time", "connected", "accepted"},
		SensitiveTokens: []string{"name", "email", "url", "link"},
	},
	"connections": {
		Source:          "connections",
		DatetimeTokens:  []string{"date", "connected", "time", "joined"},
		SensitiveTokens: []string{"name", "email", "address", "url", "link"},
	},
	"messages": {
		Source:          "messages",
		DatetimeTokens:  []string{"date", "sent", "time", "created"},
		SensitiveTokens: []string{"name", "sender", "title", "url", "link"},
		ContentTokens:   []string{"content", "message", "text"},
		ExtractOutcomes: true,
	},
	"guide_messages": {
		Source:          "guide_messages",
		DatetimeTokens:  []string{"date", "sent", "time", "created"},
		SensitiveTokens: []string{"name", "sender", "url", "link", "content", "message"},
	},
	"learning_messages": {
		Source:          "learning_messages",
		DatetimeTokens:  []string{"date", "sent", "time", "created"},
		SensitiveTokens: []string{"name", "url", "link", "content", "message"},
	},
	"comments": {
		Source:          "comments",
		DatetimeTokens:  []string{"date", "time", "created", "posted"},
		SensitiveTokens: []string{"url", "link", "author", "commenter", "name", "comment", "text"},
	},
}

// DatetimeColumns returns the headers classified as datetime columns.
func (p Policy) DatetimeColumns(headers []string) []string {
	return matchTokens(headers, p.DatetimeTokens, nil)
}

// SensitiveColumns returns the headers classified as PII. Content columns
// are never classified as sensitive here; they are handled after outcome
// extraction.
func (p Policy) SensitiveColumns(headers []string) []string {
	return matchTokens(headers, p.SensitiveTokens, p.ContentTokens)
}

// ContentColumns returns the headers classified as message content.
func (p Policy) ContentColumns(headers []string) []string {
	return matchTokens(headers, p.ContentTokens, nil)
}

func matchTokens(headers, tokens, exclude []string) []string {
	var matched []string

	for _, h := range headers {
		lower := strings.ToLower(h)

		if containsAny(lower, exclude) {
			continue
		}

		if containsAny(lower, tokens) {
			matched = append(matched, h)
		}
	}

	return matched
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}

	return false
}

// Cleaner cleans one dataset according to its policy.
type Cleaner struct {
	policy       Policy
	standardizer *Standardizer
	log          *logger.Logger
}

// NewCleaner creates a cleaner for the given policy.
func NewCleaner(policy Policy, standardizer *Standardizer, log *logger.Logger) *Cleaner {
	return &Cleaner{
		policy:       policy,
		standardizer: standardizer,
		log:          log,
	}
}

// Clean classifies the raw frame's columns and runs the standardization
// sequence. For outcome-bearing datasets the content column survives
// standardization, feeds the keyword extractor, and is only then hashed
// and removed.
func (c *Cleaner) Clean(frame *tabular.Frame) (*tabular.Frame, error) {
	datetimeCols := c.policy.DatetimeColumns(frame.Headers)
	sensitiveCols := c.policy.SensitiveColumns(frame.Headers)

	c.log.Info("classified columns",
		"source", c.policy.Source,
		"datetime", fmt.Sprintf("%v", datetimeCols),
		"sensitive", fmt.Sprintf("%v", sensitiveCols))

	cleaned := c.standardizer.Standardize(frame, c.policy.Source, datetimeCols, sensitiveCols)

	if c.policy.ExtractOutcomes {
		if err := c.extractAndAnonymizeContent(cleaned); err != nil {
			return nil, err
		}
	}

	return cleaned, nil
}

// extractAndAnonymizeContent finds the content column in the standardized
// frame, derives outcome flags from the plaintext, then hashes the content.
// Ordering is a hard invariant: extraction must precede anonymization.
func (c *Cleaner) extractAndAnonymizeContent(frame *tabular.Frame) error {
	contentCols := frame.ColumnsWhere(func(h string) bool {
		return containsAny(strings.ToLower(h), c.policy.ContentTokens) &&
			!strings.HasSuffix(h, HashSuffix)
	})

	if len(contentCols) == 0 {
		c.log.Warn("no content column found for outcome extraction", "source", c.policy.Source)
		return nil
	}

	contentCol := contentCols[0]

	if err := AttachOutcomeFlags(frame, contentCol, c.log); err != nil {
		return fmt.Errorf("failed to extract outcome keywords from %s: %w", contentCol, err)
	}

	c.standardizer.AnonymizeColumn(frame, contentCol)

	return nil
}
