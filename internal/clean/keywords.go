package clean

import (
	"regexp"
	"strconv"

	"netreach/internal/logger"
	"netreach/internal/tabular"
	"netreach/pkg/textkit"
)

// Outcome flag column names attached to message datasets.
const (
	ColReferral  = "has_referral_keyword"
	ColInterview = "has_interview_keyword"
	ColPositive  = "has_positive_keyword"
	ColNegative  = "has_negative_keyword"
	ColWordCount = "word_count"
)

// Keyword patterns for outcome signals. Matching is case-insensitive
// substring matching; the flags are independent, so a message can carry
// both a positive and a negative signal.
var (
	referralPattern  = regexp.MustCompile(`(?i)referral|refer you|introduction|connect you`)
	interviewPattern = regexp.MustCompile(`(?i)interview|call|meeting|chat|zoom|coffee`)
	positivePattern  = regexp.MustCompile(`(?i)thank|appreciate|helpful|great|perfect|awesome`)
	negativePattern  = regexp.MustCompile(`(?i)not interested|no thanks|busy|not at this time`)
)

// OutcomeFlags holds the boolean outcome signals derived from one message.
type OutcomeFlags struct {
	Referral  bool
	Interview bool
	Positive  bool
	Negative  bool
}

// ExtractOutcomeFlags scans plaintext message content for outcome keywords.
func ExtractOutcomeFlags(text string) OutcomeFlags {
	return OutcomeFlags{
		Referral:  referralPattern.MatchString(text),
		Interview: interviewPattern.MatchString(text),
		Positive:  positivePattern.MatchString(text),
		Negative:  negativePattern.MatchString(text),
	}
}

// AttachOutcomeFlags derives the four outcome flag columns and a word-count
// column from the named content column. It must run while the content is
// still plaintext; anonymization afterward is irreversible.
func AttachOutcomeFlags(frame *tabular.Frame, contentCol string, log *logger.Logger) error {
	content := frame.Column(contentCol)
	if content == nil {
		return tabular.ErrColumnNotFound
	}

	referral := make([]string, len(content))
	interview := make([]string, len(content))
	positive := make([]string, len(content))
	negative := make([]string, len(content))
	wordCounts := make([]string, len(content))

	for i, text := range content {
		flags := ExtractOutcomeFlags(text)
		referral[i] = flagCell(flags.Referral)
		interview[i] = flagCell(flags.Interview)
		positive[i] = flagCell(flags.Positive)
		negative[i] = flagCell(flags.Negative)
		wordCounts[i] = strconv.Itoa(textkit.WordCount(text))
	}

	columns := []struct {
		name   string
		values []string
	}{
		{ColReferral, referral},
		{ColInterview, interview},
		{ColPositive, positive},
		{ColNegative, negative},
		{ColWordCount, wordCounts},
	}

	for _, col := range columns {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return err
		}
	}

	log.Info("extracted outcome keywords", "column", contentCol, "rows", len(content))

	return nil
}

func flagCell(set bool) string {
	if set {
		return "1"
	}

	return "0"
}
