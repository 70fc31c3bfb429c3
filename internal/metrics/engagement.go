package metrics

import (
	"strconv"

	"netreach/internal/clean"
	"netreach/internal/tabular"
)

// EngagementMetrics summarizes outcome signals across message data.
// Signal counts are distinct conversations when a conversation identifier
// exists, raw message counts otherwise.
type EngagementMetrics struct {
	TotalMessages      int     `json:"total_messages"`
	Referrals          int     `json:"has_referrals"`
	Interviews         int     `json:"has_interviews"`
	PositiveSentiment  int     `json:"positive_sentiment"`
	NegativeSentiment  int     `json:"negative_sentiment"`
	AvgWordsPerMessage float64 `json:"avg_words_per_message"`
}

// Engagement computes engagement quality metrics over cleaned message data.
func Engagement(messages *tabular.Frame) EngagementMetrics {
	var m EngagementMetrics

	if messages == nil {
		return m
	}

	m.TotalMessages = messages.RowCount()
	m.Referrals = signalCount(messages, clean.ColReferral)
	m.Interviews = signalCount(messages, clean.ColInterview)
	m.PositiveSentiment = signalCount(messages, clean.ColPositive)
	m.NegativeSentiment = signalCount(messages, clean.ColNegative)
	m.AvgWordsPerMessage = avgWordCount(messages)

	return m
}

// signalCount counts distinct conversations with the flag set, or flagged
// messages when no conversation identifier column exists.
func signalCount(messages *tabular.Frame, flagCol string) int {
	flags := messages.Column(flagCol)
	if flags == nil {
		return 0
	}

	convIDs := messages.Column(colConversationID)

	if convIDs == nil {
		count := 0

		for _, f := range flags {
			if f == "1" {
				count++
			}
		}

		return count
	}

	distinct := make(map[string]struct{})

	for i, f := range flags {
		if f == "1" {
			distinct[convIDs[i]] = struct{}{}
		}
	}

	return len(distinct)
}

func avgWordCount(messages *tabular.Frame) float64 {
	counts := messages.Column(clean.ColWordCount)
	if counts == nil {
		return 0
	}

	total, n := 0, 0

	for _, v := range counts {
		count, err := strconv.Atoi(v)
		if err != nil {
			continue
		}

		total += count
		n++
	}

	if n == 0 {
		return 0
	}

	return float64(total) / float64(n)
}
