package metrics

import (
	"netreach/internal/tabular"
)

// ResponseMetrics distinguishes people the owner messaged from people who
// replied.
type ResponseMetrics struct {
	UniquePeopleMessaged int     `json:"unique_people_messaged"`
	UniqueRepliers       int     `json:"unique_repliers"`
	ResponseRate         float64 `json:"response_rate"`
	TotalMessages        int     `json:"total_messages"`
	MessagesSent         int     `json:"messages_sent"`
	MessagesReceived     int     `json:"messages_received"`
}

// Response computes reply behavior over cleaned message data. A reply only
// counts when it comes from someone the owner had messaged; unsolicited
// inbound messages never count as replies.
func Response(messages *tabular.Frame, owner string) ResponseMetrics {
	var m ResponseMetrics

	if messages == nil {
		return m
	}

	m.TotalMessages = messages.RowCount()

	from := messages.Column(colFrom)
	to := messages.Column(colTo)

	if from == nil || to == nil {
		return m
	}

	recipients := recipientsOf(messages, owner)
	m.UniquePeopleMessaged = len(recipients)

	repliers := make(map[string]struct{})

	for i := range from {
		if from[i] == owner {
			m.MessagesSent++
		}

		if to[i] == owner {
			m.MessagesReceived++

			if _, messaged := recipients[from[i]]; messaged {
				repliers[from[i]] = struct{}{}
			}
		}
	}

	m.UniqueRepliers = len(repliers)
	m.ResponseRate = pct(m.UniqueRepliers, m.UniquePeopleMessaged)

	return m
}
