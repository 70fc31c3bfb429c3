// Package metrics computes funnel and engagement metrics over cleaned
// datasets. All functions are pure reads; cleaned frames are never mutated.
package metrics

import (
	"strings"

	"netreach/internal/clean"
	"netreach/internal/tabular"
)

// Column names expected in cleaned message data.
const (
	colFrom           = "from"
	colTo             = "to"
	colDirection      = "direction"
	colConversationID = "conversation_id"
)

// FunnelMetrics is a computed snapshot of the outreach conversion path.
type FunnelMetrics struct {
	InvitationsSent int     `json:"invitations_sent"`
	ConnectionsMade int     `json:"connections_made"`
	Conversations   int     `json:"conversations"`
	Outcomes        int     `json:"outcomes"`
	AcceptanceRate  float64 `json:"acceptance_rate"`
	MessageRate     float64 `json:"message_rate"`
	OutcomeRate     float64 `json:"outcome_rate"`
}

// Funnel computes the staged conversion metrics:
//
//	invitations sent → connections made → conversations → outcomes
//
// Invitations count only outgoing requests when a direction column exists,
// all rows otherwise. Conversations are the distinct recipients of messages
// the owner sent. Outcomes are distinct conversations carrying a referral
// or interview flag, falling back to a raw message count when no
// conversation identifier exists. Rates with a zero denominator are 0.
// Nil frames contribute zero counts.
func Funnel(invitations, connections, messages *tabular.Frame, owner string) FunnelMetrics {
	m := FunnelMetrics{
		InvitationsSent: invitationsSent(invitations),
		ConnectionsMade: rowCount(connections),
		Conversations:   uniquePeopleMessaged(messages, owner),
		Outcomes:        outcomeConversations(messages),
	}

	m.AcceptanceRate = pct(m.ConnectionsMade, m.InvitationsSent)
	m.MessageRate = pct(m.Conversations, m.ConnectionsMade)
	m.OutcomeRate = pct(m.Outcomes, m.Conversations)

	return m
}

func invitationsSent(invitations *tabular.Frame) int {
	if invitations == nil {
		return 0
	}

	direction := invitations.Column(colDirection)
	if direction == nil {
		return invitations.RowCount()
	}

	count := 0

	for _, v := range direction {
		if strings.TrimSpace(v) == "OUTGOING" {
			count++
		}
	}

	return count
}

func uniquePeopleMessaged(messages *tabular.Frame, owner string) int {
	return len(recipientsOf(messages, owner))
}

// recipientsOf returns the distinct set of people the owner sent messages
// to.
func recipientsOf(messages *tabular.Frame, owner string) map[string]struct{} {
	recipients := make(map[string]struct{})

	if messages == nil || owner == "" {
		return recipients
	}

	from := messages.Column(colFrom)
	to := messages.Column(colTo)

	if from == nil || to == nil {
		return recipients
	}

	for i := range from {
		if from[i] == owner && to[i] != "" {
			recipients[to[i]] = struct{}{}
		}
	}

	return recipients
}

func outcomeConversations(messages *tabular.Frame) int {
	if messages == nil {
		return 0
	}

	referral := messages.Column(clean.ColReferral)
	interview := messages.Column(clean.ColInterview)

	if referral == nil || interview == nil {
		return 0
	}

	convIDs := messages.Column(colConversationID)

	if convIDs == nil {
		// No conversation identifier: fall back to counting messages.
		count := 0

		for i := range referral {
			if referral[i] == "1" || interview[i] == "1" {
				count++
			}
		}

		return count
	}

	distinct := make(map[string]struct{})

	for i := range referral {
		if referral[i] == "1" || interview[i] == "1" {
			distinct[convIDs[i]] = struct{}{}
		}
	}

	return len(distinct)
}

func rowCount(frame *tabular.Frame) int {
	if frame == nil {
		return 0
	}

	return frame.RowCount()
}

// pct computes num/den*100, defined as 0 when the denominator is 0.
func pct(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den) * 100
}
