package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"netreach/internal/clean"
	"netreach/internal/tabular"
)

// buildInvitations creates a cleaned invitations frame with the given number
// of outgoing and incoming rows.
func buildInvitations(outgoing, incoming int) *tabular.Frame {
	frame := tabular.NewFrame([]string{"sent_at", "direction"})

	for i := 0; i < outgoing; i++ {
		frame.Rows = append(frame.Rows, []string{"2023-10-15 00:00:00", "OUTGOING"})
	}

	for i := 0; i < incoming; i++ {
		frame.Rows = append(frame.Rows, []string{"2023-10-15 00:00:00", "INCOMING"})
	}

	return frame
}

func buildConnections(count int) *tabular.Frame {
	frame := tabular.NewFrame([]string{"first_name_hash", "connected_on"})

	for i := 0; i < count; i++ {
		frame.Rows = append(frame.Rows, []string{fmt.Sprintf("h%d", i), "2023-10-15 00:00:00"})
	}

	return frame
}

// buildMessages creates one owner-sent message per recipient, flagging the
// first flaggedConvs conversations with an interview signal.
func buildMessages(owner string, recipients, flaggedConvs int) *tabular.Frame {
	frame := tabular.NewFrame([]string{
		colConversationID, colFrom, colTo,
		clean.ColReferral, clean.ColInterview, clean.ColPositive, clean.ColNegative,
		clean.ColWordCount,
	})

	for i := 0; i < recipients; i++ {
		interview := "0"
		if i < flaggedConvs {
			interview = "1"
		}

		frame.Rows = append(frame.Rows, []string{
			fmt.Sprintf("c%d", i),
			owner,
			fmt.Sprintf("person%d", i),
			"0", interview, "0", "0",
			"10",
		})
	}

	return frame
}

func TestFunnel_WorkedExample(t *testing.T) {
	invitations := buildInvitations(60, 40)
	connections := buildConnections(45)
	messages := buildMessages("Me", 30, 2)

	m := Funnel(invitations, connections, messages, "Me")

	assert.Equal(t, 60, m.InvitationsSent)
	assert.Equal(t, 45, m.ConnectionsMade)
	assert.Equal(t, 30, m.Conversations)
	assert.Equal(t, 2, m.Outcomes)

	assert.InDelta(t, 75.0, m.AcceptanceRate, 0.01)
	assert.InDelta(t, 66.7, m.MessageRate, 0.05)
	assert.InDelta(t, 6.7, m.OutcomeRate, 0.05)
}

func TestFunnel_ZeroDenominators(t *testing.T) {
	m := Funnel(buildInvitations(0, 0), buildConnections(0), buildMessages("Me", 0, 0), "Me")

	assert.Zero(t, m.InvitationsSent)
	assert.Zero(t, m.AcceptanceRate)
	assert.Zero(t, m.MessageRate)
	assert.Zero(t, m.OutcomeRate)
}

func TestFunnel_NilFrames(t *testing.T) {
	m := Funnel(nil, nil, nil, "Me")

	assert.Zero(t, m.InvitationsSent)
	assert.Zero(t, m.ConnectionsMade)
	assert.Zero(t, m.Conversations)
	assert.Zero(t, m.Outcomes)
}

func TestFunnel_NoDirectionColumnCountsAllRows(t *testing.T) {
	frame := tabular.NewFrame([]string{"sent_at"})
	frame.Rows = [][]string{
		{"2023-10-15 00:00:00"},
		{"2023-10-16 00:00:00"},
	}

	m := Funnel(frame, nil, nil, "Me")

	assert.Equal(t, 2, m.InvitationsSent)
}

func TestFunnel_RepeatMessagesCountOneConversation(t *testing.T) {
	frame := tabular.NewFrame([]string{
		colConversationID, colFrom, colTo,
		clean.ColReferral, clean.ColInterview,
	})

	// Three flagged messages in the same conversation, to the same person.
	for i := 0; i < 3; i++ {
		frame.Rows = append(frame.Rows, []string{"c1", "Me", "Alice", "1", "0"})
	}

	m := Funnel(nil, nil, frame, "Me")

	assert.Equal(t, 1, m.Conversations)
	assert.Equal(t, 1, m.Outcomes)
}

func TestFunnel_OutcomesWithoutConversationIDFallBackToMessages(t *testing.T) {
	frame := tabular.NewFrame([]string{colFrom, colTo, clean.ColReferral, clean.ColInterview})
	frame.Rows = [][]string{
		{"Me", "Alice", "1", "0"},
		{"Me", "Alice", "0", "1"},
		{"Me", "Bob", "0", "0"},
	}

	m := Funnel(nil, nil, frame, "Me")

	assert.Equal(t, 2, m.Outcomes)
}
