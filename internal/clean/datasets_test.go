package clean

import (
	"strings"
	"testing"

	"netreach/internal/logger"
	"netreach/internal/tabular"
)

func TestPolicy_Classification(t *testing.T) {
	headers := []string{"First Name", "Email Address", "Company", "Position", "Connected On"}
	policy := Policies["connections"]

	dt := policy.DatetimeColumns(headers)
	if len(dt) != 1 || dt[0] != "Connected On" {
		t.Errorf("DatetimeColumns = %v, want [Connected On]", dt)
	}

	pii := policy.SensitiveColumns(headers)
	if len(pii) != 2 {
		t.Fatalf("SensitiveColumns = %v, want 2 columns", pii)
	}

	if pii[0] != "First Name" || pii[1] != "Email Address" {
		t.Errorf("SensitiveColumns = %v", pii)
	}
}

func TestPolicy_MessagesExcludesContentFromPII(t *testing.T) {
	headers := []string{"CONVERSATION ID", "CONVERSATION TITLE", "FROM", "TO", "DATE", "SENDER PROFILE URL", "CONTENT"}
	policy := Policies["messages"]

	pii := policy.SensitiveColumns(headers)

	for _, col := range pii {
		if col == "CONTENT" {
			t.Error("CONTENT must not be classified sensitive before extraction")
		}
	}

	// Title and URL columns are still PII.
	joined := strings.Join(pii, ",")
	if !strings.Contains(joined, "CONVERSATION TITLE") || !strings.Contains(joined, "SENDER PROFILE URL") {
		t.Errorf("SensitiveColumns = %v", pii)
	}

	content := policy.ContentColumns(headers)
	if len(content) != 1 || content[0] != "CONTENT" {
		t.Errorf("ContentColumns = %v, want [CONTENT]", content)
	}
}

func TestPolicies_AllSixDatasets(t *testing.T) {
	for _, name := range []string{"invitations", "connections", "messages", "guide_messages", "learning_messages", "comments"} {
		policy, ok := Policies[name]
		if !ok {
			t.Errorf("Missing policy for %s", name)
			continue
		}

		if policy.Source != name {
			t.Errorf("Policy %s has source %s", name, policy.Source)
		}
	}
}

func TestCleaner_Messages(t *testing.T) {
	log := logger.NewNop()
	std := newTestStandardizer()
	cleaner := NewCleaner(Policies["messages"], std, log)

	frame := tabular.NewFrame([]string{"CONVERSATION ID", "FROM", "TO", "DATE", "CONTENT"})
	frame.Rows = [][]string{
		{"c1", "Me", "Alice", "2023-10-15 14:30:25", "Let's schedule a call"},
		{"c2", "Bob", "Me", "2023-10-16 10:00:00", "not interested"},
	}

	cleaned, err := cleaner.Clean(frame)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	// Flags derived from plaintext before content was hashed.
	if got := cleaned.Cell(0, ColInterview); got != "1" {
		t.Errorf("Row 0 interview flag = %q, want 1", got)
	}

	if got := cleaned.Cell(1, ColNegative); got != "1" {
		t.Errorf("Row 1 negative flag = %q, want 1", got)
	}

	// Content is hashed and the plaintext column is gone.
	if cleaned.HasColumn("content") {
		t.Error("Plaintext content column survived cleaning")
	}

	if !cleaned.HasColumn("content_hash") {
		t.Errorf("Missing content_hash column: %v", cleaned.Headers)
	}

	if got := cleaned.Cell(0, "content_hash"); len(got) != 8 {
		t.Errorf("content_hash = %q, want 8-char token", got)
	}

	// from/to survive for metrics.
	if got := cleaned.Cell(0, "from"); got != "Me" {
		t.Errorf("from = %q, want Me", got)
	}

	if got := cleaned.Cell(0, "source_table"); got != "messages" {
		t.Errorf("source_table = %q", got)
	}
}

func TestCleaner_GuideMessagesHashesContentDirectly(t *testing.T) {
	log := logger.NewNop()
	std := newTestStandardizer()
	cleaner := NewCleaner(Policies["guide_messages"], std, log)

	frame := tabular.NewFrame([]string{"Sent At", "Message Content"})
	frame.Rows = [][]string{
		{"2023-10-15", "some guided message"},
	}

	cleaned, err := cleaner.Clean(frame)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	// No outcome flags for guide messages.
	if cleaned.HasColumn(ColReferral) {
		t.Error("guide_messages should not extract outcome flags")
	}

	if !cleaned.HasColumn("message_content_hash") {
		t.Errorf("Missing message_content_hash: %v", cleaned.Headers)
	}

	if cleaned.HasColumn("message_content") {
		t.Error("Plaintext content column survived cleaning")
	}
}

func TestCleaner_Comments(t *testing.T) {
	log := logger.NewNop()
	std := newTestStandardizer()
	cleaner := NewCleaner(Policies["comments"], std, log)

	frame := tabular.NewFrame([]string{"Date", "Link", "Commenter", "Comment Text"})
	frame.Rows = [][]string{
		{"2023-10-15", "https://example.com/post/1", "Jane Doe", "Great point!"},
	}

	cleaned, err := cleaner.Clean(frame)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	for _, col := range []string{"link_hash", "commenter_hash", "comment_text_hash"} {
		if !cleaned.HasColumn(col) {
			t.Errorf("Missing %s: %v", col, cleaned.Headers)
		}
	}

	if got := cleaned.Cell(0, "date"); got != "2023-10-15 00:00:00" {
		t.Errorf("date = %q", got)
	}
}
