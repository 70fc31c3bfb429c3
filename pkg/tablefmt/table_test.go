package tablefmt

import (
	"strings"
	"testing"
)

func TestRender_Alignment(t *testing.T) {
	out := Render(
		[]string{"Dataset", "Rows"},
		[][]string{
			{"invitations", "100"},
			{"messages", "2"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}

	// All lines align to the same width.
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Errorf("Line %d width = %d, want %d: %q", i, len(line), width, line)
		}
	}

	if !strings.Contains(lines[0], "Dataset") {
		t.Errorf("Header row missing column name: %q", lines[0])
	}

	if !strings.Contains(lines[1], "---") {
		t.Errorf("Separator row missing dashes: %q", lines[1])
	}
}

func TestRender_Empty(t *testing.T) {
	if out := Render(nil, nil); out != "" {
		t.Errorf("Render(nil, nil) = %q, want empty", out)
	}
}

func TestRender_RaggedRows(t *testing.T) {
	out := Render(
		[]string{"A"},
		[][]string{
			{"1", "extra"},
		},
	)

	if !strings.Contains(out, "extra") {
		t.Errorf("Expected ragged cell to be rendered, got %q", out)
	}
}
