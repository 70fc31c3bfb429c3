package clean

import (
	"strings"
	"time"

	"netreach/internal/logger"
)

// TimestampLayout is the canonical timezone-naive representation used in
// cleaned output.
const TimestampLayout = "2006-01-02 15:04:05"

// datetimeLayouts is the ladder of formats tried in order. Exports mix ISO
// timestamps, US-style short dates, and spelled-out month forms.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/06, 3:04 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// ParseTime parses a single datetime string against the layout ladder.
// Returns false when no layout matches or the value is empty.
//
// Timezone-aware inputs are normalized to a naive instant by keeping the
// wall-clock reading and dropping the offset. This is lossy and can reorder
// messages exchanged across timezones; it mirrors the export convention of
// treating all timestamps as local.
func ParseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ParseTimeColumn coerces a column of heterogeneous datetime strings into
// the canonical layout. Unparseable values become empty cells rather than
// failing the column. The successful-parse fraction is logged for operator
// visibility.
func ParseTimeColumn(values []string, column string, log *logger.Logger) []string {
	out := make([]string, len(values))
	parsed := 0

	for i, v := range values {
		t, ok := ParseTime(v)
		if !ok {
			out[i] = ""
			continue
		}

		out[i] = t.Format(TimestampLayout)
		parsed++
	}

	if len(values) > 0 {
		rate := float64(parsed) / float64(len(values)) * 100
		log.Info("parsed datetime column", "column", column, "success_rate", rate)
	}

	return out
}
