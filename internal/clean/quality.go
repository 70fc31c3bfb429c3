package clean

import (
	"strings"

	"netreach/internal/models"
	"netreach/internal/tabular"
)

// BuildQualityReport profiles a cleaned frame: per-column null counts and
// percentages plus the number of exact-duplicate rows.
func BuildQualityReport(frame *tabular.Frame, name string) *models.QualityReport {
	report := &models.QualityReport{
		Dataset:         name,
		TotalRows:       frame.RowCount(),
		TotalColumns:    frame.ColumnCount(),
		NullCounts:      make(map[string]int, frame.ColumnCount()),
		NullPercentages: make(map[string]float64, frame.ColumnCount()),
	}

	for _, h := range frame.Headers {
		report.NullCounts[h] = 0
	}

	seen := make(map[string]int, frame.RowCount())

	for _, row := range frame.Rows {
		for i, cell := range row {
			if strings.TrimSpace(cell) == "" {
				report.NullCounts[frame.Headers[i]]++
			}
		}

		seen[strings.Join(row, "\x1f")]++
	}

	for _, count := range seen {
		if count > 1 {
			report.DuplicateRows += count - 1
		}
	}

	if report.TotalRows > 0 {
		for h, nulls := range report.NullCounts {
			report.NullPercentages[h] = float64(nulls) / float64(report.TotalRows) * 100
		}
	} else {
		for h := range report.NullCounts {
			report.NullPercentages[h] = 0
		}
	}

	return report
}
