package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"netreach/internal/models"
	"netreach/pkg/tablefmt"
)

// Summary renders a human-readable execution summary for a run report.
func Summary(report *models.RunReport) string {
	var sb strings.Builder

	sb.WriteString("PIPELINE EXECUTION SUMMARY\n\n")

	headers := []string{"Dataset", "Status", "Rows", "Columns", "Output"}

	var rows [][]string

	for _, ds := range report.Datasets {
		rowCount, colCount := "-", "-"
		if ds.Status == models.StatusProcessed {
			rowCount = strconv.Itoa(ds.Rows)
			colCount = strconv.Itoa(ds.Columns)
		}

		output := ds.OutputFile
		if output == "" {
			output = "-"
		}

		rows = append(rows, []string{ds.Name, string(ds.Status), rowCount, colCount, output})
	}

	sb.WriteString(tablefmt.Render(headers, rows))

	sb.WriteString(fmt.Sprintf("\nProcessed: %d  Skipped: %d  Failed: %d\n",
		report.CountByStatus(models.StatusProcessed),
		report.CountByStatus(models.StatusSkipped),
		report.CountByStatus(models.StatusFailed)))

	for _, ds := range report.Failed() {
		sb.WriteString(fmt.Sprintf("  ✗ %s: %s\n", ds.Name, ds.Error))
	}

	sb.WriteString(fmt.Sprintf("\nStart: %s\nEnd:   %s\n",
		report.StartTime.Format("2006-01-02 15:04:05"),
		report.EndTime.Format("2006-01-02 15:04:05")))

	return sb.String()
}
