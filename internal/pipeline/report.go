package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"netreach/internal/models"
)

// saveReport serializes the run report as indented JSON under the report
// directory.
func (o *Orchestrator) saveReport(report *models.RunReport) error {
	dir := o.cfg.Pipeline.ReportDir

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}

	path := filepath.Join(dir, ReportFileName)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}

	o.log.Info("saved run report", "path", path)

	return nil
}
