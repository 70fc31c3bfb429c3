// Package models defines the run report and data-quality types shared
// between the pipeline and its consumers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DatasetStatus is the lifecycle state of one dataset within a run.
type DatasetStatus string

// Dataset lifecycle states. Every dataset starts pending and ends in
// exactly one of the terminal states.
const (
	StatusPending   DatasetStatus = "pending"
	StatusProcessed DatasetStatus = "processed"
	StatusSkipped   DatasetStatus = "skipped"
	StatusFailed    DatasetStatus = "failed"
)

// DatasetResult records the outcome of cleaning one dataset.
type DatasetResult struct {
	Name       string         `json:"name"`
	Status     DatasetStatus  `json:"status"`
	Rows       int            `json:"rows,omitempty"`
	Columns    int            `json:"columns,omitempty"`
	OutputFile string         `json:"output_file,omitempty"`
	Error      string         `json:"error,omitempty"`
	Quality    *QualityReport `json:"quality,omitempty"`
}

// RunReport captures one pipeline invocation end to end.
type RunReport struct {
	RunID       string          `json:"run_id"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	SkipMissing bool            `json:"skip_missing"`
	Datasets    []DatasetResult `json:"datasets"`
}

// NewRunReport creates a report for a run starting now.
func NewRunReport(skipMissing bool) *RunReport {
	return &RunReport{
		RunID:       uuid.NewString(),
		StartTime:   time.Now(),
		SkipMissing: skipMissing,
	}
}

// Record appends a dataset result.
func (r *RunReport) Record(result DatasetResult) {
	r.Datasets = append(r.Datasets, result)
}

// Finish stamps the end time.
func (r *RunReport) Finish() {
	r.EndTime = time.Now()
}

// CountByStatus returns the number of datasets in the given state.
func (r *RunReport) CountByStatus(status DatasetStatus) int {
	count := 0

	for _, ds := range r.Datasets {
		if ds.Status == status {
			count++
		}
	}

	return count
}

// Processed returns the results for successfully cleaned datasets.
func (r *RunReport) Processed() []DatasetResult {
	return r.byStatus(StatusProcessed)
}

// Skipped returns the results for datasets skipped under tolerance.
func (r *RunReport) Skipped() []DatasetResult {
	return r.byStatus(StatusSkipped)
}

// Failed returns the results for datasets that failed.
func (r *RunReport) Failed() []DatasetResult {
	return r.byStatus(StatusFailed)
}

// Succeeded reports whether the run completed without failures. A run with
// skips under tolerance still counts as a success.
func (r *RunReport) Succeeded() bool {
	return r.CountByStatus(StatusFailed) == 0
}

func (r *RunReport) byStatus(status DatasetStatus) []DatasetResult {
	var results []DatasetResult

	for _, ds := range r.Datasets {
		if ds.Status == status {
			results = append(results, ds)
		}
	}

	return results
}
