// Package pipeline sequences the dataset cleaners and tracks per-dataset
// outcomes for a run.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"netreach/internal/clean"
	"netreach/internal/config"
	"netreach/internal/logger"
	"netreach/internal/models"
	"netreach/internal/tabular"
)

// Orchestration errors.
var (
	ErrUnknownDataset = errors.New("no cleaning policy for dataset")
	ErrRunFailed      = errors.New("pipeline run failed")
)

// ReportFileName is the run report written under the report directory.
const ReportFileName = "pipeline_report.json"

// Orchestrator runs the cleaning pipeline over all enabled datasets.
//
// Each dataset moves from pending to exactly one of processed, skipped, or
// failed. A missing input becomes skipped only when tolerance is enabled;
// otherwise the run aborts on the first failure. Datasets are independent,
// so the processing order does not affect correctness.
type Orchestrator struct {
	cfg          *config.Config
	log          *logger.Logger
	standardizer *clean.Standardizer
}

// New creates an orchestrator for the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Orchestrator {
	anonymizer := clean.NewAnonymizer(cfg.Pipeline.Anonymize.HashLength)

	return &Orchestrator{
		cfg:          cfg,
		log:          log,
		standardizer: clean.NewStandardizer(anonymizer, log),
	}
}

// Run executes the pipeline and returns the run report. The report is
// persisted under the report directory whether or not the run succeeds.
// A run that completes with skips under tolerance returns a nil error.
func (o *Orchestrator) Run() (*models.RunReport, error) {
	skipMissing := o.cfg.Pipeline.SkipMissing
	report := models.NewRunReport(skipMissing)

	o.log.Info("starting pipeline run",
		"run_id", report.RunID,
		"datasets", len(o.cfg.GetEnabledDatasets()),
		"skip_missing", skipMissing)

	o.checkRawFiles()

	aborted := false

	for _, ds := range o.cfg.GetEnabledDatasets() {
		result := o.processDataset(ds)
		report.Record(result)

		if result.Status == models.StatusFailed && !skipMissing {
			o.log.Error("aborting run", "dataset", ds.Name, "error", result.Error)

			aborted = true

			break
		}
	}

	report.Finish()

	if err := o.saveReport(report); err != nil {
		o.log.Error("failed to save run report", "error", err)
	}

	if aborted || !report.Succeeded() {
		return report, fmt.Errorf("%w: %d dataset(s) failed", ErrRunFailed, report.CountByStatus(models.StatusFailed))
	}

	return report, nil
}

// checkRawFiles logs which raw inputs are present before processing starts.
func (o *Orchestrator) checkRawFiles() {
	found, missing := 0, 0

	for _, ds := range o.cfg.GetEnabledDatasets() {
		path := filepath.Join(o.cfg.Pipeline.InputDir, ds.InputFile)

		if info, err := os.Stat(path); err == nil {
			o.log.Info("found raw file", "file", ds.InputFile, "size_kb", float64(info.Size())/1024)
			found++
		} else {
			o.log.Warn("missing raw file", "file", ds.InputFile)
			missing++
		}
	}

	o.log.Info("raw file check complete", "found", found, "missing", missing)
}

func (o *Orchestrator) processDataset(ds config.DatasetConfig) models.DatasetResult {
	o.log.Info("processing dataset", "name", ds.Name, "description", ds.Description)

	result := models.DatasetResult{Name: ds.Name, Status: models.StatusPending}

	policy, ok := clean.Policies[ds.Name]
	if !ok {
		result.Status = models.StatusFailed
		result.Error = fmt.Sprintf("%v: %s", ErrUnknownDataset, ds.Name)

		return result
	}

	inputPath := filepath.Join(o.cfg.Pipeline.InputDir, ds.InputFile)

	frame, err := tabular.ReadCSV(inputPath, o.log)
	if err != nil {
		if errors.Is(err, tabular.ErrInputNotFound) && o.cfg.Pipeline.SkipMissing {
			o.log.Warn("skipping dataset, raw file not found", "name", ds.Name, "path", inputPath)

			result.Status = models.StatusSkipped

			return result
		}

		result.Status = models.StatusFailed
		result.Error = err.Error()

		return result
	}

	cleaner := clean.NewCleaner(policy, o.standardizer, o.log)

	cleaned, err := cleaner.Clean(frame)
	if err != nil {
		result.Status = models.StatusFailed
		result.Error = err.Error()

		return result
	}

	outputPath := filepath.Join(o.cfg.Pipeline.OutputDir, ds.OutputFile)

	if err := tabular.WriteCSV(cleaned, outputPath); err != nil {
		result.Status = models.StatusFailed
		result.Error = err.Error()

		return result
	}

	o.log.Info("saved cleaned data", "name", ds.Name, "path", outputPath)

	result.Status = models.StatusProcessed
	result.Rows = cleaned.RowCount()
	result.Columns = cleaned.ColumnCount()
	result.OutputFile = ds.OutputFile
	result.Quality = clean.BuildQualityReport(cleaned, ds.Name)

	return result
}
