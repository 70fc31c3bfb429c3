package clean

import (
	"strings"

	"netreach/internal/logger"
	"netreach/internal/tabular"
	"netreach/pkg/textkit"
)

// SourceColumn is the provenance tag attached to every cleaned row.
const SourceColumn = "source_table"

// HashSuffix is appended to anonymized column names.
const HashSuffix = "_hash"

// Standardizer applies the shared cleaning sequence to raw frames.
type Standardizer struct {
	anonymizer *Anonymizer
	log        *logger.Logger
}

// NewStandardizer creates a standardizer using the given anonymizer.
func NewStandardizer(anonymizer *Anonymizer, log *logger.Logger) *Standardizer {
	return &Standardizer{
		anonymizer: anonymizer,
		log:        log,
	}
}

// Standardize cleans a raw frame in place and returns it:
//
//  1. Normalize headers to snake_case.
//  2. Coerce designated datetime columns; bad values become empty cells.
//  3. Drop rows that are empty across all columns.
//  4. Drop exact-duplicate rows.
//  5. Hash designated sensitive columns into <col>_hash, then remove the
//     originals. Removal always follows hashing.
//  6. Attach the source_table provenance column.
//
// Steps 3-4 only remove rows, so the output row count never exceeds the
// input row count. Column designations are matched after normalization.
func (s *Standardizer) Standardize(frame *tabular.Frame, source string, datetimeCols, sensitiveCols []string) *tabular.Frame {
	s.log.Info("starting standardization", "source", source, "rows", frame.RowCount(), "columns", frame.ColumnCount())

	for i, h := range frame.Headers {
		frame.Headers[i] = textkit.Snake(h)
	}

	for _, col := range datetimeCols {
		col = textkit.Snake(col)
		if !frame.HasColumn(col) {
			continue
		}

		parsed := ParseTimeColumn(frame.Column(col), col, s.log)
		if err := frame.SetColumn(col, parsed); err != nil {
			s.log.Warn("failed to update datetime column", "column", col, "error", err)
		}
	}

	s.dropEmptyRows(frame, source)
	s.dropDuplicateRows(frame, source)

	for _, col := range sensitiveCols {
		col = textkit.Snake(col)
		if !frame.HasColumn(col) {
			continue
		}

		s.AnonymizeColumn(frame, col)
	}

	if err := frame.AddConstColumn(SourceColumn, source); err != nil {
		s.log.Warn("failed to attach provenance column", "source", source, "error", err)
	}

	s.log.Info("standardization complete", "source", source, "rows", frame.RowCount(), "columns", frame.ColumnCount())

	return frame
}

// AnonymizeColumn hashes the named column into <col>_hash and removes the
// original. The original is only dropped after the hashed column is in
// place, so a failure never loses data.
func (s *Standardizer) AnonymizeColumn(frame *tabular.Frame, col string) {
	hashed := s.anonymizer.Column(frame.Column(col))

	if err := frame.AddColumn(col+HashSuffix, hashed); err != nil {
		s.log.Warn("failed to add hashed column", "column", col, "error", err)
		return
	}

	frame.DropColumn(col)
	s.log.Info("anonymized column", "column", col)
}

func (s *Standardizer) dropEmptyRows(frame *tabular.Frame, source string) {
	kept := frame.Rows[:0]

	for _, row := range frame.Rows {
		if !rowIsEmpty(row) {
			kept = append(kept, row)
		}
	}

	removed := len(frame.Rows) - len(kept)
	frame.Rows = kept

	if removed > 0 {
		s.log.Info("removed empty rows", "source", source, "count", removed)
	}
}

func (s *Standardizer) dropDuplicateRows(frame *tabular.Frame, source string) {
	seen := make(map[string]struct{}, len(frame.Rows))
	kept := frame.Rows[:0]

	for _, row := range frame.Rows {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, row)
	}

	removed := len(frame.Rows) - len(kept)
	frame.Rows = kept

	if removed > 0 {
		s.log.Info("removed duplicate rows", "source", source, "count", removed)
	}
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
