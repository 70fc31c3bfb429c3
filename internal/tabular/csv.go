package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"netreach/internal/logger"
)

// CSV loading errors.
var (
	ErrInputNotFound = errors.New("raw input file not found")
	ErrEmptyFile     = errors.New("file contains no header row")
)

// noteRowsToSkip is the number of leading note lines some exports prepend
// before the real header row.
const noteRowsToSkip = 2

// ReadCSV loads a raw export file into a frame.
//
// Decoding falls back from UTF-8 to Latin-1 when the file is not valid
// UTF-8. Parsing falls back to a lenient mode that skips leading note rows
// and drops malformed lines when the strict parse fails.
func ReadCSV(path string, log *logger.Logger) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}

		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if !utf8.Valid(data) {
		log.Warn("file is not valid UTF-8, falling back to Latin-1", "path", path)

		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("failed to decode %s as Latin-1: %w", path, decErr)
		}

		data = decoded
	}

	records, err := parseStrict(data)
	if err != nil {
		log.Warn("strict CSV parse failed, retrying leniently", "path", path, "error", err)

		records, err = parseLenient(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	frame := NewFrame(records[0])
	for _, rec := range records[1:] {
		frame.Rows = append(frame.Rows, rec)
	}

	log.Info("loaded raw data", "path", path, "rows", frame.RowCount(), "columns", frame.ColumnCount())

	return frame, nil
}

// parseStrict parses the full file requiring a consistent field count.
func parseStrict(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	return reader.ReadAll()
}

// parseLenient skips leading note rows, tolerates ragged quoting, and drops
// rows whose field count does not match the header.
func parseLenient(data []byte) ([][]string, error) {
	skipped := 0
	offset := 0

	for skipped < noteRowsToSkip {
		nl := bytes.IndexByte(data[offset:], '\n')
		if nl < 0 {
			break
		}

		offset += nl + 1
		skipped++
	}

	reader := csv.NewReader(bytes.NewReader(data[offset:]))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	records = append(records, header)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			// Drop malformed lines, keep reading.
			continue
		}

		if len(rec) != len(header) {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

// WriteCSV writes a cleaned frame to path, creating parent directories.
func WriteCSV(frame *Frame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(frame.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range frame.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}
