package metrics

import (
	"errors"
	"path/filepath"
	"strings"

	"netreach/internal/logger"
	"netreach/internal/tabular"
)

// Cleaned output file names, matching the default pipeline configuration.
const (
	invitationsFile = "invitations_cleaned.csv"
	connectionsFile = "connections_cleaned.csv"
	messagesFile    = "messages_cleaned.csv"
)

// CleanedData holds the cleaned datasets the metrics calculator consumes.
// A nil frame means that dataset was not produced; consumers treat it as
// feature-unavailable, not as an error.
type CleanedData struct {
	Invitations *tabular.Frame
	Connections *tabular.Frame
	Messages    *tabular.Frame
}

// LoadCleaned loads the cleaned datasets from the output directory.
// Missing files are tolerated and logged.
func LoadCleaned(dir string, log *logger.Logger) *CleanedData {
	return &CleanedData{
		Invitations: loadOptional(filepath.Join(dir, invitationsFile), log),
		Connections: loadOptional(filepath.Join(dir, connectionsFile), log),
		Messages:    loadOptional(filepath.Join(dir, messagesFile), log),
	}
}

func loadOptional(path string, log *logger.Logger) *tabular.Frame {
	frame, err := tabular.ReadCSV(path, log)
	if err != nil {
		if errors.Is(err, tabular.ErrInputNotFound) {
			log.Warn("cleaned dataset not available", "path", path)
		} else {
			log.Error("failed to load cleaned dataset", "path", path, "error", err)
		}

		return nil
	}

	return frame
}

// FindDateColumn returns the first column whose name contains one of the
// tokens, or an empty string if none match. Hash columns never match.
func FindDateColumn(frame *tabular.Frame, tokens ...string) string {
	if frame == nil {
		return ""
	}

	for _, h := range frame.Headers {
		if strings.HasSuffix(h, "_hash") {
			continue
		}

		lower := strings.ToLower(h)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				return h
			}
		}
	}

	return ""
}
