package models

// QualityReport profiles one cleaned dataset.
type QualityReport struct {
	Dataset         string             `json:"dataset"`
	TotalRows       int                `json:"total_rows"`
	TotalColumns    int                `json:"total_columns"`
	NullCounts      map[string]int     `json:"null_counts"`
	NullPercentages map[string]float64 `json:"null_percentages"`
	DuplicateRows   int                `json:"duplicate_rows"`
}
