package importdto

// ImportInput is one CSV batch targeted at a single project.
type ImportInput struct {
	CSVData   string
	ProjectID string
}

// RowFailure carries per-row diagnostics back to the admin UI.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport accounts for every attempted data row: imported + duplicates +
// failures = total.
type ImportReport struct {
	Imported   int          `json:"imported"`
	Duplicates int          `json:"duplicates"`
	Total      int          `json:"total"`
	Failures   []RowFailure `json:"failures,omitempty"`
}
