package dto

// ViewResponse wraps rows read from one of the allow-listed
// read-only views. Rows are keyed by column name and capped at 100.
type ViewResponse struct {
	Success bool             `json:"success"`
	View    string           `json:"view"`
	Count   int              `json:"count"`
	Data    []map[string]any `json:"data"`
}
