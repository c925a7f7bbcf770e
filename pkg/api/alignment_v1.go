// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one located alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	ReferenceID string  `json:"reference_id"`
	QueryID     string  `json:"query_id"`
	RefStart    int     `json:"ref_start"`
	RefEnd      int     `json:"ref_end"`
	QueryStart  int     `json:"query_start"`
	QueryEnd    int     `json:"query_end"`
	Matches     int     `json:"matches"`
	Errors      int     `json:"errors"`
	ErrorRate   float64 `json:"error_rate"`
	SourceFile  string  `json:"source_file,omitempty"`
}
