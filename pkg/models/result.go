package models

import "time"

// Status describes the outcome of processing a file or a directory.
type Status string

const (
	StatusSuccess        Status = "success"
	StatusPartialSuccess Status = "partial_success"
	StatusFailed         Status = "failed"
)

// FileResult is the outcome of processing a single file.
// Immutable once returned by the processor.
type FileResult struct {
	Path    string         `json:"file_path"`
	Status  Status         `json:"status"`
	Error   string         `json:"error,omitempty"`
	Elapsed time.Duration  `json:"elapsed"`
	Payload map[string]any `json:"payload,omitempty"`
}

// DirectoryResult aggregates FileResult entries for one directory
// traversal, in traversal order.
type DirectoryResult struct {
	RunID     string    `json:"run_id,omitempty"`
	Directory string    `json:"directory"`
	Status    Status    `json:"status"`
	Error     string    `json:"error,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	FileCount      int           `json:"file_count"`
	SuccessCount   int           `json:"success_count"`
	FailedCount    int           `json:"failed_count"`
	Elapsed        time.Duration `json:"elapsed"`
	AverageElapsed time.Duration `json:"average_elapsed"`

	Results []*FileResult `json:"results"`
}

// Add appends a file result and updates the counters.
func (r *DirectoryResult) Add(fr *FileResult) {
	r.Results = append(r.Results, fr)
	r.FileCount++
	if fr.Status == StatusSuccess {
		r.SuccessCount++
	} else {
		r.FailedCount++
	}
}

// Finalize computes elapsed time, average and overall status once
// traversal is done.
func (r *DirectoryResult) Finalize() {
	r.EndTime = time.Now()
	r.Elapsed = r.EndTime.Sub(r.StartTime)
	if r.FileCount > 0 {
		r.AverageElapsed = r.Elapsed / time.Duration(r.FileCount)
	}
	if r.FailedCount == 0 {
		r.Status = StatusSuccess
	} else {
		r.Status = StatusPartialSuccess
	}
}
