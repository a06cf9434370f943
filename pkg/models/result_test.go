package models

import (
	"testing"
	"time"
)

func TestDirectoryResult_Add(t *testing.T) {
	r := &DirectoryResult{Directory: "/tmp/x", StartTime: time.Now()}

	r.Add(&FileResult{Path: "a.txt", Status: StatusSuccess})
	r.Add(&FileResult{Path: "b.txt", Status: StatusFailed, Error: "boom"})
	r.Add(&FileResult{Path: "c.txt", Status: StatusSuccess})

	if r.FileCount != 3 {
		t.Errorf("FileCount = %d, want 3", r.FileCount)
	}
	if r.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", r.SuccessCount)
	}
	if r.FailedCount != 1 {
		t.Errorf("FailedCount = %d, want 1", r.FailedCount)
	}
	if r.SuccessCount+r.FailedCount != r.FileCount {
		t.Error("Count invariant violated")
	}
	if len(r.Results) != r.FileCount {
		t.Errorf("len(Results) = %d, want %d", len(r.Results), r.FileCount)
	}

	// Traversal order is preserved
	if r.Results[0].Path != "a.txt" || r.Results[2].Path != "c.txt" {
		t.Error("Results not in insertion order")
	}
}

func TestDirectoryResult_Finalize(t *testing.T) {
	t.Run("All succeeded", func(t *testing.T) {
		r := &DirectoryResult{StartTime: time.Now().Add(-time.Second)}
		r.Add(&FileResult{Status: StatusSuccess})
		r.Add(&FileResult{Status: StatusSuccess})
		r.Finalize()

		if r.Status != StatusSuccess {
			t.Errorf("Status = %v, want %v", r.Status, StatusSuccess)
		}
		if r.Elapsed <= 0 {
			t.Errorf("Elapsed = %v, want > 0", r.Elapsed)
		}
		if r.AverageElapsed != r.Elapsed/2 {
			t.Errorf("AverageElapsed = %v, want %v", r.AverageElapsed, r.Elapsed/2)
		}
	})

	t.Run("Some failed", func(t *testing.T) {
		r := &DirectoryResult{StartTime: time.Now()}
		r.Add(&FileResult{Status: StatusSuccess})
		r.Add(&FileResult{Status: StatusFailed})
		r.Finalize()

		if r.Status != StatusPartialSuccess {
			t.Errorf("Status = %v, want %v", r.Status, StatusPartialSuccess)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		r := &DirectoryResult{StartTime: time.Now()}
		r.Finalize()

		if r.Status != StatusSuccess {
			t.Errorf("Status = %v, want %v", r.Status, StatusSuccess)
		}
		if r.AverageElapsed != 0 {
			t.Errorf("AverageElapsed = %v, want 0", r.AverageElapsed)
		}
	})
}
