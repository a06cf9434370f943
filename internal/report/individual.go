package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/vshmelev/fbatch/pkg/models"
)

// IndividualWriter persists per-file results as JSON lines, one record per
// processed file, in the order they were produced. The processor invokes
// its sink sequentially; the writer is not safe for concurrent use.
type IndividualWriter struct {
	logger *zap.Logger
	path   string
	file   *os.File
}

// NewIndividualWriter creates a writer that appends results to a
// timestamped .jsonl file in outputDir.
func NewIndividualWriter(outputDir string, logger *zap.Logger) (*IndividualWriter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(outputDir, fmt.Sprintf("FBATCH-RESULTS-%s.jsonl", timestamp))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}

	return &IndividualWriter{
		logger: logger,
		path:   path,
		file:   file,
	}, nil
}

// Path returns the results file path
func (w *IndividualWriter) Path() string {
	return w.path
}

// Write appends one file result. Write errors are logged, not propagated;
// a failing sink must not abort the traversal.
func (w *IndividualWriter) Write(result *models.FileResult) {
	data, err := json.Marshal(result)
	if err != nil {
		w.logger.Error("Failed to encode file result",
			zap.String("path", result.Path), zap.Error(err))
		return
	}

	if _, err := w.file.Write(append(data, '\n')); err != nil {
		w.logger.Error("Failed to write file result",
			zap.String("path", result.Path), zap.Error(err))
	}
}

// Close closes the underlying file
func (w *IndividualWriter) Close() error {
	return w.file.Close()
}
