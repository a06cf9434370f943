package core

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vshmelev/fbatch/internal/config"
	"github.com/vshmelev/fbatch/internal/filesystem"
	"github.com/vshmelev/fbatch/pkg/models"
)

// Root path errors. Both abort a directory traversal before any file is
// processed; every other fault is scoped to a single file.
var (
	ErrNotFound      = errors.New("path does not exist")
	ErrNotADirectory = errors.New("path is not a directory")
)

// ProcessFunc is the injected per-file processing function. It returns a
// payload to attach to the FileResult; a non-nil error marks the file as
// failed without aborting the traversal.
type ProcessFunc func(path string) (map[string]any, error)

// FileSink receives each successful per-file result as it is produced.
type FileSink func(*models.FileResult)

// SummarySink receives the directory summary once traversal completes.
type SummarySink func(*models.DirectoryResult)

// ProgressCallback is called to report processing progress
type ProgressCallback func(current, total int, path string)

// Processor walks a directory tree, applies the extension filter and runs
// the injected ProcessFunc on each kept file, one at a time, in traversal
// order. All collaborators are dependency-injected; the processor itself
// performs no persistence.
type Processor struct {
	config           *config.Config
	logger           *zap.Logger
	process          ProcessFunc
	fileSink         FileSink
	summarySink      SummarySink
	progressCallback ProgressCallback
}

// NewProcessor creates a new processor. A nil process function falls back
// to DefaultProcess.
func NewProcessor(cfg *config.Config, logger *zap.Logger, process ProcessFunc) *Processor {
	if process == nil {
		process = DefaultProcess
	}
	return &Processor{
		config:  cfg,
		logger:  logger,
		process: process,
	}
}

// SetFileSink registers a sink for individual file results
func (p *Processor) SetFileSink(sink FileSink) {
	p.fileSink = sink
}

// SetSummarySink registers a sink for the directory summary
func (p *Processor) SetSummarySink(sink SummarySink) {
	p.summarySink = sink
}

// SetProgressCallback sets the progress callback function
func (p *Processor) SetProgressCallback(cb ProgressCallback) {
	p.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (p *Processor) reportProgress(current, total int, path string) {
	if p.progressCallback != nil {
		p.progressCallback(current, total, path)
	}
}

// ProcessFile processes a single file and returns its result. Faults raised
// before the processing function starts are recorded with zero elapsed time.
func (p *Processor) ProcessFile(path string) *models.FileResult {
	if _, err := os.Stat(path); err != nil {
		p.logger.Error("File not accessible", zap.String("path", path), zap.Error(err))
		return &models.FileResult{
			Path:   path,
			Status: models.StatusFailed,
			Error:  err.Error(),
		}
	}

	p.logger.Debug("Processing file", zap.String("path", path))

	start := time.Now()
	payload, err := p.process(path)
	elapsed := time.Since(start)

	if err != nil {
		p.logger.Error("Failed to process file", zap.String("path", path), zap.Error(err))
		return &models.FileResult{
			Path:    path,
			Status:  models.StatusFailed,
			Error:   err.Error(),
			Elapsed: elapsed,
		}
	}

	result := &models.FileResult{
		Path:    path,
		Status:  models.StatusSuccess,
		Elapsed: elapsed,
		Payload: payload,
	}

	if p.fileSink != nil {
		p.fileSink(result)
	}

	p.logger.Debug("File processed",
		zap.String("path", path),
		zap.Duration("elapsed", elapsed))
	return result
}

// ProcessDirectory processes all matching files under root, strictly
// sequentially, and returns the aggregated result. A single file's fault is
// recorded and traversal continues; only a missing or invalid root aborts.
func (p *Processor) ProcessDirectory(root string) (*models.DirectoryResult, error) {
	result := &models.DirectoryResult{
		RunID:     uuid.NewString(),
		Directory: root,
		StartTime: time.Now(),
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return p.failDirectory(result, fmt.Errorf("%w: %s", ErrNotFound, root))
	}
	if err != nil {
		return p.failDirectory(result, fmt.Errorf("stat %s: %w", root, err))
	}
	if !info.IsDir() {
		return p.failDirectory(result, fmt.Errorf("%w: %s", ErrNotADirectory, root))
	}

	p.logger.Info("Processing directory", zap.String("path", root))

	maxSize, err := filesystem.ParseSize(p.config.MaxSize)
	if err != nil {
		return p.failDirectory(result, fmt.Errorf("max size: %w", err))
	}

	// Collect matching paths first so progress has a stable total and the
	// processing loop sees the traversal order directly.
	paths, err := p.collectFiles(root, maxSize)
	if err != nil {
		return p.failDirectory(result, fmt.Errorf("walk %s: %w", root, err))
	}

	for i, path := range paths {
		result.Add(p.ProcessFile(path))
		p.reportProgress(i+1, len(paths), path)
	}

	result.Finalize()

	if p.summarySink != nil {
		p.summarySink(result)
	}

	p.logger.Info("Directory processed",
		zap.String("path", root),
		zap.Int("files", result.FileCount),
		zap.Int("failed", result.FailedCount),
		zap.Duration("elapsed", result.Elapsed))

	return result, nil
}

// collectFiles walks root and returns the files that pass the extension,
// size and walker filters, in traversal order.
func (p *Processor) collectFiles(root string, maxSize int64) ([]string, error) {
	walker := filesystem.NewWalker(p.config, p.logger)

	var paths []string
	err := walker.Walk(root, func(fileInfo *models.FileInfo) error {
		if !p.config.ShouldProcessFile(filesystem.GetExtension(fileInfo.Path)) {
			return nil
		}
		if maxSize > 0 && fileInfo.Size > maxSize {
			p.logger.Debug("File too large, skipping",
				zap.String("path", fileInfo.Path),
				zap.Int64("size", fileInfo.Size))
			return nil
		}
		paths = append(paths, fileInfo.Path)
		return nil
	})
	return paths, err
}

// failDirectory marks the result as failed before any file was visited
func (p *Processor) failDirectory(result *models.DirectoryResult, err error) (*models.DirectoryResult, error) {
	p.logger.Error("Cannot process directory",
		zap.String("path", result.Directory), zap.Error(err))
	result.Status = models.StatusFailed
	result.Error = err.Error()
	result.EndTime = time.Now()
	return result, err
}

// DefaultProcess is the fallback processing function: it reads the file and
// returns its basic metadata and checksum as the payload.
func DefaultProcess(path string) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	file, err := filesystem.ReadFile(&models.FileInfo{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"name":      file.Name,
		"extension": file.Extension,
		"size":      file.Size,
		"checksum":  file.Checksum,
		"mod_time":  file.ModTime,
	}, nil
}
