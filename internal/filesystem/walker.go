package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"

	"github.com/vshmelev/fbatch/internal/config"
	"github.com/vshmelev/fbatch/pkg/models"
)

// Walker walks a directory tree and reports files to a callback.
// filepath.WalkDir visits entries depth-first in lexical order, so for a
// fixed filesystem state the traversal order is deterministic.
type Walker struct {
	config  *config.Config
	logger  *zap.Logger
	exclude map[string]bool
}

// NewWalker creates a new filesystem walker
func NewWalker(cfg *config.Config, logger *zap.Logger) *Walker {
	// Build exclude map for fast lookup
	exclude := make(map[string]bool)
	for _, dir := range cfg.Exclude {
		exclude[dir] = true
	}

	return &Walker{
		config:  cfg,
		logger:  logger,
		exclude: exclude,
	}
}

// Walk recursively walks the directory tree rooted at root
func (w *Walker) Walk(root string, callback func(*models.FileInfo) error) error {
	var matcher gitignore.IgnoreMatcher
	if w.config.UseGitignore {
		// Only the root .gitignore is consulted; nested ignore files
		// would need a stateful walker.
		ignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(ignorePath); err == nil {
			m, err := gitignore.NewGitIgnore(ignorePath)
			if err != nil {
				w.logger.Warn("Could not parse .gitignore",
					zap.String("path", ignorePath), zap.Error(err))
			} else {
				matcher = m
			}
		}
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil // Continue walking
		}

		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}

		hidden := isHidden(d.Name())
		if d.IsDir() {
			if w.shouldExclude(d.Name(), relPath) {
				w.logger.Debug("Skipping excluded directory", zap.String("path", relPath))
				return filepath.SkipDir
			}
			if hidden && !w.config.IncludeHidden {
				return filepath.SkipDir
			}
			// Match wants the full path; it relativizes against the
			// .gitignore's own directory.
			if matcher != nil && matcher.Match(path, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden && !w.config.IncludeHidden {
			return nil
		}
		if matcher != nil && matcher.Match(path, false) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			w.logger.Warn("Could not stat file", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		return callback(&models.FileInfo{
			Path:     path,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			IsDir:    false,
			IsHidden: hidden,
		})
	})
}

// shouldExclude checks if a directory should be excluded
func (w *Walker) shouldExclude(name, path string) bool {
	// Check exact match
	if w.exclude[name] {
		return true
	}

	// Check if path contains excluded directory
	parts := strings.Split(path, string(os.PathSeparator))
	for _, part := range parts {
		if w.exclude[part] {
			return true
		}
	}

	return false
}

// isHidden checks if a file is hidden
func isHidden(name string) bool {
	// Unix-like systems: files starting with dot
	return len(name) > 0 && name[0] == '.'
}

// GetExtension returns the lower-cased file extension including the dot
func GetExtension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
