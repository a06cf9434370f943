package models

import (
	"time"
)

// File represents a file with its content loaded
type File struct {
	Path      string    // Full file path
	Name      string    // File name
	Extension string    // File extension (with dot, lower-cased)
	Size      int64     // File size in bytes
	ModTime   time.Time // Modification time
	Content   []byte    // File content
	Checksum  string    // CRC32 checksum of content
	IsHidden  bool      // Is hidden file
}

// FileInfo contains basic file information without content
type FileInfo struct {
	Path     string
	Size     int64
	ModTime  time.Time
	IsDir    bool
	IsHidden bool
}
