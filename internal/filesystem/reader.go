package filesystem

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vshmelev/fbatch/pkg/models"
)

// ReadFile reads a file and returns a File model
func ReadFile(fileInfo *models.FileInfo) (*models.File, error) {
	content, err := os.ReadFile(fileInfo.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(fileInfo.Path)

	return &models.File{
		Path:      fileInfo.Path,
		Name:      name,
		Extension: GetExtension(fileInfo.Path),
		Size:      fileInfo.Size,
		ModTime:   fileInfo.ModTime,
		Content:   content,
		Checksum:  Checksum(content),
		IsHidden:  fileInfo.IsHidden,
	}, nil
}

// Checksum calculates the CRC32 checksum of content
func Checksum(content []byte) string {
	crc := crc32.ChecksumIEEE(content)
	return fmt.Sprintf("%08x", crc)
}

// ParseSize parses a size string (e.g. "650K", "1M") to bytes. An empty
// string means no limit.
func ParseSize(sizeStr string) (int64, error) {
	if len(sizeStr) == 0 {
		return 0, nil
	}

	// Get last character (unit)
	num := sizeStr
	var multiplier int64 = 1

	switch sizeStr[len(sizeStr)-1] {
	case 'K', 'k':
		multiplier = 1024
		num = sizeStr[:len(sizeStr)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		num = sizeStr[:len(sizeStr)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		num = sizeStr[:len(sizeStr)-1]
	}

	size, err := strconv.ParseInt(num, 10, 64)
	if err != nil || size < 0 {
		return 0, fmt.Errorf("invalid size %q", sizeStr)
	}

	return size * multiplier, nil
}
