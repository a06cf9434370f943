package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vshmelev/fbatch/pkg/models"
)

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Sample.TXT")
	content := []byte("hello world")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat test file: %v", err)
	}

	file, err := ReadFile(&models.FileInfo{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if file.Name != "Sample.TXT" {
		t.Errorf("Name = %q, want %q", file.Name, "Sample.TXT")
	}
	if file.Extension != ".txt" {
		t.Errorf("Extension = %q, want %q", file.Extension, ".txt")
	}
	if string(file.Content) != "hello world" {
		t.Errorf("Content = %q, want %q", file.Content, "hello world")
	}
	if file.Checksum == "" {
		t.Error("Checksum is empty")
	}
	if file.Checksum != Checksum(content) {
		t.Errorf("Checksum = %q, want %q", file.Checksum, Checksum(content))
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(&models.FileInfo{Path: "/no/such/file"})
	if err == nil {
		t.Error("ReadFile() expected error for missing file")
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	a := Checksum([]byte("content"))
	b := Checksum([]byte("content"))
	c := Checksum([]byte("different"))

	if a != b {
		t.Errorf("Checksum not deterministic: %q != %q", a, b)
	}
	if a == c {
		t.Error("Checksum collision for different content")
	}
	if len(a) != 8 {
		t.Errorf("Checksum length = %d, want 8", len(a))
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"650K", 650 * 1024},
		{"1M", 1024 * 1024},
		{"2G", 2 * 1024 * 1024 * 1024},
		{"1024", 1024},
		{"1k", 1024},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if err != nil {
				t.Fatalf("ParseSize(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseSize_Invalid(t *testing.T) {
	for _, input := range []string{"garbage", "12x", "K", "1.5M", "-1K"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseSize(input); err == nil {
				t.Errorf("ParseSize(%q) expected error", input)
			}
		})
	}
}
