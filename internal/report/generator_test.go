package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vshmelev/fbatch/internal/config"
	"github.com/vshmelev/fbatch/pkg/models"
)

func sampleResult() *models.DirectoryResult {
	r := &models.DirectoryResult{
		RunID:     "test-run",
		Directory: "/tmp/data",
		StartTime: time.Now().Add(-2 * time.Second),
	}
	r.Add(&models.FileResult{
		Path:    "/tmp/data/a.txt",
		Status:  models.StatusSuccess,
		Elapsed: 10 * time.Millisecond,
	})
	r.Add(&models.FileResult{
		Path:    "/tmp/data/b.txt",
		Status:  models.StatusFailed,
		Error:   "read error",
		Elapsed: 5 * time.Millisecond,
	})
	r.Finalize()
	return r
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Milliseconds", 500 * time.Millisecond, "500.00ms"},
		{"Seconds", 2500 * time.Millisecond, "2.50s"},
		{"Minutes", 90 * time.Second, "1m30.00s"},
		{"Hours", time.Hour + 30*time.Minute + 15*time.Second, "1h30m15.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestGenerate_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &config.Config{ReportFormat: "json", OutputDir: tmpDir}
	g := NewGenerator(cfg, zap.NewNop())

	path, err := g.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path == "" {
		t.Fatal("Generate() returned empty path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	var decoded models.DirectoryResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Report is not valid JSON: %v", err)
	}
	if decoded.FileCount != 2 {
		t.Errorf("Decoded FileCount = %d, want 2", decoded.FileCount)
	}
	if decoded.Status != models.StatusPartialSuccess {
		t.Errorf("Decoded Status = %v, want %v", decoded.Status, models.StatusPartialSuccess)
	}
}

func TestGenerate_Text(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &config.Config{ReportFormat: "txt", OutputDir: tmpDir}
	g := NewGenerator(cfg, zap.NewNop())

	path, err := g.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	content := string(data)
	for _, want := range []string{"/tmp/data", "Failed:        1", "read error", "[FAILED]"} {
		if !strings.Contains(content, want) {
			t.Errorf("Text report missing %q", want)
		}
	}
}

func TestGenerate_Markdown(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &config.Config{ReportFormat: "md", OutputDir: tmpDir}
	g := NewGenerator(cfg, zap.NewNop())

	path, err := g.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if filepath.Ext(path) != ".md" {
		t.Errorf("Report extension = %s, want .md", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "## Failed Files") {
		t.Error("Markdown report missing failed files section")
	}
	if !strings.Contains(content, "`/tmp/data/b.txt`") {
		t.Error("Markdown report missing failed file path")
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	cfg := &config.Config{ReportFormat: "pdf", OutputDir: t.TempDir()}
	g := NewGenerator(cfg, zap.NewNop())

	if _, err := g.Generate(sampleResult()); err == nil {
		t.Error("Generate() expected error for unknown format")
	}
}

func TestGenerate_ConsoleReturnsNoPath(t *testing.T) {
	cfg := &config.Config{ReportFormat: ""}
	g := NewGenerator(cfg, zap.NewNop())

	path, err := g.Generate(sampleResult())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != "" {
		t.Errorf("Generate() path = %q, want empty for console output", path)
	}
}

func TestIndividualWriter(t *testing.T) {
	tmpDir := t.TempDir()
	w, err := NewIndividualWriter(tmpDir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewIndividualWriter() error = %v", err)
	}

	w.Write(&models.FileResult{Path: "a.txt", Status: models.StatusSuccess})
	w.Write(&models.FileResult{Path: "b.txt", Status: models.StatusFailed, Error: "boom"})

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatalf("Failed to read results file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Results lines = %d, want 2", len(lines))
	}

	var first models.FileResult
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("First line is not valid JSON: %v", err)
	}
	if first.Path != "a.txt" {
		t.Errorf("First line path = %s, want a.txt", first.Path)
	}
}
