package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/vshmelev/fbatch/internal/config"
	"github.com/vshmelev/fbatch/pkg/models"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[38;5;245m"
	colorCyan   = "\033[36m"
)

// FormatDuration formats a duration to a human-readable string with max 2
// decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		// Milliseconds
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		// Seconds
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		// Minutes and seconds
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	// Hours, minutes and seconds
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// Generator generates summary reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate writes a report for the directory result and returns the report
// path. An empty report format prints to the console instead.
func (g *Generator) Generate(result *models.DirectoryResult) (string, error) {
	format := g.config.ReportFormat

	if format == "" || format == "console" {
		g.printConsole(result)
		return "", nil
	}

	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	var outputFile string
	switch format {
	case "json":
		outputFile = fmt.Sprintf("FBATCH-REPORT-%s.json", timestamp)
	case "txt", "text":
		outputFile = fmt.Sprintf("FBATCH-REPORT-%s.txt", timestamp)
	case "md", "markdown":
		outputFile = fmt.Sprintf("FBATCH-REPORT-%s.md", timestamp)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}
	outputFile = filepath.Join(g.config.OutputDir, outputFile)

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	var err error
	switch format {
	case "json":
		err = g.generateJSON(result, outputFile)
	case "txt", "text":
		err = g.generateText(result, outputFile)
	case "md", "markdown":
		err = g.generateMarkdown(result, outputFile)
	}

	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	absPath, _ := filepath.Abs(outputFile)
	return absPath, nil
}

// printConsole prints the summary to stdout with colors
func (g *Generator) printConsole(result *models.DirectoryResult) {
	fmt.Println()
	fmt.Printf("%s%sPROCESSING COMPLETE%s\n", colorBold, colorCyan, colorReset)
	fmt.Println()

	fmt.Printf("  %sPath:%s      %s\n", colorGray, colorReset, result.Directory)
	fmt.Printf("  %sStatus:%s    %s\n", colorGray, colorReset, statusLabel(result.Status))
	fmt.Printf("  %sFiles:%s     %d (%d ok, %d failed)\n", colorGray, colorReset,
		result.FileCount, result.SuccessCount, result.FailedCount)
	fmt.Printf("  %sDuration:%s  %s\n", colorGray, colorReset, FormatDuration(result.Elapsed))
	fmt.Printf("  %sAverage:%s   %s\n", colorGray, colorReset, FormatDuration(result.AverageElapsed))
	fmt.Println()

	if result.FailedCount == 0 {
		fmt.Printf("  %s%s✓ All files processed%s\n", colorBold, colorGreen, colorReset)
		fmt.Println()
		return
	}

	fmt.Printf("  %s%s⚠ FAILED FILES: %d%s\n", colorBold, colorRed, result.FailedCount, colorReset)
	fmt.Println()
	for _, fr := range result.Results {
		if fr.Status != models.StatusFailed {
			continue
		}
		fmt.Printf("  %s✗%s %s\n", colorRed, colorReset, fr.Path)
		fmt.Printf("    %s%s%s\n", colorGray, fr.Error, colorReset)
	}
	fmt.Println()
}

// statusLabel returns a colored status label for console output
func statusLabel(status models.Status) string {
	switch status {
	case models.StatusSuccess:
		return colorGreen + string(status) + colorReset
	case models.StatusPartialSuccess:
		return colorYellow + string(status) + colorReset
	default:
		return colorRed + string(status) + colorReset
	}
}
