package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/vshmelev/fbatch/pkg/models"
)

// generateText generates a plain text report
func (g *Generator) generateText(result *models.DirectoryResult, outputFile string) error {
	var sb strings.Builder

	sb.WriteString("FBATCH PROCESSING REPORT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	sb.WriteString(fmt.Sprintf("Directory:     %s\n", result.Directory))
	sb.WriteString(fmt.Sprintf("Status:        %s\n", result.Status))
	if result.RunID != "" {
		sb.WriteString(fmt.Sprintf("Run ID:        %s\n", result.RunID))
	}
	sb.WriteString(fmt.Sprintf("Start Time:    %s\n", result.StartTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("End Time:      %s\n", result.EndTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Duration:      %s\n", FormatDuration(result.Elapsed)))
	sb.WriteString(fmt.Sprintf("Average:       %s\n", FormatDuration(result.AverageElapsed)))
	sb.WriteString(fmt.Sprintf("Files:         %d\n", result.FileCount))
	sb.WriteString(fmt.Sprintf("Succeeded:     %d\n", result.SuccessCount))
	sb.WriteString(fmt.Sprintf("Failed:        %d\n", result.FailedCount))
	sb.WriteString("\n")

	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("Error: %s\n\n", result.Error))
	}

	if len(result.Results) > 0 {
		sb.WriteString("FILES\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, fr := range result.Results {
			marker := "ok"
			if fr.Status == models.StatusFailed {
				marker = "FAILED"
			}
			sb.WriteString(fmt.Sprintf("[%s] %s (%s)\n", marker, fr.Path, FormatDuration(fr.Elapsed)))
			if fr.Error != "" {
				sb.WriteString(fmt.Sprintf("         %s\n", fr.Error))
			}
		}
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
