package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/vshmelev/fbatch/pkg/models"
)

// generateMarkdown generates a Markdown report
func (g *Generator) generateMarkdown(result *models.DirectoryResult, outputFile string) error {
	var sb strings.Builder

	sb.WriteString("# fbatch Processing Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Directory | `%s` |\n", result.Directory))
	sb.WriteString(fmt.Sprintf("| Status | %s |\n", result.Status))
	if result.RunID != "" {
		sb.WriteString(fmt.Sprintf("| Run ID | `%s` |\n", result.RunID))
	}
	sb.WriteString(fmt.Sprintf("| Start Time | %s |\n", result.StartTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| End Time | %s |\n", result.EndTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(result.Elapsed)))
	sb.WriteString(fmt.Sprintf("| Average per File | %s |\n", FormatDuration(result.AverageElapsed)))
	sb.WriteString(fmt.Sprintf("| Files | %d |\n", result.FileCount))
	sb.WriteString(fmt.Sprintf("| Succeeded | %d |\n", result.SuccessCount))
	sb.WriteString(fmt.Sprintf("| **Failed** | **%d** |\n", result.FailedCount))
	sb.WriteString("\n")

	if result.FailedCount == 0 && result.Status != models.StatusFailed {
		sb.WriteString("> ✅ **All files processed successfully**\n\n")
		return os.WriteFile(outputFile, []byte(sb.String()), 0644)
	}

	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("> ❌ **%s**\n\n", result.Error))
	}

	// Failed files
	failed := make([]*models.FileResult, 0, result.FailedCount)
	for _, fr := range result.Results {
		if fr.Status == models.StatusFailed {
			failed = append(failed, fr)
		}
	}

	if len(failed) > 0 {
		sb.WriteString("## Failed Files\n\n")
		sb.WriteString("| File | Error | Elapsed |\n")
		sb.WriteString("|------|-------|--------|\n")
		for _, fr := range failed {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n",
				fr.Path, fr.Error, FormatDuration(fr.Elapsed)))
		}
		sb.WriteString("\n")
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
