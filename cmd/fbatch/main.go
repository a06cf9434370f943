package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vshmelev/fbatch/internal/config"
	"github.com/vshmelev/fbatch/internal/core"
	"github.com/vshmelev/fbatch/internal/experiment"
	"github.com/vshmelev/fbatch/internal/report"
	"github.com/vshmelev/fbatch/pkg/models"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[38;5;245m"
)

var (
	version = "0.1.0"
	logger  *zap.Logger
	verbose bool
)

func main() {
	// Local .env overrides are optional
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "fbatch",
		Short: "fbatch - Batch file processing toolkit",
		Long: `Walk a directory tree, run a processing step on every matching file and
aggregate per-file results into a summary with counts and timing.`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(processCmd())
	rootCmd.AddCommand(experimentsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogger initializes the zap logger based on the verbose flag
func initLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		// Silent logger - only errors
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
			Encoding:         "json",
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
			EncoderConfig:    zap.NewProductionEncoderConfig(),
		}
		logger, err = cfg.Build()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
	}
	return err
}

// processCmd creates the process command
func processCmd() *cobra.Command {
	var (
		configFile    string
		extensions    []string
		exclude       []string
		maxSize       string
		includeHidden bool
		useGitignore  bool
		saveMode      string
		reportFormat  string
		outputDir     string
	)

	cmd := &cobra.Command{
		Use:   "process [path]",
		Short: "Process a file or every matching file under a directory",
		Long: `Process a single file, or recursively process all files under a directory
that pass the extension and size filters. Results are aggregated into a
summary and persisted according to the save mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if err := validateFlags(saveMode, reportFormat); err != nil {
				fmt.Printf("\n  %s✗ Invalid parameter:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			cfg.Input = path
			if len(extensions) > 0 {
				cfg.Extensions = extensions
			}
			if len(exclude) > 0 {
				cfg.Exclude = exclude
			}
			if maxSize != "" {
				cfg.MaxSize = maxSize
			}
			if includeHidden {
				cfg.IncludeHidden = true
			}
			if useGitignore {
				cfg.UseGitignore = true
			}
			if saveMode != "" {
				cfg.SaveMode = saveMode
			}
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("cannot access %s: %w", path, err)
			}

			if !info.IsDir() {
				return runSingleFile(cfg, path)
			}
			return runDirectory(cfg, path)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringSliceVar(&extensions, "extensions", nil, "File extensions to process (comma-separated, empty = all)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Directories to exclude (comma-separated)")
	cmd.Flags().StringVar(&maxSize, "max-size", "", "Maximum file size to process (e.g. 650K, 1M)")
	cmd.Flags().BoolVar(&includeHidden, "hidden", false, "Include hidden files and directories")
	cmd.Flags().BoolVar(&useGitignore, "gitignore", false, "Respect .gitignore at the input root")
	cmd.Flags().StringVar(&saveMode, "save-mode", "", "Save mode: individual, summary, both (default: individual)")
	cmd.Flags().StringVarP(&reportFormat, "report", "r", "", "Summary report format: json, txt, md, console")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for reports")

	return cmd
}

// runSingleFile processes one file and prints its result
func runSingleFile(cfg *config.Config, path string) error {
	processor := core.NewProcessor(cfg, logger, nil)

	var writer *report.IndividualWriter
	if cfg.SavesIndividual() {
		w, err := report.NewIndividualWriter(cfg.OutputDir, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		writer = w
		processor.SetFileSink(writer.Write)
	}

	result := processor.ProcessFile(path)

	fmt.Println()
	if result.Status == models.StatusSuccess {
		fmt.Printf("  %s✓ File processed:%s %s\n", colorGreen, colorReset, path)
		fmt.Printf("  %sDuration:%s %s\n", colorGray, colorReset, report.FormatDuration(result.Elapsed))
	} else {
		fmt.Printf("  %s✗ File failed:%s %s\n", colorRed, colorReset, path)
		fmt.Printf("  %sError:%s    %s\n", colorGray, colorReset, result.Error)
	}
	if writer != nil {
		fmt.Printf("  %sResults:%s  %s\n", colorGray, colorReset, writer.Path())
	}
	fmt.Println()

	if result.Status != models.StatusSuccess {
		return fmt.Errorf("processing failed: %s", result.Error)
	}
	return nil
}

// runDirectory processes a directory tree with a progress bar
func runDirectory(cfg *config.Config, path string) error {
	processor := core.NewProcessor(cfg, logger, nil)

	var writer *report.IndividualWriter
	if cfg.SavesIndividual() {
		w, err := report.NewIndividualWriter(cfg.OutputDir, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		writer = w
		processor.SetFileSink(writer.Write)
	}

	generator := report.NewGenerator(cfg, logger)
	var reportPath string
	if cfg.SavesSummary() {
		processor.SetSummarySink(func(result *models.DirectoryResult) {
			p, err := generator.Generate(result)
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return
			}
			reportPath = p
		})
	}

	started := false
	processor.SetProgressCallback(func(current, total int, file string) {
		if started {
			fmt.Print("\033[1A\033[K")
		}
		started = true
		if total > 0 {
			pct := float64(current) / float64(total) * 100
			barWidth := 30
			filled := int(float64(barWidth) * float64(current) / float64(total))
			bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
			fmt.Printf("  %sProcessing:%s [%s%s%s] %s%.1f%%%s (%d/%d)\n",
				colorGray, colorReset, colorCyan, bar, colorReset, colorCyan, pct, colorReset, current, total)
		}
	})

	result, err := processor.ProcessDirectory(path)
	if err != nil {
		fmt.Printf("\n  %s✗ Directory processing failed:%s %s\n\n", colorRed, colorReset, result.Error)
		return err
	}

	printSummary(result)
	if writer != nil {
		fmt.Printf("  %sResults:%s   %s\n", colorGray, colorReset, writer.Path())
	}
	if reportPath != "" {
		fmt.Printf("  %sReport:%s    %s\n", colorGray, colorReset, reportPath)
	}
	fmt.Println()

	return nil
}

// printSummary prints the directory summary to stdout
func printSummary(result *models.DirectoryResult) {
	fmt.Println()
	fmt.Printf("%s%sPROCESSING COMPLETE%s\n", colorBold, colorCyan, colorReset)
	fmt.Println()
	fmt.Printf("  %sPath:%s      %s\n", colorGray, colorReset, result.Directory)
	fmt.Printf("  %sFiles:%s     %d/%d succeeded\n", colorGray, colorReset, result.SuccessCount, result.FileCount)
	fmt.Printf("  %sDuration:%s  %s\n", colorGray, colorReset, report.FormatDuration(result.Elapsed))
	fmt.Printf("  %sAverage:%s   %s\n", colorGray, colorReset, report.FormatDuration(result.AverageElapsed))
	if result.FailedCount > 0 {
		fmt.Printf("  %s⚠ %d file(s) failed%s\n", colorRed, result.FailedCount, colorReset)
	}
}

// experimentsCmd creates the experiments command
func experimentsCmd() *cobra.Command {
	var presetFile string

	cmd := &cobra.Command{
		Use:   "experiments",
		Short: "Run preset experiments",
		Long: `Run a list of preset experiments sequentially. Each experiment overrides
the base configuration and processes its own input directory. A failed
experiment does not stop the remaining ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := config.LoadConfig("")
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			var experiments []*experiment.Experiment
			if presetFile != "" {
				experiments, err = experiment.LoadPresets(presetFile)
				if err != nil {
					return err
				}
			} else {
				experiments = experiment.DefaultPresets()
			}

			runner := experiment.NewRunner(cfg, logger, nil)
			outcomes := runner.RunAll(experiments)

			failed := 0
			fmt.Println()
			for i, outcome := range outcomes {
				name := outcome.Experiment.Name
				if outcome.Err != nil {
					failed++
					fmt.Printf("  %s✗ [%d/%d] %s:%s %v\n", colorRed, i+1, len(outcomes), name, colorReset, outcome.Err)
					continue
				}
				fmt.Printf("  %s✓ [%d/%d] %s:%s %d/%d files in %s\n",
					colorGreen, i+1, len(outcomes), name, colorReset,
					outcome.Result.SuccessCount, outcome.Result.FileCount,
					report.FormatDuration(outcome.Result.Elapsed))
				if outcome.ReportPath != "" {
					fmt.Printf("    %sReport:%s %s\n", colorGray, colorReset, outcome.ReportPath)
				}
			}
			fmt.Println()

			if failed > 0 {
				return fmt.Errorf("%d of %d experiments failed", failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFile, "file", "f", "", "YAML preset file with experiments")

	return cmd
}

// validateFlags validates CLI flag values
func validateFlags(saveMode, reportFormat string) error {
	if saveMode != "" {
		validModes := []string{"individual", "summary", "both"}
		if !contains(validModes, saveMode) {
			return fmt.Errorf("--save-mode must be one of: %s (got: %s)", strings.Join(validModes, ", "), saveMode)
		}
	}

	if reportFormat != "" {
		validFormats := []string{"json", "txt", "text", "md", "markdown", "console"}
		if !contains(validFormats, reportFormat) {
			return fmt.Errorf("--report must be one of: %s (got: %s)", strings.Join(validFormats, ", "), reportFormat)
		}
	}

	return nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
