package experiment

import (
	"go.uber.org/zap"

	"github.com/vshmelev/fbatch/internal/config"
	"github.com/vshmelev/fbatch/internal/core"
	"github.com/vshmelev/fbatch/internal/report"
	"github.com/vshmelev/fbatch/pkg/models"
)

// RunOutcome is the outcome of one experiment run
type RunOutcome struct {
	Experiment *Experiment
	Result     *models.DirectoryResult
	ReportPath string
	Err        error
}

// Runner runs experiments strictly sequentially. A failed experiment is
// recorded and the runner continues with the next one.
type Runner struct {
	base    *config.Config
	logger  *zap.Logger
	process core.ProcessFunc
}

// NewRunner creates a runner. base supplies defaults each experiment may
// override; a nil process function falls back to core.DefaultProcess.
func NewRunner(base *config.Config, logger *zap.Logger, process core.ProcessFunc) *Runner {
	return &Runner{
		base:    base,
		logger:  logger,
		process: process,
	}
}

// RunAll runs every experiment in order and returns one outcome per
// experiment.
func (r *Runner) RunAll(experiments []*Experiment) []*RunOutcome {
	outcomes := make([]*RunOutcome, 0, len(experiments))

	for i, exp := range experiments {
		r.logger.Info("Running experiment",
			zap.Int("index", i+1),
			zap.Int("total", len(experiments)),
			zap.String("name", exp.Name))

		outcome := r.Run(exp)
		outcomes = append(outcomes, outcome)

		if outcome.Err != nil {
			r.logger.Warn("Experiment failed, continuing with next",
				zap.String("name", exp.Name),
				zap.Error(outcome.Err))
		}
	}

	return outcomes
}

// Run runs a single experiment against its input directory
func (r *Runner) Run(exp *Experiment) *RunOutcome {
	cfg := r.applyOverrides(exp)
	outcome := &RunOutcome{Experiment: exp}

	processor := core.NewProcessor(cfg, r.logger, r.process)

	var writer *report.IndividualWriter
	if cfg.SavesIndividual() {
		w, err := report.NewIndividualWriter(cfg.OutputDir, r.logger)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		defer w.Close()
		writer = w
		processor.SetFileSink(writer.Write)
	}

	generator := report.NewGenerator(cfg, r.logger)
	if cfg.SavesSummary() {
		processor.SetSummarySink(func(result *models.DirectoryResult) {
			path, err := generator.Generate(result)
			if err != nil {
				r.logger.Error("Failed to generate summary report",
					zap.String("experiment", exp.Name), zap.Error(err))
				return
			}
			outcome.ReportPath = path
		})
	}

	outcome.Result, outcome.Err = processor.ProcessDirectory(cfg.Input)
	return outcome
}

// applyOverrides merges the experiment's overrides onto a copy of the base
// configuration.
func (r *Runner) applyOverrides(exp *Experiment) *config.Config {
	cfg := *r.base

	if exp.Input != "" {
		cfg.Input = exp.Input
	}
	if exp.OutputDir != "" {
		cfg.OutputDir = exp.OutputDir
	}
	if len(exp.Extensions) > 0 {
		cfg.Extensions = exp.Extensions
	}
	if len(exp.Exclude) > 0 {
		cfg.Exclude = exp.Exclude
	}
	if exp.MaxSize != "" {
		cfg.MaxSize = exp.MaxSize
	}
	if exp.SaveMode != "" {
		cfg.SaveMode = exp.SaveMode
	}
	if exp.ReportFormat != "" {
		cfg.ReportFormat = exp.ReportFormat
	}

	return &cfg
}
