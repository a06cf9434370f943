package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Experiment is a named bundle of configuration overrides. Zero-valued
// fields inherit from the base configuration.
type Experiment struct {
	Name         string   `yaml:"name"`
	Input        string   `yaml:"input"`
	OutputDir    string   `yaml:"output_dir"`
	Extensions   []string `yaml:"extensions"`
	Exclude      []string `yaml:"exclude"`
	MaxSize      string   `yaml:"max_size"`
	SaveMode     string   `yaml:"save_mode"`
	ReportFormat string   `yaml:"report_format"`
}

// PresetFile represents a YAML file with a list of experiments
type PresetFile struct {
	Experiments []*Experiment `yaml:"experiments"`
}

// LoadPresets loads experiments from a YAML preset file
func LoadPresets(path string) ([]*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var presets PresetFile
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}

	if len(presets.Experiments) == 0 {
		return nil, fmt.Errorf("preset file %s defines no experiments", path)
	}

	for i, exp := range presets.Experiments {
		if exp.Name == "" {
			exp.Name = fmt.Sprintf("experiment-%d", i+1)
		}
		if exp.Input == "" {
			return nil, fmt.Errorf("experiment %q has no input path", exp.Name)
		}
	}

	return presets.Experiments, nil
}

// DefaultPresets returns the built-in experiments used when no preset file
// is given.
func DefaultPresets() []*Experiment {
	return []*Experiment{
		{
			Name:     "summary-only",
			Input:    "./test_files",
			SaveMode: "summary",
		},
		{
			Name:       "text-files",
			Input:      "./test_files",
			Extensions: []string{".txt"},
			SaveMode:   "both",
		},
	}
}
