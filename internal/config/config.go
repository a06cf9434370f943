package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config represents the processor configuration
type Config struct {
	// Input settings
	Input         string   `mapstructure:"input"`          // file or directory to process
	Extensions    []string `mapstructure:"extensions"`     // file extensions to process (empty = all)
	Exclude       []string `mapstructure:"exclude"`        // directories to exclude
	MaxSize       string   `mapstructure:"max_size"`       // maximum file size to process (0 = unlimited)
	IncludeHidden bool     `mapstructure:"include_hidden"` // include hidden files and directories
	UseGitignore  bool     `mapstructure:"use_gitignore"`  // respect .gitignore at the input root

	// Output settings
	SaveMode     string `mapstructure:"save_mode"`     // individual, summary, both
	ReportFormat string `mapstructure:"report_format"` // json, text, md
	OutputDir    string `mapstructure:"output_dir"`    // directory for generated reports
}

// SaveMode controls which result sinks are registered
type SaveMode int

const (
	SaveIndividual SaveMode = iota
	SaveSummary
	SaveBoth
)

// LoadConfig loads configuration from an optional config file,
// environment variables and defaults
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("save_mode", "individual")
	v.SetDefault("report_format", "json")
	v.SetDefault("output_dir", "./output")
	v.SetDefault("max_size", "")
	v.SetDefault("include_hidden", false)
	v.SetDefault("use_gitignore", false)
	v.SetDefault("exclude", []string{".git", "node_modules", "vendor", ".svn", ".hg"})

	// Read environment variables
	v.SetEnvPrefix("FBATCH")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetSaveMode returns the save mode enum value
func (c *Config) GetSaveMode() SaveMode {
	switch c.SaveMode {
	case "summary":
		return SaveSummary
	case "both":
		return SaveBoth
	default:
		return SaveIndividual
	}
}

// SavesIndividual reports whether per-file results should be persisted
func (c *Config) SavesIndividual() bool {
	mode := c.GetSaveMode()
	return mode == SaveIndividual || mode == SaveBoth
}

// SavesSummary reports whether the directory summary should be persisted
func (c *Config) SavesSummary() bool {
	mode := c.GetSaveMode()
	return mode == SaveSummary || mode == SaveBoth
}

// ShouldProcessFile determines if a file should be processed based on its
// extension. Matching is case-insensitive; an empty filter keeps every file.
func (c *Config) ShouldProcessFile(extension string) bool {
	if len(c.Extensions) == 0 {
		return true
	}

	ext := normalizeExtension(extension)
	for _, e := range c.Extensions {
		if normalizeExtension(e) == ext {
			return true
		}
	}
	return false
}

// normalizeExtension lower-cases an extension and ensures a leading dot,
// so ".TXT", "txt" and ".txt" all compare equal.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
