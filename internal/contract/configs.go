package contract

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// Default values for configuration.
const (
	DefaultWidth = 0 // auto-detect
)

// DefaultWorkers is the default number of concurrent scan workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	// Exactly one of RepoPath/RepoURL is set after validation. RepoPath
	// points at the resolved repository root of a local target; RepoURL is
	// a remote target cloned into a temp directory at analysis time.
	RepoPath string
	RepoURL  string

	Output     schema.OutputMode
	OutputFile string
	Workers    int
	Width      int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	Thresholds schema.Thresholds

	UseColors    bool // Enable colored labels in table output
	ShowProgress bool // Print a scan progress counter on stderr
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoTargetStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Workers        int    `mapstructure:"workers"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	Progress       bool   `mapstructure:"progress"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Detector threshold knobs ---
	BurstWindowMinutes    int     `mapstructure:"burst-window-minutes"`
	LargeCommitFactor     float64 `mapstructure:"large-commit-factor"`
	LargeCommitLines      int     `mapstructure:"large-commit-lines"`
	FirstCommitSoloLines  int     `mapstructure:"first-commit-solo-lines"`
	FirstCommitMultiplier float64 `mapstructure:"first-commit-multiplier"`
	FirstCommitLines      int     `mapstructure:"first-commit-lines"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := resolveRepoTarget(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ShowProgress = input.Progress

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, html, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	return nil
}

// processThresholds builds the detector tuning from raw inputs.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	th := schema.DefaultThresholds()

	if input.BurstWindowMinutes < 0 {
		return fmt.Errorf("burst-window-minutes cannot be negative (received %d)", input.BurstWindowMinutes)
	}
	if input.BurstWindowMinutes > 0 {
		th.BurstWindow = time.Duration(input.BurstWindowMinutes) * time.Minute
	}
	if input.LargeCommitFactor < 0 {
		return fmt.Errorf("large-commit-factor cannot be negative (received %g)", input.LargeCommitFactor)
	}
	if input.LargeCommitFactor > 0 {
		th.LargeCommitStdDevFactor = input.LargeCommitFactor
	}
	if input.LargeCommitLines > 0 {
		th.LargeCommitAbsoluteLines = input.LargeCommitLines
	}
	if input.FirstCommitSoloLines > 0 {
		th.FirstCommitSoloThreshold = input.FirstCommitSoloLines
	}
	if input.FirstCommitMultiplier > 0 {
		th.FirstCommitMeanMultiplier = input.FirstCommitMultiplier
	}
	if input.FirstCommitLines > 0 {
		th.FirstCommitAbsoluteLines = input.FirstCommitLines
	}

	cfg.Thresholds = th
	return nil
}

// resolveRepoTarget classifies the positional target as a remote URL or a
// local path. Local paths are resolved to the enclosing repository root.
func resolveRepoTarget(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	target := strings.TrimSpace(input.RepoTargetStr)
	if target == "" {
		target = "."
	}

	if IsRemoteURL(target) {
		cfg.RepoURL = target
		cfg.RepoPath = ""
		return nil
	}

	root, err := client.GetRepoRoot(ctx, target)
	if err != nil {
		return err
	}
	cfg.RepoPath = root
	cfg.RepoURL = ""
	return nil
}
