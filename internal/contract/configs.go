package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tempograph/tempograph/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 1
	DefaultLabelDepth = 10
	MaxLabelDepth     = 100
)

// DateTimeFormat is the default date time representation in output.
const DateTimeFormat = "2006-01-02 15:04:05"

// ConfigRawInput holds the raw, unvalidated configuration from all
// sources (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	VaultPathStr       string `mapstructure:"vault"`
	PropertyID         string `mapstructure:"property"`
	DisplayName        string `mapstructure:"display-name"`
	GranularityStr     string `mapstructure:"granularity"`
	AnchorProperty     string `mapstructure:"anchor-property"`
	ShowEmpty          bool   `mapstructure:"show-empty"`
	CaseSensitivePie   bool   `mapstructure:"case-sensitive-labels"`
	CaseInsensitiveTag bool   `mapstructure:"fold-tags"`
	LabelDepth         int    `mapstructure:"label-depth"`
	Unknown            string `mapstructure:"unknown-label"`
	Precision          int    `mapstructure:"precision"`
	OutputStr          string `mapstructure:"output"`
	OutputFile         string `mapstructure:"output-file"`
	CacheBackendStr    string `mapstructure:"cache-backend"`
	CacheDBConnect     string `mapstructure:"cache-db-connect"`
	ColorStr           string `mapstructure:"color"`
	Width              int    `mapstructure:"width"`
}

// Config holds the runtime configuration for one aggregation run.
// This struct remains the "final, validated" config.
type Config struct {
	VaultPath      string
	PropertyID     string
	DisplayName    string
	Granularity    schema.Granularity
	AnchorProperty string // when set, the property source wins over filename inference
	ShowEmpty      bool   // synthesize empty heatmap cells between min and max date

	// Case policy for label grouping. Pie grouping is case-insensitive
	// and tag grouping case-sensitive by default; both knobs exist so a
	// caller can unify the policy.
	CaseSensitivePie  bool
	CaseSensitiveTags bool

	LabelDepth int    // recursion guard for display-label derivation
	Unknown    string // fallback label for unresolvable link references

	Precision  int
	Output     schema.OutputMode
	OutputFile string

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // Please use env var as this is plaintext

	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
}

// Clone returns a copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessConfig validates the raw input and fills the final Config.
// Malformed enum values fail fast with a descriptive error; silently
// defaulting here would mask caller bugs.
func ProcessConfig(cfg *Config, input *ConfigRawInput) error {
	if err := processVaultPath(cfg, input.VaultPathStr); err != nil {
		return err
	}

	if input.PropertyID == "" {
		return fmt.Errorf("a property ID is required (use --property)")
	}
	cfg.PropertyID = input.PropertyID
	cfg.DisplayName = input.DisplayName
	if cfg.DisplayName == "" {
		cfg.DisplayName = input.PropertyID
	}

	granularity := schema.Granularity(input.GranularityStr)
	if _, ok := schema.ValidGranularities[granularity]; !ok {
		return fmt.Errorf("unknown granularity %q. Must be one of: daily, weekly, monthly, quarterly, yearly", input.GranularityStr)
	}
	cfg.Granularity = granularity

	output := schema.OutputMode(input.OutputStr)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("unknown output mode %q. Must be one of: text, csv, json, parquet", input.OutputStr)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	if output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	backend := schema.CacheBackend(input.CacheBackendStr)
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("unknown cache backend %q. Must be one of: sqlite, mysql, postgresql, none", input.CacheBackendStr)
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(backend, input.CacheDBConnect); err != nil {
		return err
	}

	cfg.AnchorProperty = input.AnchorProperty
	cfg.ShowEmpty = input.ShowEmpty
	cfg.CaseSensitivePie = input.CaseSensitivePie
	cfg.CaseSensitiveTags = !input.CaseInsensitiveTag
	cfg.Unknown = input.Unknown

	cfg.LabelDepth = input.LabelDepth
	if cfg.LabelDepth <= 0 {
		cfg.LabelDepth = DefaultLabelDepth
	}
	if cfg.LabelDepth > MaxLabelDepth {
		return fmt.Errorf("label depth %d exceeds the maximum of %d", cfg.LabelDepth, MaxLabelDepth)
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		return fmt.Errorf("precision cannot be negative: %d", cfg.Precision)
	}

	cfg.UseColors = parseBoolFlag(input.ColorStr, true)
	cfg.Width = input.Width

	return nil
}

// RevalidateVault re-runs vault path validation for a per-request override.
func RevalidateVault(cfg *Config, raw string) error {
	return processVaultPath(cfg, raw)
}

// processVaultPath resolves and validates the vault directory.
func processVaultPath(cfg *Config, raw string) error {
	if raw == "" {
		raw = "."
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return fmt.Errorf("cannot resolve vault path %q: %w", raw, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot access vault path %q: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path %q is not a directory", abs)
	}
	cfg.VaultPath = abs
	return nil
}

// ValidateDatabaseConnectionString performs basic validation of the
// connection string for database backends.
func ValidateDatabaseConnectionString(backend schema.CacheBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql cache backend requires a connection string (user:pass@tcp(host:port)/dbname)")
		}
		if !strings.Contains(connStr, "@") {
			return fmt.Errorf("mysql connection string looks malformed: expected user:pass@tcp(host:port)/dbname")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql cache backend requires a connection string (host=... port=... user=... dbname=...)")
		}
	}
	return nil
}

// parseBoolFlag interprets yes/no style flag values.
func parseBoolFlag(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
