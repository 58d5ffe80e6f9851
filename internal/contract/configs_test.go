package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/schema"
)

// validInput returns a raw input that passes validation against the
// given vault directory. Tests mutate individual fields.
func validInput(vault string) *ConfigRawInput {
	return &ConfigRawInput{
		VaultPathStr:    vault,
		PropertyID:      "words",
		GranularityStr:  "daily",
		OutputStr:       "text",
		CacheBackendStr: "none",
	}
}

func TestProcessConfig(t *testing.T) {
	vault := t.TempDir()

	t.Run("valid input fills defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessConfig(cfg, validInput(vault)))

		assert.Equal(t, "words", cfg.PropertyID)
		assert.Equal(t, "words", cfg.DisplayName, "DisplayName should default to the property ID")
		assert.Equal(t, schema.Daily, cfg.Granularity)
		assert.Equal(t, DefaultLabelDepth, cfg.LabelDepth)
		assert.True(t, cfg.UseColors, "colors default on when the flag is unset")
		assert.True(t, cfg.CaseSensitiveTags, "tags stay case-sensitive unless folding is requested")
		assert.False(t, cfg.CaseSensitivePie)
	})

	t.Run("explicit display name wins", func(t *testing.T) {
		input := validInput(vault)
		input.DisplayName = "Word count"
		cfg := &Config{}
		require.NoError(t, ProcessConfig(cfg, input))
		assert.Equal(t, "Word count", cfg.DisplayName)
	})

	t.Run("fold-tags inverts tag case policy", func(t *testing.T) {
		input := validInput(vault)
		input.CaseInsensitiveTag = true
		cfg := &Config{}
		require.NoError(t, ProcessConfig(cfg, input))
		assert.False(t, cfg.CaseSensitiveTags)
	})

	t.Run("missing property", func(t *testing.T) {
		input := validInput(vault)
		input.PropertyID = ""
		err := ProcessConfig(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "property ID is required")
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*ConfigRawInput)
			errPart string
		}{
			{
				name:    "unknown granularity",
				mutate:  func(in *ConfigRawInput) { in.GranularityStr = "hourly" },
				errPart: "unknown granularity",
			},
			{
				name:    "unknown output mode",
				mutate:  func(in *ConfigRawInput) { in.OutputStr = "xml" },
				errPart: "unknown output mode",
			},
			{
				name:    "unknown cache backend",
				mutate:  func(in *ConfigRawInput) { in.CacheBackendStr = "redis" },
				errPart: "unknown cache backend",
			},
			{
				name:    "parquet without output file",
				mutate:  func(in *ConfigRawInput) { in.OutputStr = "parquet" },
				errPart: "requires --output-file",
			},
			{
				name:    "label depth over the maximum",
				mutate:  func(in *ConfigRawInput) { in.LabelDepth = MaxLabelDepth + 1 },
				errPart: "exceeds the maximum",
			},
			{
				name:    "negative precision",
				mutate:  func(in *ConfigRawInput) { in.Precision = -1 },
				errPart: "precision cannot be negative",
			},
			{
				name:    "mysql backend without connection string",
				mutate:  func(in *ConfigRawInput) { in.CacheBackendStr = "mysql" },
				errPart: "requires a connection string",
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				input := validInput(vault)
				tc.mutate(input)
				err := ProcessConfig(&Config{}, input)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errPart)
			})
		}
	})

	t.Run("parquet with output file passes", func(t *testing.T) {
		input := validInput(vault)
		input.OutputStr = "parquet"
		input.OutputFile = filepath.Join(t.TempDir(), "out.parquet")
		cfg := &Config{}
		require.NoError(t, ProcessConfig(cfg, input))
		assert.Equal(t, schema.ParquetOut, cfg.Output)
	})

	t.Run("vault path must be a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "note.md")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		input := validInput(file)
		err := ProcessConfig(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("missing vault path", func(t *testing.T) {
		input := validInput(filepath.Join(t.TempDir(), "missing"))
		err := ProcessConfig(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot access vault path")
	})
}

func TestRevalidateVault(t *testing.T) {
	cfg := &Config{}
	vault := t.TempDir()
	require.NoError(t, RevalidateVault(cfg, vault))
	assert.Equal(t, vault, cfg.VaultPath)

	err := RevalidateVault(cfg, filepath.Join(vault, "nope"))
	require.Error(t, err)
	// The previous valid path survives a failed override.
	assert.Equal(t, vault, cfg.VaultPath)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	cases := []struct {
		name    string
		backend schema.CacheBackend
		connStr string
		wantErr bool
	}{
		{"sqlite ignores connStr", schema.SQLiteBackend, "", false},
		{"none ignores connStr", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(localhost:3306)/db", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing credentials", schema.MySQLBackend, "localhost:3306/db", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost user=pg dbname=db", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tc.backend, tc.connStr)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseBoolFlag(t *testing.T) {
	assert.True(t, parseBoolFlag("yes", false))
	assert.True(t, parseBoolFlag("ON", false))
	assert.True(t, parseBoolFlag(" true ", false))
	assert.False(t, parseBoolFlag("no", true))
	assert.False(t, parseBoolFlag("0", true))

	// Unrecognized values fall back.
	assert.True(t, parseBoolFlag("maybe", true))
	assert.False(t, parseBoolFlag("", false))
}

func TestClone(t *testing.T) {
	cfg := &Config{PropertyID: "words", Granularity: schema.Monthly}
	clone := cfg.Clone()
	clone.PropertyID = "status"

	assert.Equal(t, "words", cfg.PropertyID)
	assert.Equal(t, schema.Monthly, clone.Granularity)
}
