package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspectorFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("analyze-excel", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("file", DefaultWorkbook, "")
	fs.Int("preview-rows", 5, "")
	fs.Int("samples", 3, "")
	fs.String("mode", "standard", "")
	fs.Bool("json", false, "")
	fs.String("log-level", DefaultLogLevel, "")
	return fs
}

func generatorFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("tmdlgen", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("site-url", DefaultSiteURL, "")
	fs.String("output", DefaultOutput, "")
	fs.String("schema", "", "")
	fs.String("log-level", DefaultLogLevel, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInspectorDefaults(t *testing.T) {
	cfg, err := LoadInspector("", inspectorFlags())
	require.NoError(t, err)

	assert.Equal(t, &Inspector{
		File:        DefaultWorkbook,
		PreviewRows: 5,
		Samples:     3,
		Mode:        "standard",
		LogLevel:    "info",
	}, cfg)
}

func TestLoadInspectorPrecedence(t *testing.T) {
	path := writeConfig(t, "file: from-file.xlsx\npreview_rows: 10\nsamples: 2\nmode: light\n")
	t.Setenv("ANALYZE_EXCEL_PREVIEW_ROWS", "20")
	t.Setenv("ANALYZE_EXCEL_LOG_LEVEL", "debug")

	flags := inspectorFlags()
	require.NoError(t, flags.Parse([]string{"--samples", "1", "--json"}))

	cfg, err := LoadInspector(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-file.xlsx", cfg.File)
	assert.Equal(t, 20, cfg.PreviewRows)
	assert.Equal(t, 1, cfg.Samples)
	assert.Equal(t, "light", cfg.Mode)
	assert.True(t, cfg.JSON)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInspectorInvalid(t *testing.T) {
	tests := map[string][]string{
		"zero preview": {"--preview-rows", "0"},
		"negative":     {"--samples", "-1"},
		"mode":         {"--mode", "deep"},
		"log level":    {"--log-level", "loud"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			flags := inspectorFlags()
			require.NoError(t, flags.Parse(args))

			_, err := LoadInspector("", flags)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := LoadInspector(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")

	_, err = LoadGenerator(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadGenerator(t *testing.T) {
	cfg, err := LoadGenerator("", generatorFlags())
	require.NoError(t, err)

	assert.Equal(t, DefaultSiteURL, cfg.SiteURL)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Empty(t, cfg.Schema)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadGeneratorOverrides(t *testing.T) {
	path := writeConfig(t, "output: from-file.tmdl\nschema: lists.yaml\n")
	t.Setenv("TMDLGEN_SITE_URL", "https://contoso.sharepoint.com/sites/ops/")

	flags := generatorFlags()
	require.NoError(t, flags.Parse([]string{"--output", "flag.tmdl"}))

	cfg, err := LoadGenerator(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "https://contoso.sharepoint.com/sites/ops", cfg.SiteURL)
	assert.Equal(t, "flag.tmdl", cfg.Output)
	assert.Equal(t, "lists.yaml", cfg.Schema)
}

func TestLoadGeneratorInvalidURL(t *testing.T) {
	flags := generatorFlags()
	require.NoError(t, flags.Parse([]string{"--site-url", "not a url"}))

	_, err := LoadGenerator("", flags)
	assert.ErrorContains(t, err, "SiteURL")
}
