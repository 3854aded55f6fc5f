package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-kaynak/feature-collisions/pkg/phonology"
)

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collisions.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, phonology.DefaultReportPath, cfg.Report)
	assert.Equal(t, "IPA", cfg.SymbolColumn)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
matrix = "m.csv"
catalog = "d.yaml"
targets = ["a", "ã"]
ignore_features = ["round"]
cache_size = 0

[tokens]
"+" = "+"
"-" = "-"
"" = "0"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "m.csv", cfg.Matrix)
	assert.Equal(t, "d.yaml", cfg.Catalog)
	assert.Equal(t, phonology.DefaultReportPath, cfg.Report, "unset keys keep defaults")
	assert.Equal(t, []string{"a", "ã"}, cfg.Targets)
	assert.Equal(t, 0, cfg.CacheSize)

	tokens, err := cfg.TokenTable()
	require.NoError(t, err)
	assert.Equal(t, phonology.Unspecified, tokens[""])
	assert.Equal(t, phonology.Positive, tokens["+"])

	pc, err := cfg.Phonology()
	require.NoError(t, err)
	assert.Equal(t, []string{"round"}, pc.IgnoreFeatures)
	assert.Equal(t, 0, pc.CacheSize)
}

func TestLoad_MissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MissingDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `matrix = `},
		{"bad token", "[tokens]\n\"y\" = \"yes\"\n"},
		{"negative cache", "cache_size = -1\n"},
		{"empty report", "report = \"\"\n"},
	}
	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.content))
		assert.Error(t, err, tt.name)
	}
}

func TestLoad_DefaultPathsExistFromModuleRoot(t *testing.T) {
	chdir(t, filepath.Join("..", ".."))

	cfg, err := Load("")
	require.NoError(t, err)
	for _, path := range []string{cfg.Matrix, cfg.Catalog} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "default path %s", path)
	}

	a, err := phonology.NewAnalyzer(cfg.Matrix, cfg.Catalog, phonology.DefaultConfig())
	require.NoError(t, err)
	a.Close()
}

func TestLoad_TokensReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
[tokens]
"1" = "+"
"2" = "-"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, Default().Tokens)

	tokens, err := cfg.TokenTable()
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.Equal(t, phonology.Positive, tokens["1"])
	assert.Equal(t, phonology.Negative, tokens["2"])
	for _, token := range []string{"+", "-", "0"} {
		assert.NotContains(t, tokens, token)
	}
}
