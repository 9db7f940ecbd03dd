package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/threadkit/internal/format"
	apperrors "github.com/alexisbeaulieu97/threadkit/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "threadkit.yaml", `theme: dark
log_level: debug
human_logs: false
plural_rule: inflect
custom_plurals:
  reply: replies
width: 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.HumanLogs)
	assert.Equal(t, format.RuleInflect, cfg.PluralRule)
	assert.Equal(t, map[string]string{"reply": "replies"}, cfg.CustomPlurals)
	assert.Equal(t, 120, cfg.Width)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("width: 80\n"), "inline")
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.HumanLogs)
	assert.Equal(t, format.RuleSuffix, cfg.PluralRule)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{name: "unknown theme", input: "theme: solarized\n", field: "theme"},
		{name: "unknown level", input: "log_level: trace\n", field: "log_level"},
		{name: "unknown plural rule", input: "plural_rule: latin\n", field: "plural_rule"},
		{name: "negative width", input: "width: -1\n", field: "width"},
		{name: "huge width", input: "width: 1000\n", field: "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), "inline")
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("theme: dark\nwidth: [1, 2\n"), "broken.yaml")
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Source)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestConfigFormatter(t *testing.T) {
	cfg := Default()
	cfg.CustomPlurals = map[string]string{"reply": "replies"}
	f := cfg.Formatter()

	assert.Equal(t, "replies", f.Plural(2, "reply"))
	assert.Equal(t, "likes", f.Plural(2, "like"))
	assert.Equal(t, "like", f.Plural(1, "like"))

	cfg.PluralRule = format.RuleInflect
	assert.Equal(t, "replies", cfg.Formatter().Plural(3, "reply"))
}

func TestValidateConfigNil(t *testing.T) {
	err := ValidateConfig(nil)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "config", validationErr.Field)
}
