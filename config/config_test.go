package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	config, err := ReadConfig("testdata/fxtype.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"../schema/testdata/crm.yaml"}, config.Schemas)
	level, err := config.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, Default().LogSections, config.LogSections, "unset values keep their default")
}

func TestReadConfigErrors(t *testing.T) {
	testCases := []struct {
		path     string
		contains string
	}{
		{"testdata/missing.yaml", "couldn't open file"},
		{"testdata/bad_level.yaml", "invalid log level 'loud'"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.path, func(t *testing.T) {
			_, err := ReadConfig(testCase.path)
			assert.ErrorContains(t, err, testCase.contains)
		})
	}
}

func TestLevel(t *testing.T) {
	for text, expected := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		level, err := (&Config{LogLevel: text}).Level()
		require.NoError(t, err)
		assert.Equal(t, expected, level, text)
	}
}
