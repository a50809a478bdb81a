package transform

import (
	"io"
	"log/slog"
	"testing"

	"martgen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewDBTRunner_RequiresProjectDir(t *testing.T) {
	_, err := NewDBTRunner(&config.Config{}, testLogger())
	require.Error(t, err)

	_, err = NewDBTRunner(&config.Config{Transform: &config.TransformConfig{}}, testLogger())
	require.Error(t, err)

	runner, err := NewDBTRunner(&config.Config{
		Transform: &config.TransformConfig{ProjectDir: t.TempDir()},
	}, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, runner)
}
