package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-editor/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.Editor.BaseFontSize)
	assert.Equal(t, 9.0, cfg.Editor.MinFontSize)
	assert.Equal(t, 0.5, cfg.Editor.FontStep)
	assert.Equal(t, 40, cfg.Editor.MaxFitIterations)
	assert.Equal(t, 120, cfg.Editor.DebounceMs)
	assert.Equal(t, "en-IN", cfg.Format.Locale)
	assert.Equal(t, 2.0, cfg.Export.Scale)
	assert.Equal(t, "#ffffff", cfg.Export.Background)
	assert.Equal(t, "invoice", cfg.Export.DefaultFilename)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 1000, cfg.Session.MaxOpen)
	assert.Equal(t, 60, cfg.Session.SweepSeconds)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EDITOR_MIN_FONT_SIZE", "8.5")
	t.Setenv("EXPORT_USE_CORS", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 8.5, cfg.Editor.MinFontSize)
	assert.False(t, cfg.Export.UseCORS)
}
