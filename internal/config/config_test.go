package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(env(nil), nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.False(t, cfg.DevMode)
	require.Equal(t, "public", cfg.PublicDir)
	require.Empty(t, cfg.CatalogFile)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, []string{"en", "ja"}, cfg.Locales)
	require.True(t, cfg.Metrics)
	require.Equal(t, defaultShutdownGrace, cfg.ShutdownGrace)
}

func TestLoadPortPrecedence(t *testing.T) {
	t.Parallel()

	cfg, err := Load(env(map[string]string{"PORT": "9000"}), nil)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)

	cfg, err = Load(env(map[string]string{"PORT": "9000", "STARMOON_WEB_PORT": "7000"}), nil)
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Addr)

	cfg, err = Load(env(map[string]string{"STARMOON_WEB_PORT": "7000"}), []string{"-addr", "127.0.0.1:6000"})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:6000", cfg.Addr)
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Parallel()

	cfg, err := Load(env(map[string]string{
		"STARMOON_WEB_DEV":            "1",
		"STARMOON_WEB_CATALOG_FILE":   "/etc/catalog.yaml",
		"STARMOON_WEB_SITE_URL":       "https://starmoon.ai/",
		"STARMOON_WEB_METRICS":        "false",
		"STARMOON_WEB_LOCALES":        "EN, ja ,",
		"STARMOON_WEB_DEFAULT_LOCALE": "ja",
		"LOG_LEVEL":                   "debug",
	}), []string{"-public", "/srv/public"})
	require.NoError(t, err)
	require.True(t, cfg.DevMode)
	require.Equal(t, "/etc/catalog.yaml", cfg.CatalogFile)
	require.Equal(t, "https://starmoon.ai", cfg.SiteURL)
	require.False(t, cfg.Metrics)
	require.Equal(t, []string{"en", "ja"}, cfg.Locales)
	require.Equal(t, "ja", cfg.DefaultLocale)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/srv/public", cfg.PublicDir)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	_, err := Load(env(map[string]string{"STARMOON_WEB_METRICS": "maybe"}), nil)
	require.Error(t, err)

	_, err = Load(env(map[string]string{"STARMOON_WEB_SITE_URL": "starmoon.ai"}), nil)
	require.Error(t, err)

	_, err = Load(env(map[string]string{"STARMOON_WEB_DEFAULT_LOCALE": "de"}), nil)
	require.Error(t, err)

	_, err = Load(env(nil), []string{"-unknown"})
	require.Error(t, err)
}
