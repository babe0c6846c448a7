package config_test

import (
	"testing"

	"github.com/photodeck/photodeck-go/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8001/api", cfg.APIBaseURL)
	require.Equal(t, "app", cfg.AppSubdomain)
	require.Equal(t, "api", cfg.APISubdomain)
	require.Empty(t, cfg.TenantSlug)
	require.Empty(t, cfg.RootDomain)
	require.Equal(t, "info", cfg.LogLevel)
	require.Contains(t, cfg.ConfigDir, ".photodeck")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PHOTODECK_API_BASE_URL", "https://acme.photodeck.io/api")
	t.Setenv("PHOTODECK_TENANT_SLUG", "acme")
	t.Setenv("PHOTODECK_ROOT_DOMAIN", "photodeck.io")
	t.Setenv("PHOTODECK_APP_SUBDOMAIN", "dashboard")
	t.Setenv("PHOTODECK_CONFIG_DIR", "/tmp/photodeck-test")
	t.Setenv("PHOTODECK_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "https://acme.photodeck.io/api", cfg.APIBaseURL)
	require.Equal(t, "acme", cfg.TenantSlug)
	require.Equal(t, "photodeck.io", cfg.RootDomain)
	require.Equal(t, "dashboard", cfg.AppSubdomain)
	require.Equal(t, "/tmp/photodeck-test", cfg.ConfigDir)
	require.Equal(t, "debug", cfg.LogLevel)
}
