package tenants_test

import (
	"testing"

	"github.com/photodeck/photodeck-go/internal/config"
	"github.com/photodeck/photodeck-go/tenants"
	"github.com/stretchr/testify/require"
)

func TestResolveSlug(t *testing.T) {
	cfg := &config.Config{
		RootDomain:   "photodeck.io",
		AppSubdomain: "app",
		APISubdomain: "api",
	}

	t.Run("tenant subdomain", func(t *testing.T) {
		require.Equal(t, "acme", tenants.ResolveSlug(cfg, "acme.photodeck.io"))
	})

	t.Run("port stripped and case folded", func(t *testing.T) {
		require.Equal(t, "acme", tenants.ResolveSlug(cfg, "ACME.Photodeck.IO:3000"))
	})

	t.Run("localhost", func(t *testing.T) {
		require.Empty(t, tenants.ResolveSlug(cfg, "localhost"))
		require.Empty(t, tenants.ResolveSlug(cfg, "localhost:3000"))
		require.Empty(t, tenants.ResolveSlug(cfg, "127.0.0.1"))
	})

	t.Run("root domain reserved", func(t *testing.T) {
		require.Empty(t, tenants.ResolveSlug(cfg, "photodeck.io"))
	})

	t.Run("app and api hosts reserved", func(t *testing.T) {
		require.Empty(t, tenants.ResolveSlug(cfg, "app.photodeck.io"))
		require.Empty(t, tenants.ResolveSlug(cfg, "api.photodeck.io"))
	})

	t.Run("renamed reserved hosts", func(t *testing.T) {
		renamed := &config.Config{
			RootDomain:   "photodeck.io",
			AppSubdomain: "dashboard",
			APISubdomain: "backend",
		}
		require.Empty(t, tenants.ResolveSlug(renamed, "dashboard.photodeck.io"))
		require.Empty(t, tenants.ResolveSlug(renamed, "backend.photodeck.io"))
		require.Equal(t, "app", tenants.ResolveSlug(renamed, "app.photodeck.io"))
	})

	t.Run("nested subdomain rejected", func(t *testing.T) {
		require.Empty(t, tenants.ResolveSlug(cfg, "a.b.photodeck.io"))
	})

	t.Run("unrelated domain", func(t *testing.T) {
		require.Empty(t, tenants.ResolveSlug(cfg, "acme.example.com"))
	})

	t.Run("no root domain configured", func(t *testing.T) {
		require.Empty(t, tenants.ResolveSlug(&config.Config{}, "acme.photodeck.io"))
	})

	t.Run("fixed override wins over everything", func(t *testing.T) {
		pinned := &config.Config{TenantSlug: "acme", RootDomain: "photodeck.io"}
		require.Equal(t, "acme", tenants.ResolveSlug(pinned, "other.photodeck.io"))
		require.Equal(t, "acme", tenants.ResolveSlug(pinned, "localhost"))
		require.Equal(t, "acme", tenants.ResolveSlug(pinned, ""))
	})
}

func TestFromEnvironment(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		cfg := &config.Config{TenantSlug: " acme "}
		require.Equal(t, "acme", tenants.FromEnvironment(cfg))
	})

	t.Run("hostname override", func(t *testing.T) {
		cfg := &config.Config{
			RootDomain:   "photodeck.io",
			AppSubdomain: "app",
			APISubdomain: "api",
			Hostname:     "acme.photodeck.io",
			APIBaseURL:   "https://api.photodeck.io/api",
		}
		require.Equal(t, "acme", tenants.FromEnvironment(cfg))
	})

	t.Run("falls back to API base URL host", func(t *testing.T) {
		cfg := &config.Config{
			RootDomain:   "photodeck.io",
			AppSubdomain: "app",
			APISubdomain: "api",
			APIBaseURL:   "https://acme.photodeck.io/api",
		}
		require.Equal(t, "acme", tenants.FromEnvironment(cfg))
	})

	t.Run("reserved api host yields nothing", func(t *testing.T) {
		cfg := &config.Config{
			RootDomain:   "photodeck.io",
			AppSubdomain: "app",
			APISubdomain: "api",
			APIBaseURL:   "https://api.photodeck.io/api",
		}
		require.Empty(t, tenants.FromEnvironment(cfg))
	})
}
