package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all client configuration. It is read once at startup and
// fixed for the lifetime of the process.
type Config struct {
	// APIBaseURL is the root of the processing backend's REST API.
	APIBaseURL string `env:"PHOTODECK_API_BASE_URL" envDefault:"http://127.0.0.1:8001/api"`

	// TenantSlug pins the deployment to a single tenant. When set, hostname
	// based resolution is bypassed entirely.
	TenantSlug string `env:"PHOTODECK_TENANT_SLUG"`

	// RootDomain is the platform's root domain, e.g. "photodeck.io".
	// Tenant slugs are resolved from single-label subdomains beneath it.
	RootDomain string `env:"PHOTODECK_ROOT_DOMAIN"`

	// AppSubdomain and APISubdomain name the reserved, non-tenant hosts
	// beneath RootDomain.
	AppSubdomain string `env:"PHOTODECK_APP_SUBDOMAIN" envDefault:"app"`
	APISubdomain string `env:"PHOTODECK_API_SUBDOMAIN" envDefault:"api"`

	// Hostname overrides the host used for tenant resolution. When empty,
	// the host of APIBaseURL is used.
	Hostname string `env:"PHOTODECK_HOSTNAME"`

	// ConfigDir is where credentials and the selected tenant are persisted.
	// Defaults to ~/.photodeck; when it cannot be determined the stores
	// become no-ops and the session lives only in memory.
	ConfigDir string `env:"PHOTODECK_CONFIG_DIR"`

	LogLevel string `env:"PHOTODECK_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// .env file is optional, mainly for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.ConfigDir == "" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			cfg.ConfigDir = filepath.Join(home, ".photodeck")
		}
	}
	return cfg, nil
}
