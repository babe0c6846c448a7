// Package tenants resolves which tenant a deployment is addressing from its
// hostname. The slug produced here is a hint sent alongside every API call;
// it is independent of the numeric tenant id carried in the session, and the
// backend reconciles the two on each request.
package tenants

import (
	"net/url"
	"strings"

	"github.com/photodeck/photodeck-go/internal/config"
)

// ResolveSlug derives a tenant slug from hostname, or returns "" when the
// host does not address a tenant. Precedence, each step short-circuiting:
//
//  1. A configured fixed tenant slug wins unconditionally.
//  2. localhost and 127.0.0.1 never carry a tenant.
//  3. Without a configured root domain there is nothing to match against.
//  4. The root domain itself and the app/api hosts are reserved.
//  5. Otherwise the single label immediately before the root domain is the
//     slug; nested or empty labels are rejected.
//
// The function is pure: it never consults the environment beyond cfg.
func ResolveSlug(cfg *config.Config, hostname string) string {
	if slug := strings.TrimSpace(cfg.TenantSlug); slug != "" {
		return slug
	}

	host := strings.ToLower(stripPort(hostname))

	// local dev
	if host == "localhost" || host == "127.0.0.1" {
		return ""
	}

	if cfg.RootDomain == "" {
		return ""
	}
	root := strings.ToLower(cfg.RootDomain)

	if host == root {
		return ""
	}
	if host == cfg.AppSubdomain+"."+root || host == cfg.APISubdomain+"."+root {
		return ""
	}

	suffix := "." + root
	if !strings.HasSuffix(host, suffix) {
		return ""
	}

	sub := strings.TrimSuffix(host, suffix)
	// Only a single-label subdomain names a tenant.
	if sub == "" || strings.Contains(sub, ".") {
		return ""
	}
	return sub
}

// FromEnvironment resolves the slug for the host this process addresses:
// the configured hostname override when set, otherwise the host of the API
// base URL. This is the entry point the API client uses per request.
func FromEnvironment(cfg *config.Config) string {
	if slug := strings.TrimSpace(cfg.TenantSlug); slug != "" {
		return slug
	}
	host := cfg.Hostname
	if host == "" {
		if u, err := url.Parse(cfg.APIBaseURL); err == nil {
			host = u.Host
		}
	}
	if host == "" {
		return ""
	}
	return ResolveSlug(cfg, host)
}

func stripPort(hostname string) string {
	if host, _, ok := strings.Cut(hostname, ":"); ok {
		return host
	}
	return hostname
}
