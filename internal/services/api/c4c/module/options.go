package module

import (
	"time"

	"c4ctexts/internal/adapters/c4c"
	"c4ctexts/internal/platform/config"
	"c4ctexts/internal/services/api/c4c/service"
)

// Options holds the tenant defaults and upstream client settings
type Options struct {
	// defaults applied when a request leaves the field blank
	TenantURL string
	Username  string
	Password  string

	// upstream client
	Timeout       time.Duration // 0 keeps the transport default
	MaxBodyBytes  int64
	MaxReferences int // 0 expands every reference
}

// FromConfig reads C4C_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("C4C_")
	return Options{
		TenantURL:     cc.MayString("TENANT_URL", ""),
		Username:      cc.MayString("USERNAME", ""),
		Password:      cc.MayString("PASSWORD", ""),
		Timeout:       cc.MayDuration("HTTP_TIMEOUT", 0),
		MaxBodyBytes:  cc.MayInt64("MAX_BODY_BYTES", 32<<20),
		MaxReferences: cc.MayInt("MAX_REFERENCES", 0),
	}
}

// Settings are the service defaults
func (o Options) Settings() service.Settings {
	return service.Settings{
		TenantURL:     o.TenantURL,
		Username:      o.Username,
		Password:      o.Password,
		MaxReferences: o.MaxReferences,
	}
}

// Client are the upstream client options
func (o Options) Client() c4c.Options {
	return c4c.Options{
		Timeout:      o.Timeout,
		MaxBodyBytes: o.MaxBodyBytes,
	}
}
