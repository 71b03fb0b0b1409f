// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"c4ctexts/internal/platform/config"
	"c4ctexts/internal/platform/logger"
	phttp "c4ctexts/internal/platform/net/http"

	"c4ctexts/internal/modkit"
	"c4ctexts/internal/modkit/httpkit"
	"c4ctexts/internal/modkit/module"
	"c4ctexts/internal/modkit/swaggerkit"

	c4cmod "c4ctexts/internal/services/api/c4c/module"
	metamod "c4ctexts/internal/services/api/meta/module"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options are the API options
type Options struct {
	// Config is the root view, modules pick their own prefixes from it
	Config config.Conf
	Stack  httpkit.StackOptions

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool

	// Registry receives process and module collectors; nil builds a fresh one
	Registry *prometheus.Registry

	// HTTP is the outbound client for the tenant, nil uses module defaults
	HTTP *http.Client

	// Modules overrides the mounted modules, tests use it
	Modules []module.Module
}

// FromConfig reads CORE_API_* switches under api
func FromConfig(root, api config.Conf) Options {
	return Options{
		Config: root,
		Stack: httpkit.StackOptions{
			CORSOrigins:    api.MayCSV("CORS_ORIGINS", nil),
			RequestTimeout: api.MayDuration("REQUEST_TIMEOUT", 0),
			SlowRequest:    api.MayDuration("SLOW_REQUEST", 5*time.Second),
		},
		EnableSwagger:  api.MayBool("SWAGGER", true),
		EnableProfiler: api.MayBool("PROFILER", false),
		EnableMetrics:  api.MayBool("METRICS", true),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	reg := opt.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		HTTP:    opt.HTTP,
		Metrics: reg,
	}

	mods := opt.Modules
	if mods == nil {
		mods = []module.Module{
			metamod.New(deps),
			c4cmod.New(deps),
		}
	}

	r.Use(httpkit.CommonStack(opt.Stack)...)

	// Swagger + profiler + metrics
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	log := logger.Named("api")
	for _, m := range mods {
		// mount module routes under its own prefix
		m.MountRoutes(r)
		log.Debug().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("module mounted")
	}
}
