// Package module wires the ticket text endpoints into the API using modkit
package module

import (
	"net/http"

	"c4ctexts/internal/adapters/c4c"
	modkit "c4ctexts/internal/modkit"
	"c4ctexts/internal/modkit/httpkit"
	"c4ctexts/internal/modkit/swaggerkit"
	str "c4ctexts/internal/platform/strings"

	chttp "c4ctexts/internal/services/api/c4c/http"
	csvc "c4ctexts/internal/services/api/c4c/service"
)

// Module implements the c4c API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	svc csvc.Service
}

// Ports lets callers inject a ready service, tests use it to avoid a live tenant
type Ports struct {
	Service csvc.Service
}

// New constructs the c4c module from config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("c4c", "/c4c", opts...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	svc := injected.Service
	if svc == nil {
		o := FromConfig(deps.Cfg)
		co := o.Client()
		co.HTTP = deps.HTTP
		co.Registry = deps.Metrics
		svc = csvc.New(c4c.NewClient(co), o.Settings())
		if o.TenantURL == "" {
			deps.Log.Info().Msg("c4c: no default tenant, requests must carry tenantUrl")
		}
	}

	swaggerkit.Register(registerDocs(str.MustPrefix(b.Prefix)))

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, append([]func(http.Handler) http.Handler{httpkit.JSONOnly()}, m.mws...), func(rr httpkit.Router) {
		chttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the normalized route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports exposes the service to other modules and the CLI
func (m *Module) Ports() any { return Ports{Service: m.svc} }
