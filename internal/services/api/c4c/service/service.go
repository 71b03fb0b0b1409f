// Package service contains the ticket text workflows
package service

import (
	"context"
	"strings"

	"c4ctexts/internal/adapters/c4c"
	"c4ctexts/internal/core/odata"
	perr "c4ctexts/internal/platform/errors"
	"c4ctexts/internal/platform/logger"
	"c4ctexts/internal/services/api/c4c/domain"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Settings are the process-wide defaults, resolved once at startup
type Settings struct {
	TenantURL string
	Username  string
	Password  string

	// MaxReferences bounds the fan-out per call, 0 expands every reference
	MaxReferences int
}

// Svc implements the service port
type Svc struct {
	up  domain.UpstreamPort
	set Settings
}

// New constructs the service
func New(up domain.UpstreamPort, set Settings) *Svc {
	if up == nil {
		panic("c4c.Service requires a non nil UpstreamPort")
	}
	return &Svc{up: up, set: set}
}

// call is one validated request: normalized tenant, auth header and trimmed ticket id
type call struct {
	tenant   string
	auth     string
	ticketID string
}

// prepare applies the configured defaults and validates every input at once,
// so a caller missing several fields sees them all in one message
func (s *Svc) prepare(ctx context.Context, q domain.TicketQuery) (context.Context, call, error) {
	var errs []error

	tenant, err := odata.Origin(str(q.TenantURL, s.set.TenantURL))
	errs = append(errs, err)

	ticketID := strings.TrimSpace(q.TicketID)
	if ticketID == "" {
		errs = append(errs, perr.InvalidArgf(MsgMissingTicket))
	}

	auth, err := c4c.BasicAuth(c4c.Credentials{
		Username: str(q.Username, s.set.Username),
		Password: str(q.Password, s.set.Password),
	})
	errs = append(errs, err)

	if err := perr.Join(perr.ErrorCodeInvalidArgument, errs...); err != nil {
		return ctx, call{}, err
	}
	ctx = logger.WithRequest(ctx, "", tenant)
	ctx = logger.WithTicket(ctx, ticketID)
	return ctx, call{tenant: tenant, auth: auth, ticketID: ticketID}, nil
}

// str returns v unless it is blank, then def
func str(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// fail logs the terminal error of an operation once
func fail(ctx context.Context, op string, err error) error {
	ev := logger.C(ctx).Warn()
	if c4c.IsAuthRejected(err) {
		ev = ev.Bool("auth_rejected", true)
	}
	if status, ok := c4c.StatusOf(err); ok {
		ev = ev.Int("upstream_status", status)
	}
	ev.Err(err).Str("op", op).Msg("c4c operation failed")
	return err
}
