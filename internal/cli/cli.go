// Package cli holds the c4ctexts command tree
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"c4ctexts/internal/adapters/c4c"
	"c4ctexts/internal/platform/config"
	"c4ctexts/internal/platform/logger"
	pnet "c4ctexts/internal/platform/net"
	c4cmod "c4ctexts/internal/services/api/c4c/module"
	"c4ctexts/internal/services/api/c4c/domain"
	csvc "c4ctexts/internal/services/api/c4c/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ErrReported marks a failure whose envelope was already written to stderr
var ErrReported = errors.New("cli: error reported")

// ticketFlags are the persistent per-run inputs, blank falls back to C4C_* env
type ticketFlags struct {
	tenant   string
	ticket   string
	username string
	password string
}

func (f ticketFlags) query() domain.TicketQuery {
	return domain.TicketQuery{TenantURL: f.tenant, TicketID: f.ticket, Username: f.username, Password: f.password}
}

// app carries what every subcommand needs
type app struct {
	cfg   config.Conf
	flags ticketFlags
	svc   csvc.Service
	out   io.Writer
	err   io.Writer
}

// Option customizes NewRoot
type Option func(*app)

// WithService skips building the upstream client
func WithService(s csvc.Service) Option { return func(a *app) { a.svc = s } }

// WithOutput redirects stdout and stderr
func WithOutput(out, err io.Writer) Option {
	return func(a *app) { a.out, a.err = out, err }
}

// NewRoot builds the command tree
func NewRoot(cfg config.Conf, opts ...Option) *cobra.Command {
	a := &app{cfg: cfg, out: os.Stdout, err: os.Stderr}
	for _, o := range opts {
		o(a)
	}

	root := &cobra.Command{
		Use:   "c4ctexts",
		Short: "Read ticket texts, internal memos and e-mail notes from a C4C tenant",
		Long: `c4ctexts resolves a service request by its external ticket id and
prints its texts, internal memos or e-mail notes as JSON, or the flattened
notes as CSV.

Tenant and credentials default to C4C_TENANT_URL, C4C_USERNAME and
C4C_PASSWORD, loaded from .env when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || a.svc != nil {
				return nil
			}
			o := c4cmod.FromConfig(a.cfg)
			a.svc = csvc.New(c4c.NewClient(o.Client()), o.Settings())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.tenant, "tenant", "", "tenant base URL (default $C4C_TENANT_URL)")
	pf.StringVarP(&a.flags.ticket, "ticket", "t", "", "external ticket id")
	pf.StringVarP(&a.flags.username, "username", "u", "", "basic auth user (default $C4C_USERNAME)")
	pf.StringVarP(&a.flags.password, "password", "p", "", "basic auth password (default $C4C_PASSWORD)")

	root.AddCommand(a.textsCmd(), a.memosCmd(), a.emailNotesCmd(), a.collectionCmd())
	return root
}

// run tags ctx with a fresh request id and reports a failure as the error envelope
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	reqID := uuid.NewString()
	ctx := pnet.WithRequestID(cmd.Context(), reqID)
	ctx = logger.WithRequest(ctx, reqID, "")

	err := fn(ctx)
	if err == nil {
		return nil
	}
	_, wire := pnet.Error(err, reqID)
	enc := json.NewEncoder(a.err)
	enc.SetIndent("", "  ")
	_ = enc.Encode(wire)
	return errors.Join(ErrReported, err)
}
