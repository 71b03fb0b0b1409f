package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"c4ctexts/internal/core/export"
	perr "c4ctexts/internal/platform/errors"
	"c4ctexts/internal/platform/logger"
	"c4ctexts/internal/services/api/c4c/domain"

	"github.com/spf13/cobra"
)

func (a *app) printJSON(w io.Writer, v any) error {
	b, err := export.JSON(v)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode output failed")
	}
	_, err = w.Write(b)
	return err
}

func (a *app) textsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "texts",
		Short: "Print the ticket's ServiceRequestTextCollection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) error {
				out, err := a.svc.TicketTexts(ctx, a.flags.query())
				if err != nil {
					return err
				}
				return a.printJSON(a.out, out)
			})
		},
	}
}

func (a *app) memosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "memos",
		Short: "Print the ticket's internal memo activities and their notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) error {
				out, err := a.svc.InternalMemos(ctx, a.flags.query())
				if err != nil {
					return err
				}
				return a.printJSON(a.out, out)
			})
		},
	}
}

func (a *app) emailNotesCmd() *cobra.Command {
	var emailID string
	cmd := &cobra.Command{
		Use:   "email-notes",
		Short: "Print the ticket's references and optionally one e-mail with notes",
		Example: `  c4ctexts email-notes -t TCK-1
  c4ctexts email-notes -t TCK-1 --email-id 00163E0A`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) error {
				out, err := a.svc.EmailNotes(ctx, domain.EmailNotesQuery{
					TicketQuery:     a.flags.query(),
					EmailActivityID: emailID,
				})
				if err != nil {
					return err
				}
				return a.printJSON(a.out, out)
			})
		},
	}
	cmd.Flags().StringVar(&emailID, "email-id", "", "e-mail activity id to expand")
	return cmd
}

func (a *app) collectionCmd() *cobra.Command {
	var format, outPath string
	cmd := &cobra.Command{
		Use:   "email-notes-collection",
		Short: "Expand every referenced e-mail and export the notes",
		Example: `  c4ctexts email-notes-collection -t TCK-1
  c4ctexts email-notes-collection -t TCK-1 --format csv --out notes.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) error {
				format = strings.ToLower(strings.TrimSpace(format))
				if format != export.FormatJSON && format != export.FormatCSV {
					return perr.WithField(perr.InvalidArgf("format must be csv or json."), "format")
				}
				out, err := a.svc.EmailNotesCollection(ctx, a.flags.query())
				if err != nil {
					return err
				}
				return a.write(ctx, outPath, func(w io.Writer) error {
					if format == export.FormatCSV {
						return export.WriteCSV(w, out.Notes)
					}
					return a.printJSON(w, out)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatJSON, "json or csv")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	return cmd
}

// write sends fn's output to path, or stdout when path is empty
func (a *app) write(ctx context.Context, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(a.out)
	}
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "cannot create %s", path)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "cannot write %s", path)
	}
	logger.C(ctx).Info().Str("path", path).Msg("export written")
	_, _ = fmt.Fprintln(a.err, "wrote", path)
	return nil
}
