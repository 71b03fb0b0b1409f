// Package http provides http transport for the ticket text endpoints
package http

import (
	stdhttp "net/http"
	"strings"

	"c4ctexts/internal/core/export"
	"c4ctexts/internal/modkit/httpkit"
	perr "c4ctexts/internal/platform/errors"
	str "c4ctexts/internal/platform/strings"
	"c4ctexts/internal/services/api/c4c/domain"
	svc "c4ctexts/internal/services/api/c4c/service"
)

// MsgBadFormat is returned for an export format other than csv or json
const MsgBadFormat = "format must be csv or json."

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/health", h.health)
	httpkit.PostJSON[domain.TicketRequest](r, "/service-request-texts", h.ticketTexts)
	httpkit.PostJSON[domain.TicketRequest](r, "/internal-memos", h.internalMemos)
	httpkit.PostJSON[domain.EmailNotesRequest](r, "/email-notes", h.emailNotes)
	httpkit.PostJSON[domain.TicketRequest](r, "/email-notes-collection", h.emailNotesCollection)
	httpkit.PostBind[domain.TicketRequest](r, "/email-notes-collection/export", h.exportCollection)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /c4c/health C4C c4cHealth
// @Summary Module liveness
// @Tags c4c
// @Produce json
// @Success 200 {object} domain.HealthResponse "ok"
// @Router /c4c/health [get]
func (h *handlers) health(_ *stdhttp.Request) (any, error) {
	return domain.HealthResponse{Status: "ok"}, nil
}

// swagger:route POST /c4c/service-request-texts C4C ticketTexts
// @Summary Ticket text collection
// @Tags c4c
// @Accept json
// @Produce json
// @Param payload body domain.TicketRequest true "Ticket"
// @Success 200 {object} domain.TicketTexts "ok"
// @Failure 404 {object} httpkit.Envelope "ticket not found"
// @Failure 502 {object} httpkit.Envelope "upstream error"
// @Router /c4c/service-request-texts [post]
func (h *handlers) ticketTexts(r *stdhttp.Request, in domain.TicketRequest) (any, error) {
	return h.svc.TicketTexts(r.Context(), in.Query())
}

// swagger:route POST /c4c/internal-memos C4C internalMemos
// @Summary Internal memo activities of a ticket
// @Tags c4c
// @Accept json
// @Produce json
// @Param payload body domain.TicketRequest true "Ticket"
// @Success 200 {object} domain.InternalMemos "ok"
// @Failure 404 {object} httpkit.Envelope "ticket not found"
// @Router /c4c/internal-memos [post]
func (h *handlers) internalMemos(r *stdhttp.Request, in domain.TicketRequest) (any, error) {
	return h.svc.InternalMemos(r.Context(), in.Query())
}

// swagger:route POST /c4c/email-notes C4C emailNotes
// @Summary Ticket references and optionally one e-mail with notes
// @Tags c4c
// @Accept json
// @Produce json
// @Param payload body domain.EmailNotesRequest true "Ticket and e-mail"
// @Success 200 {object} domain.EmailNotes "ok"
// @Router /c4c/email-notes [post]
func (h *handlers) emailNotes(r *stdhttp.Request, in domain.EmailNotesRequest) (any, error) {
	return h.svc.EmailNotes(r.Context(), in.Query())
}

// swagger:route POST /c4c/email-notes-collection C4C emailNotesCollection
// @Summary Every referenced e-mail with notes, flattened
// @Tags c4c
// @Accept json
// @Produce json
// @Param payload body domain.TicketRequest true "Ticket"
// @Success 200 {object} domain.EmailNotesCollection "ok"
// @Router /c4c/email-notes-collection [post]
func (h *handlers) emailNotesCollection(r *stdhttp.Request, in domain.TicketRequest) (any, error) {
	return h.svc.EmailNotesCollection(r.Context(), in.Query())
}

// swagger:route POST /c4c/email-notes-collection/export C4C exportEmailNotes
// @Summary Download the flattened notes as CSV or the whole collection as JSON
// @Tags c4c
// @Accept json
// @Produce text/csv,application/json
// @Param format query string false "csv or json" Enums(csv, json)
// @Param payload body domain.TicketRequest true "Ticket"
// @Success 200 {file} file "attachment"
// @Router /c4c/email-notes-collection/export [post]
func (h *handlers) exportCollection(r *stdhttp.Request, in domain.TicketRequest) httpkit.Response {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = export.FormatJSON
	}
	if format != export.FormatJSON && format != export.FormatCSV {
		return httpkit.Error(perr.WithField(perr.InvalidArgf(MsgBadFormat), "format"))
	}

	out, err := h.svc.EmailNotesCollection(r.Context(), in.Query())
	if err != nil {
		return httpkit.Error(err)
	}
	name := Filename(out.TicketID, format)
	if format == export.FormatCSV {
		return httpkit.Attachment(name, export.ContentTypeCSV, []byte(export.CSV(out.Notes)))
	}
	body, err := export.JSON(out)
	if err != nil {
		return httpkit.Error(perr.Wrap(err, perr.ErrorCodeJSON, "export encode failed"))
	}
	return httpkit.Attachment(name, export.ContentTypeJSON, body)
}

// Filename is the download name of a ticket export
func Filename(ticketID, format string) string {
	return "email-notes-collection-" + str.SafeFilename(ticketID) + "." + format
}
