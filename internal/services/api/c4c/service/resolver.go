package service

import (
	"context"
	"strings"

	"c4ctexts/internal/adapters/c4c"
	"c4ctexts/internal/core/odata"
	perr "c4ctexts/internal/platform/errors"
)

// Error messages surfaced to callers verbatim
const (
	MsgMissingTicket  = "ticketId is required."
	MsgTicketNotFound = "Ticket not found or missing ObjectID."
)

// ResolveObjectID maps an external ticket id to the service request ObjectID
// Zero rows and a first row without ObjectID are both NotFound; nothing is cached
func (s *Svc) ResolveObjectID(ctx context.Context, tenant, ticketID, auth string) (string, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return "", perr.InvalidArgf(MsgMissingTicket)
	}
	rows, err := s.up.Query(ctx, tenant, auth, c4c.ServiceRequests, odata.Query{
		Filter: odata.Eq(c4c.FieldID, ticketID),
	})
	if err != nil {
		return "", err
	}
	if rows.Len() == 0 {
		return "", perr.NotFoundf(MsgTicketNotFound)
	}
	objectID := rows.Results[0].String(c4c.FieldObjectID)
	if strings.TrimSpace(objectID) == "" {
		return "", perr.NotFoundf(MsgTicketNotFound)
	}
	return objectID, nil
}
