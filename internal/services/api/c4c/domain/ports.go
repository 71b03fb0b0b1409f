package domain

import (
	"context"

	"c4ctexts/internal/core/odata"
)

// UpstreamPort is the slice of the CRM client the service reads through
type UpstreamPort interface {
	Query(ctx context.Context, tenant, auth, collection string, q odata.Query) (odata.Collection, error)
	Navigate(ctx context.Context, tenant, auth, collection, key, nav string) (odata.Collection, error)
}

// ServicePort is the interface implemented by the c4c service
type ServicePort interface {
	TicketTexts(ctx context.Context, q TicketQuery) (TicketTexts, error)
	InternalMemos(ctx context.Context, q TicketQuery) (InternalMemos, error)
	EmailNotes(ctx context.Context, q EmailNotesQuery) (EmailNotes, error)
	EmailNotesCollection(ctx context.Context, q TicketQuery) (EmailNotesCollection, error)
}
