package service

import (
	"context"
	"strings"

	"c4ctexts/internal/adapters/c4c"
	"c4ctexts/internal/core/notes"
	"c4ctexts/internal/core/odata"
	"c4ctexts/internal/platform/logger"
	"c4ctexts/internal/services/api/c4c/domain"
)

// TicketTexts returns the ticket's ServiceRequestTextCollection
func (s *Svc) TicketTexts(ctx context.Context, q domain.TicketQuery) (domain.TicketTexts, error) {
	ctx, c, err := s.prepare(ctx, q)
	if err != nil {
		return domain.TicketTexts{}, err
	}
	objectID, err := s.ResolveObjectID(ctx, c.tenant, c.ticketID, c.auth)
	if err != nil {
		return domain.TicketTexts{}, fail(ctx, "ticket_texts", err)
	}
	data, err := s.up.Navigate(ctx, c.tenant, c.auth, c4c.ServiceRequests, objectID, c4c.ServiceRequestText)
	if err != nil {
		return domain.TicketTexts{}, fail(ctx, "ticket_texts", err)
	}
	logger.C(ctx).Info().Str("object_id", objectID).Int("texts", data.Len()).Msg("ticket texts resolved")
	return domain.TicketTexts{ObjectID: objectID, Data: data}, nil
}

// InternalMemos follows the ticket's activity references to the internal memo activities
func (s *Svc) InternalMemos(ctx context.Context, q domain.TicketQuery) (domain.InternalMemos, error) {
	ctx, c, err := s.prepare(ctx, q)
	if err != nil {
		return domain.InternalMemos{}, err
	}
	objectID, err := s.ResolveObjectID(ctx, c.tenant, c.ticketID, c.auth)
	if err != nil {
		return domain.InternalMemos{}, fail(ctx, "internal_memos", err)
	}
	refs, err := s.typedReferences(ctx, c, objectID)
	if err != nil {
		return domain.InternalMemos{}, fail(ctx, "internal_memos", err)
	}
	ids := s.referenceIDs(refs)
	acts, err := expand(ctx, ids, func(ctx context.Context, id string) (odata.Collection, error) {
		return s.activity(ctx, c, id)
	})
	if err != nil {
		return domain.InternalMemos{}, fail(ctx, "internal_memos", err)
	}

	gs := make([]notes.Group, len(ids))
	for i, id := range ids {
		gs[i] = notes.Group{ID: id, Data: acts[i], NotesKey: notes.KeyActivityText}
	}
	out := domain.InternalMemos{
		ObjectID:   objectID,
		References: refs,
		Activities: acts,
		Notes:      notes.Normalize(gs),
	}
	logger.C(ctx).Info().
		Str("object_id", objectID).
		Int("references", refs.Len()).
		Int("activities", len(acts)).
		Int("notes", len(out.Notes)).
		Msg("internal memos resolved")
	return out, nil
}

// EmailNotes lists every reference of the ticket and, when EmailActivityID is set,
// fetches that e-mail with its notes
func (s *Svc) EmailNotes(ctx context.Context, q domain.EmailNotesQuery) (domain.EmailNotes, error) {
	ctx, c, err := s.prepare(ctx, q.TicketQuery)
	if err != nil {
		return domain.EmailNotes{}, err
	}
	objectID, err := s.ResolveObjectID(ctx, c.tenant, c.ticketID, c.auth)
	if err != nil {
		return domain.EmailNotes{}, fail(ctx, "email_notes", err)
	}
	refs, err := s.allReferences(ctx, c, objectID)
	if err != nil {
		return domain.EmailNotes{}, fail(ctx, "email_notes", err)
	}
	out := domain.EmailNotes{ObjectID: objectID, References: refs}

	emailID := strings.TrimSpace(q.EmailActivityID)
	if emailID == "" {
		logger.C(ctx).Info().Str("object_id", objectID).Int("references", refs.Len()).Msg("email references resolved")
		return out, nil
	}
	mail, err := s.email(ctx, c, emailID)
	if err != nil {
		return domain.EmailNotes{}, fail(ctx, "email_notes", err)
	}
	out.EmailNotes = &mail
	logger.C(ctx).Info().
		Str("object_id", objectID).
		Str("email_activity_id", emailID).
		Int("references", refs.Len()).
		Msg("email notes resolved")
	return out, nil
}

// EmailNotesCollection expands every distinct reference of the ticket as an e-mail
// and flattens all their notes
func (s *Svc) EmailNotesCollection(ctx context.Context, q domain.TicketQuery) (domain.EmailNotesCollection, error) {
	ctx, c, err := s.prepare(ctx, q)
	if err != nil {
		return domain.EmailNotesCollection{}, err
	}
	objectID, err := s.ResolveObjectID(ctx, c.tenant, c.ticketID, c.auth)
	if err != nil {
		return domain.EmailNotesCollection{}, fail(ctx, "email_notes_collection", err)
	}
	refs, err := s.allReferences(ctx, c, objectID)
	if err != nil {
		return domain.EmailNotesCollection{}, fail(ctx, "email_notes_collection", err)
	}
	ids := s.referenceIDs(refs)
	mails, err := expand(ctx, ids, func(ctx context.Context, id string) (odata.Collection, error) {
		return s.email(ctx, c, id)
	})
	if err != nil {
		return domain.EmailNotesCollection{}, fail(ctx, "email_notes_collection", err)
	}

	entries := groups(ids, mails)
	gs := make([]notes.Group, len(entries))
	for i, e := range entries {
		gs[i] = notes.Group{ID: e.ID, Data: e.Data, NotesKey: notes.KeyEMailNotes}
	}
	out := domain.EmailNotesCollection{
		TicketID:   c.ticketID,
		ObjectID:   objectID,
		References: refs,
		EmailNotes: entries,
		Notes:      notes.Normalize(gs),
	}
	logger.C(ctx).Info().
		Str("object_id", objectID).
		Int("references", refs.Len()).
		Int("emails", len(entries)).
		Int("notes", len(out.Notes)).
		Msg("email notes collection resolved")
	return out, nil
}
