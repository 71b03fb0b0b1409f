package service

import (
	"context"

	"c4ctexts/internal/adapters/c4c"
	"c4ctexts/internal/core/odata"
	"c4ctexts/internal/services/api/c4c/domain"

	"golang.org/x/sync/errgroup"
)

// typedReferences lists the activity references (TypeCode 39) of a ticket
func (s *Svc) typedReferences(ctx context.Context, c call, objectID string) (odata.Collection, error) {
	return s.up.Query(ctx, c.tenant, c.auth, c4c.References, odata.Query{
		Filter: odata.And(
			odata.Eq(c4c.FieldParentObjectID, objectID),
			odata.Eq(c4c.FieldTypeCode, c4c.TypeCodeActivity),
		),
	})
}

// allReferences lists every reference of a ticket regardless of type
func (s *Svc) allReferences(ctx context.Context, c call, objectID string) (odata.Collection, error) {
	return s.up.Query(ctx, c.tenant, c.auth, c4c.References, odata.Query{
		Filter: odata.Eq(c4c.FieldParentObjectID, objectID),
	})
}

// activity reads one internal memo activity with its text sub-collection
func (s *Svc) activity(ctx context.Context, c call, id string) (odata.Collection, error) {
	return s.up.Query(ctx, c.tenant, c.auth, c4c.Activities, odata.Query{
		Filter: odata.And(
			odata.Eq(c4c.FieldID, id),
			odata.Eq(c4c.FieldTypeCode, c4c.TypeCodeActivity),
			odata.Eq(c4c.FieldProcessingTypeCode, c4c.ProcessingTypeInternal),
		),
		Expand: c4c.ExpandActivityText,
	})
}

// email reads one e-mail with its notes sub-collection
func (s *Svc) email(ctx context.Context, c call, id string) (odata.Collection, error) {
	return s.up.Query(ctx, c.tenant, c.auth, c4c.EMails, odata.Query{
		Filter: odata.Eq(c4c.FieldID, id),
		Expand: c4c.ExpandEMailNotes,
	})
}

// referenceIDs returns the distinct reference ids in order, bounded by MaxReferences
func (s *Svc) referenceIDs(refs odata.Collection) []string {
	ids := refs.IDs(c4c.FieldID)
	if n := s.set.MaxReferences; n > 0 && len(ids) > n {
		ids = ids[:n]
	}
	return ids
}

// expand fetches every id concurrently; the first failure cancels the rest and is returned alone
// each result lands in the slot of its id so order follows ids
func expand(ctx context.Context, ids []string, fetch func(context.Context, string) (odata.Collection, error)) ([]odata.Collection, error) {
	out := make([]odata.Collection, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			res, err := fetch(gctx, id)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// groups pairs fetched collections with their ids for the normalizer
func groups(ids []string, data []odata.Collection) []domain.EmailNotesEntry {
	out := make([]domain.EmailNotesEntry, len(ids))
	for i, id := range ids {
		out[i] = domain.EmailNotesEntry{ID: id, Data: data[i]}
	}
	return out
}
