package store

import (
	"context"

	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/model"
)

// referenceEdges adapts a Store to the link engine's EdgeStore contract.
// Pass a transaction-scoped Store so the synchronizer's add/remove pair
// applies atomically.
type referenceEdges struct {
	store Store
}

var _ links.EdgeStore = (*referenceEdges)(nil)

func NewReferenceEdges(s Store) links.EdgeStore {
	return &referenceEdges{store: s}
}

func (e *referenceEdges) ListReferences(ctx context.Context, source links.Ref) ([]links.Ref, error) {
	rows, err := e.store.ListReferences(ctx, string(source.Kind), source.ID)
	if err != nil {
		return nil, err
	}
	refs := make([]links.Ref, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, links.Ref{Kind: links.Kind(row.TargetType), ID: row.TargetID})
	}
	return refs, nil
}

func (e *referenceEdges) AddReference(ctx context.Context, source, target links.Ref) error {
	return e.store.AddReference(ctx, &model.RecordReference{
		SourceType: string(source.Kind),
		SourceID:   source.ID,
		TargetType: string(target.Kind),
		TargetID:   target.ID,
	})
}

func (e *referenceEdges) RemoveReference(ctx context.Context, source, target links.Ref) error {
	return e.store.RemoveReference(ctx, string(source.Kind), source.ID, string(target.Kind), target.ID)
}
