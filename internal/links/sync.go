package links

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

// References returns the deduplicated set of records the text currently
// links to. Only tokens that resolve to an existing record count; a
// reference to a deleted target has nothing to link back to.
func (e *Engine) References(ctx context.Context, text string) ([]Ref, error) {
	seen := mapset.NewThreadUnsafeSet[Ref]()
	var out []Ref
	for _, tok := range Parse(e.reg, text) {
		var (
			target *Target
			err    error
		)
		if tok.Storage {
			target, err = e.resolver.FindByID(ctx, tok.Kind, tok.ID)
		} else {
			target, err = e.resolver.FindBySlug(ctx, tok.Kind, tok.Slug)
		}
		if err != nil {
			return nil, err
		}
		if target == nil {
			continue
		}
		ref := Ref{Kind: target.Kind, ID: target.ID}
		if seen.Add(ref) {
			out = append(out, ref)
		}
	}
	return out, nil
}

// SyncReferences reconciles the persisted edge set for source against the
// references currently present in text: missing edges are added, stale
// edges removed, shared edges left untouched. The caller supplies an
// EdgeStore scoped to a single transaction so the add/remove pair applies
// atomically.
func (e *Engine) SyncReferences(ctx context.Context, edges EdgeStore, source Ref, text string) error {
	refs, err := e.References(ctx, text)
	if err != nil {
		return err
	}
	existing, err := edges.ListReferences(ctx, source)
	if err != nil {
		return err
	}

	desired := mapset.NewThreadUnsafeSet[Ref](refs...)
	persisted := mapset.NewThreadUnsafeSet[Ref](existing...)

	for _, ref := range desired.Difference(persisted).ToSlice() {
		if err := edges.AddReference(ctx, source, ref); err != nil {
			return err
		}
	}
	for _, ref := range persisted.Difference(desired).ToSlice() {
		if err := edges.RemoveReference(ctx, source, ref); err != nil {
			return err
		}
	}

	logrus.Debugf("synced references for %s:%d: %d desired, %d persisted", source.Kind, source.ID, desired.Cardinality(), persisted.Cardinality())
	return nil
}
