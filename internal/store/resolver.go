package store

import (
	"context"
	"errors"

	"github.com/deanmoses/flipfix/internal/links"
	"gorm.io/gorm"
)

// LinkResolver adapts a Store to the link engine's Resolver contract.
// Missing records map to (nil, nil) so the engine can treat broken
// references as a normal state.
type LinkResolver struct {
	store Store
}

var _ links.Resolver = (*LinkResolver)(nil)

func NewLinkResolver(s Store) *LinkResolver {
	return &LinkResolver{store: s}
}

func (r *LinkResolver) FindBySlug(ctx context.Context, kind links.Kind, slug string) (*links.Target, error) {
	switch kind {
	case links.KindMachine:
		m, err := r.store.GetMachineBySlug(ctx, slug)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: m.ID, Slug: m.Slug, Label: m.Name}, nil
	case links.KindModel:
		mm, err := r.store.GetMachineModelBySlug(ctx, slug)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: mm.ID, Slug: mm.Slug, Label: mm.Name}, nil
	case links.KindWiki:
		page, err := r.store.GetWikiPageBySlug(ctx, slug)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: page.ID, Slug: page.Slug, Label: page.Title}, nil
	}
	return nil, nil
}

func (r *LinkResolver) FindByID(ctx context.Context, kind links.Kind, id uint) (*links.Target, error) {
	switch kind {
	case links.KindMachine:
		m, err := r.store.GetMachine(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: m.ID, Slug: m.Slug, Label: m.Name}, nil
	case links.KindModel:
		mm, err := r.store.GetMachineModel(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: mm.ID, Slug: mm.Slug, Label: mm.Name}, nil
	case links.KindWiki:
		page, err := r.store.GetWikiPage(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: page.ID, Slug: page.Slug, Label: page.Title}, nil
	case links.KindProblem:
		p, err := r.store.GetProblem(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: p.ID, Preview: p.Description}, nil
	case links.KindLog:
		entry, err := r.store.GetLogEntry(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: entry.ID, Preview: entry.Text}, nil
	case links.KindPartRequest:
		req, err := r.store.GetPartRequest(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: req.ID, Preview: req.Text}, nil
	case links.KindPartRequestUpdate:
		update, err := r.store.GetPartRequestUpdate(ctx, id)
		if err != nil {
			return nil, IgnoreNotFound(err)
		}
		return &links.Target{Kind: kind, ID: update.ID, ParentID: update.PartRequestID, Preview: update.Text}, nil
	}
	return nil, nil
}

// IgnoreNotFound drops gorm's record-not-found error, passing everything
// else through.
func IgnoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
