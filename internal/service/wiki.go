package service

import (
	"context"

	"github.com/deanmoses/flipfix/internal/cache"
	"github.com/deanmoses/flipfix/internal/compress"
	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/model"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/sirupsen/logrus"
)

// NewWikiService creates a new WikiService.
func NewWikiService(st store.Store, engine *links.Engine, c *cache.Cache, comp compress.Compress, pub events.Publisher) *WikiService {
	return &WikiService{
		store:    st,
		engine:   engine,
		cache:    c,
		compress: comp,
		events:   pub,
	}
}

// WikiService owns the wiki page save pipeline: authored text is
// converted to storage form before persisting, and the reference edges
// are re-synced once the save commits.
type WikiService struct {
	store    store.Store
	engine   *links.Engine
	cache    *cache.Cache
	compress compress.Compress
	events   events.Publisher
}

// SavePage creates or updates the page at slug. Authored text containing
// an unresolvable slug reference fails with *links.NotFoundError before
// anything is written.
func (w *WikiService) SavePage(ctx context.Context, slug, title, authored string) (*model.WikiPage, error) {
	if slug == "" {
		return nil, ErrMissingSlug
	}

	storageText, err := w.engine.ToStorage(ctx, authored)
	if err != nil {
		return nil, err
	}

	var page *model.WikiPage
	err = w.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.GetWikiPageBySlug(ctx, slug)
		if err == nil {
			existing.Title = title
			existing.Content = storageText
			existing.Version++
			page = existing
			if err := tx.UpdateWikiPage(ctx, existing); err != nil {
				return err
			}
		} else {
			if ignored := store.IgnoreNotFound(err); ignored != nil {
				return ignored
			}
			page = &model.WikiPage{Slug: slug, Title: title, Content: storageText, Version: 1}
			if err := tx.CreateWikiPage(ctx, page); err != nil {
				return err
			}
		}

		snapshot, err := w.compress.Encode([]byte(storageText))
		if err != nil {
			return err
		}
		return tx.CreateWikiRevision(ctx, &model.WikiRevision{
			PageID:      page.ID,
			Version:     page.Version,
			Title:       title,
			Content:     snapshot,
			Compression: compress.Name(w.compress),
		})
	})
	if err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindWiki, ID: page.ID}
	if err := syncReferences(ctx, w.store, w.engine, source, storageText); err != nil {
		return nil, err
	}

	w.cache.InvalidatePage(ctx, slug)
	publishChange(ctx, w.events, source, "saved")

	return page, nil
}

// GetPage retrieves a page with its stored (storage-form) content.
func (w *WikiService) GetPage(ctx context.Context, slug string) (*model.WikiPage, error) {
	return w.store.GetWikiPageBySlug(ctx, slug)
}

// EditPage returns the page content in authoring form for an edit box.
func (w *WikiService) EditPage(ctx context.Context, slug string) (*model.WikiPage, string, error) {
	page, err := w.store.GetWikiPageBySlug(ctx, slug)
	if err != nil {
		return nil, "", err
	}
	authored, err := w.engine.ToAuthoring(ctx, page.Content)
	if err != nil {
		return nil, "", err
	}
	return page, authored, nil
}

// RenderPage expands the stored page content for display. Rendered output
// is cached per page and mode until the next save.
func (w *WikiService) RenderPage(ctx context.Context, slug string, opts links.RenderOptions) (string, error) {
	mode := "markdown"
	if opts.PlainText {
		mode = "plain"
	}
	if rendered, err := w.cache.GetRenderedPage(ctx, slug, mode); err == nil {
		return rendered, nil
	}

	page, err := w.store.GetWikiPageBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	rendered, err := w.engine.Render(ctx, page.Content, opts)
	if err != nil {
		return "", err
	}

	if err := w.cache.SetRenderedPage(ctx, slug, mode, rendered); err != nil {
		logrus.Errorf("error caching rendered page %s: %v", slug, err)
	}
	return rendered, nil
}

// RevisionContent decodes one stored snapshot of a page.
func (w *WikiService) RevisionContent(ctx context.Context, pageID uint, version int64) (string, error) {
	rev, err := w.store.GetWikiRevision(ctx, pageID, version)
	if err != nil {
		return "", err
	}
	data, err := compress.Named(rev.Compression).Decode(rev.Content)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DeletePage removes the page and its outgoing reference edges.
func (w *WikiService) DeletePage(ctx context.Context, slug string) error {
	page, err := w.store.GetWikiPageBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := w.store.DeleteWikiPage(ctx, page.ID); err != nil {
		return err
	}

	source := links.Ref{Kind: links.KindWiki, ID: page.ID}
	if err := syncReferences(ctx, w.store, w.engine, source, ""); err != nil {
		return err
	}

	w.cache.InvalidatePage(ctx, slug)
	publishChange(ctx, w.events, source, "deleted")
	return nil
}
