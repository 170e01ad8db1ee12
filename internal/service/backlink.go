package service

import (
	"context"

	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/store"
)

// NewBacklinkService creates a new BacklinkService.
func NewBacklinkService(st store.Store, engine *links.Engine, reg *links.Registry) *BacklinkService {
	return &BacklinkService{
		store:  st,
		engine: engine,
		reg:    reg,
	}
}

// BacklinkService answers "what links here" queries from the edge table.
type BacklinkService struct {
	store  store.Store
	engine *links.Engine
	reg    *links.Registry
}

// Backlink is one referencing record, resolved to a display label and URL.
type Backlink struct {
	SourceKind string `json:"source_kind"`
	SourceID   uint   `json:"source_id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
}

// ListBacklinks returns the records whose text mentions the given target.
// Sources that no longer resolve are skipped; the nightly audit removes
// their stale edges.
func (b *BacklinkService) ListBacklinks(ctx context.Context, kind links.Kind, id uint) ([]Backlink, error) {
	if _, ok := b.reg.Lookup(kind); !ok {
		return nil, ErrUnknownKind
	}

	rows, err := b.store.ListBacklinks(ctx, string(kind), id)
	if err != nil {
		return nil, err
	}

	backlinks := make([]Backlink, 0, len(rows))
	for _, row := range rows {
		source := links.Ref{Kind: links.Kind(row.SourceType), ID: row.SourceID}
		desc, err := b.engine.Describe(ctx, source)
		if err != nil {
			return nil, err
		}
		if desc == nil {
			continue
		}
		backlinks = append(backlinks, Backlink{
			SourceKind: row.SourceType,
			SourceID:   row.SourceID,
			Label:      desc.Label,
			URL:        desc.URL,
		})
	}
	return backlinks, nil
}
