package links

import (
	"context"
	"fmt"
)

// fakeResolver serves targets from memory so the engine can be tested
// without a database.
type fakeResolver struct {
	bySlug map[string]*Target
	byID   map[string]*Target
}

func newFakeResolver(targets ...*Target) *fakeResolver {
	r := &fakeResolver{
		bySlug: make(map[string]*Target),
		byID:   make(map[string]*Target),
	}
	for _, t := range targets {
		r.byID[fmt.Sprintf("%s:%d", t.Kind, t.ID)] = t
		if t.Slug != "" {
			r.bySlug[fmt.Sprintf("%s:%s", t.Kind, t.Slug)] = t
		}
	}
	return r
}

func (r *fakeResolver) FindBySlug(ctx context.Context, kind Kind, slug string) (*Target, error) {
	return r.bySlug[fmt.Sprintf("%s:%s", kind, slug)], nil
}

func (r *fakeResolver) FindByID(ctx context.Context, kind Kind, id uint) (*Target, error) {
	return r.byID[fmt.Sprintf("%s:%d", kind, id)], nil
}

type fakeEdges struct {
	edges   map[Ref]map[Ref]bool
	added   []Ref
	removed []Ref
}

func newFakeEdges() *fakeEdges {
	return &fakeEdges{edges: make(map[Ref]map[Ref]bool)}
}

func (e *fakeEdges) ListReferences(ctx context.Context, source Ref) ([]Ref, error) {
	var out []Ref
	for target := range e.edges[source] {
		out = append(out, target)
	}
	return out, nil
}

func (e *fakeEdges) AddReference(ctx context.Context, source, target Ref) error {
	if e.edges[source] == nil {
		e.edges[source] = make(map[Ref]bool)
	}
	e.edges[source][target] = true
	e.added = append(e.added, target)
	return nil
}

func (e *fakeEdges) RemoveReference(ctx context.Context, source, target Ref) error {
	delete(e.edges[source], target)
	e.removed = append(e.removed, target)
	return nil
}

func testEngine(targets ...*Target) *Engine {
	return NewEngine(DefaultRegistry(), newFakeResolver(targets...))
}
