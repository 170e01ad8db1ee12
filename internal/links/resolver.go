package links

import "context"

// Target is the resolved identity of a linked record.
type Target struct {
	Kind     Kind
	ID       uint
	Slug     string // empty for id-addressed kinds
	Label    string // display name for slug-addressed kinds
	Preview  string // raw content used for label previews
	ParentID uint   // owning part request for part request updates
}

// Resolver looks up records by slug or id. A missing record is reported
// as (nil, nil); an error means the lookup itself failed.
type Resolver interface {
	FindBySlug(ctx context.Context, kind Kind, slug string) (*Target, error)
	FindByID(ctx context.Context, kind Kind, id uint) (*Target, error)
}

// Ref is the addressed identity of a record, used on both ends of a
// reference edge.
type Ref struct {
	Kind Kind
	ID   uint
}

// EdgeStore persists reference edges for a source record. Implementations
// are expected to be scoped to the caller's transaction.
type EdgeStore interface {
	ListReferences(ctx context.Context, source Ref) ([]Ref, error)
	AddReference(ctx context.Context, source, target Ref) error
	RemoveReference(ctx context.Context, source, target Ref) error
}

// Engine ties the registry to a resolver. It holds no other state and is
// safe for concurrent use.
type Engine struct {
	reg      *Registry
	resolver Resolver
}

func NewEngine(reg *Registry, resolver Resolver) *Engine {
	return &Engine{reg: reg, resolver: resolver}
}
