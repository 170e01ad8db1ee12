package links

// Kind is the type tag inside a bracket token, e.g. "machine" in [[machine:blackout]].
type Kind string

const (
	KindMachine           Kind = "machine"
	KindModel             Kind = "model"
	KindWiki              Kind = "wiki"
	KindProblem           Kind = "problem"
	KindLog               Kind = "log"
	KindPartRequest       Kind = "partrequest"
	KindPartRequestUpdate Kind = "partrequestupdate"
)

// Addressing tells how a kind is referenced while authoring.
type Addressing int

const (
	// AddressSlug kinds are authored as [[kind:slug]] and stored as [[kind:id:N]].
	AddressSlug Addressing = iota
	// AddressID kinds are authored and stored as [[kind:N]].
	AddressID
)

// TypeSpec describes how one record kind participates in link syntax.
// The registry of specs is the single source of truth for the converter,
// the renderer and the synchronizer.
type TypeSpec struct {
	Kind        Kind
	Addressing  Addressing
	Collection  string // URL path segment, e.g. "machines"
	DisplayName string // label prefix for id-addressed kinds, e.g. "Problem"
	Preview     bool   // append a truncated content preview to the label
}

type Registry struct {
	specs map[Kind]TypeSpec
}

func NewRegistry(specs ...TypeSpec) *Registry {
	r := &Registry{specs: make(map[Kind]TypeSpec)}
	for _, spec := range specs {
		r.specs[spec.Kind] = spec
	}
	return r
}

func (r *Registry) Lookup(kind Kind) (TypeSpec, bool) {
	spec, ok := r.specs[kind]
	return spec, ok
}

func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.specs))
	for kind := range r.specs {
		kinds = append(kinds, kind)
	}
	return kinds
}

// DefaultRegistry returns the record kinds linkable in flipfix content.
func DefaultRegistry() *Registry {
	return NewRegistry(
		TypeSpec{Kind: KindMachine, Addressing: AddressSlug, Collection: "machines", DisplayName: "Machine"},
		TypeSpec{Kind: KindModel, Addressing: AddressSlug, Collection: "models", DisplayName: "Model"},
		TypeSpec{Kind: KindWiki, Addressing: AddressSlug, Collection: "wiki", DisplayName: "Wiki Page"},
		TypeSpec{Kind: KindProblem, Addressing: AddressID, Collection: "problems", DisplayName: "Problem", Preview: true},
		TypeSpec{Kind: KindLog, Addressing: AddressID, Collection: "logs", DisplayName: "Log", Preview: true},
		TypeSpec{Kind: KindPartRequest, Addressing: AddressID, Collection: "parts", DisplayName: "Part Request", Preview: true},
		TypeSpec{Kind: KindPartRequestUpdate, Addressing: AddressID, Collection: "parts", DisplayName: "Update"},
	)
}
