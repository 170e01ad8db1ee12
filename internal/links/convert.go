package links

import (
	"context"
	"fmt"
)

// NotFoundError reports an authoring reference whose slug does not resolve.
// It blocks the save that produced it.
type NotFoundError struct {
	Kind    Kind
	Slug    string
	Display string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Display, e.Slug)
}

// ToStorage rewrites authoring-form slug references to their stable
// storage form [[kind:id:N]]. An unresolvable slug aborts the rewrite
// with a *NotFoundError. Storage-form tokens pass through unchanged,
// so the operation is idempotent.
func (e *Engine) ToStorage(ctx context.Context, text string) (string, error) {
	return rewriteTokens(e.reg, text, func(tok Token) (string, error) {
		if tok.Storage {
			return tok.Raw, nil
		}
		target, err := e.resolver.FindBySlug(ctx, tok.Kind, tok.Slug)
		if err != nil {
			return "", err
		}
		if target == nil {
			spec, _ := e.reg.Lookup(tok.Kind)
			return "", &NotFoundError{Kind: tok.Kind, Slug: tok.Slug, Display: spec.DisplayName}
		}
		return fmt.Sprintf("[[%s:id:%d]]", tok.Kind, target.ID), nil
	})
}

// ToAuthoring rewrites storage-form tokens of slug-addressed kinds back
// to [[kind:slug]] for editing. Tokens whose target no longer exists are
// preserved verbatim rather than stripped.
func (e *Engine) ToAuthoring(ctx context.Context, text string) (string, error) {
	return rewriteTokens(e.reg, text, func(tok Token) (string, error) {
		spec, _ := e.reg.Lookup(tok.Kind)
		if !tok.Storage || spec.Addressing != AddressSlug {
			return tok.Raw, nil
		}
		target, err := e.resolver.FindByID(ctx, tok.Kind, tok.ID)
		if err != nil {
			return "", err
		}
		if target == nil {
			return tok.Raw, nil
		}
		return fmt.Sprintf("[[%s:%s]]", tok.Kind, target.Slug), nil
	})
}
