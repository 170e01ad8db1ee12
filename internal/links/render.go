package links

import (
	"context"
	"fmt"
	"strings"
)

// RenderOptions configures one render pass over stored text.
type RenderOptions struct {
	// BaseURL is prepended to every generated URL. Empty means relative URLs.
	BaseURL string
	// PlainText strips all link syntax and emits bare labels.
	PlainText bool
}

const (
	brokenLinkText = "broken link"
	previewBudget  = 20
)

var labelSanitizer = strings.NewReplacer("[", "", "]", "", "(", "", ")", "", "\n", " ", "\r", " ")

// Render expands storage-form tokens into markdown links, or into bare
// labels in plain-text mode. It only reads; the same stored text can be
// rendered concurrently with different options.
func (e *Engine) Render(ctx context.Context, text string, opts RenderOptions) (string, error) {
	return rewriteTokens(e.reg, text, func(tok Token) (string, error) {
		if !tok.Storage {
			return tok.Raw, nil
		}
		target, err := e.resolver.FindByID(ctx, tok.Kind, tok.ID)
		if err != nil {
			return "", err
		}
		if target == nil {
			if opts.PlainText {
				return brokenLinkText, nil
			}
			return "*[" + brokenLinkText + "]*", nil
		}

		spec, _ := e.reg.Lookup(tok.Kind)
		label := labelFor(spec, target)
		if opts.PlainText {
			return label, nil
		}
		return fmt.Sprintf("[%s](%s%s)", label, opts.BaseURL, urlFor(spec, target)), nil
	})
}

// Description is a resolved label/URL pair for a record, used when
// presenting backlink sources.
type Description struct {
	Label string
	URL   string
}

// Describe resolves a single record reference to its display label and
// relative URL. A missing target yields (nil, nil).
func (e *Engine) Describe(ctx context.Context, ref Ref) (*Description, error) {
	spec, ok := e.reg.Lookup(ref.Kind)
	if !ok {
		return nil, nil
	}
	target, err := e.resolver.FindByID(ctx, ref.Kind, ref.ID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, nil
	}
	return &Description{Label: labelFor(spec, target), URL: urlFor(spec, target)}, nil
}

func labelFor(spec TypeSpec, t *Target) string {
	if spec.Addressing == AddressSlug {
		return labelSanitizer.Replace(t.Label)
	}
	if spec.Kind == KindPartRequestUpdate {
		return fmt.Sprintf("%s #%d on #%d", spec.DisplayName, t.ID, t.ParentID)
	}
	label := fmt.Sprintf("%s #%d", spec.DisplayName, t.ID)
	if spec.Preview {
		if preview := truncatePreview(t.Preview); preview != "" {
			label += ": " + preview
		}
	}
	return label
}

func urlFor(spec TypeSpec, t *Target) string {
	if spec.Addressing == AddressSlug {
		return fmt.Sprintf("/%s/%s/", spec.Collection, t.Slug)
	}
	if spec.Kind == KindPartRequestUpdate {
		return fmt.Sprintf("/%s/%d/#update-%d", spec.Collection, t.ParentID, t.ID)
	}
	return fmt.Sprintf("/%s/%d/", spec.Collection, t.ID)
}

// truncatePreview trims content for use inside a label. Bracket characters
// are stripped so a preview can never reopen link syntax.
func truncatePreview(s string) string {
	s = strings.TrimSpace(labelSanitizer.Replace(s))
	runes := []rune(s)
	if len(runes) <= previewBudget {
		return s
	}
	return strings.TrimSpace(string(runes[:previewBudget])) + "…"
}
