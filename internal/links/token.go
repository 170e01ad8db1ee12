package links

import (
	"strconv"
	"strings"
)

// Token is one recognized bracket token found in text.
type Token struct {
	Kind    Kind
	Slug    string // set for authoring-form slug references
	ID      uint   // set for storage-form and id-addressed references
	Storage bool   // payload carries an id rather than a slug
	Raw     string
	Start   int // byte offset of Raw in the scanned text
	End     int
}

// Parse returns the recognized tokens in text, in order of appearance.
// Unknown kinds and malformed payloads are not tokens and are skipped.
func Parse(reg *Registry, text string) []Token {
	var out []Token
	pos := 0
	for {
		start := strings.Index(text[pos:], "[[")
		if start == -1 {
			break
		}
		start += pos
		rest := text[start+2:]
		close := strings.Index(rest, "]]")
		if close == -1 {
			break
		}
		inner := rest[:close]

		// A nested opener restarts the scan from the inner bracket so that
		// "[[junk [[machine:x]]" still finds the machine token.
		if k := strings.Index(inner, "[["); k >= 0 {
			pos = start + 2 + k
			continue
		}
		end := start + 2 + close + 2

		if tok, ok := parseInner(reg, inner); ok {
			tok.Raw = text[start:end]
			tok.Start = start
			tok.End = end
			out = append(out, tok)
		}
		pos = end
	}
	return out
}

func parseInner(reg *Registry, inner string) (Token, bool) {
	if strings.ContainsAny(inner, "\n]") {
		return Token{}, false
	}
	parts := strings.Split(inner, ":")
	if len(parts) < 2 {
		return Token{}, false
	}
	spec, ok := reg.Lookup(Kind(parts[0]))
	if !ok {
		return Token{}, false
	}

	switch spec.Addressing {
	case AddressSlug:
		if len(parts) == 2 {
			slug := parts[1]
			if slug == "" || slug == "id" {
				return Token{}, false
			}
			return Token{Kind: spec.Kind, Slug: slug}, true
		}
		if len(parts) == 3 && parts[1] == "id" {
			id, err := parseID(parts[2])
			if err != nil {
				return Token{}, false
			}
			return Token{Kind: spec.Kind, ID: id, Storage: true}, true
		}
	case AddressID:
		if len(parts) == 2 {
			id, err := parseID(parts[1])
			if err != nil {
				return Token{}, false
			}
			return Token{Kind: spec.Kind, ID: id, Storage: true}, true
		}
	}
	return Token{}, false
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}

// rewriteTokens rebuilds text, replacing every recognized token with the
// result of fn. fn returning an error aborts the whole rewrite.
func rewriteTokens(reg *Registry, text string, fn func(Token) (string, error)) (string, error) {
	tokens := Parse(reg, text)
	if len(tokens) == 0 {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for _, tok := range tokens {
		replacement, err := fn(tok)
		if err != nil {
			return "", err
		}
		b.WriteString(text[last:tok.Start])
		b.WriteString(replacement)
		last = tok.End
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
