// Package canonical provides the dictionary-based ingredient canonicalizer.
// It maps free-text ingredient names onto the canonical keys the product
// catalog is organized by. The heuristic lives behind the
// outbound.Canonicalizer port so a real catalog search can replace it
// without touching the aggregator or matcher.
package canonical

import (
	"strings"

	"github.com/forkful/v2/internal/ports/outbound"
)

// dictionary lists the canonical keys in match-priority order. Earlier
// entries win when several match; longer, more specific keys come first.
var dictionary = []string{
	"mozzarella",
	"parmesan",
	"cheddar",
	"butter",
	"cream",
	"yogurt",
	"milk",
	"egg",
	"chicken",
	"beef",
	"pork",
	"salmon",
	"shrimp",
	"flour",
	"sugar",
	"rice",
	"pasta",
	"spaghetti",
	"bread",
	"tomato",
	"onion",
	"garlic",
	"potato",
	"carrot",
	"pepper",
	"basil",
	"parsley",
	"cilantro",
	"lemon",
	"lime",
	"apple",
	"banana",
	"avocado",
	"olive oil",
	"vinegar",
	"salt",
	"honey",
	"chocolate",
	"coffee",
	"wine",
}

// Canonicalizer resolves names by substring match against the dictionary,
// then token by token.
type Canonicalizer struct {
	keys []string
}

// NewCanonicalizer creates the dictionary canonicalizer.
func NewCanonicalizer() outbound.Canonicalizer {
	return &Canonicalizer{keys: dictionary}
}

// Canonicalize returns the canonical key for a free-text ingredient name.
// The whole lowercased name is tested against every dictionary key first;
// failing that, each whitespace/punctuation token is tested, first hit
// wins. A miss returns ok=false and callers fall back to category buckets.
func (c *Canonicalizer) Canonicalize(name string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return "", false
	}

	for _, key := range c.keys {
		if strings.Contains(normalized, key) {
			return key, true
		}
	}

	for _, token := range tokenize(normalized) {
		for _, key := range c.keys {
			if strings.Contains(key, token) {
				return key, true
			}
		}
	}

	return "", false
}

// tokenize splits on whitespace and punctuation, dropping short fragments
// that would match almost anything.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', ',', ';', '.', '(', ')', '-', '/':
			return true
		}
		return false
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
