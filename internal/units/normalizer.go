package units

import (
	"strings"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

// Normalizer maps unit tokens to canonical units using a shared table.
type Normalizer struct {
	table *Table
}

// NewNormalizer creates a normalizer over t. A nil table means Default().
func NewNormalizer(t *Table) *Normalizer {
	if t == nil {
		t = Default()
	}
	return &Normalizer{table: t}
}

// Normalize never fails: unknown tokens come back verbatim (lower-cased)
// with family unknown, and an empty token is unitless.
func (n *Normalizer) Normalize(token string) domain.Unit {
	if u, ok := n.Lookup(token); ok {
		return u
	}
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return domain.UnitNone
	}
	return domain.Unit{Name: strings.ToLower(trimmed), Family: domain.FamilyUnknown}
}

// Lookup is Normalize restricted to recognized tokens.
func (n *Normalizer) Lookup(token string) (domain.Unit, bool) {
	d, ok := n.table.Lookup(token)
	if !ok {
		return domain.Unit{}, false
	}
	return d.Unit, true
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize resolves token against the default table.
func Normalize(token string) domain.Unit {
	return defaultNormalizer.Normalize(token)
}
