package domain

import "context"

// Converter converts a quantity expressed in a unit into the given
// measurement system. Implementations must return the input unchanged
// when no conversion applies.
type Converter interface {
	Convert(q Quantity, u Unit, target System) (Quantity, Unit)
}

// LineParser turns one raw ingredient line into an Ingredient. It never
// fails: malformed text degrades to a best-effort Ingredient.
type LineParser interface {
	ParseLine(raw string) Ingredient
}

// SiteAdapter turns already-fetched page markup into a normalized raw
// recipe document. Implementations can be schema.org based, per-site,
// or LLM-powered; none of them fetch anything themselves.
type SiteAdapter interface {
	Extract(ctx context.Context, markup []byte, sourceURL string) (*RawDocument, error)
}

// OperationParser converts a free-text operation phrase ("halve",
// "x1.5", "metric") into a structured Operation.
type OperationParser interface {
	Parse(ctx context.Context, input string) (*Operation, error)
}
