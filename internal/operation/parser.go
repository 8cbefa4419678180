// Package operation parses short recipe commands ("halve", "x1.5",
// "serves 6", "metric") and applies them to recipes.
package operation

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/quantity"
	"github.com/hammamikhairi/recipekit/internal/recipe"
)

// Compile-time interface check.
var _ domain.OperationParser = (*KeywordParser)(nil)

// KeywordParser matches operation phrases using keywords and simple
// patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex *regexp.Regexp
	op    domain.OperationType
}

var (
	// "x1.5", "1.5x", "scale 1/2", "scale by 2", "times 3", "make 2x"
	factorPattern = regexp.MustCompile(`(?i)^(?:(?:scale|multiply|times|make)(?:\s+(?:by|to))?\s+)?(?:x\s*)?(-?\s*(?:[0-9]|[¼-¾⅐-⅞])[0-9./ ]*)\s*(?:x|times)?$`)
	// "serves 6", "6 servings", "for 6 people", "servings 6"
	servingsPattern = regexp.MustCompile(`(?i)^(?:(?:serves?|servings?|feeds?|for)\s+(\d+)(?:\s+(?:people|persons|servings|portions))?|(\d+)\s+(?:servings?|people|persons|portions))$`)
)

// NewKeywordParser creates a keyword-based operation parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(halve|half|half it|cut in half|/2)$`), domain.OperationHalve},
		{regexp.MustCompile(`(?i)^(double|double it|twice|x2|2x)$`), domain.OperationDouble},
		{regexp.MustCompile(`(?i)^(triple|triple it|thrice|x3|3x)$`), domain.OperationTriple},
		{regexp.MustCompile(`(?i)^((to |convert to )?(metric|si|grams))$`), domain.OperationMetric},
		{regexp.MustCompile(`(?i)^((to |convert to )?(imperial|us|customary|cups))$`), domain.OperationImperial},
		{regexp.MustCompile(`(?i)^(reset|original|undo|as written)$`), domain.OperationReset},
	}
	return p
}

// Parse converts a phrase into an operation. Unrecognized input yields
// OperationUnknown, not an error; a scale phrase whose number cannot be
// read is a *domain.ParseFailure.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Operation, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Operation{Type: domain.OperationUnknown}, nil
	}

	p.log.Debug("parsing operation: %q", trimmed)

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched operation: %s", rule.op)
			return &domain.Operation{Type: rule.op, Input: trimmed}, nil
		}
	}

	if m := servingsPattern.FindStringSubmatch(trimmed); m != nil {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, &domain.ParseFailure{Input: trimmed, Reason: err.Error()}
		}
		return &domain.Operation{Type: domain.OperationServings, Servings: n, Input: trimmed}, nil
	}

	if m := factorPattern.FindStringSubmatch(trimmed); m != nil {
		f, err := Factor(m[1])
		if err != nil {
			return nil, err
		}
		return &domain.Operation{Type: domain.OperationScale, Factor: f, Input: trimmed}, nil
	}

	if op, ok, err := parseCanonical(trimmed); ok {
		return op, err
	}

	p.log.Debug("no match, returning unknown operation")
	return &domain.Operation{Type: domain.OperationUnknown, Input: trimmed}, nil
}

// parseCanonical reads the "name=value" form, where name is what
// OperationType.String returns ("scale=3/2", "servings=4"). Only scale
// and servings take a value.
func parseCanonical(input string) (*domain.Operation, bool, error) {
	name, value, found := strings.Cut(input, "=")
	if !found {
		return nil, false, nil
	}
	typ := domain.OperationFromString(strings.ToLower(strings.TrimSpace(name)))
	value = strings.TrimSpace(value)
	op := &domain.Operation{Type: typ, Input: input}

	switch typ {
	case domain.OperationUnknown:
		return nil, false, nil
	case domain.OperationScale:
		f, err := Factor(value)
		if err != nil {
			return nil, true, err
		}
		op.Factor = f
	case domain.OperationServings:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, true, &domain.ParseFailure{Input: input, Reason: "servings must be a whole number"}
		}
		op.Servings = n
	default:
		if value != "" {
			return nil, true, &domain.ParseFailure{Input: input, Reason: typ.String() + " takes no value"}
		}
	}
	return op, true, nil
}

// Apply runs op against r and returns the resulting recipe. r itself is
// never modified.
func Apply(r *recipe.Recipe, op *domain.Operation) (*recipe.Recipe, error) {
	switch op.Type {
	case domain.OperationScale:
		return r.Scale(op.Factor)
	case domain.OperationHalve:
		return r.Halve(), nil
	case domain.OperationDouble:
		return r.Double(), nil
	case domain.OperationTriple:
		return r.Triple(), nil
	case domain.OperationServings:
		return r.ScaleToServings(op.Servings)
	case domain.OperationMetric:
		return r.ConvertToMetric(), nil
	case domain.OperationImperial:
		return r.ConvertToImperial(), nil
	case domain.OperationReset:
		return r.Reset(), nil
	}
	return nil, fmt.Errorf("%q: %w", op.Input, domain.ErrUnknownOperation)
}

// ApplyAll parses and applies each phrase in order.
func ApplyAll(ctx context.Context, p domain.OperationParser, r *recipe.Recipe, phrases []string) (*recipe.Recipe, error) {
	cur := r
	for _, phrase := range phrases {
		op, err := p.Parse(ctx, phrase)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", phrase, err)
		}
		if cur, err = Apply(cur, op); err != nil {
			return nil, fmt.Errorf("apply %q: %w", phrase, err)
		}
	}
	return cur, nil
}

// Factor reads a scale factor written as a number, fraction or mixed
// number. A leading minus is kept so that the recipe, not the parser,
// rejects the factor.
func Factor(text string) (*big.Rat, error) {
	s := strings.TrimSpace(text)
	neg := strings.HasPrefix(s, "-")
	q, err := quantity.Parse(strings.TrimPrefix(s, "-"))
	if err != nil {
		return nil, err
	}
	if q.IsRange() {
		return nil, &domain.ParseFailure{Input: text, Reason: "scale factor cannot be a range"}
	}
	f := q.Low()
	if neg {
		f.Neg(f)
	}
	return f, nil
}
