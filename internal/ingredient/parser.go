// Package ingredient turns free-text ingredient lines into structured
// ingredients. Parsing never fails: a line that cannot be decomposed is
// kept whole as the ingredient name.
package ingredient

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/quantity"
	"github.com/hammamikhairi/recipekit/internal/units"
)

// Compile-time interface check.
var _ domain.LineParser = (*Parser)(nil)

// Parser decomposes ingredient lines into quantity, unit, name and note.
type Parser struct {
	units *units.Normalizer
	log   *logger.Logger
}

// NewParser creates a line parser. A nil normalizer uses the default
// unit table.
func NewParser(n *units.Normalizer, log *logger.Logger) *Parser {
	if n == nil {
		n = units.NewNormalizer(nil)
	}
	return &Parser{units: n, log: log}
}

var (
	// "a pinch of salt", "an envelope of yeast", "pinch of salt"
	articleUnitPattern = regexp.MustCompile(`(?i)^(?:(a|an)\s+)?([a-z]+)\s+of\s+(.+)$`)

	leadingFiller = regexp.MustCompile(`(?i)^(?:(?:of|a|an|the)\s+)+`)

	// Trailing phrases that qualify the whole line without a comma.
	trailingPhrase = regexp.MustCompile(`(?i)\s+(to taste|for garnish(?:ing)?|for serving|to serve|\(?optional\)?)$`)

	adverbs = `(?:very\s+|finely\s+|thinly\s+|roughly\s+|coarsely\s+|freshly\s+|lightly\s+|well\s+|loosely\s+|firmly\s+|packed\s+|cut\s+|torn\s+)?`
	verbs   = `(?:chopped|minced|diced|sliced|grated|shredded|crushed|peeled|cubed|halved|quartered|julienned|mashed|melted|softened|beaten|whisked|sifted|toasted|drained|rinsed|trimmed|cored|seeded|deseeded|pitted|zested|juiced|thawed|cooked|divided|packed|separated|cut|torn|at room temperature|room temperature|warmed|chilled|boiling|lukewarm|scrubbed|deveined|stemmed|crumbled|sliced thin|thinly sliced)`
	// Words that also start ingredient names ("ground black pepper"),
	// so they only count as a note when nothing else follows.
	adjectives = `(?:ground|hot|cold|warm)`
	prep       = `(?:` + verbs + `|` + adjectives + `)`

	// noteClause matches a comma clause that is preparation or serving
	// advice rather than part of the ingredient name.
	noteClause = regexp.MustCompile(`(?i)^(?:` +
		`to taste|optional|as needed|if needed|if desired|for garnish(?:ing)?|for serving|for dusting|for frying|for greasing|to serve|to garnish|` +
		`plus (?:more|extra)\b.*|or more\b.*|or to taste|more to taste|about .+|approximately .+|` +
		adverbs + verbs + `(?:\s*(?:,|and|or|&)\s*` + adverbs + prep + `)*(?:\s+.*)?|` +
		adverbs + adjectives + `(?:\s*(?:,|and|or|&)\s*` + adverbs + prep + `)*` +
		`)$`)
)

// ParseLine parses one ingredient line. raw is kept verbatim as the
// ingredient's raw text.
func (p *Parser) ParseLine(raw string) domain.Ingredient {
	text := Clean(raw)
	name, notes := splitNotes(text)

	f := domain.IngredientFields{Raw: raw, Note: strings.Join(notes, ", ")}

	q, rest, ok := quantity.ParsePrefix(name)
	// "1-inch piece ginger": the number is a size, not an amount.
	if ok && strings.HasPrefix(rest, "-") {
		ok = false
	}
	if !ok {
		p.parseWithoutQuantity(name, &f)
		p.log.Debug("no quantity in %q -> unit %q name %q", raw, f.Unit.Name, f.Name)
		return domain.NewIngredient(f)
	}

	f.Quantity = &q
	unit, after, found := p.readUnit(rest)
	switch {
	case found:
		f.Unit = unit
		f.Name = trimFiller(after)
	case startsWithLetter(rest):
		f.Unit = domain.UnitCount
		f.Name = trimFiller(rest)
	default:
		f.Unit = domain.UnitNone
		f.Name = trimFiller(rest)
	}

	p.log.Debug("parsed %q -> %s %q %q", raw, q, f.Unit.Name, f.Name)
	return domain.NewIngredient(f)
}

func (p *Parser) parseWithoutQuantity(name string, f *domain.IngredientFields) {
	// Without an article only a known unit counts: "cream of tartar"
	// stays whole.
	if m := articleUnitPattern.FindStringSubmatch(name); m != nil {
		unit, known := p.units.Lookup(m[2])
		if m[1] != "" || known {
			if !known {
				unit = p.units.Normalize(m[2])
			}
			f.Unit = unit
			f.Name = trimFiller(m[3])
			return
		}
	}
	f.Unit = domain.UnitNone
	f.Name = name
}

// readUnit tries the first two words, then the first word, of s as a
// unit. It returns the text after the unit.
func (p *Parser) readUnit(s string) (domain.Unit, string, bool) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return domain.Unit{}, "", false
	}
	if len(words) >= 2 {
		if u, ok := p.units.Lookup(unitToken(words[0] + " " + words[1])); ok {
			return u, strings.Join(words[2:], " "), true
		}
	}
	if u, ok := p.units.Lookup(unitToken(words[0])); ok {
		return u, strings.Join(words[1:], " "), true
	}
	return domain.Unit{}, "", false
}

// unitToken drops punctuation that can trail a unit word ("cups,").
func unitToken(s string) string {
	return strings.TrimRight(s, ",;:")
}

// splitNotes separates the ingredient name from its notes: every
// parenthetical aside, trailing comma clauses that read like preparation
// or serving advice, and a trailing "to taste" style phrase.
func splitNotes(text string) (string, []string) {
	name, notes := splitParentheticals(text)

	clauses := strings.Split(name, ",")
	var trailing []string
	for len(clauses) > 1 {
		last := strings.TrimSpace(clauses[len(clauses)-1])
		if last != "" && !noteClause.MatchString(last) {
			break
		}
		if last != "" {
			trailing = append([]string{last}, trailing...)
		}
		clauses = clauses[:len(clauses)-1]
	}
	name = strings.TrimSpace(strings.Join(clauses, ","))

	if m := trailingPhrase.FindStringSubmatchIndex(name); m != nil && m[0] > 0 {
		phrase := strings.Trim(name[m[2]:m[3]], "()")
		name = strings.TrimSpace(name[:m[0]])
		trailing = append([]string{phrase}, trailing...)
	}

	return name, append(notes, trailing...)
}

func trimFiller(s string) string {
	return strings.TrimSpace(leadingFiller.ReplaceAllString(strings.TrimSpace(s), ""))
}
