package ingredient

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hammamikhairi/recipekit/internal/units"
)

// Kind classifies a line from an ingredient list.
type Kind int

const (
	KindIngredient Kind = iota
	KindHeader
	KindNote
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindIngredient:
		return "ingredient"
	case KindHeader:
		return "header"
	case KindNote:
		return "note"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// noteStarters open lines that explain rather than list an ingredient.
var noteStarters = []string{
	"see in post", "see post", "see here", "see note", "see recipe", "see below", "see above",
	"option to", "optional:", "options:", "note:", "notes:", "tip:", "tips:",
	"you can also", "you can use", "alternatively", "substitute", "substitution",
	"(see", "(option", "(note",
}

// headerStarters open sub-recipe headers such as "For the sauce:".
var headerStarters = []string{"for the ", "to make ", "to prepare ", "for serving:", "for garnish:"}

var digitPattern = regexp.MustCompile(`\d`)

// Classify decides whether a cleaned line is an ingredient, a sub-recipe
// header, or a note.
func Classify(line string) Kind {
	s := strings.TrimSpace(line)
	if s == "" {
		return KindBlank
	}
	if IsNote(s) {
		return KindNote
	}
	if IsHeader(s) {
		return KindHeader
	}
	return KindIngredient
}

// IsNote reports whether line is commentary ("Note: ...", "see post").
func IsNote(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, p := range noteStarters {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// IsHeader reports whether line names a sub-recipe rather than an
// ingredient: "RASPBERRY COULIS", "For the sauce:", "Lemon Curd".
func IsHeader(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || digitPattern.MatchString(s) {
		return false
	}
	lower := strings.ToLower(s)
	words := strings.Fields(s)

	for _, p := range headerStarters {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	if strings.HasSuffix(s, ":") && len(words) <= 6 {
		return true
	}
	if isUpper(s) && len(words) <= 4 {
		return true
	}

	// Title Case short phrase, judged on the part before any aside.
	main := strings.TrimSpace(strings.SplitN(s, "(", 2)[0])
	words = strings.Fields(main)
	if len(words) < 2 || len(words) > 3 || len(main) > 25 || strings.ContainsAny(main, "/,") {
		return false
	}
	if !titleCaseHeader(words) {
		return false
	}
	capital := 0
	for _, w := range words {
		if r := []rune(w)[0]; unicode.IsUpper(r) {
			capital++
		} else if !isJoiner(w) {
			return false
		}
	}
	return unicode.IsUpper([]rune(main)[0]) && float64(capital) >= 0.7*float64(len(words))
}

// SectionName turns a header line into the label stored on the
// ingredients that follow it.
func SectionName(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimRight(s, ": ")
	return s
}

// pantryNouns end ingredient names that are often written in Title Case
// ("Kosher Salt", "Olive Oil").
var pantryNouns = map[string]bool{
	"salt": true, "pepper": true, "sugar": true, "flour": true, "butter": true,
	"oil": true, "water": true, "milk": true, "egg": true, "yolk": true,
	"vinegar": true, "garlic": true, "onion": true, "powder": true, "soda": true,
	"extract": true, "yeast": true, "honey": true, "stock": true, "broth": true,
	"rice": true, "cheese": true, "parsley": true, "cinnamon": true, "nutmeg": true,
	"paprika": true, "cumin": true, "thyme": true, "oregano": true, "basil": true,
}

// titleCaseHeader rejects Title Case lines that read as an ingredient:
// the last word is a pantry staple or some word is a unit.
func titleCaseHeader(words []string) bool {
	last := strings.ToLower(words[len(words)-1])
	if pantryNouns[last] || pantryNouns[strings.TrimSuffix(last, "s")] {
		return false
	}
	for _, w := range words {
		if _, ok := units.Default().Lookup(w); ok {
			return false
		}
	}
	return true
}

func isJoiner(w string) bool {
	switch strings.ToLower(w) {
	case "and", "&", "or", "of", "with", "the":
		return true
	}
	return false
}

// isUpper reports whether s has letters and none of them are lower case.
func isUpper(s string) bool {
	letters := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}
