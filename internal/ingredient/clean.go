package ingredient

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

var (
	noteRefPattern    = regexp.MustCompile(`(?i)\(\s*(?:see\s+)?notes?\s*:?\s*\d*\s*\)`)
	bareNoteRef       = regexp.MustCompile(`(?i)\bnote\s*\d+\b`)
	leadingJunk       = regexp.MustCompile(`^[/\s]+`)
	bulletPattern     = regexp.MustCompile(`^[-*•▢□]\s+`)
	openComma         = regexp.MustCompile(`\(\s*,\s*`)
	emptyParens       = regexp.MustCompile(`\(\s*\)`)
	spaceBeforeClose  = regexp.MustCompile(`\s+\)`)
	spaceAfterOpen    = regexp.MustCompile(`\(\s+`)
	danglingOpen      = regexp.MustCompile(`\(\s*$`)
	danglingClose     = regexp.MustCompile(`^\s*\)`)
	trailingPunct     = regexp.MustCompile(`[,;]\s*$`)
	spaceBeforeComma  = regexp.MustCompile(`\s+,`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

var typography = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "′", "'",
	"“", `"`, "”", `"`, "„", `"`, "″", `"`,
	"–", "-", "—", "-", "‒", "-", "−", "-",
	"\u00a0", " ", "\u2009", " ", "\u202f", " ",
	"((", "(", "))", ")",
)

// Clean strips scraping cruft from an ingredient line: HTML entities,
// typographic quotes and dashes, note references such as "(Note 1)" or
// "(see note)", list bullets, empty or unbalanced parentheses, and
// redundant whitespace.
func Clean(text string) string {
	s := html.UnescapeString(text)
	s = typography.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")

	s = noteRefPattern.ReplaceAllString(s, "")
	s = bareNoteRef.ReplaceAllString(s, "")
	s = leadingJunk.ReplaceAllString(s, "")
	s = bulletPattern.ReplaceAllString(s, "")

	s = openComma.ReplaceAllString(s, "(")
	s = emptyParens.ReplaceAllString(s, "")
	s = spaceBeforeClose.ReplaceAllString(s, ")")
	s = spaceAfterOpen.ReplaceAllString(s, "(")
	s = spaceBeforeComma.ReplaceAllString(s, ",")
	s = whitespacePattern.ReplaceAllString(s, " ")

	s = danglingOpen.ReplaceAllString(s, "")
	s = danglingClose.ReplaceAllString(s, "")
	s = balanceParens(s)
	s = emptyParens.ReplaceAllString(s, "")
	s = trailingPunct.ReplaceAllString(strings.TrimSpace(s), "")

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// balanceParens drops closing parens without an opener and openers that
// are never closed.
func balanceParens(s string) string {
	runes := []rune(s)
	keep := make([]bool, len(runes))
	var open []int
	for i, r := range runes {
		switch r {
		case '(':
			open = append(open, i)
			keep[i] = true
		case ')':
			if len(open) > 0 {
				open = open[:len(open)-1]
				keep[i] = true
			}
		default:
			keep[i] = true
		}
	}
	for _, i := range open {
		keep[i] = false
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if keep[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitParentheticals removes every top-level "( ... )" aside from s and
// returns the remaining text plus the asides in order.
func splitParentheticals(s string) (string, []string) {
	var (
		rest  strings.Builder
		aside strings.Builder
		notes []string
		depth int
	)
	for _, r := range s {
		switch {
		case r == '(':
			if depth > 0 {
				aside.WriteRune(r)
			}
			depth++
		case r == ')' && depth > 0:
			depth--
			if depth == 0 {
				if n := strings.TrimSpace(aside.String()); n != "" {
					notes = append(notes, n)
				}
				aside.Reset()
				continue
			}
			aside.WriteRune(r)
		case depth > 0:
			aside.WriteRune(r)
		default:
			rest.WriteRune(r)
		}
	}
	out := whitespacePattern.ReplaceAllString(rest.String(), " ")
	out = spaceBeforeComma.ReplaceAllString(out, ",")
	return strings.TrimSpace(out), notes
}

// startsWithLetter reports whether s begins with a letter.
func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}
