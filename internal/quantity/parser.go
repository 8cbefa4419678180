// Package quantity parses free-text amounts ("2", "1.5", "½", "1 1/2",
// "1-2", "one to two") into exact domain quantities.
package quantity

import (
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

// glyphs is the fixed vulgar-fraction table. Anything else in the
// Unicode "No" category is decomposed with NFKC.
var glyphs = map[rune]string{
	'½': "1/2",
	'⅓': "1/3",
	'⅔': "2/3",
	'¼': "1/4",
	'¾': "3/4",
	'⅕': "1/5",
	'⅖': "2/5",
	'⅗': "3/5",
	'⅘': "4/5",
	'⅙': "1/6",
	'⅚': "5/6",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
}

// words are textual counts, longest first so "a dozen" wins over "a".
var words = []struct {
	text string
	num  int64
	den  int64
}{
	{"half a dozen", 6, 1},
	{"a dozen", 12, 1},
	{"a half", 1, 2},
	{"dozen", 12, 1},
	{"half", 1, 2},
	{"one", 1, 1},
	{"two", 2, 1},
	{"three", 3, 1},
	{"four", 4, 1},
	{"five", 5, 1},
	{"six", 6, 1},
	{"seven", 7, 1},
	{"eight", 8, 1},
	{"nine", 9, 1},
	{"ten", 10, 1},
	{"eleven", 11, 1},
	{"twelve", 12, 1},
}

// Normalize rewrites fraction glyphs as spaced ASCII fractions and folds
// dash and slash look-alikes, so "1½–2" becomes "1 1/2 -2".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if frac, ok := glyphs[r]; ok {
			b.WriteString(" " + frac + " ")
			continue
		}
		if unicode.Is(unicode.No, r) {
			if d := norm.NFKC.String(string(r)); strings.ContainsRune(d, '⁄') {
				b.WriteString(" " + strings.ReplaceAll(d, "⁄", "/") + " ")
				continue
			}
		}
		switch r {
		case '⁄', '∕':
			b.WriteByte('/')
		case '–', '—', '‒', '−':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse converts a whole token into a quantity. Any failure is a
// *domain.ParseFailure carrying the original text.
func Parse(token string) (domain.Quantity, error) {
	q, rest, ok, reason := parsePrefix(token)
	if !ok {
		return domain.Quantity{}, &domain.ParseFailure{Input: token, Reason: reason}
	}
	if strings.TrimSpace(rest) != "" {
		return domain.Quantity{}, &domain.ParseFailure{Input: token, Reason: "unexpected text " + strings.TrimSpace(rest)}
	}
	return q, nil
}

// ParsePrefix reads the longest leading quantity from s and returns it
// with the remaining (normalized, left-trimmed) text.
func ParsePrefix(s string) (q domain.Quantity, rest string, ok bool) {
	q, rest, ok, _ = parsePrefix(s)
	return q, rest, ok
}

func parsePrefix(s string) (domain.Quantity, string, bool, string) {
	src := Normalize(s)
	i := skipSpaces(src, 0)

	low, ok := readNumber(src, i)
	if !ok {
		return domain.Quantity{}, s, false, "no leading number"
	}
	end := low.end

	// Range: "1-2", "1 - 2", "1 to 2".
	j := skipSpaces(src, end)
	sep := 0
	switch {
	case j < len(src) && src[j] == '-':
		sep = 1
	case hasWord(src, j, "to"):
		sep = 2
	}
	if sep > 0 {
		if high, ok := readNumber(src, skipSpaces(src, j+sep)); ok {
			q, err := domain.NewRange(low.val, high.val)
			if err != nil {
				return domain.Quantity{}, s, false, "range low bound exceeds high bound"
			}
			return q, strings.TrimLeftFunc(src[high.end:], unicode.IsSpace), true, ""
		}
	}

	return domain.NewQuantity(low.val), strings.TrimLeftFunc(src[end:], unicode.IsSpace), true, ""
}

type number struct {
	val *big.Rat
	end int
}

// readNumber reads one number starting at i: a word count, a decimal, a
// fraction, or an integer optionally followed by a fraction (mixed number).
func readNumber(s string, i int) (number, bool) {
	if i >= len(s) {
		return number{}, false
	}

	for _, w := range words {
		if hasWord(s, i, w.text) {
			return number{val: big.NewRat(w.num, w.den), end: i + len(w.text)}, true
		}
	}

	// ".5"
	if s[i] == '.' {
		frac := digitsEnd(s, i+1)
		if frac == i+1 {
			return number{}, false
		}
		r, ok := new(big.Rat).SetString("0" + s[i:frac])
		return number{val: r, end: frac}, ok
	}

	intEnd := digitsEnd(s, i)
	if intEnd == i {
		return number{}, false
	}
	whole, _ := new(big.Rat).SetString(s[i:intEnd])

	// "1.5"
	if intEnd+1 < len(s) && s[intEnd] == '.' && isDigit(s[intEnd+1]) {
		frac := digitsEnd(s, intEnd+1)
		r, ok := new(big.Rat).SetString(s[i:frac])
		return number{val: r, end: frac}, ok
	}

	// "1/2"
	if f, end, ok := readFraction(s, i); ok {
		return number{val: f, end: end}, true
	} else if end > 0 {
		// Zero denominator: not a number at all.
		return number{}, false
	}

	// "1 1/2" (space separated) or "1-1/2" (hyphen before a proper fraction).
	// A zero denominator in the fraction part spoils the whole number.
	j := skipSpaces(s, intEnd)
	if j > intEnd {
		if f, end, ok := readFraction(s, j); ok {
			return number{val: f.Add(f, whole), end: end}, true
		} else if end > 0 {
			return number{}, false
		}
	}
	if intEnd < len(s) && s[intEnd] == '-' {
		if f, end, ok := readFraction(s, intEnd+1); ok && f.Cmp(big.NewRat(1, 1)) < 0 {
			return number{val: f.Add(f, whole), end: end}, true
		} else if !ok && end > 0 {
			return number{}, false
		}
	}

	return number{val: whole, end: intEnd}, true
}

// readFraction reads "n/d" at i. A zero denominator reports ok=false with
// a non-zero end so callers can tell it apart from "not a fraction".
func readFraction(s string, i int) (*big.Rat, int, bool) {
	numEnd := digitsEnd(s, i)
	if numEnd == i || numEnd >= len(s) || s[numEnd] != '/' {
		return nil, 0, false
	}
	denEnd := digitsEnd(s, numEnd+1)
	if denEnd == numEnd+1 {
		return nil, 0, false
	}
	r, ok := new(big.Rat).SetString(s[i:denEnd])
	if !ok {
		return nil, denEnd, false
	}
	return r, denEnd, true
}

// hasWord reports whether s holds w at i (case-insensitive) followed by
// whitespace or the end of input.
func hasWord(s string, i int, w string) bool {
	end := i + len(w)
	if end > len(s) || !strings.EqualFold(s[i:end], w) {
		return false
	}
	if i > 0 && isLetter(s[i-1]) {
		return false
	}
	return end == len(s) || s[end] == ' ' || s[end] == '\t'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func digitsEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
