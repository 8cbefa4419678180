package schemaorg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

var (
	servesPattern   = regexp.MustCompile(`(?i)\bserves?\s*:?\s*(\d+)`)
	prepPattern     = regexp.MustCompile(`(?i)\bprep(?:\s+time)?\s*:?\s*(\d+)\s*min`)
	cookPattern     = regexp.MustCompile(`(?i)\bcook(?:\s+time)?\s*:?\s*(\d+)\s*min`)
	gramLinePattern = regexp.MustCompile(`^\d+\s*g\b`)

	instructionHeadings = []string{"method", "instruction", "direction", "preparation", "steps"}
	ingredientWords     = []string{"cup", "tbsp", "tsp", "oz", "pound", "gram", "salt", "pepper", "butter", "oil", "flour", "sugar"}
)

// minInstructionLength filters short list items (navigation, tags) out
// of ordered lists guessed to be instructions.
const minInstructionLength = 50

// fromHeuristics reads a recipe from pages that carry no JSON-LD. It
// tries, in order: lists following "Ingredients"/"Method" headings,
// two-column tables, and the first list that mentions common units.
func (a *Adapter) fromHeuristics(doc *goquery.Document, sourceURL string) *domain.RawDocument {
	raw := &domain.RawDocument{SourceURL: sourceURL}

	raw.Title = collapse(doc.Find("h1").First().Text())
	if raw.Title == "" {
		raw.Title = collapse(doc.Find("title").First().Text())
	}

	raw.IngredientLines, raw.InstructionLines = fromHeadings(doc)
	if len(raw.IngredientLines) == 0 {
		raw.IngredientLines = fromTables(doc)
	}
	if len(raw.IngredientLines) == 0 {
		raw.IngredientLines = fromIngredientList(doc)
	}
	if len(raw.InstructionLines) == 0 {
		raw.InstructionLines = fromOrderedList(doc)
	}

	text := doc.Find("body").Text()
	if m := servesPattern.FindStringSubmatch(text); m != nil {
		raw.Servings, _ = strconv.Atoi(m[1])
	}
	if m := prepPattern.FindStringSubmatch(text); m != nil {
		raw.PrepTime = m[1] + "m"
	}
	if m := cookPattern.FindStringSubmatch(text); m != nil {
		raw.CookTime = m[1] + "m"
	}

	a.log.Debug("heuristics found %d ingredients, %d steps", len(raw.IngredientLines), len(raw.InstructionLines))
	return raw
}

// fromHeadings walks headings and lists in document order, taking the
// first list after an ingredients heading and the first list after a
// method heading.
func fromHeadings(doc *goquery.Document) (ingredients, instructions []string) {
	var pending string
	doc.Find("h1, h2, h3, h4, h5, h6, strong, b, ul, ol").Each(func(_ int, s *goquery.Selection) {
		if s.Is("ul, ol") {
			if pending == "" {
				return
			}
			items := listItems(s.ChildrenFiltered("li"))
			switch {
			case len(items) == 0:
				return
			case pending == "ingredients":
				ingredients = items
			case pending == "instructions":
				instructions = items
			}
			pending = ""
			return
		}

		heading := strings.ToLower(s.Text())
		switch {
		case ingredients == nil && strings.Contains(heading, "ingredient"):
			pending = "ingredients"
		case instructions == nil && containsAny(heading, instructionHeadings):
			pending = "instructions"
		}
	})
	return ingredients, instructions
}

// fromTables reads quantity/item tables: the first two cells of each row
// are joined into one ingredient line. All-caps items are group headers.
func fromTables(doc *goquery.Document) []string {
	var lines []string
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		qty := collapse(cells.Eq(0).Text())
		item := collapse(cells.Eq(1).Text())
		if item == "" || item == strings.ToUpper(item) {
			return
		}
		lines = append(lines, strings.TrimSpace(qty+" "+item))
	})
	return lines
}

func fromIngredientList(doc *goquery.Document) []string {
	var lines []string
	doc.Find("ul, ol").EachWithBreak(func(_ int, list *goquery.Selection) bool {
		items := list.Find("li")
		if !looksLikeIngredients(items) {
			return true
		}
		lines = listItems(items)
		return false
	})
	return lines
}

// looksLikeIngredients reports whether at least two of the first five
// items mention a common unit or staple.
func looksLikeIngredients(items *goquery.Selection) bool {
	if items.Length() < 3 {
		return false
	}
	matches := 0
	items.Slice(0, min(5, items.Length())).Each(func(_ int, li *goquery.Selection) {
		if containsAny(strings.ToLower(li.Text()), ingredientWords) {
			matches++
		}
	})
	return matches >= 2
}

func fromOrderedList(doc *goquery.Document) []string {
	var steps []string
	doc.Find("ol").EachWithBreak(func(_ int, list *goquery.Selection) bool {
		items := list.Find("li")
		if items.Length() < 2 {
			return true
		}
		for _, text := range listItems(items) {
			if len(text) > minInstructionLength && !gramLinePattern.MatchString(text) {
				steps = append(steps, text)
			}
		}
		return len(steps) == 0
	})
	return steps
}

func listItems(items *goquery.Selection) []string {
	var out []string
	items.Each(func(_ int, li *goquery.Selection) {
		if text := collapse(li.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
