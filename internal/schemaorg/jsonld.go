package schemaorg

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

var (
	durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	digitsPattern   = regexp.MustCompile(`\d+`)
)

func decodeJSONLD(data []byte) (any, error) {
	var node any
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode JSON-LD: %w", err)
	}
	return node, nil
}

// findScriptRecipe returns the first Recipe node found in any
// application/ld+json block. Blocks that fail to decode are skipped.
func (a *Adapter) findScriptRecipe(doc *goquery.Document) map[string]any {
	var found map[string]any
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(i int, s *goquery.Selection) bool {
		content := strings.TrimSpace(s.Text())
		if content == "" {
			return true
		}
		node, err := decodeJSONLD([]byte(content))
		if err != nil {
			a.log.Debug("skipping JSON-LD block %d: %v", i, err)
			return true
		}
		found = findRecipe(node)
		return found == nil
	})
	return found
}

func (a *Adapter) fromJSONLD(node any, sourceURL string) (*domain.RawDocument, error) {
	recipe := findRecipe(node)
	if recipe == nil {
		return nil, fmt.Errorf("no Recipe object in JSON-LD: %w", domain.ErrNoRecipe)
	}
	return a.fromRecipeNode(recipe, sourceURL), nil
}

// findRecipe walks a decoded JSON-LD tree depth first looking for an
// object whose @type is or contains "Recipe". @graph is searched before
// the remaining keys, which are visited in sorted order.
func findRecipe(node any) map[string]any {
	switch v := node.(type) {
	case map[string]any:
		if isType(v["@type"], "Recipe") {
			return v
		}
		if g, ok := v["@graph"]; ok {
			if r := findRecipe(g); r != nil {
				return r
			}
		}
		for _, k := range slices.Sorted(maps.Keys(v)) {
			if k == "@graph" {
				continue
			}
			if r := findRecipe(v[k]); r != nil {
				return r
			}
		}
	case []any:
		for _, item := range v {
			if r := findRecipe(item); r != nil {
				return r
			}
		}
	}
	return nil
}

func (a *Adapter) fromRecipeNode(node map[string]any, sourceURL string) *domain.RawDocument {
	raw := &domain.RawDocument{
		Title:     a.cleanText(firstString(node["name"])),
		Servings:  parseYield(node["recipeYield"]),
		PrepTime:  ParseDuration(firstString(node["prepTime"])),
		CookTime:  ParseDuration(firstString(node["cookTime"])),
		TotalTime: ParseDuration(firstString(node["totalTime"])),
		SourceURL: sourceURL,
	}
	if raw.SourceURL == "" {
		raw.SourceURL = firstString(node["url"])
	}
	for _, line := range stringList(node["recipeIngredient"]) {
		if line = strings.TrimSpace(line); line != "" {
			raw.IngredientLines = append(raw.IngredientLines, line)
		}
	}
	raw.InstructionLines = a.instructions(node["recipeInstructions"])
	return raw
}

// instructions flattens recipeInstructions, which may be a string, a
// list of strings, HowToStep objects or HowToSection objects holding
// steps.
func (a *Adapter) instructions(v any) []string {
	var out []string
	add := func(s string) {
		if s = a.cleanText(s); s != "" {
			out = append(out, s)
		}
	}

	switch t := v.(type) {
	case string:
		for _, line := range strings.Split(t, "\n") {
			add(line)
		}
	case []any:
		for _, item := range t {
			switch step := item.(type) {
			case string:
				add(step)
			case map[string]any:
				if isType(step["@type"], "HowToSection") {
					out = append(out, a.instructions(step["itemListElement"])...)
					continue
				}
				text := firstString(step["text"])
				if text == "" {
					text = firstString(step["name"])
				}
				add(text)
			}
		}
	case map[string]any:
		out = append(out, a.instructions([]any{t})...)
	}
	return out
}

func isType(t any, want string) bool {
	switch v := t.(type) {
	case string:
		return v == want
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

// parseYield reads servings from recipeYield, which sites publish as a
// number, a string such as "4 servings" or a list of either. Zero means
// unknown.
func parseYield(v any) int {
	switch t := v.(type) {
	case float64:
		if t >= 1 && t < math.MaxInt32 {
			return int(t)
		}
	case string:
		if m := digitsPattern.FindString(t); m != "" {
			n, err := strconv.Atoi(m)
			if err == nil && n > 0 {
				return n
			}
		}
	case []any:
		for _, item := range t {
			if n := parseYield(item); n > 0 {
				return n
			}
		}
	}
	return 0
}

// ParseDuration renders an ISO-8601 duration such as PT1H30M as
// "1h 30m". Zero parts are omitted; strings that are not durations are
// returned unchanged.
func ParseDuration(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	m := durationPattern.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return s
	}

	var parts []string
	for i, suffix := range []string{"d", "h", "m", "s"} {
		n := m[i+1]
		if n == "" {
			continue
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || f == 0 {
			continue
		}
		parts = append(parts, strconv.FormatFloat(f, 'f', -1, 64)+suffix)
	}
	return strings.Join(parts, " ")
}

// firstString returns v as a string, taking the first element of a list
// and the @value or name of an object.
func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		for _, item := range t {
			if s := firstString(item); s != "" {
				return s
			}
		}
	case map[string]any:
		if s := firstString(t["@value"]); s != "" {
			return s
		}
		return firstString(t["name"])
	}
	return ""
}

func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		return strings.Split(t, "\n")
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := firstString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
