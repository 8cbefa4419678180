// Package schemaorg turns already-fetched recipe pages into raw recipe
// documents. It reads schema.org Recipe data from JSON-LD blocks and
// falls back to heading and list heuristics for pages without it.
package schemaorg

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
)

// MaxMarkupSize bounds the markup accepted by Extract.
const MaxMarkupSize = 10 * 1024 * 1024

// Compile-time interface check.
var _ domain.SiteAdapter = (*Adapter)(nil)

// Adapter extracts recipes from HTML pages or bare JSON-LD documents.
type Adapter struct {
	log       *logger.Logger
	sanitizer *bluemonday.Policy
}

// NewAdapter creates a schema.org adapter.
func NewAdapter(log *logger.Logger) *Adapter {
	return &Adapter{
		log:       log,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Extract reads a recipe out of markup. JSON-LD wins over the heuristic
// fallback; domain.ErrNoRecipe is returned when neither finds
// ingredients or a title.
func (a *Adapter) Extract(ctx context.Context, markup []byte, sourceURL string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(markup)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document: %w", domain.ErrNoRecipe)
	}
	if len(trimmed) > MaxMarkupSize {
		return nil, fmt.Errorf("document exceeds maximum size of %d bytes", MaxMarkupSize)
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		a.log.Debug("treating input as JSON-LD")
		node, err := decodeJSONLD(trimmed)
		if err != nil {
			return nil, err
		}
		return a.fromJSONLD(node, sourceURL)
	}

	doc, err := loadHTML(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	if node := a.findScriptRecipe(doc); node != nil {
		a.log.Debug("found JSON-LD recipe")
		return a.fromRecipeNode(node, sourceURL), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.log.Debug("no JSON-LD recipe, using heuristics")
	raw := a.fromHeuristics(doc, sourceURL)
	if len(raw.IngredientLines) == 0 {
		return nil, fmt.Errorf("no ingredient list in page: %w", domain.ErrNoRecipe)
	}
	return raw, nil
}

// detectCharset names the most likely charset of data, defaulting to
// utf-8.
func detectCharset(data []byte) string {
	if utf8.Valid(data) {
		return "utf-8"
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// loadHTML parses data after transcoding it to UTF-8.
func loadHTML(data []byte) (*goquery.Document, error) {
	cs := detectCharset(data)
	if cs == "utf-8" {
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}
	utf8Reader, err := charset.NewReader(bytes.NewReader(data), "text/html; charset="+cs)
	if err != nil {
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}
	return goquery.NewDocumentFromReader(utf8Reader)
}

// cleanText strips markup and entities and collapses whitespace.
func (a *Adapter) cleanText(s string) string {
	s = html.UnescapeString(a.sanitizer.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
