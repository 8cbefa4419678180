package recipe

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipekit/internal/convert"
	"github.com/hammamikhairi/recipekit/internal/display"
	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/ingredient"
	"github.com/hammamikhairi/recipekit/internal/logger"
)

// Option configures the builder.
type Option func(*Builder)

// WithParser replaces the ingredient line parser.
func WithParser(p domain.LineParser) Option {
	return func(b *Builder) {
		b.parser = p
	}
}

// WithConverter replaces the unit conversion engine.
func WithConverter(c domain.Converter) Option {
	return func(b *Builder) {
		b.converter = c
	}
}

// WithFormatter sets the formatter used for structured and text output.
func WithFormatter(f *display.Formatter) Option {
	return func(b *Builder) {
		b.formatter = f
	}
}

// WithIDGenerator replaces the recipe ID source.
func WithIDGenerator(fn func() string) Option {
	return func(b *Builder) {
		b.newID = fn
	}
}

// Builder turns raw documents into recipes. It does no network or
// markup work; see package schemaorg for that.
type Builder struct {
	parser    domain.LineParser
	converter domain.Converter
	formatter *display.Formatter
	newID     func() string
	log       *logger.Logger
}

// NewBuilder creates a builder with the default parser, conversion
// engine and formatter over the shared unit table.
func NewBuilder(log *logger.Logger, opts ...Option) *Builder {
	b := &Builder{
		converter: convert.NewEngine(nil),
		formatter: display.NewFormatter(nil, display.DefaultPrecision()),
		newID:     uuid.NewString,
		log:       log,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.parser == nil {
		b.parser = ingredient.NewParser(nil, log.Named("ingredient"))
	}
	return b
}

var (
	stepNumbering = regexp.MustCompile(`(?i)^(?:step\s*\d+\s*[:.)-]?\s*|\d+[.)]\s+)`)
	spaces        = regexp.MustCompile(`\s+`)
)

// Build parses every ingredient line of doc and returns the recipe at
// scale 1 in its original units. Header lines label the ingredients that
// follow them with a section; note lines are dropped.
func (b *Builder) Build(doc domain.RawDocument) *Recipe {
	r := &Recipe{
		id:        b.newID(),
		title:     strings.TrimSpace(doc.Title),
		servings:  max(doc.Servings, 0),
		prepTime:  strings.TrimSpace(doc.PrepTime),
		cookTime:  strings.TrimSpace(doc.CookTime),
		totalTime: strings.TrimSpace(doc.TotalTime),
		sourceURL: strings.TrimSpace(doc.SourceURL),
		converter: b.converter,
		formatter: b.formatter,
	}
	if r.title == "" {
		r.title = "Untitled Recipe"
	}

	r.original = b.ingredients(doc.IngredientLines)
	for _, line := range doc.InstructionLines {
		s := strings.TrimSpace(spaces.ReplaceAllString(ingredient.Clean(line), " "))
		s = stepNumbering.ReplaceAllString(s, "")
		if s != "" {
			r.steps = append(r.steps, s)
		}
	}

	b.log.Debug("built %q: %d ingredients, %d steps", r.title, len(r.original), len(r.steps))
	return r.derive(one, domain.SystemNone)
}

func (b *Builder) ingredients(lines []string) []domain.Ingredient {
	var (
		out     []domain.Ingredient
		section string
	)
	for i, raw := range lines {
		cleaned := ingredient.Clean(raw)
		switch ingredient.Classify(cleaned) {
		case ingredient.KindBlank:
			continue
		case ingredient.KindNote:
			b.log.Debug("skipping note line %q", raw)
			continue
		case ingredient.KindHeader:
			// A header needs something to head.
			if hasIngredientAfter(lines, i) {
				section = ingredient.SectionName(cleaned)
				b.log.Debug("section %q", section)
				continue
			}
		}
		out = append(out, b.parser.ParseLine(raw).WithSection(section))
	}
	return out
}

func hasIngredientAfter(lines []string, i int) bool {
	for _, l := range lines[i+1:] {
		if ingredient.Classify(ingredient.Clean(l)) == ingredient.KindIngredient {
			return true
		}
	}
	return false
}
