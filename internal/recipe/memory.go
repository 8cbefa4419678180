package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
)

// Library holds built recipes in memory. Safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	recipes map[string]*Recipe
	log     *logger.Logger
}

// NewLibrary creates a library preloaded with the built-in recipes,
// built with b.
func NewLibrary(b *Builder, log *logger.Logger) *Library {
	lib := &Library{
		recipes: make(map[string]*Recipe),
		log:     log,
	}
	lib.seed(b)
	return lib
}

// List returns summaries of all recipes, sorted by title.
func (l *Library) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	l.log.Debug("listing all recipes, count=%d", len(l.recipes))

	out := make([]domain.RecipeSummary, 0, len(l.recipes))
	for _, r := range l.recipes {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Get returns a recipe by ID.
func (l *Library) Get(ctx context.Context, id string) (*Recipe, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, ok := l.recipes[id]
	if !ok {
		l.log.Debug("recipe not found: %s", id)
		return nil, fmt.Errorf("recipe %q: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

// Add stores a recipe under its ID.
func (l *Library) Add(ctx context.Context, r *Recipe) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.recipes[r.ID()]; ok {
		return fmt.Errorf("recipe %q: %w", r.ID(), domain.ErrAlreadyExists)
	}
	l.recipes[r.ID()] = r
	l.log.Info("recipe added: %s (%s)", r.Title(), r.ID())
	return nil
}

// Search returns recipes whose title, ingredient names or source
// contain the query, sorted by title.
func (l *Library) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	l.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range l.recipes {
		if matches(r, q) {
			out = append(out, r.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func matches(r *Recipe, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.sourceURL), query) {
		return true
	}
	for _, ing := range r.original {
		if strings.Contains(strings.ToLower(ing.Name()), query) {
			return true
		}
	}
	return false
}

// seed populates the library with the built-in recipes. Seeded recipes
// keep readable IDs.
func (l *Library) seed(b *Builder) {
	seeded := *b
	for id, doc := range builtinDocuments() {
		seeded.newID = func() string { return id }
		r := seeded.Build(doc)
		l.recipes[r.ID()] = r
	}
	l.log.Debug("seeded %d recipes", len(l.recipes))
}
