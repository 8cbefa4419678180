package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

// InputKind is the encoding of a recipe input file.
type InputKind string

const (
	InputJSON InputKind = "json"
	InputYAML InputKind = "yaml"
	InputHTML InputKind = "html"
)

// KindFromPath picks the input kind from a file extension. Unknown
// extensions are treated as HTML.
func KindFromPath(path string) InputKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonld":
		return InputJSON
	case ".yaml", ".yml":
		return InputYAML
	default:
		return InputHTML
	}
}

// Reader loads raw recipe documents. JSON and YAML files holding a raw
// document are decoded directly; HTML pages and schema.org JSON-LD go
// through the site adapter.
type Reader struct {
	adapter domain.SiteAdapter
}

// NewReader creates a Reader that hands markup to adapter.
func NewReader(adapter domain.SiteAdapter) *Reader {
	return &Reader{adapter: adapter}
}

// ReadFile reads and decodes the file at path. "-" reads standard input
// as HTML.
func (r *Reader) ReadFile(ctx context.Context, path string) (*domain.RawDocument, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r.Decode(ctx, KindFromPath(path), data, "")
}

// Decode turns data of the given kind into a raw document.
func (r *Reader) Decode(ctx context.Context, kind InputKind, data []byte, sourceURL string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc domain.RawDocument
	switch kind {
	case InputJSON:
		if isJSONLD(data) {
			return r.extract(ctx, data, sourceURL)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to deserialize JSON: %w", err)
		}
	case InputYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to deserialize YAML: %w", err)
		}
	case InputHTML:
		return r.extract(ctx, data, sourceURL)
	default:
		return nil, fmt.Errorf("unsupported input kind: %s", kind)
	}

	if doc.Title == "" && len(doc.IngredientLines) == 0 {
		return nil, fmt.Errorf("document has no title or ingredients: %w", domain.ErrNoRecipe)
	}
	if doc.SourceURL == "" {
		doc.SourceURL = sourceURL
	}
	return &doc, nil
}

func (r *Reader) extract(ctx context.Context, data []byte, sourceURL string) (*domain.RawDocument, error) {
	if r.adapter == nil {
		return nil, fmt.Errorf("no site adapter configured for markup input")
	}
	return r.adapter.Extract(ctx, data, sourceURL)
}

// isJSONLD reports whether data looks like schema.org JSON-LD rather
// than a raw recipe document.
func isJSONLD(data []byte) bool {
	return bytes.Contains(data, []byte(`"@type"`)) || bytes.Contains(data, []byte(`"@graph"`))
}
