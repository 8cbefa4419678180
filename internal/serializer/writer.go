// Package serializer writes recipes as text, JSON or YAML and reads raw
// recipe documents from files.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipekit/internal/display"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the human-readable block produced by RenderText.
	FormatText Format = "text"
	// FormatJSON outputs data in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format.
	FormatYAML Format = "yaml"
)

// SupportedFormats returns the names accepted by ParseFormat.
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat reads a format name. The empty string means text and
// "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(SupportedFormats(), ", "))
}

// TextRenderer is implemented by values that have a text form.
type TextRenderer interface {
	RenderText() string
}

// StructuredRenderer is implemented by values whose JSON and YAML form
// differs from the value itself.
type StructuredRenderer interface {
	Structured() any
}

// Writer serializes values to an output in one format.
type Writer struct {
	format Format
	output io.Writer
	color  bool
}

// NewWriter creates a Writer. A nil output means os.Stdout. color only
// affects FormatText.
func NewWriter(format Format, output io.Writer, color bool) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: format, output: output, color: color}
}

// Format returns the writer's format.
func (w *Writer) Format() Format { return w.format }

// Serialize writes v in the configured format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s, ok := v.(StructuredRenderer); ok && w.format != FormatText {
		v = s.Structured()
	}
	switch w.format {
	case FormatText:
		return w.serializeText(v)
	case FormatJSON:
		return w.serializeJSON(v)
	case FormatYAML:
		return w.serializeYAML(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeText(v any) error {
	var block string
	switch t := v.(type) {
	case TextRenderer:
		block = t.RenderText()
	case string:
		block = t
	case fmt.Stringer:
		block = t.String()
	default:
		return fmt.Errorf("no text form for %T", v)
	}
	if w.color {
		block = display.Highlight(block)
	}
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	_, err := io.WriteString(w.output, block)
	return err
}

func (w *Writer) serializeJSON(v any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}
