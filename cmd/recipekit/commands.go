package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/operation"
	"github.com/hammamikhairi/recipekit/internal/recipe"
)

const sourceUsage = "<file|library-id>"

func (a *app) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a recipe from a file or the built-in library",
		ArgsUsage: sourceUsage,
		Description: `Reads a recipe from a .json or .yaml raw document, an .html page or
schema.org JSON-LD file ("-" reads HTML from stdin), or a built-in
library id. RECIPEKIT_UNIT_SYSTEM converts it on the way out.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := a.load(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			return a.write(ctx, r)
		},
	}
}

func (a *app) scaleCmd() *cli.Command {
	return &cli.Command{
		Name:      "scale",
		Usage:     "Scale a recipe by a factor or to a number of servings",
		ArgsUsage: sourceUsage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "factor",
				Aliases: []string{"x"},
				Usage:   "scale factor, e.g. 2, 1.5, 1/2 or 1 1/2",
			},
			&cli.IntFlag{
				Name:    "servings",
				Aliases: []string{"s"},
				Usage:   "target number of servings",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			hasFactor, hasServings := cmd.IsSet("factor"), cmd.IsSet("servings")
			if hasFactor == hasServings {
				return errors.New("give exactly one of --factor or --servings")
			}

			r, err := a.load(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			if hasServings {
				r, err = r.ScaleToServings(cmd.Int("servings"))
			} else {
				f, ferr := operation.Factor(cmd.String("factor"))
				if ferr != nil {
					return fmt.Errorf("invalid factor: %w", ferr)
				}
				r, err = r.Scale(f)
			}
			if err != nil {
				return err
			}
			return a.write(ctx, r)
		},
	}
}

func (a *app) convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a recipe to metric or imperial units",
		ArgsUsage: sourceUsage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "system",
				Usage:    "target system (metric, imperial, original)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			system, ok := domain.SystemFromString(cmd.String("system"))
			if !ok {
				return fmt.Errorf("unknown unit system %q", cmd.String("system"))
			}
			r, err := a.loadOriginal(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			converted := r.ConvertTo(system)
			a.logUnconverted(converted)
			return a.write(ctx, converted)
		},
	}
}

func (a *app) applyCmd() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Apply operations such as \"halve\", \"x1.5\", \"serves 6\" or \"metric\" in order",
		ArgsUsage: sourceUsage + " <operation>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return errors.New("apply needs a recipe and at least one operation")
			}
			r, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			r, err = operation.ApplyAll(ctx, a.ops, r, args[1:])
			if err != nil {
				return err
			}
			return a.write(ctx, r)
		},
	}
}

func (a *app) parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse one ingredient line and show its parts",
		ArgsUsage: "<ingredient line>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			line := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
			if line == "" {
				return errors.New("parse needs an ingredient line")
			}
			ing := a.lines.ParseLine(line)
			return a.write(ctx, parsedLine{doc: recipe.NewIngredientDocument(ing, a.formatter)})
		},
	}
}

func (a *app) libraryCmd() *cli.Command {
	return &cli.Command{
		Name:  "library",
		Usage: "Browse the built-in recipes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all recipes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					list, err := a.library.List(ctx)
					if err != nil {
						return err
					}
					return a.write(ctx, summaries(list))
				},
			},
			{
				Name:      "search",
				Usage:     "Find recipes by title, source or ingredient",
				ArgsUsage: "<query>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					list, err := a.library.Search(ctx, strings.Join(cmd.Args().Slice(), " "))
					if err != nil {
						return err
					}
					return a.write(ctx, summaries(list))
				},
			},
			{
				Name:      "show",
				Usage:     "Show one library recipe",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					r, err := a.library.Get(ctx, cmd.Args().First())
					if err != nil {
						return err
					}
					return a.write(ctx, a.withDefaultSystem(r))
				},
			},
		},
	}
}

// load reads source and applies the configured default unit system.
func (a *app) load(ctx context.Context, source string) (*recipe.Recipe, error) {
	r, err := a.loadOriginal(ctx, source)
	if err != nil {
		return nil, err
	}
	return a.withDefaultSystem(r), nil
}

// loadOriginal reads source as a file when one exists at that path and
// as a library id otherwise.
func (a *app) loadOriginal(ctx context.Context, source string) (*recipe.Recipe, error) {
	if source == "" {
		return nil, fmt.Errorf("missing recipe: give a file path or one of the library ids")
	}
	if _, err := os.Stat(source); source == "-" || err == nil {
		a.log.Debug("reading recipe from %s", source)
		raw, err := a.reader.ReadFile(ctx, source)
		if err != nil {
			return nil, err
		}
		return a.builder.Build(*raw), nil
	}

	r, err := a.library.Get(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("no file or library recipe %q: %w", source, err)
	}
	return r, nil
}

// logUnconverted reports ingredients whose unit conversion left alone.
func (a *app) logUnconverted(r *recipe.Recipe) {
	if r.System() == domain.SystemNone {
		return
	}
	orig, conv := r.OriginalIngredients(), r.Ingredients()
	for i := range conv {
		if _, ok := conv[i].Quantity(); ok && conv[i].Unit() == orig[i].Unit() {
			a.log.Debug("%q left as %s (%s)", conv[i].RawText(), conv[i].Unit().Name, conv[i].Unit().Family)
		}
	}
}

func (a *app) withDefaultSystem(r *recipe.Recipe) *recipe.Recipe {
	if s := a.cfg.System(); s != domain.SystemNone {
		return r.ConvertTo(s)
	}
	return r
}

// parsedLine is the output of the parse command.
type parsedLine struct {
	doc recipe.IngredientDocument
}

func (p parsedLine) Structured() any { return p.doc }

func (p parsedLine) RenderText() string {
	var b strings.Builder
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-10s %s\n", label+":", value)
		}
	}
	row("Display", p.doc.Display)
	if p.doc.Quantity != nil {
		row("Quantity", p.doc.Quantity.Text)
	}
	if p.doc.Unit != "" {
		row("Unit", fmt.Sprintf("%s (%s)", p.doc.Unit, p.doc.UnitFamily))
	}
	row("Name", p.doc.Name)
	row("Note", p.doc.Note)
	row("Raw", p.doc.RawText)
	return b.String()
}

// summaries is the output of the library list and search commands.
type summaries []domain.RecipeSummary

func (s summaries) Structured() any { return []domain.RecipeSummary(s) }

func (s summaries) RenderText() string {
	if len(s) == 0 {
		return "No recipes found."
	}
	var b strings.Builder
	for _, r := range s {
		fmt.Fprintf(&b, "%-24s %s", r.ID, r.Title)
		if r.Servings > 0 {
			fmt.Fprintf(&b, " (serves %d)", r.Servings)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
