// recipekit parses, scales and converts recipes.
//
// Usage:
//
//	recipekit [global flags] show|scale|convert|apply|parse|library ...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/hammamikhairi/recipekit/internal/config"
	"github.com/hammamikhairi/recipekit/internal/convert"
	"github.com/hammamikhairi/recipekit/internal/display"
	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/ingredient"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/operation"
	"github.com/hammamikhairi/recipekit/internal/recipe"
	"github.com/hammamikhairi/recipekit/internal/schemaorg"
	"github.com/hammamikhairi/recipekit/internal/serializer"
	"github.com/hammamikhairi/recipekit/internal/units"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).command().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app holds the dependencies wired by setup before any command runs.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg       *config.Config
	log       *logger.Logger
	builder   *recipe.Builder
	library   *recipe.Library
	reader    *serializer.Reader
	lines     domain.LineParser
	ops       domain.OperationParser
	formatter *display.Formatter
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "recipekit",
		Usage:     "parse, scale and convert recipes",
		Version:   version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file read before the environment (skipped when missing)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (off, normal, verbose)",
				Sources: cli.EnvVars(config.Prefix + "_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
				Sources: cli.EnvVars(config.Prefix + "_OUTPUT_FORMAT"),
			},
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "colour text output when writing to a terminal",
				Sources: cli.EnvVars(config.Prefix + "_COLOR"),
			},
			&cli.IntFlag{
				Name:    "decimals",
				Usage:   "decimal places for amounts that are not shown as fractions",
				Sources: cli.EnvVars(config.Prefix + "_DECIMALS"),
			},
			&cli.BoolFlag{
				Name:    "fractions",
				Usage:   "show cup and spoon amounts as fractions",
				Sources: cli.EnvVars(config.Prefix + "_FRACTIONS"),
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.showCmd(),
			a.scaleCmd(),
			a.convertCmd(),
			a.applyCmd(),
			a.parseCmd(),
			a.libraryCmd(),
		},
	}
}

// setup loads configuration, lets flags override it and wires the
// dependencies shared by all commands.
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("format") {
		cfg.OutputFormat = cmd.String("format")
	}
	if cmd.IsSet("color") {
		cfg.Color = cmd.Bool("color")
	}
	if cmd.IsSet("decimals") {
		cfg.Decimals = cmd.Int("decimals")
	}
	if cmd.IsSet("fractions") {
		cfg.Fractions = cmd.Bool("fractions")
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}
	a.cfg = cfg

	a.log = logger.New(cfg.Level(), a.stderr)
	table := units.Default()
	a.formatter = display.NewFormatter(table, cfg.Precision())
	a.lines = ingredient.NewParser(units.NewNormalizer(table), a.log.Named("ingredient"))
	a.builder = recipe.NewBuilder(a.log.Named("recipe"),
		recipe.WithParser(a.lines),
		recipe.WithConverter(convert.NewEngine(table)),
		recipe.WithFormatter(a.formatter),
	)
	a.library = recipe.NewLibrary(a.builder, a.log.Named("library"))
	a.reader = serializer.NewReader(schemaorg.NewAdapter(a.log.Named("schemaorg")))
	a.ops = operation.NewKeywordParser(a.log.Named("operation"))

	a.log.Debug("config: format=%s system=%s decimals=%d fractions=%t",
		cfg.Format(), cfg.System(), cfg.Decimals, cfg.Fractions)

	if cmd.Args().Len() == 0 && a.color() {
		fmt.Fprintln(a.stdout, display.RenderBanner(display.TermWidth(), true))
	}
	return ctx, nil
}

// color reports whether text output should be highlighted.
func (a *app) color() bool {
	return a.cfg.Color && a.stdout == io.Writer(os.Stdout) && display.IsTerminal()
}

func (a *app) write(ctx context.Context, v any) error {
	return serializer.NewWriter(a.cfg.Format(), a.stdout, a.color()).Serialize(ctx, v)
}
