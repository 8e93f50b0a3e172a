package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mcncl/hellojson/internal/config"
	"github.com/mcncl/hellojson/internal/encoder"
	"github.com/mcncl/hellojson/internal/errors"
	"github.com/mcncl/hellojson/internal/logging"
	"github.com/mcncl/hellojson/internal/models"
	"go.uber.org/zap"
)

// CLI defines the command-line interface. Arguments never change what is
// printed; anything kong rejects is ignored.
var CLI struct {
	Debug bool     `help:"Log document construction to stderr." short:"d" hidden:""`
	Args  []string `arg:"" optional:"" passthrough:""`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger *zap.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parseArgs(os.Args[1:])

	logger, err := logging.New(CLI.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Config: cfg, Logger: logger}, os.Stdout)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// parseArgs fills CLI from args, falling back to defaults on any parse error
func parseArgs(args []string) {
	parser, err := kong.New(&CLI,
		kong.Name("hellojson"),
		kong.Description("Build a JSON object and print its name field"),
		kong.NoDefaultHelp(),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return
	}

	if _, err := parser.Parse(args); err != nil {
		CLI.Debug = false
		CLI.Args = nil
	}
}

// run builds the document and writes the printed field's JSON form to w
func run(ctx *Context, w io.Writer) error {
	ctx.Logger.Debug("Starting hellojson", zap.String("version", Version))

	doc, err := buildDocument(ctx)
	if err != nil {
		return err
	}

	key := ctx.Config.PrintKey()
	value, ok := doc.Get(key)
	if !ok {
		return errors.NewBuildError(fmt.Sprintf("key '%s' not found", key), errors.ErrMissingKey)
	}
	ctx.Logger.Debug("Printing value", zap.String("key", key))

	enc := encoder.NewEncoder(encoder.Options{EscapeHTML: ctx.Config.Output.EscapeHTML})
	return enc.Encode(w, value)
}

// buildDocument creates an empty object and inserts every configured field
func buildDocument(ctx *Context) (models.JSONObject, error) {
	doc := models.NewObject()
	for _, f := range ctx.Config.Document.Fields {
		key := ctx.Config.KeyFor(f.Key)
		if key == "" {
			return nil, errors.NewBuildError(fmt.Sprintf("field '%s' normalizes to an empty key", f.Key), nil)
		}
		doc.Set(key, f.Value)
		ctx.Logger.Debug("Inserted field", zap.String("key", key))
	}
	ctx.Logger.Debug("Document built", zap.Strings("keys", doc.Keys()))
	return doc, nil
}
