package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dlcarv/keycomp/internal/config"
	"github.com/dlcarv/keycomp/internal/errors"
	"github.com/dlcarv/keycomp/internal/keypath"
	"github.com/dlcarv/keycomp/internal/models"
	"github.com/dlcarv/keycomp/internal/parser"
	"github.com/dlcarv/keycomp/internal/report"
	"github.com/dlcarv/keycomp/internal/rootmap"
	"github.com/dlcarv/keycomp/internal/samples"
)

// CLI defines the command-line interface
var CLI struct {
	Base       string `arg:"" optional:"" help:"Base JSON file: a name inside the samples directory or a path."`
	Compare    string `arg:"" optional:"" help:"Comparison JSON file: a name inside the samples directory or a path."`
	FullPaths  bool   `help:"Show every differing path instead of grouping by root." short:"f"`
	MapRoots   bool   `help:"Rename legacy root keys in the comparison document before comparing, saving a *_mapped copy." short:"m"`
	ShowBoth   bool   `help:"Show the grouped and full-path views one after the other." short:"b"`
	SamplesDir string `help:"Directory containing the JSON documents. Defaults to ./samples." type:"path"`
	NoColor    bool   `help:"Disable colored output."`
	Config     string `help:"Path to a config file. Found automatically when not set." type:"path"`
	Version    bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Stdin  io.Reader
	Stdout io.Writer
	Color  bool
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("keycomp"),
		kong.Description("Compare the key paths of two JSON documents and report which paths exist in only one of them."),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("keycomp version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	ctx := &Context{
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Color:  report.ColorEnabled(os.Stdout, CLI.NoColor || cfg.NoColor),
	}
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: keycomp --help\n")
		os.Exit(1)
	}
}

// loadConfig loads the config file named on the command line, or the
// nearest one found walking up from the working directory, or defaults.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from '%s'", path), err)
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Resolve the samples directory and the two documents
	dirOverride := CLI.SamplesDir
	if dirOverride == "" {
		dirOverride = ctx.Config.SamplesDir
	}
	dir, err := samples.FindDir(dirOverride)
	if err != nil {
		return err
	}

	basePath, cmpPath, err := selectFiles(ctx, dir)
	if err != nil {
		return err
	}

	// 2. Parse both documents
	baseDoc, err := parser.ParseFile(basePath)
	if err != nil {
		return err
	}
	cmpDoc, err := parser.ParseFile(cmpPath)
	if err != nil {
		return err
	}

	// 3. Optionally rename legacy roots in the comparison document and
	// persist the renamed copy
	table := ctx.Config.Table()
	if CLI.MapRoots {
		cmpDoc = models.Document{Root: rootmap.ApplyToKeys(cmpDoc.Root, table)}
		mappedPath := samples.MappedPath(cmpPath)
		if err := samples.Save(mappedPath, cmpDoc); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Stdout, "Mapped comparison file saved to: %s\n", mappedPath)
	}

	// 4. Collect path sets, normalizing roots on both sides when mapping
	baseKeys := keypath.Collect(baseDoc.Root)
	cmpKeys := keypath.Collect(cmpDoc.Root)
	if CLI.MapRoots {
		baseKeys = models.NewPathSet(rootmap.MapRootNames(baseKeys.Sorted(), table)...)
		cmpKeys = models.NewPathSet(rootmap.MapRootNames(cmpKeys.Sorted(), table)...)
	}

	// 5. Diff and render
	comparison := keypath.Compare(baseKeys, cmpKeys)

	fmt.Fprintf(ctx.Stdout, "\nComparing:\n  Base: %s\n  Compare: %s\n", basePath, cmpPath)
	reporter := report.New(ctx.Stdout, ctx.Color)
	switch {
	case CLI.ShowBoth || ctx.Config.Display == config.DisplayBoth:
		reporter.PrintBothViews(comparison)
	case CLI.FullPaths || ctx.Config.Display == config.DisplayFull:
		reporter.PrintDifferences(comparison, true)
	default:
		reporter.PrintDifferences(comparison, false)
	}
	return nil
}

// selectFiles resolves the two document paths from the positional
// arguments, falling back to the interactive chooser when fewer than
// two were given.
func selectFiles(ctx *Context, dir string) (basePath, cmpPath string, err error) {
	if CLI.Base != "" && CLI.Compare != "" {
		return samples.Resolve(dir, CLI.Base), samples.Resolve(dir, CLI.Compare), nil
	}

	fmt.Fprintln(ctx.Stdout, "JSON key comparator. Documents live in the samples directory (created automatically).")
	basePath, err = samples.Choose(ctx.Stdin, ctx.Stdout, "Choose the number or name of the base JSON: ", dir)
	if err != nil {
		return "", "", err
	}
	cmpPath, err = samples.Choose(ctx.Stdin, ctx.Stdout, "Choose the number or name of the JSON to compare: ", dir)
	if err != nil {
		return "", "", err
	}
	return basePath, cmpPath, nil
}
