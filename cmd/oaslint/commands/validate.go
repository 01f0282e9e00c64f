package commands

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/rules"
	"github.com/erraggy/oaslint/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	NoWarnings bool
	Quiet      bool
	Format     string
	Rules      string
	Config     string
	Verbose    bool
	NoColor    bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output findings, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output findings, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Rules, "rules", "", "comma-separated rule names to run, in order (default: all)")
	fs.StringVar(&flags.Config, "config", "", "YAML or JSON rule configuration file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parser and walker debug output to stderr")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Lint the schemas of an OpenAPI 2.0/3.x or JSON Schema document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint validate openapi.yaml\n")
		Writef(fs.Output(), "  oaslint validate --rules TypeMismatch openapi.yaml\n")
		Writef(fs.Output(), "  oaslint validate --config oaslint.yaml openapi.json\n")
		Writef(fs.Output(), "  cat openapi.yaml | oaslint validate -q -\n")
		Writef(fs.Output(), "  oaslint validate --format json openapi.yaml | jq '.valid'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No errors found\n")
		Writef(fs.Output(), "  1    Errors found, or the document could not be loaded\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}
	specPath := fs.Arg(0)

	// Fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	rs, err := BuildRuleSet(flags.Rules, flags.Config)
	if err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	startTime := time.Now()

	parseOpts := []parser.Option{parser.WithLogger(logger)}
	if specPath == StdinFilePath {
		parseOpts = append(parseOpts, parser.WithReader(Stdin), parser.WithSourceName(FormatSpecPath(specPath)))
	} else {
		parseOpts = append(parseOpts, parser.WithFilePath(specPath))
	}
	parseResult, err := parser.ParseWithOptions(parseOpts...)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	result, err := validator.ValidateWithOptions(
		validator.WithParsed(parseResult),
		validator.WithRuleSet(rs),
		validator.WithIncludeWarnings(!flags.NoWarnings),
		validator.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("validating %s: %w", FormatSpecPath(specPath), err)
	}
	totalTime := time.Since(startTime)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(Stdout, result, flags.Format); err != nil {
			return err
		}
	} else {
		if !flags.Quiet {
			Writef(Stderr, "oaslint version: %s\n", oaslint.Version())
			Writef(Stderr, "Document: %s\n", FormatSpecPath(specPath))
			Writef(Stderr, "Kind: %s\n", result.Kind)
			if result.Version != "" {
				Writef(Stderr, "Version: %s\n", result.Version)
			}
			Writef(Stderr, "Source Size: %s\n", FormatBytes(result.SourceSize))
			Writef(Stderr, "Schemas: %d\n", result.SchemaCount)
			Writef(Stderr, "Load Time: %v\n", result.LoadTime)
			Writef(Stderr, "Total Time: %v\n\n", totalTime)
		}
		NewReporter(Stdout, flags.NoColor).Report(result)
		if !flags.Quiet {
			NewReporter(Stderr, flags.NoColor).Summary(result)
		}
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

// BuildRuleSet resolves the --rules and --config flags. Neither selects
// every built-in rule; both is an error.
func BuildRuleSet(names, configPath string) (*rules.RuleSet, error) {
	registry := rules.NewRegistry()
	switch {
	case names != "" && configPath != "":
		return nil, fmt.Errorf("cannot use both --rules and --config")
	case configPath != "":
		cfg, err := rules.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return registry.FromConfig(cfg)
	case names != "":
		return registry.Select(splitList(names)...)
	default:
		return registry.All(), nil
	}
}
