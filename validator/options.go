package validator

import (
	"fmt"

	"github.com/erraggy/oaslint/internal/options"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/rules"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	schema   *parser.Schema

	// Configuration options
	rootPointer     string
	includeWarnings bool
	ruleSet         *rules.RuleSet
	logger          parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ExactlyOne("validator",
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithParsed", Set: cfg.parsed != nil},
		options.Source{Option: "WithSchema", Set: cfg.schema != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a local document file as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		if result == nil {
			return fmt.Errorf("validator: parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithSchema specifies a single schema graph as the input source.
// pointer is the location reported for the root, "#" when empty.
func WithSchema(schema *parser.Schema, pointer string) Option {
	return func(cfg *validateConfig) error {
		if schema == nil {
			return fmt.Errorf("validator: schema cannot be nil")
		}
		cfg.schema = schema
		cfg.rootPointer = pointer
		return nil
	}
}

// WithRuleSet selects the rules to run.
// Default: rules.Default()
func WithRuleSet(rs *rules.RuleSet) Option {
	return func(cfg *validateConfig) error {
		cfg.ruleSet = rs
		return nil
	}
}

// WithIncludeWarnings enables or disables warning and info findings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default, logging is disabled.
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
