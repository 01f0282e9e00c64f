package validator

import (
	"fmt"
	"time"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/internal/severity"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/rules"
	"github.com/erraggy/oaslint/walker"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a finding that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a finding that does not fail validation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 10
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 10
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of linting a document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// Kind is the detected document kind
	Kind parser.DocumentKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Version is the declared openapi/swagger version
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Errors contains all findings with error severity, in traversal order
	Errors []ValidationError `json:"errors" yaml:"errors"`
	// Warnings contains warning and info findings, in traversal order
	Warnings []ValidationError `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"errorCount" yaml:"errorCount"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warningCount" yaml:"warningCount"`
	// Rules lists the rules that ran, in order
	Rules []string `json:"rules" yaml:"rules"`
	// SchemaCount is the number of top-level schemas walked
	SchemaCount int `json:"schemaCount" yaml:"schemaCount"`
	// SourcePath is the original source path from the parsed document
	SourcePath string `json:"sourcePath,omitempty" yaml:"sourcePath,omitempty"`
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat `json:"sourceFormat,omitempty" yaml:"sourceFormat,omitempty"`
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration `json:"-" yaml:"-"`
	// SourceSize is the size of the source data in bytes
	SourceSize int64 `json:"-" yaml:"-"`
}

// Issues returns errors followed by warnings.
func (r *ValidationResult) Issues() []ValidationError {
	all := make([]ValidationError, 0, len(r.Errors)+len(r.Warnings))
	all = append(all, r.Errors...)
	return append(all, r.Warnings...)
}

// Validator lints schemas with a rule set
type Validator struct {
	// IncludeWarnings determines whether warning and info findings are reported
	IncludeWarnings bool
	// RuleSet selects the rules to run. Nil means rules.Default().
	RuleSet *rules.RuleSet
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
		RuleSet:         rules.Default(),
	}
}

// ValidateWithOptions lints a document or schema using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("openapi.yaml"),
//	    validator.WithIncludeWarnings(false),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		RuleSet:         cfg.ruleSet,
		Logger:          cfg.logger,
	}

	switch {
	case cfg.parsed != nil:
		return v.ValidateParsed(cfg.parsed)
	case cfg.schema != nil:
		return v.ValidateSchema(cfg.schema, cfg.rootPointer)
	default:
		return v.Validate(*cfg.filePath)
	}
}

// Validate parses and lints a document file
func (v *Validator) Validate(specPath string) (*ValidationResult, error) {
	p := parser.New()
	p.Logger = v.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to parse specification: %w", err)
	}
	return v.ValidateParsed(parseResult)
}

// ValidateParsed lints every top-level schema of a parsed document, in
// document order. Each named schema is walked at its own pointer and does
// not descend into other named schemas, so every finding is reported once.
// Alias components are not walked: their keywords live at the target.
func (v *Validator) ValidateParsed(parseResult *parser.ParseResult) (*ValidationResult, error) {
	if parseResult == nil {
		return nil, fmt.Errorf("validator: parse result is nil")
	}
	result := v.newResult()
	result.Kind = parseResult.Kind
	result.Version = parseResult.Version
	result.SourcePath = parseResult.SourcePath
	result.SourceFormat = parseResult.SourceFormat
	result.LoadTime = parseResult.LoadTime
	result.SourceSize = parseResult.SourceSize

	for _, ns := range parseResult.Schemas {
		if ns.AliasOf != "" {
			parser.OrNop(v.Logger).Debug("skipping alias", "pointer", ns.Pointer, "ref", ns.AliasOf)
			continue
		}
		if err := v.walk(ns.Schema, ns.Pointer, false, result); err != nil {
			return nil, fmt.Errorf("validator: %s: %w", ns.Pointer, err)
		}
	}
	return v.finish(result), nil
}

// ValidateSchema lints a single schema graph rooted at pointer ("#" when
// empty), following every reference below it.
func (v *Validator) ValidateSchema(schema *parser.Schema, pointer string) (*ValidationResult, error) {
	if pointer == "" {
		pointer = pathutil.Root
	}
	result := v.newResult()
	result.Kind = parser.DocumentSchema
	if err := v.walk(schema, pointer, true, result); err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	return v.finish(result), nil
}

func (v *Validator) ruleSet() *rules.RuleSet {
	if v.RuleSet == nil {
		return rules.Default()
	}
	return v.RuleSet
}

func (v *Validator) newResult() *ValidationResult {
	return &ValidationResult{
		Errors:   make([]ValidationError, 0, defaultErrorCapacity),
		Warnings: make([]ValidationError, 0, defaultWarningCapacity),
		Rules:    v.ruleSet().Names(),
	}
}

func (v *Validator) walk(schema *parser.Schema, pointer string, followRefs bool, result *ValidationResult) error {
	found, err := walker.Walk(schema, v.ruleSet(),
		walker.WithRootPointer(pointer),
		walker.WithLogger(v.Logger),
		walker.WithFollowReferences(followRefs),
	)
	if err != nil {
		return err
	}
	result.SchemaCount++
	for _, issue := range found.Issues() {
		if issue.IsError() {
			result.Errors = append(result.Errors, issue)
		} else {
			result.Warnings = append(result.Warnings, issue)
		}
	}
	return nil
}

func (v *Validator) finish(result *ValidationResult) *ValidationResult {
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0

	// Filter warnings if not included
	if !v.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	parser.OrNop(v.Logger).Debug("validated document",
		"source", result.SourcePath,
		"schemas", result.SchemaCount,
		"errors", result.ErrorCount,
		"warnings", result.WarningCount)
	return result
}
