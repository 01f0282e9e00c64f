package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaslint/oaserrors"
)

// Parser loads documents into schema graphs.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// DocumentKind identifies where a document keeps its schemas.
type DocumentKind string

const (
	// DocumentOAS3 is an OAS 3.x document with components.schemas.
	DocumentOAS3 DocumentKind = "oas3"
	// DocumentOAS2 is an OAS 2.0 (Swagger) document with definitions.
	DocumentOAS2 DocumentKind = "oas2"
	// DocumentSchema is a standalone schema document.
	DocumentSchema DocumentKind = "schema"
)

// NamedSchema is a top-level schema of a document.
type NamedSchema struct {
	// Name is the component name, empty for a standalone schema document
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Pointer locates the schema in the document, e.g. "#/components/schemas/Pet"
	Pointer string `json:"pointer" yaml:"pointer"`
	// Schema is the resolved schema graph
	Schema *Schema `json:"-" yaml:"-"`
	// AliasOf is the $ref of a component whose whole body is a reference to
	// another schema. Its Schema is a copy of the target; the keywords live
	// at the target's pointer.
	AliasOf string `json:"aliasOf,omitempty" yaml:"aliasOf,omitempty"`
}

// ParseResult contains the schemas of a parsed document and its metadata.
//
// Callers should treat the schema graphs as read-only: named schemas are
// shared by every $ref that points at them.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// When the source was not a file, it is "ParseReader" or "ParseBytes"
	// with a ".yaml" or ".json" extension matching the detected format.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Kind is the detected document kind
	Kind DocumentKind
	// Version is the declared openapi/swagger version, empty for schema documents
	Version string
	// Schemas lists the top-level schemas in document order
	Schemas []NamedSchema
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Schema returns the named top-level schema.
func (pr *ParseResult) Schema(name string) (*Schema, bool) {
	for _, ns := range pr.Schemas {
		if ns.Name == name {
			return ns.Schema, true
		}
	}
	return nil, false
}

// Parse parses a document from a local file.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses a document from an io.Reader.
// SourcePath is set to ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses a document from a byte slice.
// SourcePath is set to ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parse(data, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(data))
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// parse decodes data and resolves the schemas it defines.
func (p *Parser) parse(data []byte, source string) (*ParseResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid YAML or JSON", Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Path: source, Message: "empty document"}
	}
	doc := deref(root.Content[0])
	if doc.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Line:    doc.Line,
			Column:  doc.Column,
			Message: "document root must be a mapping",
		}
	}

	result := &ParseResult{SourceFormat: detectFormatFromContent(data)}
	d := newDecoder(source, p.log())

	switch {
	case mappingValue(doc, "openapi") != nil:
		result.Kind = DocumentOAS3
		result.Version = mappingValue(doc, "openapi").Value
		if components := mappingValue(doc, "components"); components != nil {
			if err := d.addSection(rootSchemasPrefix, mappingValue(deref(components), "schemas")); err != nil {
				return nil, err
			}
		}
	case mappingValue(doc, "swagger") != nil:
		result.Kind = DocumentOAS2
		result.Version = mappingValue(doc, "swagger").Value
		if err := d.addSection(rootDefinitionsPrefix, mappingValue(doc, "definitions")); err != nil {
			return nil, err
		}
	default:
		result.Kind = DocumentSchema
		if err := d.addSection(rootDefinitionsPrefix, mappingValue(doc, "definitions")); err != nil {
			return nil, err
		}
		if err := d.addSection(rootDefsPrefix, mappingValue(doc, "$defs")); err != nil {
			return nil, err
		}
	}

	named, err := d.decodeSections()
	if err != nil {
		return nil, err
	}
	if result.Kind == DocumentSchema {
		root, err := d.schemaAt(doc, "#")
		if err != nil {
			return nil, err
		}
		named = append([]NamedSchema{{Pointer: "#", Schema: root}}, named...)
	}
	if err := d.decodeLiterals(); err != nil {
		return nil, err
	}
	if err := d.finishAliases(); err != nil {
		return nil, err
	}
	result.Schemas = named

	p.log().Debug("parsed document",
		"source", source,
		"kind", string(result.Kind),
		"schemas", len(result.Schemas))
	return result, nil
}

// detectFormatFromPath detects the source format from a file path extension
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent guesses the format from the first non-blank byte
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
