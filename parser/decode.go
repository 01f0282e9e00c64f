package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/value"
)

const (
	rootSchemasPrefix     = pathutil.RefPrefixSchemas
	rootDefinitionsPrefix = pathutil.RefPrefixDefinitions
	rootDefsPrefix        = "#/$defs/"
)

// section is a mapping of named schemas that local refs may point into.
type section struct {
	prefix string
	node   *yaml.Node
}

// alias is a named schema whose whole body is a $ref to another named schema.
type alias struct {
	schema  *Schema
	target  string
	pointer string
}

// literal is a default, example or enum node waiting for its schema graph.
type literal struct {
	schema *Schema
	key    string
	node   *yaml.Node
	ptr    string
}

// decoder turns yaml.Nodes into Schema graphs. Named schemas are allocated
// before their bodies are decoded, so a $ref back to an ancestor yields the
// same *Schema and the graph becomes cyclic instead of recursing forever.
//
// Literals are decoded last, once every schema that governs them is known.
type decoder struct {
	source   string
	logger   Logger
	sections []section
	built    map[string]*Schema
	aliases  []*alias
	aliasOf  map[*Schema]*alias
	literals []literal
}

func newDecoder(source string, logger Logger) *decoder {
	return &decoder{
		source:  source,
		logger:  logger,
		built:   make(map[string]*Schema),
		aliasOf: make(map[*Schema]*alias),
	}
}

// addSection registers a mapping of named schemas under prefix.
// A nil node is ignored.
func (d *decoder) addSection(prefix string, node *yaml.Node) error {
	if node == nil {
		return nil
	}
	ptr := strings.TrimSuffix(prefix, "/")
	if node.Kind != yaml.MappingNode {
		return d.errorAt(node, ptr, "schema section must be a mapping")
	}
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return d.errorAt(node.Content[i], ptr, fmt.Sprintf("duplicate schema name %q", name))
		}
		seen[name] = true
	}
	d.sections = append(d.sections, section{prefix: prefix, node: node})
	return nil
}

// decodeSections decodes every named schema of every section in document order.
func (d *decoder) decodeSections() ([]NamedSchema, error) {
	var named []NamedSchema
	for _, sec := range d.sections {
		for i := 0; i+1 < len(sec.node.Content); i += 2 {
			name := sec.node.Content[i].Value
			ref := sec.prefix + pathutil.Escape(name)
			s, err := d.component(ref, name, deref(sec.node.Content[i+1]))
			if err != nil {
				return nil, err
			}
			ns := NamedSchema{Name: name, Pointer: ref, Schema: s}
			if a, ok := d.aliasOf[s]; ok {
				ns.AliasOf = a.target
			}
			named = append(named, ns)
		}
	}
	return named, nil
}

// resolve finds the named schema a local $ref points at.
func (d *decoder) resolve(ref, at string) (*Schema, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, &oaserrors.ReferenceError{Ref: ref, Pointer: at, Message: "external references are not supported"}
	}
	for _, sec := range d.sections {
		name, ok := pathutil.RefName(ref, sec.prefix)
		if !ok {
			continue
		}
		key := sec.prefix + pathutil.Escape(name)
		if s, ok := d.built[key]; ok {
			return s, nil
		}
		node := mappingValue(sec.node, name)
		if node == nil {
			return nil, &oaserrors.ReferenceError{Ref: ref, Pointer: at, Message: "target not found"}
		}
		return d.component(key, name, node)
	}
	return nil, &oaserrors.ReferenceError{Ref: ref, Pointer: at, Message: "target not found"}
}

// component returns the shared *Schema for a named schema, decoding it on
// first use.
func (d *decoder) component(key, name string, node *yaml.Node) (*Schema, error) {
	if s, ok := d.built[key]; ok {
		return s, nil
	}
	s := &Schema{ReferenceID: name}
	d.built[key] = s
	d.logger.Debug("decoding named schema", "name", name, "pointer", key)

	if node.Kind == yaml.MappingNode {
		if ref := mappingValue(node, "$ref"); ref != nil {
			a := &alias{schema: s, target: ref.Value, pointer: key + "/$ref"}
			d.aliases = append(d.aliases, a)
			d.aliasOf[s] = a
			if _, err := d.resolve(ref.Value, a.pointer); err != nil {
				return nil, err
			}
			return s, nil
		}
	}
	if err := d.fill(s, node, key); err != nil {
		return nil, err
	}
	return s, nil
}

// finishAliases copies each alias target into the alias, following chains.
// It runs after every named schema is decoded so targets are complete.
func (d *decoder) finishAliases() error {
	done := make(map[*Schema]bool, len(d.aliases))
	for _, a := range d.aliases {
		if err := d.finishAlias(a, done, make(map[*Schema]bool)); err != nil {
			return err
		}
	}
	d.aliases = nil
	return nil
}

func (d *decoder) finishAlias(a *alias, done, visiting map[*Schema]bool) error {
	if done[a.schema] {
		return nil
	}
	if visiting[a.schema] {
		return &oaserrors.ReferenceError{
			Ref:        a.target,
			Pointer:    a.pointer,
			IsCircular: true,
			Message:    "alias chain never reaches a schema",
		}
	}
	visiting[a.schema] = true

	target, err := d.resolve(a.target, a.pointer)
	if err != nil {
		return err
	}
	if next, ok := d.aliasOf[target]; ok {
		if err := d.finishAlias(next, done, visiting); err != nil {
			return err
		}
	}
	name := a.schema.ReferenceID
	*a.schema = *target
	a.schema.ReferenceID = name
	done[a.schema] = true
	d.logger.Debug("resolved alias", "name", name, "ref", a.target)
	return nil
}

// target follows alias chains to the schema that carries the keywords.
// It returns nil for an alias loop, which finishAliases reports.
func (d *decoder) target(s *Schema) *Schema {
	for range len(d.aliasOf) + 1 {
		a, ok := d.aliasOf[s]
		if !ok {
			return s
		}
		next, err := d.resolve(a.target, a.pointer)
		if err != nil {
			return nil
		}
		s = next
	}
	return nil
}

// decodeLiterals decodes every deferred default, example and enum against the
// schema that declares it. It must run before finishAliases so that aliases
// copy decoded literals.
func (d *decoder) decodeLiterals() error {
	for _, lit := range d.literals {
		switch lit.key {
		case "default":
			v, err := d.decodeValue(lit.node, lit.ptr, lit.schema)
			if err != nil {
				return err
			}
			lit.schema.Default = v
		case "example":
			v, err := d.decodeValue(lit.node, lit.ptr, lit.schema)
			if err != nil {
				return err
			}
			lit.schema.Example = v
		case "enum":
			vals, err := d.enum(lit.node, lit.ptr, lit.schema)
			if err != nil {
				return err
			}
			lit.schema.Enum = vals
		}
	}
	d.literals = nil
	return nil
}

// schemaAt decodes an inline schema, or resolves it when it is a $ref.
func (d *decoder) schemaAt(node *yaml.Node, ptr string) (*Schema, error) {
	node = deref(node)
	switch node.Kind {
	case yaml.MappingNode:
		if ref := mappingValue(node, "$ref"); ref != nil {
			d.logger.Debug("resolving reference", "ref", ref.Value, "pointer", ptr)
			return d.resolve(ref.Value, ptr)
		}
		s := &Schema{}
		if err := d.fill(s, node, ptr); err != nil {
			return nil, err
		}
		return s, nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!bool" && node.Value == "true" {
			return &Schema{}, nil
		}
		return nil, d.errorAt(node, ptr, "schema must be a mapping")
	default:
		return nil, d.errorAt(node, ptr, "schema must be a mapping")
	}
}

// fill decodes the keywords of a schema mapping into s.
// Keywords that do not affect linting are ignored.
func (d *decoder) fill(s *Schema, node *yaml.Node, ptr string) error {
	if node.Kind != yaml.MappingNode {
		return d.errorAt(node, ptr, "schema must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := deref(node.Content[i+1])
		at := pathutil.Join(ptr, key)

		var err error
		switch key {
		case "type":
			s.Type, err = d.scalarString(val, at)
		case "format":
			s.Format, err = d.scalarString(val, at)
		case "properties":
			s.Properties, err = d.properties(val, at)
		case "items":
			s.Items, err = d.schemaAt(val, at)
		case "additionalProperties":
			if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!bool" {
				continue
			}
			s.AdditionalProperties, err = d.schemaAt(val, at)
		case "required":
			s.Required, err = d.stringList(val, at)
		case "oneOf":
			s.OneOf, err = d.members(val, at)
		case "anyOf":
			s.AnyOf, err = d.members(val, at)
		case "allOf":
			s.AllOf, err = d.members(val, at)
		case "discriminator":
			s.Discriminator, err = d.discriminator(val, at)
		case "nullable", "x-nullable":
			s.Nullable, err = d.scalarBool(val, at)
		case "default", "example":
			d.literals = append(d.literals, literal{schema: s, key: key, node: val, ptr: at})
		case "enum":
			if val.Kind != yaml.SequenceNode {
				return d.errorAt(val, at, "enum must be a sequence")
			}
			d.literals = append(d.literals, literal{schema: s, key: key, node: val, ptr: at})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) properties(node *yaml.Node, ptr string) ([]Property, error) {
	if node.Kind != yaml.MappingNode {
		return nil, d.errorAt(node, ptr, "properties must be a mapping")
	}
	props := make([]Property, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return nil, d.errorAt(node.Content[i], ptr, fmt.Sprintf("duplicate property %q", name))
		}
		seen[name] = true
		ps, err := d.schemaAt(node.Content[i+1], pathutil.Join(ptr, name))
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Name: name, Schema: ps})
	}
	return props, nil
}

func (d *decoder) members(node *yaml.Node, ptr string) ([]*Schema, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, d.errorAt(node, ptr, "composition must be a sequence")
	}
	out := make([]*Schema, 0, len(node.Content))
	for i, item := range node.Content {
		s, err := d.schemaAt(item, pathutil.JoinIndex(ptr, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// discriminator accepts the OAS 3.x object form and the OAS 2.0 string form.
func (d *decoder) discriminator(node *yaml.Node, ptr string) (*Discriminator, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return &Discriminator{PropertyName: node.Value}, nil
	case yaml.MappingNode:
		name := mappingValue(node, "propertyName")
		if name == nil {
			return nil, d.errorAt(node, ptr, "discriminator is missing propertyName")
		}
		pn, err := d.scalarString(name, pathutil.Join(ptr, "propertyName"))
		if err != nil {
			return nil, err
		}
		return &Discriminator{PropertyName: pn}, nil
	default:
		return nil, d.errorAt(node, ptr, "discriminator must be a mapping or a string")
	}
}

func (d *decoder) enum(node *yaml.Node, ptr string, s *Schema) ([]value.Value, error) {
	out := make([]value.Value, 0, len(node.Content))
	for i, item := range node.Content {
		v, err := d.decodeValue(item, pathutil.JoinIndex(ptr, i), s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *decoder) stringList(node *yaml.Node, ptr string) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, d.errorAt(node, ptr, "expected a sequence of strings")
	}
	out := make([]string, 0, len(node.Content))
	for i, item := range node.Content {
		s, err := d.scalarString(deref(item), pathutil.JoinIndex(ptr, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) scalarString(node *yaml.Node, ptr string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", d.errorAt(node, ptr, "expected a string")
	}
	return node.Value, nil
}

func (d *decoder) scalarBool(node *yaml.Node, ptr string) (bool, error) {
	var b bool
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!bool" || node.Decode(&b) != nil {
		return false, d.errorAt(node, ptr, "expected a boolean")
	}
	return b, nil
}

// errorAt builds a ParseError positioned at node.
func (d *decoder) errorAt(node *yaml.Node, ptr, msg string) error {
	e := &oaserrors.ParseError{Path: d.source, Pointer: ptr, Message: msg}
	if node != nil {
		e.Line = node.Line
		e.Column = node.Column
	}
	return e
}

// deref follows YAML aliases to the anchored node.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// mappingValue returns the value node for key, or nil when m is not a
// mapping or has no such key.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	m = deref(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return deref(m.Content[i+1])
		}
	}
	return nil
}
