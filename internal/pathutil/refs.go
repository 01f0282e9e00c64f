package pathutil

import "strings"

// Reference prefixes for the schema sections of OAS 2.0 and OAS 3.x documents.
const (
	RefPrefixDefinitions = "#/definitions/"
	RefPrefixSchemas     = "#/components/schemas/"
)

// SchemaRef builds "#/components/schemas/{name}" (OAS 3.x).
func SchemaRef(name string) string {
	return RefPrefixSchemas + Escape(name)
}

// DefinitionRef builds "#/definitions/{name}" (OAS 2.0).
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + Escape(name)
}

// RefName extracts the unescaped component name from a local reference with
// the given prefix. It reports false when ref does not name a direct child
// of that section.
func RefName(ref, prefix string) (string, bool) {
	name, ok := strings.CutPrefix(ref, prefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return Unescape(name), true
}
