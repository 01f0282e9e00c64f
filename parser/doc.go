// Package parser loads API description documents into [Schema] graphs.
//
// The parser accepts OAS 3.x documents (schemas under components.schemas),
// OAS 2.0 documents (schemas under definitions), or a bare schema document,
// in YAML or JSON. Local $ref values into the schema section are resolved to
// shared *Schema nodes carrying the component name as ReferenceID, so
// self- and mutually-referential components become cyclic graphs.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range result.Schemas {
//		fmt.Println(s.Name, s.Pointer)
//	}
//
// # Literal Kinds
//
// Defaults, examples and enum members are decoded into [value.Value]
// variants. Untagged YAML scalars map by their resolved core tag: integers
// become Integer when they fit in 32 bits and Long otherwise, floats become
// Double, timestamps become Date or DateTime, !!binary becomes Binary, and
// everything else a String. Local tags pick a variant explicitly:
//
//	default: !password "1234"
//	example: !int64 55
//	enum: [!date 2024-01-01, !byte aGVsbG8=]
//
// Recognized local tags are !int32, !int64, !float, !double, !string,
// !password, !byte, !binary, !date and !date-time.
//
// # Logging
//
// Set a [Logger] with [WithLogger] to receive debug output about reference
// resolution. [NewSlogAdapter] wraps a *slog.Logger.
package parser
