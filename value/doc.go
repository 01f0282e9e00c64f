// Package value models the literal values an API description embeds in a
// schema: defaults, examples, and enumeration members.
//
// [Value] is a closed sum type. Every variant is a distinct Go type and the
// set cannot be extended outside this package, so a type switch over the
// variants listed in [Kind] is exhaustive.
//
// Each scalar variant carries a fixed base type and format tag:
//
//	Variant   Base      Format
//	Integer   integer   (none)
//	Long      integer   int64
//	Float     number    float
//	Double    number    (none)
//	String    string    (none)
//	Password  string    password
//	Byte      string    byte
//	Binary    string    binary
//	Boolean   boolean   (none)
//	Date      string    date
//	DateTime  string    date-time
//	Null      null      (none)
//
// Containers report the base types "array" and "object" and carry no format.
//
// A schema format that no variant carries for its base type, such as
// "int32", "double" or "uuid", does not narrow the variant; [SchemaFormat]
// maps it to no format.
package value
