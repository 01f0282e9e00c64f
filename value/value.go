package value

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Kind identifies a Value variant.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindString
	KindPassword
	KindByte
	KindBinary
	KindBoolean
	KindDate
	KindDateTime
	KindArray
	KindObject
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInteger:
		return "Integer"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindPassword:
		return "Password"
	case KindByte:
		return "Byte"
	case KindBinary:
		return "Binary"
	case KindBoolean:
		return "Boolean"
	case KindDate:
		return "Date"
	case KindDateTime:
		return "DateTime"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Base types reported by BaseType.
const (
	BaseInteger = "integer"
	BaseNumber  = "number"
	BaseString  = "string"
	BaseBoolean = "boolean"
	BaseNull    = "null"
	BaseArray   = "array"
	BaseObject  = "object"
)

// Value is a literal embedded in a schema.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// Integer is a 32-bit integer literal.
	Integer int32
	// Long is a 64-bit integer literal.
	Long int64
	// Float is a single precision number literal.
	Float float32
	// Double is a double precision number literal.
	Double float64
	// String is a plain string literal.
	String string
	// Password is a string literal flagged as a secret.
	Password string
	// Byte is a base64 encoded string literal.
	Byte string
	// Binary is a raw binary string literal.
	Binary string
	// Boolean is a true/false literal.
	Boolean bool
	// Date is a full-date literal (RFC 3339 "2006-01-02").
	Date string
	// DateTime is a date-time literal (RFC 3339).
	DateTime string
	// Null is the null literal.
	Null struct{}
	// Array is an ordered sequence of values.
	Array []Value
)

func (Integer) Kind() Kind  { return KindInteger }
func (Long) Kind() Kind     { return KindLong }
func (Float) Kind() Kind    { return KindFloat }
func (Double) Kind() Kind   { return KindDouble }
func (String) Kind() Kind   { return KindString }
func (Password) Kind() Kind { return KindPassword }
func (Byte) Kind() Kind     { return KindByte }
func (Binary) Kind() Kind   { return KindBinary }
func (Boolean) Kind() Kind  { return KindBoolean }
func (Date) Kind() Kind     { return KindDate }
func (DateTime) Kind() Kind { return KindDateTime }
func (Null) Kind() Kind     { return KindNull }
func (Array) Kind() Kind    { return KindArray }
func (*Object) Kind() Kind  { return KindObject }

func (Integer) sealed()  {}
func (Long) sealed()     {}
func (Float) sealed()    {}
func (Double) sealed()   {}
func (String) sealed()   {}
func (Password) sealed() {}
func (Byte) sealed()     {}
func (Binary) sealed()   {}
func (Boolean) sealed()  {}
func (Date) sealed()     {}
func (DateTime) sealed() {}
func (Null) sealed()     {}
func (Array) sealed()    {}
func (*Object) sealed()  {}

// KindOf returns the kind of v. A nil Value is reported as KindNull.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// BaseType returns the base type implied by the variant of v.
func BaseType(v Value) string {
	switch KindOf(v) {
	case KindInteger, KindLong:
		return BaseInteger
	case KindFloat, KindDouble:
		return BaseNumber
	case KindString, KindPassword, KindByte, KindBinary, KindDate, KindDateTime:
		return BaseString
	case KindBoolean:
		return BaseBoolean
	case KindArray:
		return BaseArray
	case KindObject:
		return BaseObject
	default:
		return BaseNull
	}
}

// Format returns the format tag implied by the variant of v, or "" when the
// variant has no intrinsic format.
func Format(v Value) string {
	switch KindOf(v) {
	case KindLong:
		return "int64"
	case KindFloat:
		return "float"
	case KindPassword:
		return "password"
	case KindByte:
		return "byte"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date-time"
	default:
		return ""
	}
}

// variantFormats lists, per base type, the formats some variant carries.
var variantFormats = map[string][]string{
	BaseInteger: {"int64"},
	BaseNumber:  {"float"},
	BaseString:  {"password", "byte", "binary", "date", "date-time"},
}

// SchemaFormat returns the format tag a schema declaring base and format
// requires of its scalars. Formats no variant carries for base, such as
// "int32", "double" or "uuid", require no format and return "".
func SchemaFormat(base, format string) string {
	if slices.Contains(variantFormats[base], format) {
		return format
	}
	return ""
}

// IsContainer reports whether v is an Array or an Object.
func IsContainer(v Value) bool {
	k := KindOf(v)
	return k == KindArray || k == KindObject
}

// Describe renders v for diagnostics, e.g. `Long(55)` or `Object{x, y}`.
func Describe(v Value) string {
	switch t := v.(type) {
	case nil, Null:
		return "Null"
	case Array:
		return fmt.Sprintf("Array[%d]", len(t))
	case *Object:
		return "Object{" + strings.Join(t.Keys(), ", ") + "}"
	case String, Password, Byte, Binary, Date, DateTime:
		return fmt.Sprintf("%s(%q)", t.Kind(), t)
	default:
		return fmt.Sprintf("%s(%v)", t.Kind(), t)
	}
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a string-keyed mapping that preserves insertion order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject builds an Object from members in order. A repeated key keeps its
// first position and takes the last value.
func NewObject(members ...Member) *Object {
	o := &Object{values: make(map[string]Value, len(members))}
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Set assigns key. New keys are appended; existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// All iterates over the members in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}
