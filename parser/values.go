package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/value"
)

// decodeValue converts a literal node into a value.Value. Untagged scalars
// take the variant s implies for them (see conform); s may be nil.
func (d *decoder) decodeValue(node *yaml.Node, ptr string, s *Schema) (value.Value, error) {
	node = deref(node)
	s = d.target(s)
	switch node.Kind {
	case yaml.SequenceNode:
		var items *Schema
		if s != nil {
			items = s.Items
		}
		arr := make(value.Array, 0, len(node.Content))
		for i, item := range node.Content {
			v, err := d.decodeValue(item, pathutil.JoinIndex(ptr, i), items)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := value.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := deref(node.Content[i])
			if key.Kind != yaml.ScalarNode {
				return nil, d.errorAt(key, ptr, "object keys must be scalars")
			}
			var sub *Schema
			if s != nil {
				var ok bool
				if sub, ok = s.Property(key.Value); !ok {
					sub = s.AdditionalProperties
				}
			}
			v, err := d.decodeValue(node.Content[i+1], pathutil.Join(ptr, key.Value), sub)
			if err != nil {
				return nil, err
			}
			obj.Set(key.Value, v)
		}
		return obj, nil
	case yaml.ScalarNode:
		v, err := d.decodeScalar(node, ptr)
		if err != nil || isLocalTag(node.ShortTag()) {
			return v, err
		}
		return conform(v, s), nil
	default:
		return nil, d.errorAt(node, ptr, "unsupported literal")
	}
}

// decodeScalar maps a scalar by its tag. Core tags come from YAML resolution;
// local tags pick the variant explicitly.
func (d *decoder) decodeScalar(node *yaml.Node, ptr string) (value.Value, error) {
	tag := node.ShortTag()
	switch tag {
	case "!!null":
		return value.Null{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, d.literalError(node, ptr, tag, err)
		}
		return value.Boolean(b), nil
	case "!!int":
		n, err := parseInt(node.Value)
		if err != nil {
			// Too large for int64; keep the magnitude as a double.
			var f float64
			if ferr := node.Decode(&f); ferr != nil {
				return nil, d.literalError(node, ptr, tag, err)
			}
			return value.Double(f), nil
		}
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return value.Integer(int32(n)), nil
		}
		return value.Long(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, d.literalError(node, ptr, tag, err)
		}
		return value.Double(f), nil
	case "!!timestamp":
		return dateOrDateTime(node.Value), nil
	case "!!binary":
		return value.Binary(node.Value), nil
	case "!!str":
		return value.String(node.Value), nil

	case "!int32", "!integer":
		n, err := strconv.ParseInt(cleanNumber(node.Value), 0, 32)
		if err != nil {
			return nil, d.literalError(node, ptr, tag, err)
		}
		return value.Integer(int32(n)), nil
	case "!int64", "!long":
		n, err := parseInt(node.Value)
		if err != nil {
			return nil, d.literalError(node, ptr, tag, err)
		}
		return value.Long(n), nil
	case "!float":
		f, err := strconv.ParseFloat(cleanNumber(node.Value), 32)
		if err != nil {
			return nil, d.literalError(node, ptr, tag, err)
		}
		return value.Float(float32(f)), nil
	case "!double":
		f, err := strconv.ParseFloat(cleanNumber(node.Value), 64)
		if err != nil {
			return nil, d.literalError(node, ptr, tag, err)
		}
		return value.Double(f), nil
	case "!string":
		return value.String(node.Value), nil
	case "!password":
		return value.Password(node.Value), nil
	case "!byte":
		return value.Byte(node.Value), nil
	case "!binary":
		return value.Binary(node.Value), nil
	case "!date":
		return value.Date(node.Value), nil
	case "!date-time", "!datetime":
		return value.DateTime(node.Value), nil
	default:
		return nil, d.errorAt(node, ptr, fmt.Sprintf("unsupported literal tag %q", tag))
	}
}

// isLocalTag reports whether tag is one of the explicit variant tags, which
// are never converted.
func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

// conform converts a scalar decoded from its lexical form into the variant
// that s declares, when the text is a valid instance of it. Integers become
// Long under int64, Integer under int32 or no format, Float under float and
// Double under any other number format. Strings become Date or DateTime when
// they parse as RFC 3339 and Password, Byte or Binary under those formats;
// under other string formats YAML timestamps become plain Strings.
// Anything else keeps its lexical variant, so real mismatches are reported.
func conform(v value.Value, s *Schema) value.Value {
	if s == nil || s.Type == "" {
		return v
	}
	switch t := v.(type) {
	case value.Integer:
		return conformInt(int64(t), v, s)
	case value.Long:
		return conformInt(int64(t), v, s)
	case value.Double:
		if s.Type == value.BaseNumber && s.Format == "float" && math.Abs(float64(t)) <= math.MaxFloat32 {
			return value.Float(float32(t))
		}
	case value.String:
		return conformString(string(t), v, s)
	case value.Date:
		return conformString(string(t), v, s)
	case value.DateTime:
		return conformString(string(t), v, s)
	case value.Binary:
		return conformString(string(t), v, s)
	}
	return v
}

func conformInt(n int64, lexical value.Value, s *Schema) value.Value {
	switch s.Type {
	case value.BaseInteger:
		if s.Format == "int64" {
			return value.Long(n)
		}
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return value.Integer(int32(n))
		}
	case value.BaseNumber:
		if s.Format == "float" {
			return value.Float(float32(n))
		}
		return value.Double(float64(n))
	}
	return lexical
}

func conformString(text string, lexical value.Value, s *Schema) value.Value {
	if s.Type != value.BaseString {
		return lexical
	}
	switch s.Format {
	case "date":
		if _, err := time.Parse(time.DateOnly, text); err == nil {
			return value.Date(text)
		}
		return lexical
	case "date-time":
		if _, err := time.Parse(time.RFC3339, text); err == nil {
			return value.DateTime(text)
		}
		return lexical
	case "password":
		return value.Password(text)
	case "byte":
		return value.Byte(text)
	case "binary":
		return value.Binary(text)
	}
	return value.String(text)
}

func (d *decoder) literalError(node *yaml.Node, ptr, tag string, err error) error {
	return d.errorAt(node, ptr, fmt.Sprintf("invalid %s literal %q: %v", tag, node.Value, err))
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(cleanNumber(s), 0, 64)
}

// cleanNumber drops YAML digit separators and a leading plus sign.
func cleanNumber(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	return strings.TrimPrefix(s, "+")
}

// dateOrDateTime classifies a resolved timestamp by its lexical form.
func dateOrDateTime(s string) value.Value {
	if len(s) == len("2006-01-02") && !strings.ContainsAny(s, "Tt ") {
		return value.Date(s)
	}
	return value.DateTime(s)
}
