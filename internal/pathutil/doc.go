// Package pathutil builds the '#'-rooted pointers that locate findings in
// the logical document tree.
//
// Pointers follow JSON Pointer (RFC 6901) segment escaping: '~' becomes "~0"
// and '/' becomes "~1". Segments are property names or zero-based indices.
//
//	var b pathutil.PointerBuilder
//	b.Reset("#")
//	b.Push("properties")
//	b.Push("id")
//	b.String() // "#/properties/id"
package pathutil
