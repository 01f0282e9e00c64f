package pathutil

import (
	"strconv"
	"strings"
)

// Root is the pointer of the document (or standalone schema) root.
const Root = "#"

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape encodes a single pointer segment.
func Escape(segment string) string {
	if !strings.ContainsAny(segment, "~/") {
		return segment
	}
	return escaper.Replace(segment)
}

// Unescape decodes a single pointer segment.
func Unescape(segment string) string {
	if !strings.Contains(segment, "~") {
		return segment
	}
	return unescaper.Replace(segment)
}

// Join appends escaped segments to an existing pointer.
func Join(base string, segments ...string) string {
	if len(segments) == 0 {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(Escape(seg))
	}
	return b.String()
}

// JoinIndex appends an array index to an existing pointer.
func JoinIndex(base string, i int) string {
	return base + "/" + strconv.Itoa(i)
}

// PointerBuilder provides incremental pointer construction with push/pop
// semantics. The full string is only materialized when String() is called.
type PointerBuilder struct {
	root     string
	segments []string
	length   int // escaped segment bytes plus one separator each
}

// Reset clears the builder and sets the root that segments are appended to.
// An empty root means Root.
func (p *PointerBuilder) Reset(root string) {
	if root == "" {
		root = Root
	}
	p.root = root
	p.segments = p.segments[:0]
	p.length = 0
}

// Push adds an escaped segment.
func (p *PointerBuilder) Push(segment string) {
	seg := Escape(segment)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// PushIndex adds an array index segment.
func (p *PointerBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last segment.
func (p *PointerBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Depth returns the number of segments pushed below the root.
func (p *PointerBuilder) Depth() int {
	return len(p.segments)
}

// String materializes the full pointer.
func (p *PointerBuilder) String() string {
	root := p.root
	if root == "" {
		root = Root
	}
	if len(p.segments) == 0 {
		return root
	}
	var b strings.Builder
	b.Grow(len(root) + p.length)
	b.WriteString(root)
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}
