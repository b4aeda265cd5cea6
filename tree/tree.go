// Package tree provides a concrete ljson.Value implementation: an in-memory
// JSON value tree that preserves member order, array order, and any comments
// the parser was configured to retain.
package tree

import (
	"fmt"

	"github.com/go-ljson/ljson"
)

// A Node is a single value in a parsed tree. The concrete type is shared by
// every kind of JSON value; Kind reports which payload field is live.
type Node struct {
	kind ljson.Kind

	b bool
	i int64
	u uint64
	f float64
	s string
	y []byte

	elems   []*Node
	members []*Member

	line int
	com  Comments
}

// A Member is one key/value pair of an Object, in the order it was parsed.
type Member struct {
	Key   string
	Value *Node
}

// Comments holds the comment text bound to a Node, split by disposition per
// the BEFORE/INLINE/AFTER policy the parser implements.
type Comments struct {
	Before []string
	Line   []string
	After  []string
}

// IsEmpty reports whether c carries no comment text at all.
func (c Comments) IsEmpty() bool {
	return len(c.Before) == 0 && len(c.Line) == 0 && len(c.After) == 0
}

// New returns a fresh, Invalid root node, suitable as the destination for
// ljson.Parser.Parse.
func New() *Node { return &Node{} }

// Kind satisfies ljson.Value.
func (n *Node) Kind() ljson.Kind { return n.kind }

// Valid satisfies ljson.Value.
func (n *Node) Valid() bool { return n.kind != ljson.Invalid }

// SetKind satisfies ljson.Value. It is used only to coerce n into an empty
// Object or Array, or to reset it back to Invalid during recovery.
func (n *Node) SetKind(k ljson.Kind) { n.kind = k }

func (n *Node) SetBool(v bool) {
	n.kind = ljson.Bool
	n.b = v
}

func (n *Node) SetInt64(v int64) {
	n.kind = ljson.Int
	n.i = v
}

func (n *Node) SetUint64(v uint64) {
	n.kind = ljson.Uint
	n.u = v
}

func (n *Node) SetFloat64(v float64) {
	n.kind = ljson.Float
	n.f = v
}

func (n *Node) SetString(v string) {
	n.kind = ljson.String
	n.s = v
}

func (n *Node) SetBytes(v []byte) {
	n.kind = ljson.Bytes
	n.y = v
}

// StringValue satisfies ljson.Value, returning the decoded text of a String
// node. It is also the accessor callers use once the tree is built.
func (n *Node) StringValue() string { return n.s }

func (n *Node) AppendString(v string) { n.s += v }

func (n *Node) AppendBytes(v []byte) { n.y = append(n.y, v...) }

// Append adds an element to an Array node. v must be a *Node (the only
// concrete Value the parser ever constructs through New).
func (n *Node) Append(v ljson.Value) {
	n.elems = append(n.elems, v.(*Node))
}

// Put assigns a member of an Object node under key, appending a new member
// unless key already exists, in which case it is overwritten in place so
// member order is preserved for a duplicate key the same way a map literal
// would behave.
func (n *Node) Put(key string, v ljson.Value) {
	child := v.(*Node)
	for _, m := range n.members {
		if m.Key == key {
			m.Value = child
			return
		}
	}
	n.members = append(n.members, &Member{Key: key, Value: child})
}

// AddComment satisfies ljson.Value.
func (n *Node) AddComment(text string, pos ljson.CommentPos) {
	switch pos {
	case ljson.CommentBefore:
		n.com.Before = append(n.com.Before, text)
	case ljson.CommentInline:
		n.com.Line = append(n.com.Line, text)
	case ljson.CommentAfter:
		n.com.After = append(n.com.After, text)
	}
}

// Comments returns the comments bound to n. The returned value shares n's
// backing slices; callers should not mutate it.
func (n *Node) Comments() Comments { return n.com }

func (n *Node) Line() int     { return n.line }
func (n *Node) SetLine(v int) { n.line = v }

// New satisfies ljson.Value, returning a fresh unlinked *Node.
func (n *Node) New() ljson.Value { return &Node{} }

// Bool returns the node's boolean payload. It panics if Kind is not Bool.
func (n *Node) Bool() bool {
	n.mustBe(ljson.Bool)
	return n.b
}

// Int64 returns the node's signed integer payload. It panics if Kind is not
// Int.
func (n *Node) Int64() int64 {
	n.mustBe(ljson.Int)
	return n.i
}

// Uint64 returns the node's unsigned integer payload. It panics if Kind is
// not Uint.
func (n *Node) Uint64() uint64 {
	n.mustBe(ljson.Uint)
	return n.u
}

// Float64 returns the node's floating-point payload. It panics if Kind is
// not Float.
func (n *Node) Float64() float64 {
	n.mustBe(ljson.Float)
	return n.f
}

// Bytes returns the node's memory-buffer payload. It panics if Kind is not
// Bytes.
func (n *Node) Bytes() []byte {
	n.mustBe(ljson.Bytes)
	return n.y
}

// Len reports the number of elements of an Array, or members of an Object.
// For any other kind it returns 0.
func (n *Node) Len() int {
	switch n.kind {
	case ljson.Array:
		return len(n.elems)
	case ljson.Object:
		return len(n.members)
	default:
		return 0
	}
}

// Elem returns the i'th element of an Array node. It panics if Kind is not
// Array or i is out of range.
func (n *Node) Elem(i int) *Node {
	n.mustBe(ljson.Array)
	return n.elems[i]
}

// Elems returns the elements of an Array node in order. It panics if Kind is
// not Array.
func (n *Node) Elems() []*Node {
	n.mustBe(ljson.Array)
	return n.elems
}

// Members returns the members of an Object node in parse order. It panics if
// Kind is not Object.
func (n *Node) Members() []*Member {
	n.mustBe(ljson.Object)
	return n.members
}

// Find returns the first member of an Object node with the given key, or
// nil if none matches. It panics if Kind is not Object.
func (n *Node) Find(key string) *Member {
	n.mustBe(ljson.Object)
	for _, m := range n.members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (n *Node) mustBe(k ljson.Kind) {
	if n.kind != k {
		panic(fmt.Sprintf("tree: value is %v, not %v", n.kind, k))
	}
}
