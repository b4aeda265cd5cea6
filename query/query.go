// Package query implements small combinators for addressing and projecting
// values out of a parsed configuration document.
//
// The basic building block is a path: a sequence of object keys and/or
// array indices describing a route from the document root to one setting.
// Given a document parsed into a *tree.Node, Eval walks a Path (or a
// Compile'd path expression, see expr.go) down to the addressed value.
//
// For example, given the document parsed from:
//
//	{"server": {"host": "localhost", "port": 8080}}
//
// the query
//
//	query.Path("server", "port")
//
// addresses the value 8080.
package query

import (
	"fmt"

	"github.com/go-ljson/ljson"
	"github.com/go-ljson/ljson/tree"
)

// Eval evaluates the given query beginning from root, returning the
// resulting value or an error.
func Eval(root *tree.Node, q Query) (*tree.Node, error) {
	return q.eval(root)
}

// A Query describes a lookup or projection over a parsed document.
type Query interface {
	eval(*tree.Node) (*tree.Node, error)
}

// Path addresses a nested object key or array index from the document root.
// If no keys are given, the root itself is addressed. Each key must be a
// string (an object member name), an int (an array index, negative counting
// from the end), or a Query (an already-built step).
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

type objKey string

func (o objKey) eval(v *tree.Node) (*tree.Node, error) {
	if v.Kind() != ljson.Object {
		return nil, fmt.Errorf("got %v, want object", v.Kind())
	}
	mem := v.Find(string(o))
	if mem == nil {
		return nil, fmt.Errorf("key %q not found", o)
	}
	return mem.Value, nil
}

type nthQuery int

func (nq nthQuery) eval(v *tree.Node) (*tree.Node, error) {
	if v.Kind() != ljson.Array {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	idx := int(nq)
	if idx < 0 {
		idx += v.Len()
	}
	if idx < 0 || idx >= v.Len() {
		return nil, fmt.Errorf("index %d out of range (0..%d)", nq, v.Len())
	}
	return v.Elem(idx), nil
}

// Seq is a sequential composition of path steps, as built up by Path when
// given more than one key. An empty sequence addresses the root.
type Seq []Query

func (q Seq) eval(v *tree.Node) (*tree.Node, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Exists reports whether the path addressed by keys resolves to a value in
// root, without treating absence as an error, the usual shape of a check
// for an optional setting before falling back to a default.
func Exists(root *tree.Node, keys ...any) bool {
	_, err := Path(keys...).eval(root)
	return err == nil
}

// Object projects a new object whose members are built by evaluating each
// query against root, for assembling a normalized view out of settings that
// a document spreads across several sections.
type Object map[string]Query

func (o Object) eval(v *tree.Node) (*tree.Node, error) {
	out := tree.New()
	out.SetKind(ljson.Object)
	for key, q := range o {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", key, err)
		}
		out.Put(key, val)
	}
	return out, nil
}

// Array projects a new array with the values produced by matching the given
// queries against root, for building up a composite value (such as a joined
// address) out of several looked-up settings.
type Array []Query

func (a Array) eval(v *tree.Node) (*tree.Node, error) {
	out := tree.New()
	out.SetKind(ljson.Array)
	for i, q := range a {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out.Append(val)
	}
	return out, nil
}

// String ignores its input and returns the given literal string, for
// filling in separators or defaults alongside looked-up settings in an
// Object or Array projection.
func String(s string) Query {
	n := tree.New()
	n.SetString(s)
	return constQuery{n}
}

type constQuery struct{ v *tree.Node }

func (c constQuery) eval(*tree.Node) (*tree.Node, error) { return c.v, nil }
