// Package ljson implements a permissive JSON reader aimed at human-edited
// configuration files rather than strict RFC 8259 conformance. The strict
// subset is recoverable by configuration: construct a Parser with an empty
// Options.Flags (Strict) to reject every extension as an error.
//
// # Parsing
//
// Construct a Parser with the tolerance flags and diagnostic cap you want,
// then call Parse with a destination Value, typically a *tree.Node from
// the sibling ljson/tree package, though any type implementing Value will
// do:
//
//	p := ljson.New(ljson.Options{Flags: ljson.Tolerant})
//	root := tree.New()
//	if _, err := p.Parse(strings.NewReader(src), root); err != nil {
//	    log.Fatal(err) // only the "no start character" fatal condition
//	}
//	for _, w := range p.Warnings() {
//	    log.Print(w)
//	}
//
// Parse never aborts on a recoverable syntax error; it records a
// diagnostic and keeps going, so Errors and Warnings should be checked
// after a successful call even when err is nil.
//
// # Tolerance flags
//
// Each Flag bit authorizes one extension over strict JSON: comments,
// mixed-case literals, mismatched brackets, multi-line string
// concatenation, and a vendor memory-buffer scalar, and controls whether
// using it is reported as a warning (flag set) or an error (flag clear).
// Tolerant bundles the extensions most hand-edited documents need; Strict
// rejects all of them.
//
// # Value trees
//
// This package never constructs a value tree itself: the tree's storage,
// along with a companion serializer, is out of the core's scope. Parse
// assembles into whatever Value implementation the caller supplies.
package ljson
