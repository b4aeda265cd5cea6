package ljson

import (
	"fmt"
	"io"
)

// Parser is a permissive JSON reader: a recursive container-descent state
// machine that assembles a caller-supplied Value tree while tolerating (and,
// depending on Options.Flags, warning or erroring about) comments, relaxed
// literal case, mismatched brackets, multi-line strings, and a vendor
// memory-buffer extension.
//
// A Parser is not safe for concurrent use; construct one per call to Parse,
// or reuse one serially, since each call to Parse resets all transient
// state.
type Parser struct {
	opts Options

	src   *source
	diags *diagnostics

	depth int // peak nesting observed, monotonic
	level int // current nesting

	// Comment-binder slots.
	next       Value
	current    Value
	lastStored Value

	pendingComment     string
	pendingCommentLine int
	havePending        bool
}

// New constructs a Parser with the given options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Errors returns the accumulated error diagnostics from the most recent
// Parse/Check call, in discovery order.
func (p *Parser) Errors() []string { return p.diags.errors }

// Warnings returns the accumulated warning diagnostics from the most recent
// Parse/Check call, in discovery order.
func (p *Parser) Warnings() []string { return p.diags.warnings }

// ErrorCount reports len(Errors()).
func (p *Parser) ErrorCount() int { return len(p.diags.errors) }

// WarningCount reports len(Warnings()).
func (p *Parser) WarningCount() int { return len(p.diags.warnings) }

// Depth reports the maximum container nesting actually entered during the
// most recent Parse/Check call.
func (p *Parser) Depth() int { return p.depth }

// Line reports the 1-based source line the parser had reached when the most
// recent Parse/Check call stopped.
func (p *Parser) Line() int { return p.src.line }

// reset clears all transient per-call state.
func (p *Parser) reset(r io.Reader) {
	p.src = newSource(r)
	p.diags = newDiagnostics(p.opts.maxErrors())
	p.depth = 0
	p.level = 0
	p.next, p.current, p.lastStored = nil, nil, nil
	p.pendingComment = ""
	p.pendingCommentLine = 0
	p.havePending = false
}

// Parse parses a single JSON(-ish) document from r into root, which must be
// a freshly constructed, Invalid Value. It returns the number of errors
// recorded; diagnostics are retrieved separately via Errors and Warnings.
// A non-nil error is returned only for one fatal condition: no
// start-of-document character was ever found.
func (p *Parser) Parse(r io.Reader, root Value) (int, error) {
	p.reset(r)
	err := p.run(root)
	return p.ErrorCount(), err
}

// Check parses r purely to validate it and collect diagnostics, discarding
// the resulting tree.
func (p *Parser) Check(r io.Reader) int {
	n, _ := p.Parse(r, newSink())
	return n
}

// run performs the start search and, if a root container was found, the
// recursive descent into it.
func (p *Parser) run(root Value) error {
	startByte, found := p.findStart()
	if !found {
		p.diags.errorf(p.src.pos(), "Cannot find a start object/array character")
		return fmt.Errorf("ljson: %s", p.diags.errors[len(p.diags.errors)-1])
	}
	switch startByte {
	case '{':
		root.SetKind(Object)
	case '[':
		root.SetKind(Array)
	}
	p.descend(root)
	return nil
}

// findStart scans bytes until it finds '{' or '[', skipping comments (with
// the usual AllowComments diagnostic) and silently discarding everything
// else. Any comment seen here is left pending rather than attached: the
// comment binder's slots are only populated once descend is entered, so
// attaching here would always miss and report a phantom "no value to
// attach to" error for an ordinary leading comment.
func (p *Parser) findStart() (byte, bool) {
	for {
		b := p.src.read()
		if b < 0 {
			return 0, false
		}
		switch b {
		case '{', '[':
			return byte(b), true
		case '/':
			p.skipComment()
		}
	}
}

// skipWhitespace consumes ASCII whitespace bytes and returns the first
// non-whitespace byte, or -1 at EOF.
func (p *Parser) skipWhitespace() int {
	for {
		b := p.src.peekByte()
		switch b {
		case ' ', '\t', '\n', '\r':
			p.src.read()
			continue
		}
		return b
	}
}
