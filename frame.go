package ljson

// descend drives one container's worth of key/value assembly, from just
// after its opening bracket until its closing bracket (or EOF) is reached.
// It is entered with parent already set to Object or Array.
func (p *Parser) descend(parent Value) {
	p.level++
	if p.level > p.depth {
		p.depth = p.level
	}
	defer func() { p.level-- }()

	value := parent.New()
	key := ""
	p.next, p.current, p.lastStored = value, nil, nil

	// A comment seen before this container's first token, including one
	// skipped while searching for the document's start character, lands here
	// as the first pending comment this frame sees, with the frame's own
	// scratch value already installed as next: it binds BEFORE to that
	// value.
	p.attachComment(parent)

	for {
		b := p.skipWhitespace()
		if b < 0 {
			p.diags.warnf(p.opts.Flags, Missing, p.src.pos(), "`]`/`}` missing at end of file")
			p.storeValue(-1, parent, key, value)
			break
		}
		p.src.read() // consume the byte skipWhitespace only peeked at

		switch b {
		case '/':
			p.skipComment()
			p.attachComment(parent)

		case '{':
			if p.checkOpenContext(parent, key, value, '{') {
				value.SetKind(Object)
				p.mark(value)
				p.descend(value)
				// The child frame drove current/next/lastStored through its own
				// recursion; restore this frame's view of the container it just
				// finished populating before resuming the comment binder.
				p.mark(value)
			}

		case '[':
			if p.checkOpenContext(parent, key, value, '[') {
				value.SetKind(Array)
				p.mark(value)
				p.descend(value)
				p.mark(value)
			}

		case '"':
			p.readQuotedString(value)
			p.mark(value)

		case '\'':
			p.readMemoryBuffer(value)
			p.mark(value)

		case ':':
			p.handleColon(parent, &key, value)

		case ',':
			p.storeValue(',', parent, key, value)
			key = ""
			value = parent.New()
			p.next, p.current = value, nil

		case '}':
			if parent.Kind() != Object {
				p.diags.warnf(p.opts.Flags, Missing, p.src.pos(), "'}' does not match the open array character")
			}
			p.storeValue('}', parent, key, value)
			return

		case ']':
			if parent.Kind() != Array {
				p.diags.warnf(p.opts.Flags, Missing, p.src.pos(), "']' does not match the open object character")
			}
			p.storeValue(']', parent, key, value)
			return

		default:
			line := p.src.line
			p.readUnquotedToken(value, b)
			p.mark(value)
			// A token that ends at a line break has already advanced the line
			// counter by peeking at it; stamp the line the token was read on.
			value.SetLine(line)
		}
	}
}

// mark records the line a just-filled scratch value was read on and installs
// it as the comment binder's current slot. The line has to be known before
// the value is committed, since an inline comment trailing a scalar arrives
// before the comma or bracket that commits it.
func (p *Parser) mark(v Value) {
	v.SetLine(p.src.line)
	p.current, p.next = v, nil
}

// handleColon validates and performs key promotion: the value just read
// must be a bare string, the parent must be an object, and no key may
// already be pending.
func (p *Parser) handleColon(parent Value, key *string, value Value) {
	switch {
	case parent.Kind() != Object:
		p.diags.errorf(p.src.pos(), "':' is not permitted outside an object")
	case value.Kind() != String:
		p.diags.errorf(p.src.pos(), "':' missing a string key")
	case *key != "":
		p.diags.errorf(p.src.pos(), "key already defined before ':'")
	default:
		*key = value.StringValue()
		value.SetKind(Invalid)
	}
}

// checkOpenContext validates the surrounding context before recursing into
// a nested '{' or '['.
func (p *Parser) checkOpenContext(parent Value, key string, value Value, open byte) bool {
	switch parent.Kind() {
	case Object:
		if key == "" {
			p.diags.errorf(p.src.pos(), "missing key before '%c'", open)
			return false
		}
		if value.Valid() {
			p.diags.errorf(p.src.pos(), "'%c' cannot follow a value: ',' missing?", open)
			return false
		}
	case Array:
		if value.Valid() {
			p.diags.errorf(p.src.pos(), "'%c' cannot follow a value: ',' missing?", open)
			return false
		}
	}
	return true
}

// storeValue commits the frame's current key/value pair into parent. It
// does not stamp the committed value's line number: mark already did that
// when the value was read, which is what lets an inline comment trailing
// the value match before its container closes.
func (p *Parser) storeValue(trigger int, parent Value, key string, value Value) {
	emptyValue := !value.Valid()
	emptyKey := key == ""

	if emptyValue && emptyKey {
		if trigger == '}' || trigger == ']' {
			return // empty container, or trailing-comma tolerance
		}
		p.diags.errorf(p.src.pos(), "key or value is missing for JSON value")
		return
	}

	switch parent.Kind() {
	case Object:
		if emptyValue {
			p.diags.errorf(p.src.pos(), "'value' is missing for JSON object type")
			return
		}
		if emptyKey {
			p.diags.errorf(p.src.pos(), "'key' is missing for JSON object type")
			return
		}
		parent.Put(key, value)
		p.lastStored = value

	case Array:
		if emptyValue {
			p.diags.errorf(p.src.pos(), "'value' is missing for JSON array type")
			return
		}
		if !emptyKey {
			p.diags.errorf(p.src.pos(), "'key' is not permitted in JSON array type")
			return
		}
		parent.Append(value)
		p.lastStored = value
	}
}

// skipComment reads a C or C++ style comment and stashes its text as the
// pending comment for the binder to place. The '/' that triggered it has
// already been consumed by the caller.
func (p *Parser) skipComment() {
	startLine := p.src.line
	switch b := p.src.read(); b {
	case '/':
		buf := []byte{'/', '/'}
		for {
			nb := p.src.peekByte()
			if nb < 0 {
				break
			}
			if nb == '\n' {
				p.src.read()
				break
			}
			buf = append(buf, byte(p.src.read()))
		}
		p.diags.warnf(p.opts.Flags, AllowComments, LineCol{Line: startLine}, "C++ comment")
		p.setPendingComment(string(buf), startLine)

	case '*':
		buf := []byte{'/', '*'}
		closed := false
		for {
			nb := p.src.read()
			if nb < 0 {
				break
			}
			buf = append(buf, byte(nb))
			if nb == '*' && p.src.peekByte() == '/' {
				p.src.read()
				buf = append(buf, '/')
				closed = true
				break
			}
		}
		if !closed {
			p.diags.errorf(p.src.pos(), "Unexpected end of file in comment")
		}
		p.diags.warnf(p.opts.Flags, AllowComments, LineCol{Line: startLine}, "C comment")
		p.setPendingComment(string(buf), startLine)

	default:
		p.diags.errorf(p.src.pos(), "Strange '/'")
		// Lossy recovery: swallow bytes until "*/" or LF.
		for {
			nb := p.src.read()
			if nb < 0 || nb == '\n' {
				break
			}
			if nb == '*' && p.src.peekByte() == '/' {
				p.src.read()
				break
			}
		}
	}
}

func (p *Parser) setPendingComment(text string, line int) {
	p.pendingComment = text
	p.pendingCommentLine = line
	p.havePending = true
}

// attachComment places the pending comment, if any, onto a value: it
// examines current, next, and lastStored in that order, preferring an
// inline match on the comment's originating line, then falling back to the
// before/after policy selected by the CommentsAfter flag. parent is the
// enclosing container, used to recognize when current is just that
// container's own placeholder rather than a real committed value.
func (p *Parser) attachComment(parent Value) {
	if !p.havePending {
		return
	}
	text, line := p.pendingComment, p.pendingCommentLine
	p.pendingComment, p.havePending = "", false

	if !p.opts.Flags.Has(StoreComments) {
		return
	}

	for _, slot := range [...]Value{p.current, p.next, p.lastStored} {
		if slot != nil && slot.Line() == line {
			slot.AddComment(text, CommentInline)
			return
		}
	}

	if p.opts.Flags.Has(CommentsAfter) {
		if p.current != nil && p.current != parent && p.current.Valid() {
			p.current.AddComment(text, CommentAfter)
			return
		}
		if p.lastStored != nil {
			p.lastStored.AddComment(text, CommentAfter)
			return
		}
		p.diags.errorf(p.src.pos(), "Cannot find a value for storing the comment (flag AFTER)")
		return
	}

	if p.next != nil {
		p.next.AddComment(text, CommentBefore)
		return
	}
	p.diags.errorf(p.src.pos(), "Cannot find a value for storing the comment (flag BEFORE)")
}
