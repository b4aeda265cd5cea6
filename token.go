package ljson

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// utf8SeqLen reports the expected byte length of a UTF-8 sequence that
// begins with lead byte b, or 1 if b is not a valid lead byte (in which
// case the subsequent utf8.Valid check will flag the sequence).
func utf8SeqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// delimiter reports whether b terminates an unquoted token.
func delimiter(b int) bool {
	switch b {
	case ' ', ',', ':', '[', ']', '{', '}', '\t', '\n', '\r', '\b', -1:
		return true
	}
	return false
}

// readQuotedString reads a double-quoted string body. The opening quote has
// already been consumed by the caller. It returns the freshly decoded text
// of this call, not the cumulative value of value (which may already hold
// earlier lines from a multi-line join). The frame loop does not use this
// return value: key promotion after a ':' reads value.StringValue(), the
// cumulative text.
func (p *Parser) readQuotedString(value Value) string {
	var buf []byte
	invalid := false

	for {
		b := p.src.read()
		if b < 0 {
			p.diags.errorf(p.src.pos(), "Unexpected end of file in string")
			break
		}
		if b == '"' {
			break
		}
		if b == '\\' {
			esc := p.src.read()
			switch esc {
			case 't':
				buf = append(buf, '\t')
			case 'n':
				buf = append(buf, '\n')
			case 'b':
				buf = append(buf, '\b')
			case 'r':
				buf = append(buf, '\r')
			case 'f':
				buf = append(buf, '\f')
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case 'u':
				v, ok := p.readHex4()
				if !ok {
					p.diags.errorf(p.src.pos(), "Invalid Unicode Escaped Sequence")
					continue
				}
				buf = append(buf, encodeCodeUnit(v)...)
			default:
				p.diags.errorf(p.src.pos(), "Unknown escaped character")
			}
			continue
		}
		if b >= 0x80 && !p.opts.Flags.Has(NoUTF8Stream) {
			// A raw multi-byte sequence typed directly in the source. Validate
			// it as UTF-8; escape-produced bytes, including a deliberately
			// "invalid" surrogate half from \uXXXX, are never re-validated
			// here since they did not come from the raw stream.
			seq := []byte{byte(b)}
			for i, n := 1, utf8SeqLen(byte(b)); i < n; i++ {
				nb := p.src.read()
				if nb < 0 {
					break
				}
				seq = append(seq, byte(nb))
			}
			if !utf8.Valid(seq) {
				invalid = true
			}
			buf = append(buf, seq...)
			continue
		}
		buf = append(buf, byte(b))
	}

	decoded := string(buf)
	if invalid {
		p.diags.errorf(p.src.pos(), "the UTF-8 stream is invalid")
		decoded = "<UTF-8 stream not valid>"
	}

	switch value.Kind() {
	case String:
		p.diags.warnf(p.opts.Flags, MultiString, p.src.pos(), "adjacent string literals joined")
		value.AppendString(decoded)
	case Invalid:
		value.SetString(decoded)
	default:
		p.diags.errorf(p.src.pos(), "String value cannot follow another value")
	}
	return decoded
}

// readHex4 reads exactly four hexadecimal digits and returns their value.
func (p *Parser) readHex4() (uint16, bool) {
	var v uint16
	for i := 0; i < 4; i++ {
		b := p.src.read()
		var d int
		switch {
		case b >= '0' && b <= '9':
			d = b - '0'
		case b >= 'a' && b <= 'f':
			d = b - 'a' + 10
		case b >= 'A' && b <= 'F':
			d = b - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}

// encodeCodeUnit encodes a raw 16-bit \uXXXX code unit to UTF-8 using the
// classic byte-width rules, without validating that the code point is a
// legal scalar value: a lone surrogate half (U+D800-U+DFFF) is encoded
// verbatim as a three-byte sequence rather than rejected or paired with a
// neighbor.
func encodeCodeUnit(v uint16) []byte {
	switch {
	case v < 0x80:
		return []byte{byte(v)}
	case v < 0x800:
		return []byte{
			byte(0xC0 | v>>6),
			byte(0x80 | v&0x3F),
		}
	default:
		return []byte{
			byte(0xE0 | v>>12),
			byte(0x80 | (v>>6)&0x3F),
			byte(0x80 | v&0x3F),
		}
	}
}

// readMemoryBuffer reads the vendor memory-buffer extension: a single-quoted
// run of hex byte pairs, optionally whitespace-separated. The opening quote
// has already been consumed by the caller.
func (p *Parser) readMemoryBuffer(value Value) {
	p.diags.warnf(p.opts.Flags, MemoryBuff, p.src.pos(), "memory buffer (single-quoted) value")

	var buf []byte
	invalidDigits := 0
	for {
		hi := p.src.read()
		// A run of byte pairs in the "'41 42 43'" form reads as clean
		// bytes only if spaces between pairs are skipped here; otherwise
		// each separating space would be counted as an invalid digit.
		for hi == ' ' || hi == '\t' {
			hi = p.src.read()
		}
		if hi < 0 {
			p.diags.errorf(p.src.pos(), "Unexpected end of file in memory buffer")
			break
		}
		if hi == '\'' {
			break
		}
		lo := p.src.read()
		if lo < 0 {
			p.diags.errorf(p.src.pos(), "Unexpected end of file in memory buffer")
			break
		}
		if lo == '\'' {
			// Odd trailing digit is silently dropped.
			break
		}
		hiv, hiOK := hexNibble(byte(hi))
		lov, loOK := hexNibble(byte(lo))
		if !hiOK {
			invalidDigits++
		}
		if !loOK {
			invalidDigits++
		}
		buf = append(buf, byte(hiv<<4|lov))
	}

	if invalidDigits > 0 {
		p.diags.errorf(p.src.pos(), "invalid hex digit in memory buffer (%d invalid)", invalidDigits)
	}

	switch value.Kind() {
	case Bytes:
		value.AppendBytes(buf)
	case Invalid:
		value.SetBytes(buf)
	default:
		p.diags.errorf(p.src.pos(), "Memory buffer value cannot follow another value")
	}
}

// hexNibble decodes one memory-buffer hex digit: a digit in [0-9] yields
// c-'0'; a digit in [A-F] yields c-'0'-7. Lowercase a-f is NOT accepted and
// lands above 15, so it is reported invalid.
func hexNibble(c byte) (v int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'A' && c <= 'F':
		v = int(c-'0') - 7
	default:
		v = 99
	}
	return v, v >= 0 && v <= 15
}

// readUnquotedToken reads a bare token (a literal like true/false/null, or a
// number) and dispatches to the numeric coercion ladder when it isn't one of
// the recognized literals. The byte that starts the token has already been
// consumed by the caller and is passed as first. The delimiter that ends the
// token is left unconsumed for the frame loop.
func (p *Parser) readUnquotedToken(value Value, first int) {
	buf := []byte{byte(first)}
	for !delimiter(p.src.peekByte()) {
		buf = append(buf, byte(p.src.read()))
	}
	tok := string(buf)

	if value.Valid() {
		p.diags.errorf(p.src.pos(), "Value '%s' cannot follow a value: ',' or ':' missing?", tok)
		return
	}

	if matchLiteral(tok, "null") {
		p.maybeCaseWarn(tok, "null")
		value.SetKind(Null)
		return
	}
	if matchLiteral(tok, "true") {
		p.maybeCaseWarn(tok, "true")
		value.SetBool(true)
		return
	}
	if matchLiteral(tok, "false") {
		p.maybeCaseWarn(tok, "false")
		value.SetBool(false)
		return
	}

	if decodeNumber(tok, value) {
		return
	}

	p.diags.errorf(p.src.pos(), "Literal '%s' is incorrect (did you forget quotes?)", tok)
}

// matchLiteral reports whether tok matches lit case-insensitively.
func matchLiteral(tok, lit string) bool {
	return strings.EqualFold(tok, lit)
}

func (p *Parser) maybeCaseWarn(tok, lit string) {
	if mem.S(tok).Equal(mem.S(lit)) {
		return
	}
	p.diags.warnf(p.opts.Flags, Case, p.src.pos(), "%q is not the correct case for %q", tok, lit)
}
