package ljson

import (
	"errors"
	"strconv"
)

// decodeNumber tries signed integer, then unsigned integer, then double, in
// an order gated by the token's leading sign character, and assigns the
// first rung that accepts the token.
//
// On success, the decoded value is assigned into value and decodeNumber
// returns true. On failure (the token is not numeric at all, by any rung),
// it returns false and leaves value untouched.
func decodeNumber(tok string, value Value) bool {
	if tok == "" {
		return false
	}
	switch tok[0] {
	case '+':
		// Leading '+' skips the signed rung entirely: strconv.ParseUint does
		// not accept a sign, so the '+' is stripped before that attempt.
		if u, err := strconv.ParseUint(tok[1:], 10, 64); err == nil {
			value.SetUint64(u)
			return true
		}
		if f, ok := parseFloatTolerant(tok); ok {
			value.SetFloat64(f)
			return true
		}
		return false

	case '-':
		// Leading '-' skips the unsigned rung: a negative magnitude can never
		// fit an unsigned type.
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			value.SetInt64(i)
			return true
		}
		if f, ok := parseFloatTolerant(tok); ok {
			value.SetFloat64(f)
			return true
		}
		return false

	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			value.SetInt64(i)
			return true
		}
		if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
			value.SetUint64(u)
			return true
		}
		if f, ok := parseFloatTolerant(tok); ok {
			value.SetFloat64(f)
			return true
		}
		return false

	default:
		return false
	}
}

// parseFloatTolerant wraps strconv.ParseFloat to accept magnitude overflow
// (ErrRange) as a successful decode to +/-Inf: a token like "1e400" becomes
// signed infinity rather than a decode failure that falls through to the
// "Literal ... is incorrect" error.
func parseFloatTolerant(tok string) (float64, bool) {
	f, err := strconv.ParseFloat(tok, 64)
	if err == nil {
		return f, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}
