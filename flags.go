package ljson

// Flag is a bitmask of tolerance switches controlling which JSON-with-
// extensions features the parser accepts, and whether accepting them is
// reported as a warning or an error.
type Flag uint32

// Tolerance flags. Each, when set, downgrades the diagnostic for the
// corresponding extension from an error to a warning; when clear, using the
// extension is reported as an error instead.
const (
	// AllowComments accepts C/C++ style comments as a warning instead of an
	// error.
	AllowComments Flag = 1 << iota
	// StoreComments attaches seen comments to value nodes via Value.AddComment.
	// Comments are always recognized and skipped once AllowComments permits
	// them; this flag only controls whether they are retained.
	StoreComments
	// Case accepts mixed-case null/true/false literals as a warning.
	Case
	// Missing accepts a mismatched or absent closing bracket as a warning.
	Missing
	// MultiString accepts adjacent string literals as an implicit
	// concatenation, as a warning.
	MultiString
	// CommentsAfter changes the default (BEFORE) comment-binding policy to
	// AFTER for comments that do not share a line with a tracked value.
	CommentsAfter
	// MemoryBuff accepts single-quoted hex-byte memory buffers, as a warning.
	MemoryBuff
	// NoUTF8Stream treats input bytes as opaque locale bytes rather than
	// UTF-8. Preserved for interface compatibility with the original; on a
	// target where strings are always Unicode this only affects whether a
	// UTF-8 decode failure is reported (see token.go).
	NoUTF8Stream
)

// Strict is the empty flag set: every extension is an error, matching
// wxJSONREADER_STRICT in the original.
const Strict Flag = 0

// Tolerant is a shorthand bundling the extensions most documents need:
// comments, case-insensitive literals, mismatched brackets, and multi-line
// strings, but not comment storage, the AFTER binding policy, memory
// buffers, or the legacy locale-bytes toggle.
const Tolerant = AllowComments | Case | Missing | MultiString

// Has reports whether f has all of the bits in want set.
func (f Flag) Has(want Flag) bool { return f&want == want }

// Options configures a Parser.
type Options struct {
	// Flags selects which extensions are tolerated (as warnings) versus
	// rejected (as errors), and configures comment handling.
	Flags Flag

	// MaxErrors caps the number of errors and (independently) the number of
	// warnings recorded; each list's final entry past the cap becomes a
	// sentinel instead of a real diagnostic. Zero means the default of 30.
	MaxErrors int
}

func (o Options) maxErrors() int {
	if o.MaxErrors <= 0 {
		return 30
	}
	return o.MaxErrors
}
