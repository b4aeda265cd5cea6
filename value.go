package ljson

// Kind classifies the type currently stored in a Value.
type Kind int

// The kinds a Value can hold. Invalid is the zero value: a Value that has
// not yet been assigned anything, the state every scratch slot starts and
// ends a frame in.
const (
	Invalid Kind = iota
	Null
	Bool
	Int     // signed integer
	Uint    // unsigned integer
	Float   // floating point
	String  // quoted string
	Bytes   // memory-buffer extension
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// CommentPos records where a comment attaches relative to the value it is
// bound to.
type CommentPos int

const (
	// CommentBefore attaches a comment that precedes its value, found on a
	// line of its own above the value.
	CommentBefore CommentPos = iota
	// CommentInline attaches a comment found on the same source line as its
	// value.
	CommentInline
	// CommentAfter attaches a comment that follows its value, when the
	// COMMENTS_AFTER policy flag is set.
	CommentAfter
)

// Value is the value-tree node the parser assembles into. It is the single
// point of contact between the core parser in this package and whatever
// concrete tree representation a caller wants to build; the tree's own
// storage deliberately stays out of this package's scope.
//
// The ljson/tree package supplies a ready-made implementation. Callers with
// their own tree representation (for example one shared with an existing
// configuration object model) can implement Value directly instead.
type Value interface {
	// Kind reports the type currently held.
	Kind() Kind
	// Valid reports whether Kind is anything other than Invalid.
	Valid() bool

	// SetKind coerces the value to an empty container, to Null, or back to
	// Invalid. It is used only for Array, Object and Null (which carry no
	// payload) and for Invalid (when a string is promoted to an object key);
	// the other scalar kinds are set via the Set* methods below, which imply
	// the kind.
	SetKind(Kind)

	SetBool(bool)
	SetInt64(int64)
	SetUint64(uint64)
	SetFloat64(float64)
	SetString(string)
	SetBytes([]byte)

	// StringValue returns the decoded text of a String value. It exists
	// solely so the frame machine can promote a just-read string to an
	// object key after seeing ':' without requiring every concrete Value to
	// expose its full internal representation.
	StringValue() string

	// AppendString concatenates onto an existing String value, for joining
	// adjacent string literals into one value.
	AppendString(string)
	// AppendBytes concatenates onto an existing Bytes value, the memory-buffer
	// analog of AppendString.
	AppendBytes([]byte)

	// Append adds an element to an Array value.
	Append(Value)
	// Put assigns a member of an Object value under key, overwriting any
	// existing member with the same key.
	Put(key string, v Value)

	// AddComment attaches a comment to the value with the given disposition.
	AddComment(text string, pos CommentPos)

	// Line reports the 1-based source line recorded for the value when it was
	// read (for a container, the line its closing bracket was read on);
	// SetLine sets it. Used by the comment binder.
	Line() int
	SetLine(int)

	// New returns a freshly constructed, unlinked Value of the same concrete
	// family as the receiver. The parser calls this whenever it needs a new
	// scratch slot (a frame's local "value", or an object/array element)
	// without knowing the concrete tree type in use.
	New() Value
}
