package ljson

// sink is a discard implementation of Value used by Check's syntax-only
// mode. It tracks only what the frame machine needs to make decisions
// (kind, line, and the string payload needed for key promotion) and drops
// everything else.
type sink struct {
	kind Kind
	str  string
	line int
}

func newSink() *sink { return &sink{} }

func (s *sink) Kind() Kind        { return s.kind }
func (s *sink) Valid() bool       { return s.kind != Invalid }
func (s *sink) SetKind(k Kind)    { s.kind = k }
func (s *sink) SetBool(bool)      { s.kind = Bool }
func (s *sink) SetInt64(int64)    { s.kind = Int }
func (s *sink) SetUint64(uint64)  { s.kind = Uint }
func (s *sink) SetFloat64(float64) { s.kind = Float }
func (s *sink) SetString(v string) {
	s.kind = String
	s.str = v
}
func (s *sink) SetBytes([]byte) { s.kind = Bytes }

func (s *sink) AppendString(v string) { s.str += v }
func (s *sink) AppendBytes([]byte)    {}

func (s *sink) Append(Value)            {}
func (s *sink) Put(string, Value)       {}
func (s *sink) AddComment(string, CommentPos) {}

func (s *sink) StringValue() string { return s.str }

func (s *sink) Line() int     { return s.line }
func (s *sink) SetLine(n int) { s.line = n }

func (s *sink) New() Value { return newSink() }
