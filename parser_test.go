package ljson_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-ljson/ljson"
	"github.com/go-ljson/ljson/tree"
)

func parse(t *testing.T, input string, opts ljson.Options) (*tree.Node, *ljson.Parser) {
	t.Helper()
	root := tree.New()
	p := ljson.New(opts)
	if _, err := p.Parse(strings.NewReader(input), root); err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return root, p
}

func TestLineCounterFidelity(t *testing.T) {
	tests := []struct {
		input    string
		wantLine int
	}{
		{"{}", 1},
		{"{\n}", 2},
		{"{\r\n}", 2},
		{"{\r}", 2},
		{"{\n\n\n}", 4},
	}
	for _, tc := range tests {
		root := tree.New()
		p := ljson.New(ljson.Options{})
		if _, err := p.Parse(strings.NewReader(tc.input), root); err != nil {
			t.Fatalf("Parse(%q): %v", tc.input, err)
		}
		if got := p.Line(); got != tc.wantLine {
			t.Errorf("Parse(%q): Line() = %d, want %d", tc.input, got, tc.wantLine)
		}
		if got := p.ErrorCount(); got != 0 {
			t.Errorf("Parse(%q): %d unexpected errors: %v", tc.input, got, p.Errors())
		}
	}
}

func TestDepthMonotonicity(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"{}", 1},
		{"[]", 1},
		{`{"a": {"b": {"c": 1}}}`, 3},
		{`[[[[1]]]]`, 4},
		{`{"a": [1, 2, {"b": 3}]}`, 3},
	}
	for _, tc := range tests {
		root := tree.New()
		p := ljson.New(ljson.Options{})
		if _, err := p.Parse(strings.NewReader(tc.input), root); err != nil {
			t.Fatalf("Parse(%q): %v", tc.input, err)
		}
		if got := p.Depth(); got != tc.want {
			t.Errorf("Parse(%q): Depth() = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestDiagnosticCap(t *testing.T) {
	var buf strings.Builder
	buf.WriteString("[")
	for i := 0; i < 50; i++ {
		buf.WriteString("1 2,")
	}
	buf.WriteString("1]")

	root := tree.New()
	p := ljson.New(ljson.Options{MaxErrors: 5})
	if _, err := p.Parse(strings.NewReader(buf.String()), root); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := p.ErrorCount(); n > 6 {
		t.Errorf("ErrorCount() = %d, want <= 6 (max+1 sentinel)", n)
	}
	if n := len(p.Errors()); n > 6 {
		t.Errorf("len(Errors()) = %d, want <= 6", n)
	}
}

func TestEmptyContainerIdentity(t *testing.T) {
	for _, tc := range []struct {
		input string
		kind  ljson.Kind
	}{
		{"{}", ljson.Object},
		{"[]", ljson.Array},
	} {
		root, p := parse(t, tc.input, ljson.Options{})
		if root.Kind() != tc.kind {
			t.Errorf("Parse(%q): kind = %v, want %v", tc.input, root.Kind(), tc.kind)
		}
		if got := p.Depth(); got != 1 {
			t.Errorf("Parse(%q): Depth() = %d, want 1", tc.input, got)
		}
		if n := p.ErrorCount(); n != 0 {
			t.Errorf("Parse(%q): %d errors, want 0", tc.input, n)
		}
	}
}

func TestPrologueEpilogueTolerance(t *testing.T) {
	root, p := parse(t, "xx\n{}\nyy", ljson.Options{})
	if root.Kind() != ljson.Object || root.Len() != 0 {
		t.Errorf("root = %v len %d, want empty object", root.Kind(), root.Len())
	}
	if n := p.ErrorCount(); n != 0 {
		t.Errorf("%d unexpected errors: %v", n, p.Errors())
	}
}

func TestInvalidRoot(t *testing.T) {
	root := tree.New()
	p := ljson.New(ljson.Options{})
	_, err := p.Parse(strings.NewReader("   \n  "), root)
	if err == nil {
		t.Fatal("Parse: expected an error for input with no start character")
	}
	if n := p.ErrorCount(); n != 1 {
		t.Errorf("ErrorCount() = %d, want 1", n)
	}
}

func TestStringIdempotence(t *testing.T) {
	root, _ := parse(t, `{"k": "hello world no backslashes"}`, ljson.Options{})
	if got := root.Find("k").Value.StringValue(); got != "hello world no backslashes" {
		t.Errorf("k = %q, want literal text preserved", got)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	root, _ := parse(t, `{"a": "\u0041", "b": "\n\t\b\r\f\/\"\\"}`, ljson.Options{})
	if got := root.Find("a").Value.StringValue(); got != "A" {
		t.Errorf("a = %q, want %q", got, "A")
	}
	want := "\n\t\b\r\f/\"\\"
	if got := root.Find("b").Value.StringValue(); got != want {
		t.Errorf("b = %q, want %q", got, want)
	}
}

func TestNumberLadder(t *testing.T) {
	root, _ := parse(t, `{
		"a": 42,
		"b": +42,
		"c": -42,
		"d": 18446744073709551615,
		"e": 18446744073709551616,
		"f": 3.14
	}`, ljson.Options{})

	if v := root.Find("a").Value; v.Kind() != ljson.Int || v.Int64() != 42 {
		t.Errorf("a = %v %v, want Int 42", v.Kind(), v)
	}
	if v := root.Find("b").Value; v.Kind() != ljson.Uint || v.Uint64() != 42 {
		t.Errorf("b = %v, want Uint 42", v.Kind())
	}
	if v := root.Find("c").Value; v.Kind() != ljson.Int || v.Int64() != -42 {
		t.Errorf("c = %v, want Int -42", v.Kind())
	}
	if v := root.Find("d").Value; v.Kind() != ljson.Uint || v.Uint64() != 18446744073709551615 {
		t.Errorf("d = %v %v, want Uint max", v.Kind(), v)
	}
	if v := root.Find("e").Value; v.Kind() != ljson.Float {
		t.Errorf("e = %v, want Float (u64 overflow)", v.Kind())
	}
	if v := root.Find("f").Value; v.Kind() != ljson.Float || v.Float64() != 3.14 {
		t.Errorf("f = %v, want Float 3.14", v.Kind())
	}
}

func TestCaseTolerance(t *testing.T) {
	root, p := parse(t, `{"k": Null}`, ljson.Options{Flags: ljson.Case})
	if got := root.Find("k").Value.Kind(); got != ljson.Null {
		t.Errorf("k = %v, want Null", got)
	}
	if n := p.WarningCount(); n != 1 {
		t.Errorf("WarningCount() = %d, want 1", n)
	}

	root2 := tree.New()
	p2 := ljson.New(ljson.Options{})
	if _, err := p2.Parse(strings.NewReader(`{"k": Null}`), root2); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := root2.Find("k").Value.Kind(); got != ljson.Null {
		t.Errorf("k = %v, want Null even when rejected as strict", got)
	}
	if n := p2.ErrorCount(); n != 1 {
		t.Errorf("ErrorCount() = %d, want 1", n)
	}
}

func TestMultiStringJoin(t *testing.T) {
	root, p := parse(t, "[ \"a\"\n \"b\" ]", ljson.Options{Flags: ljson.MultiString})
	if root.Len() != 1 {
		t.Fatalf("array len = %d, want 1", root.Len())
	}
	if got := root.Elem(0).StringValue(); got != "ab" {
		t.Errorf("joined string = %q, want %q", got, "ab")
	}
	if n := p.WarningCount(); n != 1 {
		t.Errorf("WarningCount() = %d, want 1", n)
	}
}

func TestMismatchedBracket(t *testing.T) {
	root, p := parse(t, "[ 1, 2 }", ljson.Options{Flags: ljson.Missing})
	if root.Kind() != ljson.Array || root.Len() != 2 {
		t.Fatalf("root = %v len %d, want array len 2", root.Kind(), root.Len())
	}
	if n := p.WarningCount(); n != 1 {
		t.Errorf("WarningCount() = %d, want 1", n)
	}
}

func TestCommentInlineBinding(t *testing.T) {
	root, _ := parse(t, `{ "k": 1 /* c */ }`, ljson.Options{Flags: ljson.AllowComments | ljson.StoreComments})
	v := root.Find("k").Value
	if len(v.Comments().Line) != 1 || v.Comments().Line[0] != "/* c */" {
		t.Errorf("k comments = %+v, want one INLINE comment \"/* c */\"", v.Comments())
	}
}

func TestCommentBeforeBinding(t *testing.T) {
	root, _ := parse(t, "{ // c\n \"k\": 1 }", ljson.Options{Flags: ljson.AllowComments | ljson.StoreComments})
	v := root.Find("k").Value
	if len(v.Comments().Before) != 1 {
		t.Errorf("k comments = %+v, want one BEFORE comment", v.Comments())
	}
}

func TestLeadingTopLevelCommentBinding(t *testing.T) {
	root, p := parse(t, "// header\n{\"k\": 1}", ljson.Options{Flags: ljson.AllowComments | ljson.StoreComments})
	if n := p.ErrorCount(); n != 0 {
		t.Fatalf("%d unexpected errors: %v", n, p.Errors())
	}
	v := root.Find("k").Value
	if len(v.Comments().Before) != 1 {
		t.Errorf("k comments = %+v, want one BEFORE comment carried over from before '{'", v.Comments())
	}
}

func TestEndToEndTrailingComma(t *testing.T) {
	root, p := parse(t, "[1, 2, 3,]", ljson.Options{})
	if root.Len() != 3 {
		t.Fatalf("array len = %d, want 3", root.Len())
	}
	if n := p.ErrorCount() + p.WarningCount(); n != 0 {
		t.Errorf("got %d diagnostics, want 0: errors=%v warnings=%v", n, p.Errors(), p.Warnings())
	}
}

func TestEndToEndColonMissing(t *testing.T) {
	// "k" is read as a bare value, not a key (no colon ever follows it); "v"
	// then lands on an already-String slot, which without MultiString is
	// upcast to an error, and the eventual '}' finds a valid value with no
	// key, a second, distinct object-shape error.
	root, p := parse(t, `{ "k" "v" }`, ljson.Options{})
	if n := p.ErrorCount(); n < 1 {
		t.Fatalf("ErrorCount() = %d, want at least 1: %v", n, p.Errors())
	}
	_ = root
}

func TestEndToEndLoneSurrogate(t *testing.T) {
	root, _ := parse(t, `{"a": "\uD83D"}`, ljson.Options{})
	got := root.Find("a").Value.StringValue()
	want := string([]byte{0xED, 0xA0, 0xBD}) // three-byte UTF-8 encoding of U+D83D, verbatim
	if got != want {
		t.Errorf("a = %x, want %x", got, want)
	}
}

func TestEndToEndMemoryBuffer(t *testing.T) {
	root, p := parse(t, `{"a": '41 42 43'}`, ljson.Options{Flags: ljson.MemoryBuff})
	got := root.Find("a").Value.Bytes()
	want := []byte{0x41, 0x42, 0x43}
	if string(got) != string(want) {
		t.Errorf("a = %v, want %v", got, want)
	}
	if n := p.WarningCount(); n != 1 {
		t.Errorf("WarningCount() = %d, want 1", n)
	}
}

func TestEndToEndOverflowToInfinity(t *testing.T) {
	root, _ := parse(t, `{"n": 1e400}`, ljson.Options{})
	v := root.Find("n").Value
	if v.Kind() != ljson.Float {
		t.Fatalf("n kind = %v, want Float", v.Kind())
	}
	if f := v.Float64(); !math.IsInf(f, 1) {
		t.Errorf("n = %v, want +Inf", f)
	}
}
