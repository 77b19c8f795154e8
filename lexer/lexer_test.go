package lexer

import (
	"strings"
	"testing"

	"github.com/ava12/sdl"
	"github.com/ava12/sdl/internal/test"
	"github.com/ava12/sdl/source"
)

type tokenSample struct {
	kind  Kind
	value string
}

func lexer(src string) *Lexer {
	return NewDefault(source.New("sample", src))
}

func fetchAll(l *Lexer) ([]*Token, error) {
	var result []*Token
	for {
		token, e := l.Advance()
		if e != nil {
			return result, e
		}

		result = append(result, token)
		if token.Kind() == EOF {
			return result, nil
		}
	}
}

func expectTokens(t *testing.T, src string, expected []tokenSample) {
	tokens, e := fetchAll(lexer(src))
	if e != nil {
		t.Errorf("source %q: unexpected error: %s", src, e)
		return
	}

	if len(tokens) != len(expected)+1 {
		t.Errorf("source %q: expecting %d tokens, got %d: %v", src, len(expected)+1, len(tokens), tokens)
		return
	}

	for i, s := range expected {
		token := tokens[i]
		if token.Kind() != s.kind || token.Value() != s.value {
			t.Errorf("source %q, token #%d: expecting %s %q, got %s %q", src, i, s.kind, s.value, token.Kind(), token.Value())
		}
	}
}

func expectError(t *testing.T, src string, code int) {
	_, e := fetchAll(lexer(src))
	if !sdl.IsCode(e, code) {
		t.Errorf("source %q: expecting error code %d, got %v", src, code, e)
	}
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n ", "\xef\xbb\xbf", "# comment only"}
	for _, src := range sources {
		l := lexer(src)
		test.ExpectInt(t, int(SOF), int(l.Token().Kind()))
		tok, e := l.Advance()
		if e != nil {
			t.Fatalf("source %q: unexpected error %s", src, e)
		}
		if tok.Kind() != EOF || tok.Start() != len(src) || tok.End() != len(src) {
			t.Fatalf("source %q: unexpected token %s", src, tok)
		}
	}
}

func TestTokenSamples(t *testing.T) {
	src := "name _x1 123 \"str\" ! $ & ( ) ... . , : ; = @ [ ] { | } ?"
	expectTokens(t, src, []tokenSample{
		{Name, "name"},
		{Name, "_x1"},
		{Number, "123"},
		{String, "str"},
		{Bang, ""},
		{Dollar, ""},
		{Amp, ""},
		{ParenL, ""},
		{ParenR, ""},
		{Spread, ""},
		{Dot, ""},
		{Comma, ""},
		{Colon, ""},
		{Semicolon, ""},
		{Equals, ""},
		{At, ""},
		{BracketL, ""},
		{BracketR, ""},
		{BraceL, ""},
		{Pipe, ""},
		{BraceR, ""},
		{QuestionMark, ""},
	})

	expectTokens(t, "a..b", []tokenSample{{Name, "a"}, {Dot, ""}, {Dot, ""}, {Name, "b"}})
	expectTokens(t, "foo-1", []tokenSample{{Name, "foo"}, {Number, "-1"}})
}

func TestNumbers(t *testing.T) {
	valid := []string{"0", "-0", "12", "-12.5", "0.0", "1.5e-10", "1E+5", "2e3", "9876543210"}
	for _, src := range valid {
		expectTokens(t, src, []tokenSample{{Number, src}})
	}

	expectTokens(t, "1,2", []tokenSample{{Number, "1"}, {Comma, ""}, {Number, "2"}})
	expectTokens(t, "0]", []tokenSample{{Number, "0"}, {BracketR, ""}})

	invalid := []string{"01", "00", "-01", "1.", "1.2.3", "1abc", "1_", "-", "-a", "1e", "1e+", "1.e5", "0x10", "2.5E"}
	for _, src := range invalid {
		expectError(t, src, source.ErrInvalidNumber)
	}
}

func esc(hex string) string {
	return `\u` + hex
}

func TestStrings(t *testing.T) {
	expectTokens(t, `"abc"`, []tokenSample{{String, "abc"}})
	expectTokens(t, `'abc'`, []tokenSample{{String, "abc"}})
	expectTokens(t, "`abc`", []tokenSample{{StringExpr, "abc"}})
	expectTokens(t, `"" ''`, []tokenSample{{String, ""}, {String, ""}})
	expectTokens(t, `"it's" 'say "hi"'`, []tokenSample{{String, "it's"}, {String, `say "hi"`}})
	expectTokens(t, `"a\nb\t\"c\"\\\/"`, []tokenSample{{String, "a\nb\t\"c\"\\/"}})
	expectTokens(t, `"\b\f\r"`, []tokenSample{{String, "\b\f\r"}})
	expectTokens(t, `"`+esc("0041")+`bc"`, []tokenSample{{String, "Abc"}})
	expectTokens(t, `"`+esc("D83D")+esc("DE00")+`"`, []tokenSample{{String, "\U0001F600"}})
	expectTokens(t, `"\u{1F600}!"`, []tokenSample{{String, "\U0001F600!"}})
	expectTokens(t, "`"+esc("00e9")+"`", []tokenSample{{StringExpr, "é"}})
	expectTokens(t, `"привет 😀"`, []tokenSample{{String, "привет 😀"}})

	expectError(t, `"abc`, source.ErrUnterminatedString)
	expectError(t, "\"ab\ncd\"", source.ErrUnterminatedString)
	expectError(t, "'ab\rcd'", source.ErrUnterminatedString)
	expectError(t, "`abc'", source.ErrUnterminatedString)
	expectError(t, `"\x"`, source.ErrInvalidEscape)
	expectError(t, `"`+esc("D83D")+`"`, source.ErrInvalidUnicodeEscape)
	expectError(t, `"`+esc("DE00")+`"`, source.ErrInvalidUnicodeEscape)
	expectError(t, `"\u{D800}"`, source.ErrInvalidUnicodeEscape)
	expectError(t, `"\u{}"`, source.ErrInvalidUnicodeEscape)
	expectError(t, "\"a\xffb\"", source.ErrInvalidStringChar)
}

func TestComments(t *testing.T) {
	src := "# first\nfoo // second\n//\n/// third\nbar\nbaz #"
	l := lexer(src)
	tokens, e := fetchAll(l)
	test.ExpectNoError(t, e)
	test.ExpectInt(t, 4, len(tokens))
	test.ExpectString(t, "foo", tokens[0].Value())
	test.ExpectString(t, "bar", tokens[1].Value())
	test.ExpectString(t, "baz", tokens[2].Value())

	var comments []string
	for token := tokens[3]; token != nil; token = token.Prev() {
		if token.Kind() == Comment {
			comments = append(comments, token.Value())
		}
	}
	expected := []string{"", "/ third", "", " second", " first"}
	test.Expect(t, strings.Join(comments, "|") == strings.Join(expected, "|"), expected, comments)
}

func TestSingleSlash(t *testing.T) {
	_, e := fetchAll(lexer("foo / bar"))
	test.ExpectErrorCode(t, ErrUnexpectedChar, e)
	test.Assert(t, strings.Contains(e.Error(), `Unexpected character: "/".`), "unexpected message: %s", e)
}

func TestUnexpectedChars(t *testing.T) {
	_, e := fetchAll(lexer("foo ^"))
	test.ExpectErrorCode(t, ErrUnexpectedChar, e)
	test.Assert(t, strings.Contains(e.Error(), `Unexpected character: "^".`), "unexpected message: %s", e)

	_, e = fetchAll(lexer("é"))
	test.ExpectErrorCode(t, ErrUnexpectedChar, e)
	test.Assert(t, strings.Contains(e.Error(), "U+00E9"), "unexpected message: %s", e)

	_, e = fetchAll(lexer("foo \xff"))
	test.ExpectErrorCode(t, ErrInvalidChar, e)
	test.Assert(t, strings.Contains(e.Error(), "Invalid character: U+FFFD."), "unexpected message: %s", e)

	l := New(source.New("", "'foo'"))
	_, e = l.Advance()
	test.ExpectErrorCode(t, ErrUnexpectedChar, e)
	test.Assert(t, strings.Contains(e.Error(), "did you mean to use a double quote"), "unexpected message: %s", e)
}

func TestErrorPos(t *testing.T) {
	samples := []struct {
		src             string
		code, line, col int
	}{
		{"foo\n  bar ^", ErrUnexpectedChar, 2, 7},
		{"foo\r\n\"bar\n\"", source.ErrUnterminatedString, 2, 5},
		{"\n\n  01", source.ErrInvalidNumber, 3, 4},
		{"\"é\" ^", ErrUnexpectedChar, 1, 5},
		{"é ^", ErrUnexpectedChar, 1, 1},
	}

	for i, s := range samples {
		_, e := fetchAll(lexer(s.src))
		ee, f := e.(*sdl.Error)
		if !f {
			t.Errorf("sample #%d: expecting *sdl.Error, got: %v", i, e)
			continue
		}

		if ee.Code != s.code || ee.Line != s.line || ee.Col != s.col {
			t.Errorf("sample #%d: expecting err %d at line %d col %d, got: %s", i, s.code, s.line, s.col, ee.Message)
		}
	}
}

func TestLookahead(t *testing.T) {
	l := lexer("foo # comment\nbar baz")
	first, e := l.Lookahead()
	test.ExpectNoError(t, e)
	second, e := l.Lookahead()
	test.ExpectNoError(t, e)
	test.Assert(t, first == second, "expecting the same token, got %v and %v", first, second)
	test.Expect(t, l.Token().Kind() == SOF, SOF, l.Token().Kind())

	current, e := l.Advance()
	test.ExpectNoError(t, e)
	test.Assert(t, current == first, "expecting advance to return lookahead token")

	next, e := l.Lookahead()
	test.ExpectNoError(t, e)
	test.ExpectString(t, "bar", next.Value())
	again, e := l.Lookahead()
	test.ExpectNoError(t, e)
	test.Assert(t, next == again, "expecting the same token, got %v and %v", next, again)
	test.Expect(t, next.Prev().Kind() == Comment, Comment, next.Prev().Kind())

	_, e = l.Advance()
	test.ExpectNoError(t, e)
	test.Assert(t, l.LastToken() == current, "expecting last token to be %v, got %v", current, l.LastToken())

	l.Advance()
	eof, e := l.Advance()
	test.ExpectNoError(t, e)
	test.Expect(t, eof.Kind() == EOF, EOF, eof.Kind())
	tok, e := l.Lookahead()
	test.ExpectNoError(t, e)
	test.Assert(t, tok == eof, "expecting EOF lookahead to return EOF token")
}

func TestFailedLookaheadRetry(t *testing.T) {
	l := lexer("a\n\n^")
	_, e := l.Advance()
	test.ExpectNoError(t, e)

	for i := 0; i < 2; i++ {
		_, e = l.Lookahead()
		ee, f := e.(*sdl.Error)
		test.Assert(t, f, "attempt #%d: expecting *sdl.Error, got: %v", i, e)
		test.ExpectInt(t, ErrUnexpectedChar, ee.Code)
		test.ExpectInt(t, 3, ee.Line)
		test.ExpectInt(t, 1, l.Line())
		test.ExpectInt(t, 0, l.LineStart())
	}
}

func TestLineCol(t *testing.T) {
	tokens, e := fetchAll(lexer("a\n  b\r\n\tc\rd \"é\" f\n\n"))
	test.ExpectNoError(t, e)
	expected := [][2]int{{1, 1}, {2, 3}, {3, 2}, {4, 1}, {4, 3}, {4, 7}, {6, 1}}
	test.ExpectInt(t, len(expected), len(tokens))
	for i, lc := range expected {
		if tokens[i].Line() != lc[0] || tokens[i].Col() != lc[1] {
			t.Errorf("token #%d (%s): expecting line %d col %d, got line %d col %d",
				i, tokens[i], lc[0], lc[1], tokens[i].Line(), tokens[i].Col())
		}
	}
}

const bigSample = "\xef\xbb\xbf# header\r\n" +
	"enum Test { A, B, C };\n" +
	"\t\"descr\" import 'x.schema' // trailing\r" +
	"variable X = -1.5e3; variable Y = `expr`;\n" +
	"type T @dir(a: [1, 2]) | ...rest ? $v & !x\n"

func TestLineColMonotonic(t *testing.T) {
	tokens, e := fetchAll(lexer(bigSample))
	test.ExpectNoError(t, e)
	for i := 1; i < len(tokens); i++ {
		a, b := tokens[i-1], tokens[i]
		if a.Line() > b.Line() || (a.Line() == b.Line() && a.Col() > b.Col()) {
			t.Fatalf("token %s at %d:%d precedes %s at %d:%d", a, a.Line(), a.Col(), b, b.Line(), b.Col())
		}
		if a.End() > b.Start() {
			t.Fatalf("token %s overlaps %s", a, b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{bigSample, "", "  a  ", "x#c"} {
		l := lexer(src)
		eof, e := l.Advance()
		for e == nil && eof.Kind() != EOF {
			eof, e = l.Advance()
		}
		test.ExpectNoError(t, e)

		var chain []*Token
		for token := eof; token != nil; token = token.Prev() {
			chain = append([]*Token{token}, chain...)
		}
		test.Expect(t, chain[0].Kind() == SOF, SOF, chain[0].Kind())

		s := l.Source()
		var sb strings.Builder
		pos := 0
		for _, token := range chain {
			gap := s.Slice(pos, token.Start())
			if strings.Trim(gap, " \t\r\n\xef\xbb\xbf") != "" {
				t.Fatalf("source %q: non-blank gap %q before %s", src, gap, token)
			}
			sb.WriteString(gap)
			sb.WriteString(s.Slice(token.Start(), token.End()))
			pos = token.End()
		}
		test.ExpectString(t, src, sb.String())
	}
}

func TestTokenizerOrder(t *testing.T) {
	l := New(source.New("", "%% %"))
	var calls []string
	l.Register('%', func(l *Lexer, pos int, r rune) (*Token, error) {
		calls = append(calls, "double")
		if l.Source().ByteAt(pos+1) == '%' {
			return l.MakeToken(Name, pos, pos+2, "%%"), nil
		}
		return nil, nil
	})
	l.Register('%', func(l *Lexer, pos int, r rune) (*Token, error) {
		calls = append(calls, "single")
		return l.MakeToken(Name, pos, pos+1, "%"), nil
	})

	tokens, e := fetchAll(l)
	test.ExpectNoError(t, e)
	test.ExpectInt(t, 3, len(tokens))
	test.ExpectString(t, "%%", tokens[0].Value())
	test.ExpectString(t, "%", tokens[1].Value())
	test.ExpectString(t, "double,double,single", strings.Join(calls, ","))
}

func TestTokenDescription(t *testing.T) {
	tokens, e := fetchAll(lexer(`foo { "bar"`))
	test.ExpectNoError(t, e)
	test.ExpectString(t, `Name "foo"`, tokens[0].Description())
	test.ExpectString(t, `"{"`, tokens[1].Description())
	test.ExpectString(t, `String "bar"`, tokens[2].Description())
	test.ExpectString(t, "<EOF>", tokens[3].Description())

	data, e := tokens[0].MarshalJSON()
	test.ExpectNoError(t, e)
	test.ExpectString(t, `{"kind":"Name","value":"foo","line":1,"column":1}`, string(data))
	data, e = tokens[1].MarshalJSON()
	test.ExpectNoError(t, e)
	test.ExpectString(t, `{"kind":"{","line":1,"column":5}`, string(data))
}
