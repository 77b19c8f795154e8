// Package source defines source text together with character classes and
// escape sequence decoding used by tokenizers.
package source

import (
	"sort"
	"unicode/utf8"
)

// EOF is returned by At and ByteAt for positions beyond the end of source.
const EOF = -1

// EOFMarker is the printable form of the end of source.
const EOFMarker = "<EOF>"

// DefaultName is the display name used when none is given.
const DefaultName = "Schema"

// LineCol is a 1-based line and column pair.
type LineCol struct {
	Line   int
	Column int
}

// Source is an immutable schema text.
// All positions are 0-based byte offsets in the text.
type Source struct {
	name       string
	body       string
	offset     LineCol
	lineStarts []int
}

// New creates new Source with given display name and no location offset.
// Empty name is replaced with DefaultName.
func New(name, body string) *Source {
	return NewWithOffset(name, body, LineCol{1, 1})
}

// NewWithOffset creates new Source for a text embedded in another file.
// offset is the line and column of the first character of body in that file.
// Non-positive offset components are treated as 1.
func NewWithOffset(name, body string, offset LineCol) *Source {
	if name == "" {
		name = DefaultName
	}
	if offset.Line <= 0 {
		offset.Line = 1
	}
	if offset.Column <= 0 {
		offset.Column = 1
	}

	s := &Source{name: name, body: body, offset: offset}
	s.lineStarts = append(s.lineStarts, 0)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			s.lineStarts = append(s.lineStarts, i+1)
		case '\n':
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Body() string {
	return s.body
}

func (s *Source) Len() int {
	return len(s.body)
}

func (s *Source) Offset() LineCol {
	return s.offset
}

// LineCol returns line and column of given position adjusted by location offset.
// Column counts code points. The column offset applies to the first line only.
// Positions out of range are clipped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.body) {
		pos = len(s.body)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	line = lineIndex + s.offset.Line
	col = utf8.RuneCountInString(s.body[lineStart:pos]) + 1
	if lineIndex == 0 {
		col += s.offset.Column - 1
	}
	return
}

// At decodes the code point at pos.
// Returns EOF and 0 beyond the end of source, utf8.RuneError and 1 for a byte
// that does not start a valid UTF-8 sequence.
func (s *Source) At(pos int) (r rune, size int) {
	if pos < 0 || pos >= len(s.body) {
		return EOF, 0
	}

	c := s.body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}

	return utf8.DecodeRuneInString(s.body[pos:])
}

// ByteAt returns the byte at pos or EOF.
func (s *Source) ByteAt(pos int) int {
	if pos < 0 || pos >= len(s.body) {
		return EOF
	}

	return int(s.body[pos])
}

// Slice returns body[from:to] with both bounds clipped to the text.
func (s *Source) Slice(from, to int) string {
	l := len(s.body)
	from = min(max(from, 0), l)
	to = min(max(to, from), l)
	return s.body[from:to]
}

// IsInvalid reports whether the result of At denotes malformed UTF-8.
func IsInvalid(r rune, size int) bool {
	return r == utf8.RuneError && size == 1
}

// Pos is a position in the source, it implements sdl.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}

	return p.src.name
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
