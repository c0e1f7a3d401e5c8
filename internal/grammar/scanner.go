package grammar

import (
	"strings"
	"unicode/utf8"

	"github.com/eikendev/sectxt/internal/charset"
)

// Scanner is a cursor over a string, advanced one rune at a time. It
// supports peeking and marking so the line-oriented grammar can try one
// alternative, and back out to the mark to try the next, without ever
// copying the input. This generalizes the teacher repo's RuneReader (which
// wrapped a bufio.Reader) to arbitrary lookahead and backtracking, which
// the field/comment/eol alternation in §4.2 requires.
type Scanner struct {
	text string
	pos  int
}

// NewScanner creates a Scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Done reports whether the scanner has consumed the entire input.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.text)
}

// Mark returns the current byte offset, to be passed to Reset to backtrack.
func (s *Scanner) Mark() int {
	return s.pos
}

// Reset rewinds the scanner to a byte offset previously returned by Mark.
func (s *Scanner) Reset(mark int) {
	s.pos = mark
}

// Since returns the substring consumed since mark.
func (s *Scanner) Since(mark int) string {
	return s.text[mark:s.pos]
}

// PeekRune returns the next rune without consuming it. ok is false at
// end of input.
func (s *Scanner) PeekRune() (r rune, ok bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s.text[s.pos:])
	return r, true
}

// DiscardRune consumes the next rune, if any.
func (s *Scanner) DiscardRune() {
	if s.pos >= len(s.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.pos += size
}

// TakeWhile consumes a (possibly empty) run of runes matching pred and
// returns the consumed substring.
func (s *Scanner) TakeWhile(pred func(rune) bool) string {
	mark := s.Mark()
	for {
		r, ok := s.PeekRune()
		if !ok || !pred(r) {
			break
		}
		s.DiscardRune()
	}
	return s.Since(mark)
}

// TakeWhile1 behaves like TakeWhile but requires at least one matching
// rune; ok is false (and the scanner is left unmoved) otherwise.
func (s *Scanner) TakeWhile1(pred func(rune) bool) (value string, ok bool) {
	mark := s.Mark()
	value = s.TakeWhile(pred)
	if value == "" {
		s.Reset(mark)
		return "", false
	}
	return value, true
}

// Literal consumes the given literal string if it occurs next in the
// input (case-sensitive, as RFC 9116's tags are fixed ASCII strings).
func (s *Scanner) Literal(lit string) bool {
	if strings.HasPrefix(s.text[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// DiscardSpace consumes consecutive WSP runes.
func (s *Scanner) DiscardSpace() {
	s.TakeWhile(charset.IsWSP)
}

// ConsumeEOL consumes "eol = *WSP [CR] LF" and reports whether it matched.
func (s *Scanner) ConsumeEOL() bool {
	mark := s.Mark()
	s.DiscardSpace()
	if r, ok := s.PeekRune(); ok && charset.IsCR(r) {
		s.DiscardRune()
	}
	if r, ok := s.PeekRune(); ok && charset.IsLF(r) {
		s.DiscardRune()
		return true
	}
	s.Reset(mark)
	return false
}

// ConsumeCRLF consumes a strict CR LF pair.
func (s *Scanner) ConsumeCRLF() bool {
	mark := s.Mark()
	if r, ok := s.PeekRune(); !ok || !charset.IsCR(r) {
		return false
	}
	s.DiscardRune()
	if r, ok := s.PeekRune(); !ok || !charset.IsLF(r) {
		s.Reset(mark)
		return false
	}
	s.DiscardRune()
	return true
}

// ConsumeLineEnding consumes a line ending: CRLF always; bare LF only when
// strict is false. It reports whether it matched.
func (s *Scanner) ConsumeLineEnding(strict bool) bool {
	mark := s.Mark()
	if s.ConsumeCRLF() {
		return true
	}
	s.Reset(mark)
	if strict {
		return false
	}
	if r, ok := s.PeekRune(); ok && charset.IsLF(r) {
		s.DiscardRune()
		return true
	}
	return false
}
