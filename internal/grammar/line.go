// Package grammar implements the RFC 9116 line-oriented grammar (§4.2):
// comments, field-name/value pairs, blank lines, and folding whitespace.
// It produces a stream of optional raw fields, borrowed from the input
// string, in source order.
package grammar

import (
	"fmt"

	"github.com/eikendev/sectxt/internal/charset"
	"github.com/eikendev/sectxt/internal/errs"
)

// RawField is a field-name/value pair carved out of the input with no
// allocation: both Name and Value are substrings of the text passed to
// ParseBody.
type RawField struct {
	Name  string
	Value string
}

// ParseBody parses the unsigned grammar's body: a non-empty sequence of
// lines, each either a field line, a comment line, or a blank line. The
// entire input must be consumed; any trailing content after the final
// line ending is ErrMalformed. Returns the raw fields in source order,
// with comments and blank lines dropped.
func ParseBody(text string) ([]RawField, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", errs.ErrMalformed)
	}

	s := NewScanner(text)
	var fields []RawField
	lineCount := 0

	for !s.Done() {
		field, err := parseLine(s)
		if err != nil {
			return nil, err
		}
		lineCount++
		if field != nil {
			fields = append(fields, *field)
		}
	}

	if lineCount == 0 {
		return nil, fmt.Errorf("%w: empty input", errs.ErrMalformed)
	}

	return fields, nil
}

// parseLine parses "line = [ (field / comment) ] eol".
func parseLine(s *Scanner) (*RawField, error) {
	mark := s.Mark()

	if ok := parseComment(s); ok {
		if !s.ConsumeEOL() {
			s.Reset(mark)
			return nil, fmt.Errorf("%w: malformed comment line", errs.ErrMalformed)
		}
		return nil, nil
	}

	if field, ok := parseField(s); ok {
		if !s.ConsumeEOL() {
			s.Reset(mark)
			return nil, fmt.Errorf("%w: malformed field line", errs.ErrMalformed)
		}
		return field, nil
	}

	// Neither a comment nor a field matched: this must be a blank line.
	if !s.ConsumeEOL() {
		s.Reset(mark)
		return nil, fmt.Errorf("%w: unparsable line", errs.ErrMalformed)
	}
	return nil, nil
}

// parseComment parses "comment = \"#\" *(WSP / VCHAR / %x80-FFFFF)".
func parseComment(s *Scanner) bool {
	if !s.Literal("#") {
		return false
	}
	s.TakeWhile(charset.IsCommentChar)
	return true
}

// parseField parses "ext-field = field-name fs SP unstructured", which is
// the only field production after name dispatch is deferred to the typer
// (§4.4); the grammar layer only recognizes the shape, not the semantics
// of the name.
func parseField(s *Scanner) (*RawField, bool) {
	mark := s.Mark()

	name, ok := s.TakeWhile1(charset.IsFtext)
	if !ok {
		s.Reset(mark)
		return nil, false
	}

	if !s.Literal(":") {
		s.Reset(mark)
		return nil, false
	}

	if !s.Literal(" ") {
		s.Reset(mark)
		return nil, false
	}

	value := parseUnstructured(s)

	return &RawField{Name: name, Value: value}, true
}

// parseUnstructured parses RFC 5322's "unstructured = *([FWS] VCHAR) *WSP".
// The trailing *WSP is consumed but not included in the returned value,
// matching the teacher's convention of yielding only the meaningful slice.
func parseUnstructured(s *Scanner) string {
	mark := s.Mark()
	for {
		inner := s.Mark()
		parseFWS(s)
		r, ok := s.PeekRune()
		if !ok || !charset.IsVCHAR(r) {
			s.Reset(inner)
			break
		}
		s.DiscardRune()
	}
	value := s.Since(mark)
	s.TakeWhile(charset.IsWSP)
	return value
}

// parseFWS parses RFC 5322's "FWS = [*WSP CRLF] 1*WSP" (obsolete form
// omitted, as in the reference grammar).
func parseFWS(s *Scanner) bool {
	mark := s.Mark()
	inner := s.Mark()
	s.TakeWhile(charset.IsWSP)
	if !s.ConsumeCRLF() {
		s.Reset(inner)
	}
	if _, ok := s.TakeWhile1(charset.IsWSP); !ok {
		s.Reset(mark)
		return false
	}
	return true
}
