package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eikendev/sectxt/internal/grammar"
)

func TestScannerTakeWhile(t *testing.T) {
	s := grammar.NewScanner("abc123")
	require.Equal(t, "abc", s.TakeWhile(func(r rune) bool { return r >= 'a' && r <= 'z' }))
	require.Equal(t, "123", s.TakeWhile(func(r rune) bool { return r >= '0' && r <= '9' }))
	require.True(t, s.Done())
}

func TestScannerTakeWhile1Fails(t *testing.T) {
	s := grammar.NewScanner("123")
	mark := s.Mark()
	_, ok := s.TakeWhile1(func(r rune) bool { return r == 'a' })
	require.False(t, ok)
	require.Equal(t, mark, s.Mark())
}

func TestScannerConsumeLineEndingStrict(t *testing.T) {
	s := grammar.NewScanner("\ntail")
	require.False(t, s.ConsumeLineEnding(true))

	s = grammar.NewScanner("\r\ntail")
	require.True(t, s.ConsumeLineEnding(true))
	mark := s.Mark()
	require.Equal(t, "tail", s.TakeWhile(func(r rune) bool { return true }))
	require.NotEqual(t, mark, s.Mark())
}

func TestScannerConsumeLineEndingRelaxed(t *testing.T) {
	s := grammar.NewScanner("\ntail")
	require.True(t, s.ConsumeLineEnding(false))
}

func TestScannerMarkReset(t *testing.T) {
	s := grammar.NewScanner("hello")
	mark := s.Mark()
	s.DiscardRune()
	s.DiscardRune()
	require.Equal(t, "he", s.Since(mark))
	s.Reset(mark)
	require.Equal(t, mark, s.Mark())
}
