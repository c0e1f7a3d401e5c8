package charset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eikendev/sectxt/internal/charset"
)

func TestIsVCHAR(t *testing.T) {
	require.True(t, charset.IsVCHAR('A'))
	require.True(t, charset.IsVCHAR('~'))
	require.False(t, charset.IsVCHAR(' '))
	require.False(t, charset.IsVCHAR('\t'))
	require.False(t, charset.IsVCHAR(0x7F))
}

func TestIsFtext(t *testing.T) {
	require.True(t, charset.IsFtext('C'))
	require.True(t, charset.IsFtext('-'))
	require.False(t, charset.IsFtext(':'))
	require.False(t, charset.IsFtext(' '))
}

func TestIsTokenChar(t *testing.T) {
	require.True(t, charset.IsTokenChar('S'))
	require.False(t, charset.IsTokenChar(' '))
	require.False(t, charset.IsTokenChar(':'))
	require.False(t, charset.IsTokenChar('"'))
}

func TestIsSignatureDataChar(t *testing.T) {
	require.True(t, charset.IsSignatureDataChar('A'))
	require.True(t, charset.IsSignatureDataChar('='))
	require.True(t, charset.IsSignatureDataChar('+'))
	require.False(t, charset.IsSignatureDataChar('-'))
}

func TestIsCommentChar(t *testing.T) {
	require.True(t, charset.IsCommentChar(' '))
	require.True(t, charset.IsCommentChar('!'))
	require.True(t, charset.IsCommentChar(0x80))
	require.False(t, charset.IsCommentChar('\n'))
}
