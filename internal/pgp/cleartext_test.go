package pgp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eikendev/sectxt/internal/errs"
	"github.com/eikendev/sectxt/internal/pgp"
)

// validSignature is a well-formed OpenPGP armor block (correct CRC24
// checksum over an arbitrary 64-byte payload standing in for a real
// signature packet) since pgp.Parse only validates the armor envelope's
// structure, never the signature itself.
const validSignature = "-----BEGIN PGP SIGNATURE-----\r\n" +
	"\r\n" +
	"AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8gISIjJCUmJygpKissLS4v\r\n" +
	"MDEyMzQ1Njc4OTo7PD0+Pw==\r\n" +
	"=r2Q7\r\n" +
	"-----END PGP SIGNATURE-----\r\n"

func signedMessage(body string) string {
	return "-----BEGIN PGP SIGNED MESSAGE-----\r\n" +
		"Hash: SHA256\r\n" +
		"\r\n" +
		body +
		validSignature
}

func TestParseRecoversCleartext(t *testing.T) {
	frame, err := pgp.Parse(signedMessage("Contact: https://a/\r\nExpires: EXP\r\n"), true)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"SHA256"}}, frame.HashArmorHeaders)
	require.Equal(t, "Contact: https://a/\r\nExpires: EXP\r\n", frame.Cleartext)
}

func TestParseDashEscape(t *testing.T) {
	frame, err := pgp.Parse(signedMessage("- -foo\r\n"), true)
	require.NoError(t, err)
	require.Equal(t, "-foo\r\n", frame.Cleartext)
}

func TestParseRejectsBareDash(t *testing.T) {
	_, err := pgp.Parse(signedMessage("-foo\r\n"), true)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestParseMissingHeader(t *testing.T) {
	_, err := pgp.Parse("Contact: https://a/\r\n", true)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestParseRejectsBareLFInStrictMode(t *testing.T) {
	relaxed := "-----BEGIN PGP SIGNED MESSAGE-----\n" +
		"Hash: SHA256\n" +
		"\n" +
		"Contact: https://a/\n" +
		validSignature

	_, err := pgp.Parse(relaxed, true)
	require.ErrorIs(t, err, errs.ErrMalformed)

	frame, err := pgp.Parse(relaxed, false)
	require.NoError(t, err)
	require.Equal(t, "Contact: https://a/\n", frame.Cleartext)
}

func TestParseMultipleHashAlgorithms(t *testing.T) {
	text := "-----BEGIN PGP SIGNED MESSAGE-----\r\n" +
		"Hash: SHA256,SHA512\r\n" +
		"\r\n" +
		"Contact: https://a/\r\n" +
		validSignature

	frame, err := pgp.Parse(text, true)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"SHA256", "SHA512"}}, frame.HashArmorHeaders)
}

func TestParseRejectsTrailingContent(t *testing.T) {
	_, err := pgp.Parse(signedMessage("Contact: https://a/\r\n")+"garbage", true)
	require.ErrorIs(t, err, errs.ErrMalformed)
}
