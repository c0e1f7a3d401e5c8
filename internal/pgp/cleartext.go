// Package pgp recognizes the OpenPGP cleartext-signing envelope (RFC 4880
// §7.1) around a security.txt body: the "-----BEGIN PGP SIGNED
// MESSAGE-----" header, one or more hash-armor headers, the dash-escaped
// cleartext, and the trailing signature armor. It validates structural
// well-formedness only; it never verifies the signature cryptographically
// (§1 Non-goals).
//
// This generalizes the teacher repo's StanzaReader, which peeked the first
// bytes of its input for the same marker before handing the whole message
// to a clearsign decoder. Here the cleartext framing is hand-rolled (the
// strict/relaxed EOL dialect needs control a general-purpose clearsign
// decoder does not expose), while the trailing signature armor — which has
// no dialect-specific behavior — is handed to the real go-crypto armor
// decoder for a structural and CRC24 check.
package pgp

import (
	"fmt"
	"io"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp/armor"

	"github.com/eikendev/sectxt/internal/charset"
	"github.com/eikendev/sectxt/internal/errs"
	"github.com/eikendev/sectxt/internal/grammar"
)

const (
	cleartextHeader = "-----BEGIN PGP SIGNED MESSAGE-----"
	signatureHeader = "-----BEGIN PGP SIGNATURE-----"
	signatureFooter = "-----END PGP SIGNATURE-----"
)

// Frame is the structural result of recognizing a cleartext-signed
// security.txt document. It is transient: only Cleartext is fed back
// through the unsigned grammar, and the frame itself is never returned to
// callers of the public facade.
type Frame struct {
	HashArmorHeaders [][]string
	Cleartext        string
}

// Parse recognizes the cleartext-signing envelope in text. strict governs
// whether line endings inside the frame must be CRLF (true) or may also be
// bare LF (false); the unsigned grammar that later consumes Cleartext is
// unaffected by this flag.
func Parse(text string, strict bool) (*Frame, error) {
	s := grammar.NewScanner(text)

	if !s.Literal(cleartextHeader) {
		return nil, fmt.Errorf("%w: missing PGP cleartext header", errs.ErrMalformed)
	}
	if !s.ConsumeLineEnding(strict) {
		return nil, fmt.Errorf("%w: malformed PGP cleartext header line", errs.ErrMalformed)
	}

	headers, err := parseHashHeaders(s, strict)
	if err != nil {
		return nil, err
	}

	if !s.ConsumeLineEnding(strict) {
		return nil, fmt.Errorf("%w: missing blank line after hash headers", errs.ErrMalformed)
	}

	cleartext, err := parseCleartext(s, strict)
	if err != nil {
		return nil, err
	}

	if err := parseSignature(s, strict); err != nil {
		return nil, err
	}

	if !s.Done() {
		return nil, fmt.Errorf("%w: trailing content after PGP signature", errs.ErrMalformed)
	}

	return &Frame{HashArmorHeaders: headers, Cleartext: cleartext}, nil
}

// parseHashHeaders parses "1*(hash-header)" where
// hash-header = "Hash: " hash-alg *("," hash-alg) eol.
func parseHashHeaders(s *grammar.Scanner, strict bool) ([][]string, error) {
	var headers [][]string

	for {
		mark := s.Mark()
		if !s.Literal("Hash: ") {
			s.Reset(mark)
			break
		}

		var algs []string
		alg, ok := s.TakeWhile1(charset.IsTokenChar)
		if !ok {
			s.Reset(mark)
			return nil, fmt.Errorf("%w: empty hash algorithm", errs.ErrMalformed)
		}
		algs = append(algs, alg)

		for s.Literal(",") {
			alg, ok := s.TakeWhile1(charset.IsTokenChar)
			if !ok {
				return nil, fmt.Errorf("%w: empty hash algorithm", errs.ErrMalformed)
			}
			algs = append(algs, alg)
		}

		if !s.ConsumeLineEnding(strict) {
			return nil, fmt.Errorf("%w: malformed hash header line", errs.ErrMalformed)
		}

		headers = append(headers, algs)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: missing hash header", errs.ErrMalformed)
	}

	return headers, nil
}

// parseCleartext parses "cleartext = *((line-dash / line-nodash) [CR] LF)",
// reversing dash-escaping as each line is read, and stops at the line that
// begins the trailing signature armor.
func parseCleartext(s *grammar.Scanner, strict bool) (string, error) {
	var b strings.Builder

	for {
		mark := s.Mark()
		if s.Literal(signatureHeader) {
			s.Reset(mark)
			break
		}
		s.Reset(mark)

		content := s.TakeWhile(func(r rune) bool { return r != '\r' && r != '\n' })
		ending := s.Mark()
		if !s.ConsumeLineEnding(strict) {
			return "", fmt.Errorf("%w: unterminated cleartext line", errs.ErrMalformed)
		}
		terminator := s.Since(ending)

		unescaped, err := unescapeDashLine(content)
		if err != nil {
			return "", err
		}

		b.WriteString(unescaped)
		b.WriteString(terminator)
	}

	return b.String(), nil
}

// unescapeDashLine reverses RFC 4880 §7.1 dash-escaping for a single
// cleartext line (without its terminator).
func unescapeDashLine(content string) (string, error) {
	if strings.HasPrefix(content, "- ") {
		rest := content[2:]
		// line-dash: "- " followed by another "-" is kept as-is once
		// unescaped; line-nodash with a "- " prefix is whatever remains.
		return rest, nil
	}

	if strings.HasPrefix(content, "-") {
		return "", fmt.Errorf("%w: unescaped dash in signed body", errs.ErrMalformed)
	}

	return content, nil
}

// parseSignature parses the trailing
// "armor-header armor-keys eol signature-data armor-tail" envelope,
// hand-rolling the line-level grammar to respect the strict/relaxed
// dialect and capture exact boundaries, then re-validates the captured
// substring as real OpenPGP armor via go-crypto.
func parseSignature(s *grammar.Scanner, strict bool) error {
	start := s.Mark()

	if !s.Literal(signatureHeader) {
		return fmt.Errorf("%w: missing PGP signature header", errs.ErrMalformed)
	}
	if !s.ConsumeLineEnding(strict) {
		return fmt.Errorf("%w: malformed PGP signature header line", errs.ErrMalformed)
	}

	if err := parseArmorKeys(s, strict); err != nil {
		return err
	}

	if !s.ConsumeLineEnding(strict) {
		return fmt.Errorf("%w: missing blank line before signature data", errs.ErrMalformed)
	}

	if err := parseSignatureData(s, strict); err != nil {
		return err
	}

	if !s.Literal(signatureFooter) {
		return fmt.Errorf("%w: missing PGP signature footer", errs.ErrMalformed)
	}
	if !s.ConsumeLineEnding(strict) {
		return fmt.Errorf("%w: malformed PGP signature footer line", errs.ErrMalformed)
	}

	block := s.Since(start)
	decoded, err := armor.Decode(strings.NewReader(block))
	if err != nil {
		return fmt.Errorf("%w: invalid PGP armor: %v", errs.ErrMalformed, err)
	}
	if decoded.Type != "PGP SIGNATURE" {
		return fmt.Errorf("%w: unexpected armor type %q", errs.ErrMalformed, decoded.Type)
	}
	if _, err := io.ReadAll(decoded.Body); err != nil {
		return fmt.Errorf("%w: invalid PGP armor body: %v", errs.ErrMalformed, err)
	}

	return nil
}

// parseArmorKeys parses "armor-keys = *(token \": \" *(VCHAR / WSP) eol)".
func parseArmorKeys(s *grammar.Scanner, strict bool) error {
	for {
		mark := s.Mark()

		if _, ok := s.TakeWhile1(charset.IsTokenChar); !ok {
			s.Reset(mark)
			return nil
		}
		if !s.Literal(": ") {
			s.Reset(mark)
			return nil
		}
		s.TakeWhile(func(r rune) bool { return charset.IsVCHAR(r) || charset.IsWSP(r) })
		if !s.ConsumeLineEnding(strict) {
			s.Reset(mark)
			return nil
		}
	}
}

// parseSignatureData parses
// "1*(1*(ALPHA / DIGIT / \"=\" / \"+\" / \"/\") eol)".
func parseSignatureData(s *grammar.Scanner, strict bool) error {
	lines := 0
	for {
		mark := s.Mark()
		if _, ok := s.TakeWhile1(charset.IsSignatureDataChar); !ok {
			s.Reset(mark)
			break
		}
		if !s.ConsumeLineEnding(strict) {
			s.Reset(mark)
			break
		}
		lines++
	}
	if lines == 0 {
		return fmt.Errorf("%w: empty signature data", errs.ErrMalformed)
	}
	return nil
}
