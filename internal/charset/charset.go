// Package charset holds the terminal character predicates shared by the
// security.txt grammar and its PGP cleartext dialect: VCHAR, WSP, the
// RFC 5322 ftext set, the RFC 2045 token set, and the base64 alphabet used
// by OpenPGP signature data. None of these allocate; each is a pure
// predicate over a single rune.
package charset

// IsVCHAR reports whether r is a visible (printing) US-ASCII character,
// VCHAR = %x21-7E.
func IsVCHAR(r rune) bool {
	return r >= 0x21 && r <= 0x7E
}

// IsWSP reports whether r is a space or horizontal tab.
func IsWSP(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsCR reports whether r is a carriage return.
func IsCR(r rune) bool {
	return r == '\r'
}

// IsLF reports whether r is a line feed.
func IsLF(r rune) bool {
	return r == '\n'
}

// IsFtext reports whether r is valid in a field-name: printable US-ASCII
// excluding ":" (RFC 5322 §3.6.8, as narrowed by RFC 9116).
func IsFtext(r rune) bool {
	switch {
	case r >= 0x21 && r <= 0x39:
		return true
	case r >= 0x3B && r <= 0x7E:
		return true
	default:
		return false
	}
}

// IsTokenChar reports whether r is valid in an RFC 2045 §5.1 token: any
// US-ASCII character except SPACE, CTLs, and the tspecials.
func IsTokenChar(r rune) bool {
	if r == ' ' || r > 0x7E || (r < 0x20) || r == 0x7F {
		return false
	}
	switch r {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=':
		return false
	}
	return true
}

// IsSignatureDataChar reports whether r belongs to the base64 alphabet
// used by RFC 4880 signature-data (without padding considerations beyond
// "=", which base64 also uses for padding).
func IsSignatureDataChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '=' || r == '+' || r == '/':
		return true
	default:
		return false
	}
}

// IsCommentChar reports whether r may appear in a comment body: WSP,
// VCHAR, or any code point at or above U+0080.
func IsCommentChar(r rune) bool {
	return IsWSP(r) || IsVCHAR(r) || r >= 0x80
}
