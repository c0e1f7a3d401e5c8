package sectxt

import "time"

// Options controls how a document is parsed and validated (§5).
type Options struct {
	// Now is the reference instant Expires is checked against. The zero
	// value means time.Now() is used.
	Now time.Time

	// Relaxed accepts a bare LF in addition to CRLF for line endings inside
	// the PGP cleartext frame. The zero value requires CRLF there, matching
	// RFC 9116's normative grammar exactly; the unsigned grammar accepts
	// either line ending everywhere regardless of this flag.
	Relaxed bool
}

func (o Options) withDefaults() Options {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}
