// Package errs defines the closed error taxonomy shared by every layer of
// the parser (§7 of the specification). It is a leaf package so that the
// grammar, pgp, and field layers can return these sentinels directly,
// and the public sectxt package can re-export them without an import
// cycle.
package errs

import "errors"

var (
	// ErrMalformed covers any grammar failure, IRI parse failure, or
	// language-tag element parse failure. Timestamp parse failures are
	// reported as ErrInvalidDatetime instead.
	ErrMalformed = errors.New("invalid syntax")

	// ErrInvalidDatetime carries a timestamp parse failure. Implementations
	// may collapse it into ErrMalformed; this one keeps it distinct so
	// callers can tell a bad date apart from a bad grammar line.
	ErrInvalidDatetime = errors.New("invalid date format")

	// ErrIllegalField marks a field that is structurally present but
	// semantically empty, such as Preferred-Languages with no tags.
	ErrIllegalField = errors.New("field specified in an illegal way")

	// ErrContactFieldMissing means zero Contact fields were found.
	ErrContactFieldMissing = errors.New("contact field must be specified")

	// ErrExpiresFieldMissing means zero Expires fields were found.
	ErrExpiresFieldMissing = errors.New("expires field must be specified")

	// ErrExpiresFieldMultiple means more than one Expires field was found.
	ErrExpiresFieldMultiple = errors.New("expires field may only be specified once")

	// ErrExpiresFieldExpired means the Expires instant is strictly before
	// options.Now.
	ErrExpiresFieldExpired = errors.New("expires field specifies a time in the past")

	// ErrPreferredLanguagesFieldMultiple means more than one
	// Preferred-Languages field was found.
	ErrPreferredLanguagesFieldMultiple = errors.New("preferred languages field may only be specified once")

	// ErrInsecureHTTP means an IRI-valued field has scheme "http".
	ErrInsecureHTTP = errors.New("links must use HTTPS")
)
