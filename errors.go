package sectxt

import "github.com/eikendev/sectxt/internal/errs"

// The closed set of errors a parse can fail with (§7). They are re-exported
// sentinels from internal/errs so both the internal layers and callers of
// this package observe the same identities under errors.Is.
var (
	// ErrMalformed means the input does not conform to the grammar: a bad
	// line, a bad PGP frame, an unparsable IRI, or an unparsable language
	// tag.
	ErrMalformed = errs.ErrMalformed

	// ErrInvalidDatetime means an Expires value failed RFC 3339 parsing.
	ErrInvalidDatetime = errs.ErrInvalidDatetime

	// ErrIllegalField means a field was structurally present but
	// semantically empty.
	ErrIllegalField = errs.ErrIllegalField

	// ErrContactFieldMissing means the document has no Contact field.
	ErrContactFieldMissing = errs.ErrContactFieldMissing

	// ErrExpiresFieldMissing means the document has no Expires field.
	ErrExpiresFieldMissing = errs.ErrExpiresFieldMissing

	// ErrExpiresFieldMultiple means the document has more than one
	// Expires field.
	ErrExpiresFieldMultiple = errs.ErrExpiresFieldMultiple

	// ErrExpiresFieldExpired means the document's Expires instant is
	// strictly before Options.Now.
	ErrExpiresFieldExpired = errs.ErrExpiresFieldExpired

	// ErrPreferredLanguagesFieldMultiple means the document has more than
	// one Preferred-Languages field.
	ErrPreferredLanguagesFieldMultiple = errs.ErrPreferredLanguagesFieldMultiple

	// ErrInsecureHTTP means an IRI-valued field uses the "http" scheme.
	ErrInsecureHTTP = errs.ErrInsecureHTTP
)

// ParseError adds positional context to one of the sentinel errors above.
// Callers should match it with errors.Is against the sentinels, not with a
// type assertion.
type ParseError struct {
	// Field, if non-empty, names the field the error occurred on.
	Field string
	// Err is the underlying sentinel.
	Err error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
