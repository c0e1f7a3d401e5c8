// Package sectxt parses and validates security.txt files as defined by
// RFC 9116. It accepts both the plain, unsigned grammar and the OpenPGP
// cleartext-signed variant, validating the signature envelope's structure
// without ever verifying it cryptographically. The package is a pure
// function of its input: it performs no I/O and holds no package-level
// state, so a single process can parse any number of documents
// concurrently.
package sectxt

import (
	"strings"
	"time"

	"github.com/eikendev/sectxt/internal/field"
	"github.com/eikendev/sectxt/internal/grammar"
	"github.com/eikendev/sectxt/internal/pgp"
)

const cleartextMarker = "-----BEGIN PGP SIGNED MESSAGE-----"

// Parse parses text using the default Options: Now is the current time
// and line endings inside a PGP cleartext frame must be CRLF.
func Parse(text []byte) (*Document, error) {
	return ParseWith(text, Options{})
}

// ParseWith parses text under opts. It recognizes the OpenPGP
// cleartext-signing envelope by its leading marker, the same way RFC 9116
// implementations commonly sniff it, and otherwise parses text directly
// under the unsigned grammar.
func ParseWith(text []byte, opts Options) (*Document, error) {
	opts = opts.withDefaults()

	body := string(text)

	if strings.HasPrefix(body, cleartextMarker) {
		frame, err := pgp.Parse(body, !opts.Relaxed)
		if err != nil {
			return nil, err
		}
		body = frame.Cleartext
	}

	raws, err := grammar.ParseBody(body)
	if err != nil {
		return nil, err
	}

	return build(raws, opts.Now)
}

// build types every raw field, binning each into the document before any
// cardinality check runs, then validates presence and multiplicity in the
// fixed order of §4.5: Contact presence, then Expires missing/multiple,
// then Preferred-Languages multiple.
func build(raws []grammar.RawField, now time.Time) (*Document, error) {
	doc := &Document{}

	var expires []time.Time
	var languages [][]string

	for _, raw := range raws {
		typed, err := field.Type(raw, now)
		if err != nil {
			return nil, &ParseError{Field: raw.Name, Err: err}
		}

		switch typed.Kind {
		case field.KindAcknowledgments:
			doc.Acknowledgments = append(doc.Acknowledgments, typed.IRI)
		case field.KindCanonical:
			doc.Canonical = append(doc.Canonical, typed.IRI)
		case field.KindContact:
			doc.Contact = append(doc.Contact, typed.IRI)
		case field.KindEncryption:
			doc.Encryption = append(doc.Encryption, typed.IRI)
		case field.KindHiring:
			doc.Hiring = append(doc.Hiring, typed.IRI)
		case field.KindPolicy:
			doc.Policy = append(doc.Policy, typed.IRI)
		case field.KindCSAF:
			doc.CSAF = append(doc.CSAF, typed.IRI)
		case field.KindExpires:
			expires = append(expires, typed.Expires)
		case field.KindPreferredLanguages:
			languages = append(languages, typed.Languages)
		case field.KindExtension:
			doc.Extension = append(doc.Extension, ExtensionField{Name: typed.ExtName, Value: typed.ExtValue})
		}
	}

	if len(doc.Contact) == 0 {
		return nil, &ParseError{Field: "Contact", Err: ErrContactFieldMissing}
	}

	switch len(expires) {
	case 0:
		return nil, &ParseError{Field: "Expires", Err: ErrExpiresFieldMissing}
	case 1:
		doc.Expires = expires[0]
	default:
		return nil, &ParseError{Field: "Expires", Err: ErrExpiresFieldMultiple}
	}

	if len(languages) > 1 {
		return nil, &ParseError{Field: "Preferred-Languages", Err: ErrPreferredLanguagesFieldMultiple}
	}
	if len(languages) == 1 {
		doc.PreferredLanguages = languages[0]
	}

	return doc, nil
}
