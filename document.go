package sectxt

import (
	"net/url"
	"time"
)

// ExtensionField is a field whose name is not one of the fields fixed by
// RFC 9116 (§3). The document keeps these in source order without
// interpreting them further.
type ExtensionField struct {
	Name  string
	Value string
}

// Document is the parsed and validated contents of a security.txt file
// (§3). IRI-valued fields keep their source order and may repeat;
// Expires and PreferredLanguages are singular by construction, since the
// validator rejects more than one occurrence of either.
type Document struct {
	Acknowledgments []*url.URL
	Canonical       []*url.URL
	Contact         []*url.URL
	Encryption      []*url.URL
	Hiring          []*url.URL
	Policy          []*url.URL
	CSAF            []*url.URL

	Expires time.Time

	PreferredLanguages []string

	Extension []ExtensionField
}

// FieldCount reports how many fields were read from the document: each
// repeated IRI-valued field counts once per occurrence, Expires and
// Preferred-Languages count once each since the validator caps them at one
// occurrence, and each Extension field counts once.
func (d *Document) FieldCount() int {
	n := len(d.Acknowledgments) + len(d.Canonical) + len(d.Contact) +
		len(d.Encryption) + len(d.Hiring) + len(d.Policy) + len(d.CSAF) +
		len(d.Extension) + 1 // Expires is mandatory once build succeeds

	if len(d.PreferredLanguages) > 0 {
		n++
	}

	return n
}
