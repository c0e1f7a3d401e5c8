// Package field implements the field typer (§4.4): it maps a raw
// name/value pair from the grammar layer to a tagged, validated field
// value, enforcing per-field invariants (scheme security on IRIs, freshness
// on Expires) at construction time so the document validator only has to
// check cardinality.
package field

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/eikendev/sectxt/internal/errs"
	"github.com/eikendev/sectxt/internal/grammar"
)

// Kind tags the payload carried by a Typed field.
type Kind int

// The closed set of field kinds recognized by RFC 9116, plus Extension as
// the open-world catch-all (§3).
const (
	KindAcknowledgments Kind = iota
	KindCanonical
	KindContact
	KindEncryption
	KindHiring
	KindPolicy
	KindCSAF
	KindExpires
	KindPreferredLanguages
	KindExtension
)

// iriKinds names lowercased field names by the kind of the IRI-valued
// field it names.
var iriKinds = map[string]Kind{
	"acknowledgments": KindAcknowledgments,
	"canonical":       KindCanonical,
	"contact":         KindContact,
	"encryption":      KindEncryption,
	"hiring":          KindHiring,
	"policy":          KindPolicy,
	"csaf":            KindCSAF,
}

// Typed is a single typed field. Only the member matching Kind is
// meaningful.
type Typed struct {
	Kind Kind

	IRI *url.URL

	Expires time.Time

	Languages []string

	ExtName  string
	ExtValue string
}

// Type maps a raw field to a Typed field, given the reference instant used
// to validate Expires freshness. Field names are matched case-insensitively;
// unrecognized names become Extension fields with no further validation.
func Type(raw grammar.RawField, now time.Time) (Typed, error) {
	name := strings.ToLower(raw.Name)

	if kind, ok := iriKinds[name]; ok {
		iri, err := parseIRI(raw.Value)
		if err != nil {
			return Typed{}, err
		}
		return Typed{Kind: kind, IRI: iri}, nil
	}

	switch name {
	case "expires":
		t, err := parseExpires(raw.Value, now)
		if err != nil {
			return Typed{}, err
		}
		return Typed{Kind: KindExpires, Expires: t}, nil
	case "preferred-languages":
		tags, err := parsePreferredLanguages(raw.Value)
		if err != nil {
			return Typed{}, err
		}
		return Typed{Kind: KindPreferredLanguages, Languages: tags}, nil
	default:
		return Typed{Kind: KindExtension, ExtName: name, ExtValue: raw.Value}, nil
	}
}

// parseIRI parses an RFC 3986/3987 reference and rejects the insecure
// "http" scheme. The standard library's net/url is used in place of a
// dedicated RFC 3987 IRI parser; see DESIGN.md for why.
func parseIRI(value string) (*url.URL, error) {
	trimmed := strings.TrimSpace(value)

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid IRI %q: %v", errs.ErrMalformed, trimmed, err)
	}

	if strings.EqualFold(u.Scheme, "http") {
		return nil, errs.ErrInsecureHTTP
	}

	return u, nil
}

// parseExpires parses an RFC 3339 timestamp, preserving sub-second
// precision, and rejects an instant strictly before now.
func parseExpires(value string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", errs.ErrInvalidDatetime, err)
	}
	t = t.UTC()

	if t.Before(now.UTC()) {
		return time.Time{}, errs.ErrExpiresFieldExpired
	}

	return t, nil
}

// parsePreferredLanguages splits value on "," and parses-and-normalizes
// each trimmed element as an RFC 5646 language tag.
func parsePreferredLanguages(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		tag, err := language.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid language tag %q: %v", errs.ErrMalformed, trimmed, err)
		}
		tags = append(tags, tag.String())
	}

	// Unreachable given strings.Split always yields at least one element,
	// but kept to mirror the field's own invariant from the original
	// implementation's historical revisions.
	if len(tags) == 0 {
		return nil, errs.ErrIllegalField
	}

	return tags, nil
}
