package sectxt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eikendev/sectxt"
)

// FuzzParse exercises sectxt.Parse against arbitrary byte strings, seeded
// from the scenario fixtures below. It asserts only the property that
// holds regardless of validity: Parse never panics.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"Contact: https://securitytxt.org/\nExpires: 2030-01-01T08:19:03.000Z\n",
		"# c\n#\nContact: URL\n\n\nExpires: EXP\n#\n",
		"Contact: http://securitytxt.org/\nExpires: 2030-01-01T08:19:03.000Z\n",
		"Expires: 2030-01-01T08:19:03.000Z\n",
		"-----BEGIN PGP SIGNED MESSAGE-----\r\nHash: SHA256\r\n\r\nContact: https://a/\r\n-----BEGIN PGP SIGNATURE-----\r\n",
		"",
		"\n",
		"garbage",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		require.NotPanics(t, func() {
			_, _ = sectxt.Parse([]byte(input))
		})
	})
}
