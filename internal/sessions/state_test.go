package sessions

import (
	"testing"
	"time"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseportal/portal-cli/internal/portal"
)

// mintToken builds a signed token the way the backend would. The signature is
// never verified client side, but the compact JWS framing must be real.
func mintToken(t *testing.T, claims any) string {
	t.Helper()
	sig, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS256,
		Key:       []byte("portal-test-signing-key-0123456789ab"),
	}, nil)
	require.NoError(t, err)
	raw, err := jwt.Signed(sig).Claims(claims).CompactSerialize()
	require.NoError(t, err)
	return raw
}

func TestStateFromToken(t *testing.T) {
	t.Parallel()

	t.Run("decodes claims", func(t *testing.T) {
		t.Parallel()
		iat := jwt.NewNumericDate(time.Now().Add(-time.Minute))
		exp := jwt.NewNumericDate(time.Now().Add(time.Hour))
		raw := mintToken(t, &State{
			Subject:  "u1",
			Email:    "a@b.com",
			Role:     portal.RoleInstructor,
			FullName: "A B",
			IssuedAt: iat,
			Expiry:   exp,
		})

		s, err := StateFromToken(raw)
		require.NoError(t, err)
		assert.Equal(t, "u1", s.Subject)
		assert.Equal(t, "a@b.com", s.Email)
		assert.Equal(t, portal.RoleInstructor, s.Role)
		assert.Equal(t, "A B", s.FullName)
		assert.Equal(t, *iat, *s.IssuedAt)
		assert.Equal(t, *exp, *s.Expiry)
		assert.False(t, s.IsExpired())
	})

	t.Run("expired token still decodes", func(t *testing.T) {
		t.Parallel()
		raw := mintToken(t, &State{
			Subject: "u1",
			Expiry:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		s, err := StateFromToken(raw)
		require.NoError(t, err)
		assert.True(t, s.IsExpired())
	})

	t.Run("malformed tokens", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{
			"",
			"garbage",
			"a.b",
			"!!!.###.$$$",
		} {
			_, err := StateFromToken(raw)
			assert.ErrorIs(t, err, ErrMalformedSession, "token %q", raw)
		}
	})
}
