package authclient

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseportal/portal-cli/internal/urlutil"
)

func TestGetToken(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authorizeURL := urlutil.MustParseAndValidateURL("https://portal.example.com/oauth2/authorization/keycloak")

	// stand in for the provider: read the redirect_uri the client advertised
	// and immediately redirect back with a token, like the real flow would
	// after the user signs in.
	browser := func(rawURL string) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		assert.Equal(t, "portal.example.com", u.Host)
		redirectURI := u.Query().Get(urlutil.QueryRedirectURI)
		require.NotEmpty(t, redirectURI)

		go func() {
			callback, _ := url.Parse(redirectURI)
			q := callback.Query()
			q.Set(urlutil.QueryToken, "t1")
			callback.RawQuery = q.Encode()
			res, err := http.Get(callback.String())
			if err == nil {
				_ = res.Body.Close()
			}
		}()
		return nil
	}

	client := New(WithBrowserCommand(browser))
	rawToken, err := client.GetToken(ctx, authorizeURL)
	require.NoError(t, err)
	assert.Equal(t, "t1", rawToken)
}

func TestGetToken_ContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	client := New(WithBrowserCommand(func(string) error {
		cancel()
		return nil
	}))
	_, err := client.GetToken(ctx, urlutil.MustParseAndValidateURL("https://portal.example.com/auth"))
	assert.ErrorIs(t, err, context.Canceled)
}
