package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromViper(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o, err := OptionsFromViper("")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", o.APIURL.String())
		assert.Equal(t, "http://localhost:8080/oauth2/authorization/keycloak", o.AuthorizeURL.String())
		assert.Equal(t, "info", o.LogLevel)
		assert.False(t, o.NoPersist)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
api_url: https://portal.example.com/api
authorize_url: https://sso.example.com/auth
log_level: debug
no_persist: true
`), 0o600))

		o, err := OptionsFromViper(path)
		require.NoError(t, err)
		assert.Equal(t, "https://portal.example.com/api", o.APIURL.String())
		assert.Equal(t, "https://sso.example.com/auth", o.AuthorizeURL.String())
		assert.Equal(t, "debug", o.LogLevel)
		assert.True(t, o.NoPersist)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PORTAL_API_URL", "https://env.example.com")
		o, err := OptionsFromViper("")
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", o.APIURL.String())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OptionsFromViper(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		options Options
		wantErr bool
	}{
		{"good", Options{APIURLString: "https://portal.example.com"}, false},
		{"empty api url", Options{}, true},
		{"api url without scheme", Options{APIURLString: "portal.example.com"}, true},
		{"bad authorize url", Options{APIURLString: "https://portal.example.com", AuthorizeURLString: "sso"}, true},
		{"bad log level", Options{APIURLString: "https://portal.example.com", LogLevel: "loud"}, true},
		{"good log level", Options{APIURLString: "https://portal.example.com", LogLevel: "warn"}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.options.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
