package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndValidateURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		rawurl  string
		wantErr bool
	}{
		{"good", "https://portal.example.com", false},
		{"good with path", "https://portal.example.com/api", false},
		{"empty", "", true},
		{"no scheme", "portal.example.com", true},
		{"no host", "https://", true},
		{"bad url", "https://portal.example.com%zzzzz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseAndValidateURL(tt.rawurl)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.rawurl, u.String())
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "https://host/a/b", Join("https://host", "a", "b"))
	assert.Equal(t, "https://host/a/b", Join("https://host/", "/a", "b"))
	assert.Equal(t, "/cursos/1/modulos", Join("/cursos", "1", "modulos"))
}
