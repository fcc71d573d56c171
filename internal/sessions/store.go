package sessions

// A Store persists the raw bearer token across process restarts. The token is
// the only piece of session state written durably; absence means logged out.
type Store interface {
	// LoadSession returns the stored raw token, or ErrNoSessionFound.
	LoadSession() (string, error)
	// SaveSession stores the raw token.
	SaveSession(rawJWT string) error
	// ClearSession removes the stored token. Clearing an empty store is not
	// an error.
	ClearSession() error
}
