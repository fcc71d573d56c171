package sessions

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/martinlindhe/base36"
	"github.com/natefinch/atomic"
	"golang.org/x/crypto/blake2s"
)

// storageKey is the fixed name the token is stored under. It matches the key
// the web client used so a host with both keeps a single session per backend.
const storageKey = "portal-token"

// A FileStore keeps the session token in a file in the user's cache
// directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at the user's cache directory.
func NewFileStore() (*FileStore, error) {
	root, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return NewFileStoreAt(filepath.Join(root, "portal-cli", "sessions"))
}

// NewFileStoreAt creates a FileStore rooted at dir, creating it if needed.
func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("sessions: creating session directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// LoadSession loads the raw token from the file store.
func (s *FileStore) LoadSession() (string, error) {
	bs, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return "", ErrNoSessionFound
	} else if err != nil {
		return "", err
	}
	return string(bs), nil
}

// SaveSession writes the raw token to the file store atomically so a crashed
// write can never leave a truncated token behind.
func (s *FileStore) SaveSession(rawJWT string) error {
	return atomic.WriteFile(s.path(), bytes.NewReader([]byte(rawJWT)))
}

// ClearSession removes the stored token.
func (s *FileStore) ClearSession() error {
	err := os.Remove(s.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStore) path() string {
	h := blake2s.Sum256([]byte(storageKey))
	return filepath.Join(s.dir, base36.EncodeBytes(h[:])+".jwt")
}
