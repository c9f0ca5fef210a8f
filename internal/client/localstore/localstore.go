// Package localstore persists the session token and account under a state
// directory, playing the role browser local storage plays for the web client.
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hongminglow/shopfront/internal/client/models"
)

const (
	tokenFile   = "token"
	accountFile = "account.json"
)

// Store reads and writes session state under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the per-user state directory for the storefront.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "shopfront"), nil
}

// SaveToken persists the bearer token.
func (s *Store) SaveToken(token string) error {
	return os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600)
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return string(data)
}

// SaveAccount persists the account view.
func (s *Store) SaveAccount(account models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, accountFile), data, 0o600)
}

// Account returns the persisted account and whether one was stored.
func (s *Store) Account() (models.Account, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, accountFile))
	if err != nil {
		return models.Account{}, false
	}
	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return models.Account{}, false
	}
	return account, true
}

// Clear removes the token and account. Idempotent: missing files are fine.
func (s *Store) Clear() error {
	for _, name := range []string{tokenFile, accountFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
