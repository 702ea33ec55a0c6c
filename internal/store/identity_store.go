package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/blockpain/ecies-study/internal/domain"
)

const identityFilename = "identity.json.enc"

// IdentityFileStore persists the local identity, passphrase-encrypted, to
// a single file under dir.
type IdentityFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir}
}

// SaveIdentity seals the identity with the passphrase and writes it.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.KeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	ct, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, identityFilename), ct, 0o600)
}

// LoadIdentity reads and decrypts the identity.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, identityFilename))
	if errors.Is(err, os.ErrNotExist) {
		return domain.KeyPair{}, ErrNoIdentity
	}
	if err != nil {
		return domain.KeyPair{}, err
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.KeyPair{}, err
	}
	var id domain.KeyPair
	if err := json.Unmarshal(pt, &id); err != nil {
		return domain.KeyPair{}, err
	}
	return id, nil
}

// HasIdentity reports whether an identity file exists.
func (s *IdentityFileStore) HasIdentity() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, identityFilename))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Compile-time assertion that IdentityFileStore implements IdentityStore.
var _ IdentityStore = (*IdentityFileStore)(nil)
