package identity

import (
	"crypto/rand"
	"fmt"
	"io"
	"unicode"

	"github.com/blockpain/ecies-study/internal/crypto"
	"github.com/blockpain/ecies-study/internal/domain"
	"github.com/blockpain/ecies-study/internal/store"
)

// minPassphraseLength defines the minimum number of characters required
// for a keystore passphrase.
const minPassphraseLength = 12

// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
var ErrWeakPassphrase = fmt.Errorf(
	"passphrase is too weak (must be at least %d characters and include upper, lower, "+
		"number, and symbol)",
	minPassphraseLength,
)

// Service manages identity key creation and access using a backing store.
//
// The identity is a single secp256k1 key pair: its secret scalar signs
// outgoing ciphertexts, and peers encrypt to its public key. It is
// long-lived, unlike the per-message ephemeral pairs the protocol makes.
type Service struct {
	store store.IdentityStore
	rand  io.Reader
}

// New returns an identity service backed by the given store.
func New(s store.IdentityStore) *Service {
	return &Service{store: s, rand: rand.Reader}
}

// GenerateIdentity creates a new identity, saves it encrypted with the
// passphrase, and returns it plus a short fingerprint of the public key.
func (s *Service) GenerateIdentity(passphrase string) (domain.KeyPair, string, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyPair{}, "", ErrWeakPassphrase
	}
	id, err := crypto.GenerateKeyPair(s.rand)
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.KeyPair{}, "", err
	}
	return id, crypto.Fingerprint(id.Pub.Slice()), nil
}

// LoadIdentity decrypts and returns the local identity.
func (s *Service) LoadIdentity(passphrase string) (domain.KeyPair, error) {
	return s.store.LoadIdentity(passphrase)
}

// FingerprintIdentity returns a short fingerprint of the local public key.
func (s *Service) FingerprintIdentity(passphrase string) (string, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(id.Pub.Slice()), nil
}

// HasIdentity reports whether an identity already exists in the store.
func (s *Service) HasIdentity() (bool, error) {
	return s.store.HasIdentity()
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
