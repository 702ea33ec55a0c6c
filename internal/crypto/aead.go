package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/blockpain/ecies-study/internal/domain"
)

var (
	// ErrAuthentication is returned when the GCM tag does not verify.
	// A wrong key, a flipped bit, and a wrong nonce are indistinguishable
	// here; no partial plaintext is ever returned.
	ErrAuthentication = errors.New("ciphertext authentication failed")

	// ErrEncryption indicates a cipher precondition violation (bad key
	// size). With a 32-byte derived key it is unreachable; it signals a
	// programming error, not a recoverable runtime condition.
	ErrEncryption = errors.New("cipher initialisation failed")
)

// Seal encrypts plaintext under key with AES-256-GCM. The returned
// ciphertext carries the 16-byte authentication tag appended.
func Seal(key []byte, nonce domain.Nonce, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce.Slice(), plaintext, nil), nil
}

// Open decrypts and authenticates ciphertext. It returns ErrAuthentication
// when the tag does not verify against (key, nonce, ciphertext).
func Open(key []byte, nonce domain.Nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce.Slice(), ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	return aead, nil
}
