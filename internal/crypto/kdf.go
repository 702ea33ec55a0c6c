package crypto

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// maxKDFOutput is the RFC 5869 expansion bound: 255 blocks of HMAC-SHA256.
const maxKDFOutput = 255 * sha256.Size

// ErrKDFExpansion is returned when the requested output length exceeds the
// HKDF expansion bound. Surfacing it beats truncating silently.
var ErrKDFExpansion = errors.New("kdf output length exceeds expansion bound")

// DeriveKey expands a raw shared secret into outLen key bytes with
// HKDF-SHA256. The scheme uses no salt and no context info, so identical
// secrets always derive identical keys.
func DeriveKey(sharedSecret []byte, outLen int) ([]byte, error) {
	if outLen > maxKDFOutput {
		return nil, ErrKDFExpansion
	}
	out := make([]byte, outLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, sharedSecret, nil, nil), out); err != nil {
		return nil, err
	}
	return out, nil
}
