package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/blockpain/ecies-study/internal/domain"
)

// ErrMalformedSignature is returned when signature bytes fail to parse as
// DER. A well-formed signature that simply does not validate is not an
// error; Verify reports that as false.
var ErrMalformedSignature = errors.New("malformed signature encoding")

// Sign produces a deterministic (RFC 6979) ECDSA signature over the
// SHA-256 digest of msg, DER-encoded. In this scheme msg is always the
// ciphertext, never the plaintext, so the signature binds the bytes that
// actually travel.
func Sign(priv domain.PrivateKey, msg []byte) []byte {
	sk := secp256k1.PrivKeyFromBytes(priv.Slice())
	defer sk.Zero()

	digest := sha256.Sum256(msg)
	return ecdsa.Sign(sk, digest[:]).Serialize()
}

// Verify reports whether sig is a valid signature over msg by the holder
// of pub. A mismatching signature yields (false, nil); undecodable
// signature bytes yield ErrMalformedSignature and an invalid public key
// yields ErrInvalidPoint.
func Verify(pub domain.PublicKey, msg, sig []byte) (bool, error) {
	pk, err := parsePublicKey(pub)
	if err != nil {
		return false, err
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	digest := sha256.Sum256(msg)
	return parsed.Verify(digest[:], pk), nil
}
