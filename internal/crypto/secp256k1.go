package crypto

import (
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/blockpain/ecies-study/internal/domain"
)

// ErrInvalidPoint is returned when a peer public key does not decode to a
// valid curve point. Off-curve and infinity inputs are rejected before any
// arithmetic to rule out invalid-curve and small-subgroup attacks.
var ErrInvalidPoint = errors.New("invalid curve point")

// GenerateKeyPair returns a fresh secp256k1 key pair. The secret scalar is
// sampled uniformly from [1, N-1] using r, so it is never zero.
func GenerateKeyPair(r io.Reader) (domain.KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(r)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("generate keypair: %w", err)
	}
	defer priv.Zero()

	var kp domain.KeyPair
	copy(kp.Priv[:], priv.Serialize())
	copy(kp.Pub[:], priv.PubKey().SerializeCompressed())
	return kp, nil
}

// SharedSecret computes the X coordinate of priv·peer as 32 raw bytes
// (RFC 5903 style). The output is not uniformly random and must pass
// through DeriveKey before use as a cipher key.
func SharedSecret(priv domain.PrivateKey, peer domain.PublicKey) ([]byte, error) {
	pub, err := parsePublicKey(peer)
	if err != nil {
		return nil, err
	}
	sk := secp256k1.PrivKeyFromBytes(priv.Slice())
	defer sk.Zero()

	return secp256k1.GenerateSharedSecret(sk, pub), nil
}

// PublicKeyOf derives the compressed public key for a secret scalar.
func PublicKeyOf(priv domain.PrivateKey) domain.PublicKey {
	sk := secp256k1.PrivKeyFromBytes(priv.Slice())
	defer sk.Zero()

	var pub domain.PublicKey
	copy(pub[:], sk.PubKey().SerializeCompressed())
	return pub
}

func parsePublicKey(pub domain.PublicKey) (*secp256k1.PublicKey, error) {
	pk, err := secp256k1.ParsePubKey(pub.Slice())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return pk, nil
}
