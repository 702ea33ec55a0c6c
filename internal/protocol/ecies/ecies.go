package ecies

import (
	"errors"
	"fmt"
	"io"

	"github.com/blockpain/ecies-study/internal/crypto"
	"github.com/blockpain/ecies-study/internal/domain"
	"github.com/blockpain/ecies-study/internal/util/memzero"
)

// ErrSignatureVerification is returned by OpenVerified when a well-formed
// signature does not validate against the envelope's sender identity key.
// The envelope must be treated as rejected, never decrypted anyway.
var ErrSignatureVerification = errors.New("envelope signature verification failed")

// Seal encrypts plaintext for receiverPub and signs the ciphertext with
// the sender's identity key. It is a pure constructor: the result is not
// re-verified here, that is the receiver's job.
//
// rand supplies all randomness (ephemeral scalar and nonce) so callers can
// substitute a deterministic source in tests.
func Seal(rand io.Reader, sender domain.KeyPair, receiverPub domain.PublicKey, plaintext []byte) (domain.Envelope, error) {
	eph, err := crypto.GenerateKeyPair(rand)
	if err != nil {
		return domain.Envelope{}, err
	}
	defer memzero.Zero(eph.Priv[:])

	key, err := deriveMessageKey(eph.Priv, receiverPub)
	if err != nil {
		return domain.Envelope{}, err
	}
	defer memzero.Zero(key)

	var nonce domain.Nonce
	if _, err := io.ReadFull(rand, nonce[:]); err != nil {
		return domain.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	ct, err := crypto.Seal(key, nonce, plaintext)
	if err != nil {
		return domain.Envelope{}, err
	}

	return domain.Envelope{
		Ciphertext:   ct,
		ReceiverKey:  receiverPub,
		EphemeralKey: eph.Pub,
		Nonce:        nonce,
		SenderKey:    sender.Pub,
		Signature:    crypto.Sign(sender.Priv, ct),
	}, nil
}

// Open recomputes the shared secret from the receiver's static secret and
// the envelope's ephemeral key, then decrypts. It does not check the
// signature; use OpenVerified unless authorship is established elsewhere.
func Open(env domain.Envelope, receiverPriv domain.PrivateKey) ([]byte, error) {
	key, err := deriveMessageKey(receiverPriv, env.EphemeralKey)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	return crypto.Open(key, env.Nonce, env.Ciphertext)
}

// OpenVerified checks the envelope signature before decrypting. The order
// matters: a message that fails verification is rejected without touching
// the cipher, so a forged envelope learns nothing from this path.
func OpenVerified(env domain.Envelope, receiverPriv domain.PrivateKey) ([]byte, error) {
	ok, err := crypto.Verify(env.SenderKey, env.Ciphertext, env.Signature)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSignatureVerification
	}
	return Open(env, receiverPriv)
}

// deriveMessageKey runs ECDH and whitens the raw secret into the AEAD key.
// Commutativity of the exchange makes it serve both directions.
func deriveMessageKey(priv domain.PrivateKey, pub domain.PublicKey) ([]byte, error) {
	shared, err := crypto.SharedSecret(priv, pub)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(shared)

	return crypto.DeriveKey(shared, domain.KeySize)
}
