package domain

const (
	// PublicKeySize is the length of a compressed SEC1 secp256k1 point.
	PublicKeySize = 33
	// PrivateKeySize is the length of a secp256k1 scalar.
	PrivateKeySize = 32
	// NonceSize is the AES-GCM nonce length used by the scheme.
	NonceSize = 12
	// KeySize is the length of the derived symmetric key.
	KeySize = 32
)

// PublicKey is a compressed SEC1 secp256k1 public key.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// PrivateKey is a secp256k1 secret scalar. It must never appear in an
// outbound Envelope.
type PrivateKey [PrivateKeySize]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// Nonce is a fresh per-encryption AEAD nonce. Nonces are not secret but a
// (key, nonce) pair must never repeat across two plaintexts.
type Nonce [NonceSize]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// KeyPair is a secp256k1 key pair. The same shape serves both roles in the
// scheme: long-lived identity keys (kept for signing and as the static
// receive key) and ephemeral keys (generated per message, discarded after
// the shared secret is computed). Only the caller's retention policy
// differs.
type KeyPair struct {
	Pub  PublicKey
	Priv PrivateKey
}

// Peer is a named correspondent and their static public key.
type Peer struct {
	Name string    `json:"name"`
	Pub  PublicKey `json:"pub"`
}

// DecryptedMessage is returned by the receive path after decryption and
// signature verification succeed.
type DecryptedMessage struct {
	From      string // peer name, if the sender key matched the registry
	SenderKey PublicKey
	Plaintext []byte
}
