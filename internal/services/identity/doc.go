// Package identity manages the local long-term key pair: creation under a
// passphrase policy, loading, and fingerprint display. The identity key
// signs outgoing ciphertexts and serves as the static receive key.
package identity
