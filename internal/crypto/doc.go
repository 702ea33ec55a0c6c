// Package crypto exposes the primitives the ECIES scheme is built from.
//
// Contents
//
//   - secp256k1 key generation and Diffie–Hellman (GenerateKeyPair,
//     SharedSecret)
//   - HKDF-SHA256 key derivation (DeriveKey)
//   - AES-256-GCM authenticated encryption (Seal, Open)
//   - Deterministic ECDSA signing and verification (Sign, Verify)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Key material crosses this package as the fixed-size types defined in
// internal/domain; curve-library representations never escape. Functions
// that consume randomness take an explicit io.Reader so tests can supply a
// deterministic source. Callers should treat returned secrets as sensitive
// and wipe them with memzero when practical.
package crypto
