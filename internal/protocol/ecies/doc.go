// Package ecies implements the authenticated hybrid-encryption scheme:
// a fresh ephemeral secp256k1 key pair per message, ECDH against the
// receiver's static key, HKDF-SHA256 to a 256-bit AES-GCM key, and a
// deterministic ECDSA signature over the ciphertext binding it to the
// sender's long-term identity key.
//
// # Flows
//
// Send (Seal):
//  1. Generate an ephemeral key pair from the supplied random source.
//  2. ECDH between the ephemeral secret and the receiver's static public.
//  3. HKDF the raw shared secret into a 32-byte symmetric key.
//  4. Encrypt the plaintext under a fresh random 12-byte nonce.
//  5. Sign the ciphertext with the sender's identity secret.
//  6. Assemble the envelope from the six transmissible fields.
//
// Receive (OpenVerified):
//  1. Verify the signature over the ciphertext against the envelope's
//     sender identity key; a failing signature rejects the message before
//     any decryption.
//  2. ECDH between the receiver's static secret and the ephemeral public.
//  3. Derive the identical symmetric key and open the ciphertext.
//
// # Security notes
//
// The signature covers the ciphertext bytes only; it does not bind the
// ephemeral or receiver keys, and the AEAD carries no associated data. A
// signature is therefore only evidence that the identity key holder
// produced that exact ciphertext, not that they addressed it to this
// receiver. Whether the sender identity key belongs to the claimed peer
// is the caller's problem; this package checks cryptographic consistency
// only.
package ecies
