// Package store persists the local identity and the peer registry.
//
// The identity (which contains the secret scalar) is sealed into a
// passphrase-encrypted blob before touching disk; peers are public
// material and are stored as plain JSON. All writes go through a temp
// file and rename so a crash never leaves a half-written file behind.
package store
