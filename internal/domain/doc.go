// Package domain defines the data types shared across the module: key
// material, the message envelope, and the values returned to callers.
// It contains plain wire/state types only; cryptographic operations live
// in internal/crypto and internal/protocol/ecies.
package domain
