package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/blockpain/ecies-study/internal/util/memzero"
)

// The current version of the encrypted blob format stored on disk.
const keystoreFormatVersion = 1

const saltSize = 16

// Returned when the passphrase is wrong or the blob has been modified;
// the AEAD cannot tell those apart and neither do we.
var errWrongPassphrase = errors.New("wrong passphrase or corrupted keystore")

// blob is the on-disk JSON structure holding the ciphertext and the KDF
// parameters it was sealed with, so parameters can be raised later without
// breaking old files.
type blob struct {
	V        int    `json:"v"`
	KDF      string `json:"kdf"`
	Time     uint32 `json:"kdf_time"`
	MemoryKB uint32 `json:"kdf_memory_kb"`
	Threads  uint8  `json:"kdf_threads"`
	Salt     []byte `json:"salt"`
	Nonce    []byte `json:"nonce"`
	Cipher   []byte `json:"cipher"`
}

func argonParamsDefault() (timeCost, memoryKB uint32, threads uint8) { return 2, 64 * 1024, 1 }

// seal derives a key from passphrase with Argon2id and encrypts raw into a
// JSON blob under a fresh random nonce.
func seal(passphrase string, raw []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	timeCost, memoryKB, threads := argonParamsDefault()

	key := argon2.IDKey([]byte(passphrase), salt, timeCost, memoryKB, threads, chacha20poly1305.KeySize)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, salt)

	return json.Marshal(blob{
		V:        keystoreFormatVersion,
		KDF:      "argon2id",
		Time:     timeCost,
		MemoryKB: memoryKB,
		Threads:  threads,
		Salt:     salt,
		Nonce:    nonce,
		Cipher:   ct,
	})
}

// open decrypts a JSON blob using a key derived from passphrase with the
// parameters recorded in the blob.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	if bl.KDF != "argon2id" {
		return nil, fmt.Errorf("unsupported keystore kdf %q", bl.KDF)
	}

	key := argon2.IDKey([]byte(passphrase), bl.Salt, bl.Time, bl.MemoryKB, bl.Threads, chacha20poly1305.KeySize)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, bl.Nonce, bl.Cipher, bl.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}
