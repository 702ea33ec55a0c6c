// Package wire encodes envelopes to a compact binary form for transport
// or storage collaborators. Fixed-size fields are emitted as-is and the
// two variable-length fields are length-prefixed; no other framing is
// defined at this layer.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/blockpain/ecies-study/internal/domain"
)

// Version identifies the envelope encoding. A reader must reject versions
// it does not know rather than guess at the layout.
const Version = 1

var (
	// ErrTruncated is returned when the input ends before the layout does.
	ErrTruncated = errors.New("wire: truncated envelope")
	// ErrVersion is returned for an unsupported encoding version.
	ErrVersion = errors.New("wire: unsupported envelope version")
)

// Layout: version(1) | receiver(33) | ephemeral(33) | sender(33) |
// nonce(12) | sigLen(u16) | sig | ctLen(u32) | ciphertext.
const fixedLen = 1 + 3*domain.PublicKeySize + domain.NonceSize + 2 + 4

// Encode serializes env.
func Encode(env domain.Envelope) ([]byte, error) {
	if len(env.Signature) > math.MaxUint16 {
		return nil, fmt.Errorf("wire: signature length %d exceeds encoding", len(env.Signature))
	}
	if len(env.Ciphertext) > math.MaxUint32 {
		return nil, fmt.Errorf("wire: ciphertext length %d exceeds encoding", len(env.Ciphertext))
	}

	out := make([]byte, 0, fixedLen+len(env.Signature)+len(env.Ciphertext))
	out = append(out, Version)
	out = append(out, env.ReceiverKey.Slice()...)
	out = append(out, env.EphemeralKey.Slice()...)
	out = append(out, env.SenderKey.Slice()...)
	out = append(out, env.Nonce.Slice()...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(env.Signature)))
	out = append(out, env.Signature...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(env.Ciphertext)))
	out = append(out, env.Ciphertext...)
	return out, nil
}

// Decode parses an envelope, rejecting unknown versions, short input, and
// trailing garbage.
func Decode(b []byte) (domain.Envelope, error) {
	var env domain.Envelope
	if len(b) < 1 {
		return env, ErrTruncated
	}
	if b[0] != Version {
		return env, fmt.Errorf("%w: %d", ErrVersion, b[0])
	}
	b = b[1:]

	for _, dst := range [][]byte{env.ReceiverKey[:], env.EphemeralKey[:], env.SenderKey[:], env.Nonce[:]} {
		if len(b) < len(dst) {
			return domain.Envelope{}, ErrTruncated
		}
		copy(dst, b)
		b = b[len(dst):]
	}

	sig, b, err := readChunk16(b)
	if err != nil {
		return domain.Envelope{}, err
	}
	ct, b, err := readChunk32(b)
	if err != nil {
		return domain.Envelope{}, err
	}
	if len(b) != 0 {
		return domain.Envelope{}, fmt.Errorf("wire: %d trailing bytes", len(b))
	}
	env.Signature = sig
	env.Ciphertext = ct
	return env, nil
}

func readChunk16(b []byte) (chunk, rest []byte, err error) {
	if len(b) < 2 {
		return nil, nil, ErrTruncated
	}
	n := int(binary.BigEndian.Uint16(b))
	b = b[2:]
	if len(b) < n {
		return nil, nil, ErrTruncated
	}
	return append([]byte(nil), b[:n]...), b[n:], nil
}

func readChunk32(b []byte) (chunk, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, ErrTruncated
	}
	n := int(binary.BigEndian.Uint32(b))
	b = b[4:]
	if len(b) < n {
		return nil, nil, ErrTruncated
	}
	return append([]byte(nil), b[:n]...), b[n:], nil
}
