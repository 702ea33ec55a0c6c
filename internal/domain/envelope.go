package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Envelope carries every transmissible field of one encrypted message.
// It is assembled once on the send path, is immutable in transit, and is
// consumed exactly once by the receiver's decrypt path. Secret scalars are
// never part of it.
type Envelope struct {
	Ciphertext   []byte    `json:"ciphertext"`
	ReceiverKey  PublicKey `json:"receiver_key"`
	EphemeralKey PublicKey `json:"ephemeral_key"`
	Nonce        Nonce     `json:"nonce"`
	SenderKey    PublicKey `json:"sender_key"`
	Signature    []byte    `json:"signature"`
}

// MarshalJSON encodes the key as standard base64 for stable, compact JSON.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(p[:]))
}

// UnmarshalJSON mirrors MarshalJSON and enforces the compressed-point length.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalB64(data, PublicKeySize)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	copy(p[:], b)
	return nil
}

// MarshalJSON encodes the nonce as standard base64.
func (n Nonce) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(n[:]))
}

// UnmarshalJSON mirrors MarshalJSON and enforces the nonce length.
func (n *Nonce) UnmarshalJSON(data []byte) error {
	b, err := unmarshalB64(data, NonceSize)
	if err != nil {
		return fmt.Errorf("nonce: %w", err)
	}
	copy(n[:], b)
	return nil
}

func unmarshalB64(data []byte, want int) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, fmt.Errorf("got %d bytes, want %d", len(b), want)
	}
	return b, nil
}
