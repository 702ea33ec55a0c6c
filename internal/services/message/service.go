package message

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/blockpain/ecies-study/internal/domain"
	"github.com/blockpain/ecies-study/internal/protocol/ecies"
	"github.com/blockpain/ecies-study/internal/store"
	"github.com/blockpain/ecies-study/internal/util/memzero"
)

var (
	// ErrUnknownPeer indicates the addressee has no registered public key.
	ErrUnknownPeer = errors.New("peer not registered; run peer add first")

	// ErrUnknownSender indicates the envelope's sender identity key does
	// not belong to any registered peer. The signature may be internally
	// consistent, but authorship cannot be tied to anyone we know, so the
	// message is rejected.
	ErrUnknownSender = errors.New("envelope sender key does not match any registered peer")
)

// Service seals and opens envelopes using the local identity and the peer
// registry.
type Service struct {
	ids   store.IdentityStore
	peers store.PeerStore
	rand  io.Reader
}

// New constructs a message service over the given stores.
func New(ids store.IdentityStore, peers store.PeerStore) *Service {
	return &Service{ids: ids, peers: peers, rand: rand.Reader}
}

// Seal encrypts plaintext for the named peer and signs it with the local
// identity. The envelope is returned to the caller for delivery.
func (s *Service) Seal(passphrase, to string, plaintext []byte) (domain.Envelope, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.Envelope{}, err
	}
	defer memzero.Zero(id.Priv[:])

	peer, ok, err := s.peers.LoadPeer(to)
	if err != nil {
		return domain.Envelope{}, err
	}
	if !ok {
		return domain.Envelope{}, ErrUnknownPeer
	}
	return ecies.Seal(s.rand, id, peer.Pub, plaintext)
}

// Open verifies and decrypts an envelope addressed to the local identity.
//
// The signature check uses the identity key the envelope itself presents;
// that only proves internal consistency, so the key is then required to
// match a registered peer before the plaintext is trusted. Either failure
// rejects the message.
func (s *Service) Open(passphrase string, env domain.Envelope) (domain.DecryptedMessage, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	defer memzero.Zero(id.Priv[:])

	pt, err := ecies.OpenVerified(env, id.Priv)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}

	peer, ok, err := s.peers.LookupByKey(env.SenderKey)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	if !ok {
		return domain.DecryptedMessage{}, ErrUnknownSender
	}

	return domain.DecryptedMessage{
		From:      peer.Name,
		SenderKey: env.SenderKey,
		Plaintext: pt,
	}, nil
}
