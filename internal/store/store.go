package store

import (
	"errors"

	"github.com/blockpain/ecies-study/internal/domain"
)

// ErrNoIdentity is returned when no identity has been created yet.
var ErrNoIdentity = errors.New("no identity found; run init first")

// IdentityStore persists the local long-term key pair.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domain.KeyPair) error
	LoadIdentity(passphrase string) (domain.KeyPair, error)
	HasIdentity() (bool, error)
}

// PeerStore persists named peers and their static public keys.
type PeerStore interface {
	SavePeer(p domain.Peer) error
	LoadPeer(name string) (domain.Peer, bool, error)
	LookupByKey(pub domain.PublicKey) (domain.Peer, bool, error)
	ListPeers() ([]domain.Peer, error)
}
