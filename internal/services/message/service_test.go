package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockpain/ecies-study/internal/crypto"
	"github.com/blockpain/ecies-study/internal/domain"
	identitysvc "github.com/blockpain/ecies-study/internal/services/identity"
	messagesvc "github.com/blockpain/ecies-study/internal/services/message"
	"github.com/blockpain/ecies-study/internal/store"
)

const passphrase = "Correct-Horse-Battery-7!"

// party is one side of an exchange: its own home dir, stores and services.
type party struct {
	id       domain.KeyPair
	peers    *store.PeerFileStore
	messages *messagesvc.Service
}

func newParty(t *testing.T) *party {
	t.Helper()
	dir := t.TempDir()
	ids := store.NewIdentityFileStore(dir)
	peers := store.NewPeerFileStore(dir)

	id, _, err := identitysvc.New(ids).GenerateIdentity(passphrase)
	require.NoError(t, err)

	return &party{
		id:       id,
		peers:    peers,
		messages: messagesvc.New(ids, peers),
	}
}

func (p *party) know(t *testing.T, name string, other *party) {
	t.Helper()
	require.NoError(t, p.peers.SavePeer(domain.Peer{Name: name, Pub: other.id.Pub}))
}

func TestSealOpenBetweenParties(t *testing.T) {
	alice := newParty(t)
	bob := newParty(t)
	alice.know(t, "bob", bob)
	bob.know(t, "alice", alice)

	env, err := alice.messages.Seal(passphrase, "bob", []byte("milady"))
	require.NoError(t, err)
	require.Equal(t, bob.id.Pub, env.ReceiverKey)

	msg, err := bob.messages.Open(passphrase, env)
	require.NoError(t, err)
	require.Equal(t, "alice", msg.From)
	require.Equal(t, []byte("milady"), msg.Plaintext)
}

func TestSealUnknownPeer(t *testing.T) {
	alice := newParty(t)

	_, err := alice.messages.Seal(passphrase, "bob", []byte("hello?"))
	require.ErrorIs(t, err, messagesvc.ErrUnknownPeer)
}

func TestOpenUnknownSenderRejected(t *testing.T) {
	// Bob never registered Alice: the envelope is cryptographically
	// consistent but authorship cannot be pinned to anyone he trusts.
	alice := newParty(t)
	bob := newParty(t)
	alice.know(t, "bob", bob)

	env, err := alice.messages.Seal(passphrase, "bob", []byte("who dis"))
	require.NoError(t, err)

	_, err = bob.messages.Open(passphrase, env)
	require.ErrorIs(t, err, messagesvc.ErrUnknownSender)
}

func TestOpenByThirdPartyFails(t *testing.T) {
	alice := newParty(t)
	bob := newParty(t)
	carol := newParty(t)
	alice.know(t, "bob", bob)
	carol.know(t, "alice", alice)

	env, err := alice.messages.Seal(passphrase, "bob", []byte("for bob only"))
	require.NoError(t, err)

	_, err = carol.messages.Open(passphrase, env)
	require.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestOpenTamperedEnvelopeRejected(t *testing.T) {
	alice := newParty(t)
	bob := newParty(t)
	alice.know(t, "bob", bob)
	bob.know(t, "alice", alice)

	env, err := alice.messages.Seal(passphrase, "bob", []byte("original"))
	require.NoError(t, err)

	env.Ciphertext[len(env.Ciphertext)-1] ^= 0x01
	_, err = bob.messages.Open(passphrase, env)
	require.Error(t, err)
}

func TestOpenWrongPassphrase(t *testing.T) {
	alice := newParty(t)
	bob := newParty(t)
	alice.know(t, "bob", bob)
	bob.know(t, "alice", alice)

	env, err := alice.messages.Seal(passphrase, "bob", []byte("hi"))
	require.NoError(t, err)

	_, err = bob.messages.Open("wrong one", env)
	require.Error(t, err)
}
